// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

package analytics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const validCSV = `video_id,upload_time,content_type,duration_sec,views,likes,comments,shares,completion_rate,creator_id
V1,2026-03-10 09:30:00,Tech,120,25000,1400,50,50,0.6,C2001
V2,2026-03-10 13:15:00,Food,90,10000,250,30,20,0.4,C2002
V3,2026-03-10 20:45:00,Pets,60,30000,2000,200,50,0.7,C2003
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoadSuccess(t *testing.T) {
	e := testEngine()

	if e.Loaded() {
		t.Error("fresh engine must start Unloaded")
	}

	if err := e.Load(writeCSV(t, validCSV)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !e.Loaded() {
		t.Error("engine must be Loaded after successful load")
	}

	records, err := e.Records()
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("expected 3 derived records, got %d", len(records))
	}
	if records[0].EngagementRate != 6.0 || !records[0].IsHot {
		t.Errorf("V1 derived fields wrong: engagement %v, hot %v",
			records[0].EngagementRate, records[0].IsHot)
	}

	info, err := e.Info()
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if info.RecordCount != 3 {
		t.Errorf("Info.RecordCount = %d, want 3", info.RecordCount)
	}
}

func TestQueriesFailWhenUnloaded(t *testing.T) {
	e := testEngine()

	if _, err := e.Records(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Records on Unloaded engine: got %v, want ErrNotLoaded", err)
	}
	if _, err := e.Snapshot(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Snapshot on Unloaded engine: got %v, want ErrNotLoaded", err)
	}
	if _, err := e.Info(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Info on Unloaded engine: got %v, want ErrNotLoaded", err)
	}
}

func TestLoadNonexistentPathLeavesEngineUnloaded(t *testing.T) {
	e := testEngine()

	if err := e.Load(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected error loading nonexistent path")
	}
	if e.Loaded() {
		t.Error("engine must remain Unloaded after failed load")
	}
}

func TestFailedReloadDiscardsPriorSnapshot(t *testing.T) {
	e := testEngine()

	if err := e.Load(writeCSV(t, validCSV)); err != nil {
		t.Fatalf("initial load failed: %v", err)
	}

	if err := e.Load(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected error loading nonexistent path")
	}

	// Queries after a failed load must not silently serve the prior
	// snapshot.
	if _, err := e.Records(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("expected ErrNotLoaded after failed reload, got %v", err)
	}
}

func TestReloadPublishesNewSnapshotID(t *testing.T) {
	e := testEngine()
	path := writeCSV(t, validCSV)

	if err := e.Load(path); err != nil {
		t.Fatalf("first load failed: %v", err)
	}
	first, _ := e.Snapshot()

	if err := e.Load(path); err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	second, _ := e.Snapshot()

	if first.ID == second.ID {
		t.Error("reload must publish a new snapshot ID")
	}
}

func TestLoadRejectsMalformedRow(t *testing.T) {
	bad := `video_id,upload_time,content_type,duration_sec,views,likes,comments,shares,completion_rate,creator_id
V1,2026-03-10 09:30:00,Tech,120,25000,1400,50,50,0.6,C2001
V2,not-a-timestamp,Food,90,10000,250,30,20,0.4,C2002
`
	e := testEngine()

	if err := e.Load(writeCSV(t, bad)); err == nil {
		t.Fatal("expected fail-fast error for malformed timestamp")
	}
	if e.Loaded() {
		t.Error("engine must remain Unloaded after fail-fast rejection")
	}
}
