// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

// Package analytics implements the metrics engine: it owns the loaded
// dataset and computes the derived fields and aggregate views the
// dashboard consumes.
//
// The engine has exactly two states. Unloaded (initial): every query
// returns ErrNotLoaded. Loaded: a snapshot is held and queries are
// served from it. Load is atomic from the caller's perspective — a
// failed load leaves the engine Unloaded and retains nothing from any
// prior snapshot, so callers never observe half-loaded data.
//
// Aggregations use explicit per-group accumulators rather than a
// data-table engine; the dataset this system targets is tens to low
// thousands of rows, recomputed fresh on every request.
package analytics

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clipdeck/clipdeck/internal/config"
	"github.com/clipdeck/clipdeck/internal/dataset"
	"github.com/clipdeck/clipdeck/internal/logging"
	"github.com/clipdeck/clipdeck/internal/metrics"
	"github.com/clipdeck/clipdeck/internal/models"
)

// ErrNotLoaded indicates a query was issued against an Unloaded engine.
var ErrNotLoaded = errors.New("no dataset loaded")

// Snapshot is one successfully loaded dataset with its derived fields.
// Snapshots are immutable once published; a reload swaps in a new one.
type Snapshot struct {
	ID       uuid.UUID
	Path     string
	LoadedAt time.Time
	Records  []models.DerivedRecord
}

// Engine is the metrics engine. Safe for concurrent use: Load holds
// the write lock, queries read the published snapshot pointer, so no
// query ever observes a half-completed load.
type Engine struct {
	cfg config.AnalyticsConfig

	mu   sync.RWMutex
	snap *Snapshot
}

// NewEngine creates an Unloaded engine with the given business
// constants.
func NewEngine(cfg config.AnalyticsConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Load reads the CSV snapshot at path, derives per-record fields and
// publishes the result. On failure the engine reverts to Unloaded —
// queries after a failed load must not silently serve stale data from
// an earlier successful load.
func (e *Engine) Load(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	raw, err := dataset.ReadFile(path)
	metrics.RecordDatasetLoad(time.Since(start), err)
	if err != nil {
		e.snap = nil
		metrics.UpdateSnapshotGauges(0, 0)
		return fmt.Errorf("engine load: %w", err)
	}

	snap := &Snapshot{
		ID:       uuid.New(),
		Path:     path,
		LoadedAt: time.Now(),
		Records:  e.Derive(raw),
	}
	e.snap = snap

	hot := 0
	for i := range snap.Records {
		if snap.Records[i].IsHot {
			hot++
		}
	}
	metrics.UpdateSnapshotGauges(len(snap.Records), hot)

	logging.Info().
		Str("snapshot_id", snap.ID.String()).
		Str("path", path).
		Int("records", len(snap.Records)).
		Int("hot_videos", hot).
		Msg("Dataset loaded")

	return nil
}

// Loaded reports whether the engine holds a snapshot.
func (e *Engine) Loaded() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snap != nil
}

// Snapshot returns the current snapshot, or ErrNotLoaded.
func (e *Engine) Snapshot() (*Snapshot, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.snap == nil {
		return nil, ErrNotLoaded
	}
	return e.snap, nil
}

// Records returns the derived records of the current snapshot, or
// ErrNotLoaded.
func (e *Engine) Records() ([]models.DerivedRecord, error) {
	snap, err := e.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Records, nil
}

// Info describes the current snapshot for health reporting, or
// ErrNotLoaded.
func (e *Engine) Info() (*models.DatasetInfo, error) {
	snap, err := e.Snapshot()
	if err != nil {
		return nil, err
	}
	return &models.DatasetInfo{
		SnapshotID:  snap.ID,
		Path:        snap.Path,
		RecordCount: len(snap.Records),
		LoadedAt:    snap.LoadedAt,
	}, nil
}

// Config returns the business constants the engine was built with.
func (e *Engine) Config() config.AnalyticsConfig {
	return e.cfg
}
