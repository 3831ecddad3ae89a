// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

package analytics

import (
	"testing"
	"time"

	"github.com/clipdeck/clipdeck/internal/models"
)

// typedRecord is record() with an explicit content type.
func typedRecord(id, contentType string, views, likes int64, hour int) models.VideoRecord {
	rec := record(id, views, likes, 0, 0, hour, 0.5)
	rec.ContentType = contentType
	return rec
}

func TestSummarizeEndToEndScenario(t *testing.T) {
	e := testEngine()

	// Three records with views 25000/10000/30000 and engagement rates
	// 6.0/3.0/7.5: records 1 and 3 are hot.
	derived := e.Derive([]models.VideoRecord{
		record("V1", 25000, 1400, 50, 50, 9, 0.6),  // 1500/25000 = 6.0
		record("V2", 10000, 250, 30, 20, 13, 0.4),  // 300/10000 = 3.0
		record("V3", 30000, 2000, 200, 50, 20, 0.7), // 2250/30000 = 7.5
	})

	summary := e.Summarize(derived)

	if summary.TotalVideos != 3 {
		t.Errorf("TotalVideos = %d, want 3", summary.TotalVideos)
	}
	if summary.TotalViews != 65000 {
		t.Errorf("TotalViews = %d, want 65000", summary.TotalViews)
	}
	if summary.AvgEngagementRate != 5.5 {
		t.Errorf("AvgEngagementRate = %v, want 5.5", summary.AvgEngagementRate)
	}
	if summary.HotVideosCount != 2 {
		t.Errorf("HotVideosCount = %d, want 2", summary.HotVideosCount)
	}
	if summary.HotVideosRate != 66.67 {
		t.Errorf("HotVideosRate = %v, want 66.67", summary.HotVideosRate)
	}
}

func TestSummarizeEmptyDataset(t *testing.T) {
	e := testEngine()

	summary := e.Summarize(nil)

	if summary != (models.SummaryMetrics{}) {
		t.Errorf("empty dataset must summarize to zero values, got %+v", summary)
	}
}

func TestGroupByContentTypeOrderingAndCounts(t *testing.T) {
	e := testEngine()

	derived := e.Derive([]models.VideoRecord{
		typedRecord("V1", "Food", 10000, 200, 9),    // 2.0
		typedRecord("V2", "Tech", 25000, 1500, 10),  // 6.0, hot
		typedRecord("V3", "Food", 10000, 400, 11),   // 4.0
		typedRecord("V4", "Pets", 30000, 2400, 12),  // 8.0, hot
		typedRecord("V5", "Tech", 10000, 200, 13),   // 2.0
	})

	groups := e.GroupByContentType(derived)

	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	// Pets 8.0 > Tech 4.0 > Food 3.0
	wantOrder := []string{"Pets", "Tech", "Food"}
	for i, want := range wantOrder {
		if groups[i].Key != want {
			t.Errorf("group[%d] = %q, want %q", i, groups[i].Key, want)
		}
	}

	total := 0
	for _, g := range groups {
		total += g.VideoCount
		if g.HotRate < 0 || g.HotRate > 100 {
			t.Errorf("group %q hot rate %v outside [0,100]", g.Key, g.HotRate)
		}
		if g.AvgEngagementRate < 0 {
			t.Errorf("group %q has negative engagement %v", g.Key, g.AvgEngagementRate)
		}
	}
	if total != len(derived) {
		t.Errorf("per-group counts sum to %d, want %d", total, len(derived))
	}

	for i := 1; i < len(groups); i++ {
		if groups[i].AvgEngagementRate > groups[i-1].AvgEngagementRate {
			t.Errorf("groups not sorted descending at index %d", i)
		}
	}

	// Spot-check Tech aggregates: mean views 17500, mean engagement 4.0,
	// one of two records hot.
	for _, g := range groups {
		if g.Key != "Tech" {
			continue
		}
		if g.AvgViews != 17500 {
			t.Errorf("Tech AvgViews = %v, want 17500", g.AvgViews)
		}
		if g.AvgEngagementRate != 4.0 {
			t.Errorf("Tech AvgEngagementRate = %v, want 4.0", g.AvgEngagementRate)
		}
		if g.HotVideos != 1 || g.HotRate != 50.0 {
			t.Errorf("Tech hot = %d/%v, want 1/50.0", g.HotVideos, g.HotRate)
		}
	}
}

func TestGroupByContentTypeStableTies(t *testing.T) {
	e := testEngine()

	// Same engagement rate in every group: order must follow first
	// appearance in the input.
	derived := e.Derive([]models.VideoRecord{
		typedRecord("V1", "Gaming", 10000, 300, 9),
		typedRecord("V2", "Travel", 20000, 600, 10),
		typedRecord("V3", "Beauty", 40000, 1200, 11),
	})

	groups := e.GroupByContentType(derived)
	wantOrder := []string{"Gaming", "Travel", "Beauty"}
	for i, want := range wantOrder {
		if groups[i].Key != want {
			t.Errorf("tied group[%d] = %q, want %q (stable order broken)", i, groups[i].Key, want)
		}
	}
}

func TestGroupByTimePeriod(t *testing.T) {
	e := testEngine()

	derived := e.Derive([]models.VideoRecord{
		typedRecord("V1", "Tech", 10000, 600, 7),   // Morning, 6.0
		typedRecord("V2", "Tech", 10000, 200, 8),   // Morning, 2.0
		typedRecord("V3", "Tech", 10000, 500, 23),  // Late Night, 5.0
		typedRecord("V4", "Tech", 10000, 100, 2),   // Late Night, 1.0
		typedRecord("V5", "Tech", 10000, 700, 12),  // Midday, 7.0
	})

	groups := e.GroupByTimePeriod(derived)

	if len(groups) != 3 {
		t.Fatalf("expected 3 period groups, got %d", len(groups))
	}

	// Midday 7.0 > Morning 4.0 > Late Night 3.0
	wantOrder := []string{models.PeriodMidday, models.PeriodMorning, models.PeriodLateNight}
	for i, want := range wantOrder {
		if groups[i].Key != want {
			t.Errorf("period group[%d] = %q, want %q", i, groups[i].Key, want)
		}
	}

	total := 0
	for _, g := range groups {
		total += g.VideoCount
	}
	if total != len(derived) {
		t.Errorf("per-period counts sum to %d, want %d", total, len(derived))
	}
}

func TestRankOrderingAndLimits(t *testing.T) {
	e := testEngine()

	raw := make([]models.VideoRecord, 0, 15)
	for i := 0; i < 15; i++ {
		// Monotonically increasing views keeps scores distinct.
		raw = append(raw, record(
			"V"+string(rune('A'+i)), int64(5000+i*2000), 500, 0, 0, 10, 0.5))
	}
	derived := e.Derive(raw)

	t.Run("default size", func(t *testing.T) {
		top := e.Rank(derived, 10)
		if len(top) != 10 {
			t.Fatalf("Rank(_, 10) returned %d records, want 10", len(top))
		}
		for i := 1; i < len(top); i++ {
			if top[i].CompositeScore > top[i-1].CompositeScore {
				t.Errorf("ranking not sorted descending at index %d", i)
			}
		}
	})

	t.Run("n beyond dataset returns all", func(t *testing.T) {
		top := e.Rank(derived, 100)
		if len(top) != len(derived) {
			t.Errorf("Rank(_, 100) returned %d records, want %d", len(top), len(derived))
		}
	})

	t.Run("n zero falls back to configured default", func(t *testing.T) {
		top := e.Rank(derived, 0)
		if len(top) != e.Config().DefaultRankingLimit {
			t.Errorf("Rank(_, 0) returned %d records, want %d", len(top), e.Config().DefaultRankingLimit)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if top := e.Rank(nil, 10); len(top) != 0 {
			t.Errorf("Rank(nil, 10) returned %d records, want 0", len(top))
		}
	})
}

func TestRankStableTieBreak(t *testing.T) {
	e := testEngine()

	// Identical records everywhere: composite scores tie, so the
	// output must preserve input order.
	raw := []models.VideoRecord{
		record("first", 10000, 300, 0, 0, 10, 0.5),
		record("second", 10000, 300, 0, 0, 10, 0.5),
		record("third", 10000, 300, 0, 0, 10, 0.5),
	}
	top := e.Rank(e.Derive(raw), 3)

	wantOrder := []string{"first", "second", "third"}
	for i, want := range wantOrder {
		if top[i].VideoID != want {
			t.Errorf("tied rank[%d] = %q, want %q", i, top[i].VideoID, want)
		}
	}
}

func TestRankScoreFields(t *testing.T) {
	e := testEngine()
	uploadTime := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.Local)

	derived := e.Derive([]models.VideoRecord{record("V1", 25000, 1400, 50, 50, 9, 0.6)})
	top := e.Rank(derived, 1)

	if len(top) != 1 {
		t.Fatalf("expected one ranked record, got %d", len(top))
	}
	r := top[0]
	if r.VideoID != "V1" || r.ContentType != "Tech" || r.Views != 25000 {
		t.Errorf("ranked record lost display fields: %+v", r)
	}
	if r.CompositeScore != 27.9 {
		t.Errorf("CompositeScore = %v, want 27.9", r.CompositeScore)
	}
	if !r.UploadTime.Equal(uploadTime) {
		t.Errorf("UploadTime = %v, want %v", r.UploadTime, uploadTime)
	}
}
