// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

package analytics

import (
	"sort"

	"github.com/clipdeck/clipdeck/internal/models"
)

// Summarize computes the dataset-wide headline metrics. An empty input
// yields the zero SummaryMetrics; rates never divide by zero.
func (e *Engine) Summarize(records []models.DerivedRecord) models.SummaryMetrics {
	var summary models.SummaryMetrics
	summary.TotalVideos = len(records)
	if summary.TotalVideos == 0 {
		return summary
	}

	var engagementSum float64
	for i := range records {
		summary.TotalViews += records[i].Views
		engagementSum += records[i].EngagementRate
		if records[i].IsHot {
			summary.HotVideosCount++
		}
	}

	summary.AvgEngagementRate = round2(engagementSum / float64(summary.TotalVideos))
	summary.HotVideosRate = round2(float64(summary.HotVideosCount) / float64(summary.TotalVideos) * 100)
	return summary
}

// accumulator gathers per-group sums before the final mean/rate pass.
type accumulator struct {
	count         int
	viewsSum      int64
	engagementSum float64
	hotCount      int
}

// groupBy aggregates records by the given key function. Groups appear
// in first-encounter order before sorting, which makes the descending
// engagement-rate sort stable and deterministic for equal rates.
func groupBy(records []models.DerivedRecord, key func(*models.DerivedRecord) string) []models.AggregateView {
	groups := make(map[string]*accumulator)
	var order []string

	for i := range records {
		k := key(&records[i])
		acc, ok := groups[k]
		if !ok {
			acc = &accumulator{}
			groups[k] = acc
			order = append(order, k)
		}
		acc.count++
		acc.viewsSum += records[i].Views
		acc.engagementSum += records[i].EngagementRate
		if records[i].IsHot {
			acc.hotCount++
		}
	}

	views := make([]models.AggregateView, 0, len(order))
	for _, k := range order {
		acc := groups[k]
		view := models.AggregateView{
			Key:        k,
			VideoCount: acc.count,
			HotVideos:  acc.hotCount,
		}
		// Groups are never empty by construction, but the zero guard
		// keeps the invariant explicit.
		if acc.count > 0 {
			view.AvgViews = round2(float64(acc.viewsSum) / float64(acc.count))
			view.AvgEngagementRate = round2(acc.engagementSum / float64(acc.count))
			view.HotRate = round2(float64(acc.hotCount) / float64(acc.count) * 100)
		}
		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].AvgEngagementRate > views[j].AvgEngagementRate
	})

	return views
}

// GroupByContentType aggregates the records per content type, sorted
// descending by average engagement rate.
func (e *Engine) GroupByContentType(records []models.DerivedRecord) []models.AggregateView {
	return groupBy(records, func(r *models.DerivedRecord) string { return r.ContentType })
}

// GroupByTimePeriod aggregates the records per upload time period,
// sorted descending by average engagement rate.
func (e *Engine) GroupByTimePeriod(records []models.DerivedRecord) []models.AggregateView {
	return groupBy(records, func(r *models.DerivedRecord) string { return r.TimePeriod })
}

// Rank returns the top n records by composite score, descending, with
// stable ties on original order. n <= 0 falls back to the configured
// default; n beyond the dataset size returns every record.
func (e *Engine) Rank(records []models.DerivedRecord, n int) []models.RankedVideo {
	if n <= 0 {
		n = e.cfg.DefaultRankingLimit
	}

	ranked := make([]models.RankedVideo, 0, len(records))
	for i := range records {
		ranked = append(ranked, models.RankedVideo{
			DerivedRecord:  records[i],
			CompositeScore: round2(e.CompositeScore(&records[i])),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CompositeScore > ranked[j].CompositeScore
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
