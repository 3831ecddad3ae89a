// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

package analytics

import (
	"math"

	"github.com/clipdeck/clipdeck/internal/models"
)

// round2 rounds to two decimals, half away from zero. All percentages
// and means in this package go through it so rounding is consistent
// across runs.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// TimePeriodForHour maps an upload hour [0,23] to its bucket label.
// The five buckets are half-open and partition all 24 hours:
// [6,12) Morning, [12,14) Midday, [14,18) Afternoon, [18,22) Evening,
// and the wrap-around [22,6) Late Night.
func TimePeriodForHour(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return models.PeriodMorning
	case hour >= 12 && hour < 14:
		return models.PeriodMidday
	case hour >= 14 && hour < 18:
		return models.PeriodAfternoon
	case hour >= 18 && hour < 22:
		return models.PeriodEvening
	default:
		return models.PeriodLateNight
	}
}

// EngagementRate computes (likes+comments+shares)/views*100 rounded to
// two decimals. A record with zero views has no meaningful ratio and
// is reported as 0 rather than propagating a division fault.
func EngagementRate(rec *models.VideoRecord) float64 {
	if rec.Views == 0 {
		return 0
	}
	return round2(float64(rec.Interactions()) / float64(rec.Views) * 100)
}

// Derive computes the per-record derived fields for every input
// record. Pure and deterministic: the same input always yields the
// same output, and the input slice is never mutated.
func (e *Engine) Derive(records []models.VideoRecord) []models.DerivedRecord {
	derived := make([]models.DerivedRecord, 0, len(records))
	for i := range records {
		rec := records[i]
		engagement := EngagementRate(&rec)
		hour := rec.UploadTime.Hour()

		derived = append(derived, models.DerivedRecord{
			VideoRecord:    rec,
			EngagementRate: engagement,
			// Both comparisons are strict: a record sitting exactly on
			// a threshold is not hot.
			IsHot:      engagement > e.cfg.HotEngagementRate && rec.Views > e.cfg.HotViews,
			UploadHour: hour,
			TimePeriod: TimePeriodForHour(hour),
		})
	}
	return derived
}

// CompositeScore computes the ranking score for one derived record:
// a weighted blend of engagement rate, views in thousands, and
// completion rate expressed as a percentage.
func (e *Engine) CompositeScore(rec *models.DerivedRecord) float64 {
	return rec.EngagementRate*e.cfg.EngagementWeight +
		float64(rec.Views)/1000*e.cfg.ViewsWeight +
		rec.CompletionRate*100*e.cfg.CompletionWeight
}
