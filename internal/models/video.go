// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

package models

import (
	"time"
)

// UploadTimeLayout is the timestamp format used by the input CSV schema.
const UploadTimeLayout = "2006-01-02 15:04:05"

// TimePeriod labels for the five fixed upload-hour buckets.
// The buckets are half-open and partition all 24 hours with no gaps
// or overlaps; the mapping itself lives in the analytics package.
const (
	PeriodMorning   = "Morning"    // 06:00–11:59
	PeriodMidday    = "Midday"     // 12:00–13:59
	PeriodAfternoon = "Afternoon"  // 14:00–17:59
	PeriodEvening   = "Evening"    // 18:00–21:59
	PeriodLateNight = "Late Night" // 22:00–05:59
)

// TimePeriods lists all bucket labels in chronological order.
var TimePeriods = []string{
	PeriodMorning,
	PeriodMidday,
	PeriodAfternoon,
	PeriodEvening,
	PeriodLateNight,
}

// VideoRecord is one row of the input dataset: the raw performance
// counters for a single published short video.
//
// Validation tags are enforced at load time by internal/validation.
// Views may legitimately be zero for a just-published video; derived
// ratios guard against division by zero rather than rejecting the row.
type VideoRecord struct {
	VideoID        string    `json:"video_id" validate:"required"`
	UploadTime     time.Time `json:"upload_time" validate:"required"`
	ContentType    string    `json:"content_type" validate:"required"`
	DurationSec    int       `json:"duration_sec" validate:"gt=0"`
	Views          int64     `json:"views" validate:"min=0"`
	Likes          int64     `json:"likes" validate:"min=0"`
	Comments       int64     `json:"comments" validate:"min=0"`
	Shares         int64     `json:"shares" validate:"min=0"`
	CompletionRate float64   `json:"completion_rate" validate:"min=0,max=1"`
	CreatorID      string    `json:"creator_id" validate:"required"`
}

// Interactions returns the total interaction count used by the
// engagement-rate formula.
func (v *VideoRecord) Interactions() int64 {
	return v.Likes + v.Comments + v.Shares
}

// DerivedRecord is a VideoRecord plus the computed per-record fields.
// Derived records are produced once per successful load and are
// immutable for the lifetime of that snapshot.
type DerivedRecord struct {
	VideoRecord

	// EngagementRate is (likes+comments+shares)/views*100, rounded to
	// two decimals. Zero when views is zero.
	EngagementRate float64 `json:"engagement_rate"`

	// IsHot is true when the record strictly exceeds both the
	// engagement-rate and views thresholds.
	IsHot bool `json:"is_hot"`

	// UploadHour is the local wall-clock hour [0,23] of UploadTime.
	UploadHour int `json:"upload_hour"`

	// TimePeriod is the bucket label derived from UploadHour.
	TimePeriod string `json:"time_period"`
}
