// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

package models

import (
	"time"

	"github.com/google/uuid"
)

// SummaryMetrics represents the dataset-wide headline numbers shown at
// the top of the dashboard.
//
// When the dataset is empty every field is its zero value; rates are
// reported as 0 rather than NaN so the response stays JSON-safe.
type SummaryMetrics struct {
	TotalVideos       int     `json:"total_videos"`
	TotalViews        int64   `json:"total_views"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
	HotVideosCount    int     `json:"hot_videos_count"`
	HotVideosRate     float64 `json:"hot_videos_rate"`
}

// AggregateView represents one group of a grouped breakdown, keyed by
// content type or time period. Means and rates are rounded to two
// decimals. HotRate is guarded against empty groups and always falls
// in [0,100].
type AggregateView struct {
	Key               string  `json:"key"`
	VideoCount        int     `json:"video_count"`
	AvgViews          float64 `json:"avg_views"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
	HotVideos         int     `json:"hot_videos"`
	HotRate           float64 `json:"hot_rate"`
}

// RankedVideo is a DerivedRecord annotated with its composite ranking
// score. The score is a weighted blend of engagement rate, views and
// completion rate.
type RankedVideo struct {
	DerivedRecord

	CompositeScore float64 `json:"composite_score"`
}

// DatasetInfo describes the currently loaded snapshot. SnapshotID
// changes on every successful load so dashboard clients can detect
// staleness across reloads.
type DatasetInfo struct {
	SnapshotID  uuid.UUID `json:"snapshot_id"`
	Path        string    `json:"path"`
	RecordCount int       `json:"record_count"`
	LoadedAt    time.Time `json:"loaded_at"`
}

// HealthStatus represents the health check response.
type HealthStatus struct {
	Status        string       `json:"status"`
	Version       string       `json:"version"`
	DatasetLoaded bool         `json:"dataset_loaded"`
	Dataset       *DatasetInfo `json:"dataset,omitempty"`
	Uptime        float64      `json:"uptime_seconds"`
}
