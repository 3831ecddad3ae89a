// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

package models

import (
	"time"
)

// APIResponse represents the standardized response envelope used by all
// JSON endpoints.
//
// Status field values:
//   - "success": request completed, see Data
//   - "error": request failed, see Error
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"total_videos": 50, ...},
//	  "metadata": {"timestamp": "2026-08-25T12:00:00Z", "snapshot_id": "..."}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability. SnapshotID
// identifies the dataset snapshot the response was computed from so
// clients can correlate views rendered across several requests.
type Metadata struct {
	Timestamp  time.Time `json:"timestamp"`
	SnapshotID string    `json:"snapshot_id,omitempty"`
	Count      int       `json:"count,omitempty"`
}

// APIError represents an error response with a machine-readable code.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
