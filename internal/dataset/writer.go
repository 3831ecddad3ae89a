// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/clipdeck/clipdeck/internal/models"
)

// exportHeader is the raw input schema followed by the derived columns.
// The loader resolves columns by name, so a file written here loads
// back without modification (derived columns are simply recomputed).
var exportHeader = []string{
	"video_id",
	"upload_time",
	"content_type",
	"duration_sec",
	"views",
	"likes",
	"comments",
	"shares",
	"completion_rate",
	"creator_id",
	"engagement_rate",
	"is_hot",
	"upload_hour",
	"time_period",
}

// WriteDerived serializes the derived dataset to w in the flat CSV
// layout consumed by the loader, with the derived columns appended.
func WriteDerived(w io.Writer, records []models.DerivedRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := range records {
		r := &records[i]
		row := []string{
			r.VideoID,
			r.UploadTime.Format(models.UploadTimeLayout),
			r.ContentType,
			strconv.Itoa(r.DurationSec),
			strconv.FormatInt(r.Views, 10),
			strconv.FormatInt(r.Likes, 10),
			strconv.FormatInt(r.Comments, 10),
			strconv.FormatInt(r.Shares, 10),
			formatFloat(r.CompletionRate),
			r.CreatorID,
			formatFloat(r.EngagementRate),
			strconv.FormatBool(r.IsHot),
			strconv.Itoa(r.UploadHour),
			r.TimePeriod,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record %s: %w", r.VideoID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatFloat renders a float without trailing zero noise, matching
// the shortest representation that round-trips.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
