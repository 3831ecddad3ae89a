// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/clipdeck/clipdeck/internal/dataset"
	"github.com/clipdeck/clipdeck/internal/logging"
)

// AnalyticsSummary serves the dataset-wide headline metrics.
func (h *Handler) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	summary := h.engine.Summarize(snap.Records)
	respondData(w, snap.ID.String(), summary.TotalVideos, summary)
}

// AnalyticsContentTypes serves the per-content-type breakdown, sorted
// descending by average engagement rate.
func (h *Handler) AnalyticsContentTypes(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	groups := h.engine.GroupByContentType(snap.Records)
	respondData(w, snap.ID.String(), len(groups), groups)
}

// AnalyticsTimePeriods serves the per-time-period breakdown, sorted
// descending by average engagement rate.
func (h *Handler) AnalyticsTimePeriods(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	groups := h.engine.GroupByTimePeriod(snap.Records)
	respondData(w, snap.ID.String(), len(groups), groups)
}

// rankingRequest bounds the ranking size requested by the client.
type rankingRequest struct {
	Limit int `validate:"min=1,max=100"`
}

// AnalyticsRanking serves the top-N leaderboard by composite score.
// limit defaults to the configured ranking size and is capped by the
// configured maximum.
func (h *Handler) AnalyticsRanking(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	req := rankingRequest{
		Limit: getIntParam(r, "limit", h.cfg.Analytics.DefaultRankingLimit),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if req.Limit > h.cfg.Analytics.MaxRankingLimit {
		req.Limit = h.cfg.Analytics.MaxRankingLimit
	}

	top := h.engine.Rank(snap.Records, req.Limit)
	respondData(w, snap.ID.String(), len(top), top)
}

// videosRequest bounds the pagination of the raw-data listing.
type videosRequest struct {
	Limit  int `validate:"min=1,max=1000"`
	Offset int `validate:"min=0"`
}

// Videos serves the full derived dataset with limit/offset pagination,
// the detailed-data view behind the dashboard's raw table.
func (h *Handler) Videos(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	req := videosRequest{
		Limit:  getIntParam(r, "limit", h.cfg.API.DefaultPageSize),
		Offset: getIntParam(r, "offset", 0),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}
	if req.Limit > h.cfg.API.MaxPageSize {
		req.Limit = h.cfg.API.MaxPageSize
	}

	records := snap.Records
	if req.Offset >= len(records) {
		records = records[:0]
	} else {
		records = records[req.Offset:]
	}
	if req.Limit < len(records) {
		records = records[:req.Limit]
	}

	respondData(w, snap.ID.String(), len(records), records)
}

// Export streams the derived dataset as a CSV download in the same
// flat layout the loader consumes, derived columns appended.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	filename := fmt.Sprintf("video_analytics_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := dataset.WriteDerived(w, snap.Records); err != nil {
		// Headers are already out; log instead of switching to JSON.
		logging.Error().Err(err).Msg("CSV export failed mid-stream")
	}
}
