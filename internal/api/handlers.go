// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

// Package api provides the HTTP presentation boundary over the metrics
// engine: a JSON API a dashboard frontend consumes. No data flows back
// into the engine through this package other than reload requests.
package api

import (
	"net/http"
	"time"

	"github.com/clipdeck/clipdeck/internal/analytics"
	"github.com/clipdeck/clipdeck/internal/config"
	"github.com/clipdeck/clipdeck/internal/logging"
	"github.com/clipdeck/clipdeck/internal/models"
)

// Version is the application version reported by the health endpoint.
const Version = "1.2.0"

// Handler holds the dependencies of all HTTP handlers.
type Handler struct {
	engine    *analytics.Engine
	cfg       *config.Config
	startTime time.Time
}

// NewHandler creates a Handler serving views from the given engine.
func NewHandler(engine *analytics.Engine, cfg *config.Config) *Handler {
	return &Handler{
		engine:    engine,
		cfg:       cfg,
		startTime: time.Now(),
	}
}

// Health reports liveness and engine state. Always 200: an Unloaded
// engine is a degraded-but-alive condition surfaced in the payload.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatus{
		Status:        "ok",
		Version:       Version,
		DatasetLoaded: h.engine.Loaded(),
		Uptime:        time.Since(h.startTime).Seconds(),
	}

	if info, err := h.engine.Info(); err == nil {
		status.Dataset = info
	} else {
		status.Status = "degraded"
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     status,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// ReloadDataset re-runs the snapshot load from the configured path.
// A failed reload leaves the engine Unloaded per the engine contract,
// and reports 502 with the load failure.
func (h *Handler) ReloadDataset(w http.ResponseWriter, r *http.Request) {
	path := h.cfg.Dataset.Path

	if err := h.engine.Load(path); err != nil {
		respondError(w, http.StatusBadGateway, codeLoadFailed,
			"dataset reload failed; engine is unloaded until a load succeeds", err)
		return
	}

	info, err := h.engine.Info()
	if err != nil {
		// Unreachable after a successful load, but keep the guard.
		respondError(w, http.StatusInternalServerError, codeInternalError, "snapshot unavailable after load", err)
		return
	}

	logging.Info().Str("path", path).Int("records", info.RecordCount).Msg("Dataset reloaded via API")
	respondData(w, info.SnapshotID.String(), info.RecordCount, info)
}

// snapshot fetches the current snapshot or writes the NO_DATASET
// error. Callers must return immediately when ok is false.
func (h *Handler) snapshot(w http.ResponseWriter) (*analytics.Snapshot, bool) {
	snap, err := h.engine.Snapshot()
	if err != nil {
		respondError(w, http.StatusConflict, codeNoDataset,
			"no dataset loaded; POST /api/v1/dataset/reload after fixing the source", nil)
		return nil, false
	}
	return snap, true
}
