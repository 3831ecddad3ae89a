// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

// Package main is the entry point for the Clipdeck server.
//
// Clipdeck loads one CSV snapshot of short-video performance records,
// derives engagement metrics and serves the aggregate views a
// dashboard frontend renders: headline summary, content-type and
// time-period breakdowns, a composite-score leaderboard, the raw
// derived table and a CSV export.
//
// The server initializes in order:
//
//  1. Configuration: Koanf v2 layering defaults, config.yaml and
//     CLIPDECK_-prefixed environment variables
//  2. Logging: zerolog per the logging section of the config
//  3. Metrics engine: created Unloaded, then the initial snapshot load
//  4. HTTP server: Chi router with CORS, rate limiting, Prometheus
//     instrumentation and graceful shutdown on SIGINT/SIGTERM
//
// A failed initial load is non-fatal by default: the API serves 409s
// until POST /api/v1/dataset/reload succeeds. Set
// CLIPDECK_DATASET_REQUIRE_ON_START=true to make it fatal instead.
//
// Demo data:
//
//	./clipdeck -generate 50        # write a 50-record sample, then serve it
//	./clipdeck -generate 50 -seed 7
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/clipdeck/clipdeck/internal/analytics"
	"github.com/clipdeck/clipdeck/internal/api"
	"github.com/clipdeck/clipdeck/internal/config"
	"github.com/clipdeck/clipdeck/internal/dataset"
	"github.com/clipdeck/clipdeck/internal/logging"
)

func main() {
	generate := flag.Int("generate", 0, "generate a sample snapshot with N records at the configured dataset path before serving")
	seed := flag.Int64("seed", 1, "seed for -generate; the same seed always yields the same sample")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		// Default logger; config (and its logging section) is unavailable.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("dataset_path", cfg.Dataset.Path).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Clipdeck")

	if *generate > 0 {
		if err := dataset.GenerateSample(cfg.Dataset.Path, *generate, *seed); err != nil {
			logging.Fatal().Err(err).Msg("Failed to generate sample dataset")
		}
		logging.Info().Int("records", *generate).Int64("seed", *seed).
			Str("path", cfg.Dataset.Path).Msg("Sample dataset generated")
	}

	engine := analytics.NewEngine(cfg.Analytics)
	if err := engine.Load(cfg.Dataset.Path); err != nil {
		if cfg.Dataset.RequireOnStart {
			logging.Fatal().Err(err).Msg("Initial dataset load failed")
		}
		logging.Warn().Err(err).
			Msg("Initial dataset load failed; serving Unloaded until a reload succeeds")
	}

	router := api.NewRouter(engine, cfg)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
		return
	}

	logging.Info().Msg("Stopped gracefully")
}
