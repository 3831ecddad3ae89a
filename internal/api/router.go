// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clipdeck/clipdeck/internal/analytics"
	"github.com/clipdeck/clipdeck/internal/config"
	"github.com/clipdeck/clipdeck/internal/middleware"
)

// Router wires handlers and middleware into the HTTP surface.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates a Router for the given engine and configuration.
func NewRouter(engine *analytics.Engine, cfg *config.Config) *Router {
	return &Router{
		handler: NewHandler(engine, cfg),
		middleware: NewMiddleware(MiddlewareConfig{
			CORSAllowedOrigins: cfg.API.CORSAllowedOrigins,
			RateLimitRequests:  cfg.API.RateLimitRequests,
			RateLimitWindow:    cfg.API.RateLimitWindow,
		}),
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler shape.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Setup configures all HTTP routes using the Chi router.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.middleware.CORS())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(SecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/health", router.handler.Health)
		r.Post("/dataset/reload", router.handler.ReloadDataset)

		r.Get("/videos", router.handler.Videos)
		r.Get("/export", router.handler.Export)

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/summary", router.handler.AnalyticsSummary)
			r.Get("/content-types", router.handler.AnalyticsContentTypes)
			r.Get("/time-periods", router.handler.AnalyticsTimePeriods)
			r.Get("/ranking", router.handler.AnalyticsRanking)
		})
	})

	// Prometheus scrape endpoint, outside the rate-limited API tree.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
