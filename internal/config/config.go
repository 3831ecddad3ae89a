// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

// Package config holds application configuration loaded via Koanf v2.
//
// Configuration loading order (highest priority wins):
//  1. Built-in defaults (structs provider)
//  2. Optional YAML config file (config.yaml)
//  3. Environment variables with the CLIPDECK_ prefix
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
//	engine := analytics.NewEngine(cfg.Analytics)
//
// Config is immutable after Load() and safe for concurrent reads.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Dataset   DatasetConfig   `koanf:"dataset"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// DatasetConfig holds the input snapshot settings.
//
// Environment variables:
//   - CLIPDECK_DATASET_PATH: path to the CSV snapshot (default: data/sample_data.csv)
//   - CLIPDECK_DATASET_REQUIRE_ON_START: fail startup when the initial load fails (default: false)
type DatasetConfig struct {
	// Path is the CSV file the engine loads on startup and on reload.
	Path string `koanf:"path"`

	// RequireOnStart makes a failed initial load fatal. When false the
	// server starts Unloaded and serves 409s until a reload succeeds.
	RequireOnStart bool `koanf:"require_on_start"`
}

// AnalyticsConfig holds the business constants of the metrics engine.
// These are named configuration values rather than magic literals so
// tests can override them, but they are business rules: the defaults
// are the product definition of a "hot" video and the ranking blend.
type AnalyticsConfig struct {
	// HotEngagementRate is the engagement-rate threshold (percent) a
	// record must strictly exceed to count as hot.
	HotEngagementRate float64 `koanf:"hot_engagement_rate"`

	// HotViews is the view-count threshold a record must strictly
	// exceed to count as hot.
	HotViews int64 `koanf:"hot_views"`

	// Composite ranking weights. They blend engagement rate, views (in
	// thousands) and completion rate (as a percentage).
	EngagementWeight float64 `koanf:"engagement_weight"`
	ViewsWeight      float64 `koanf:"views_weight"`
	CompletionWeight float64 `koanf:"completion_weight"`

	// DefaultRankingLimit is the ranking size when the caller does not
	// ask for one; MaxRankingLimit caps what the API will accept.
	DefaultRankingLimit int `koanf:"default_ranking_limit"`
	MaxRankingLimit     int `koanf:"max_ranking_limit"`
}

// ServerConfig holds HTTP server settings.
//
// Environment variables:
//   - CLIPDECK_SERVER_HOST (default: 0.0.0.0)
//   - CLIPDECK_SERVER_PORT (default: 8490)
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig holds API surface settings: CORS, rate limiting and
// pagination bounds for the raw-data listing.
type APIConfig struct {
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins"`
	RateLimitRequests  int           `koanf:"rate_limit_requests"`
	RateLimitWindow    time.Duration `koanf:"rate_limit_window"`
	DefaultPageSize    int           `koanf:"default_page_size"`
	MaxPageSize        int           `koanf:"max_page_size"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for values that would misbehave at
// runtime. Called by Load() after all providers are merged.
func (c *Config) Validate() error {
	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset.path must not be empty")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1,65535], got %d", c.Server.Port)
	}
	if c.Analytics.HotEngagementRate < 0 {
		return fmt.Errorf("analytics.hot_engagement_rate must not be negative")
	}
	if c.Analytics.HotViews < 0 {
		return fmt.Errorf("analytics.hot_views must not be negative")
	}
	if c.Analytics.DefaultRankingLimit < 1 {
		return fmt.Errorf("analytics.default_ranking_limit must be at least 1")
	}
	if c.Analytics.MaxRankingLimit < c.Analytics.DefaultRankingLimit {
		return fmt.Errorf("analytics.max_ranking_limit (%d) must not be below default_ranking_limit (%d)",
			c.Analytics.MaxRankingLimit, c.Analytics.DefaultRankingLimit)
	}
	for _, w := range []float64{
		c.Analytics.EngagementWeight,
		c.Analytics.ViewsWeight,
		c.Analytics.CompletionWeight,
	} {
		if w < 0 {
			return fmt.Errorf("analytics ranking weights must not be negative")
		}
	}
	if c.API.RateLimitRequests < 1 {
		return fmt.Errorf("api.rate_limit_requests must be at least 1")
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must not be below default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	return nil
}
