// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where config files are searched, in order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/clipdeck/config.yaml",
	"/etc/clipdeck/config.yml",
}

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "CLIPDECK_CONFIG"

// envPrefix is the prefix for environment variable overrides, e.g.
// CLIPDECK_SERVER_PORT=9000 sets server.port.
const envPrefix = "CLIPDECK_"

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path:           "data/sample_data.csv",
			RequireOnStart: false,
		},
		Analytics: AnalyticsConfig{
			HotEngagementRate:   5.0,
			HotViews:            20000,
			EngagementWeight:    0.4,
			ViewsWeight:         0.3,
			CompletionWeight:    0.3,
			DefaultRankingLimit: 10,
			MaxRankingLimit:     100,
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8490,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		API: APIConfig{
			CORSAllowedOrigins: []string{},
			RateLimitRequests:  300,
			RateLimitWindow:    time.Minute,
			DefaultPageSize:    100,
			MaxPageSize:        1000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file
// and CLIPDECK_-prefixed environment variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// CLIPDECK_SERVER_PORT -> server.port
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// findConfigFile returns the first existing config file path, honoring
// the CLIPDECK_CONFIG override. Returns "" when no file is present;
// a file is optional, defaults plus env vars are a complete setup.
func findConfigFile() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		return path
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Default returns the built-in default configuration, primarily for
// tests that need a valid AnalyticsConfig without touching the
// environment.
func Default() *Config {
	return defaultConfig()
}
