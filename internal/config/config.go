// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package config

import (
	"time"

	"github.com/cinelens/cinelens/internal/recommend"
	"github.com/cinelens/cinelens/internal/recommend/eval"
)

// Config is the root configuration for every Cinelens command.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Dataset DatasetConfig `koanf:"dataset"`
	Model   ModelConfig   `koanf:"model"`
	Eval    EvalConfig    `koanf:"eval"`
	API     APIConfig     `koanf:"api"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development, staging, production
}

// DatasetConfig locates the catalog database and the raw CSV exports
// that `cinelens merge` consumes.
type DatasetConfig struct {
	// Path is the DuckDB catalog file.
	Path string `koanf:"path"`

	// MoviesCSV and CreditsCSV are the raw TMDB exports joined into
	// the catalog.
	MoviesCSV  string `koanf:"movies_csv"`
	CreditsCSV string `koanf:"credits_csv"`

	// MaxMemory caps DuckDB memory usage, e.g. "2GB" or "512MB".
	MaxMemory string `koanf:"max_memory"`

	// Threads bounds DuckDB worker threads. Zero means CPU count.
	Threads int `koanf:"threads"`
}

// ModelConfig holds the model build parameters plus the serving
// schedule.
type ModelConfig struct {
	MaxFeatures  int    `koanf:"max_features"`
	TopCast      int    `koanf:"top_cast"`
	DirectorJob  string `koanf:"director_job"`
	KeepNonAlpha bool   `koanf:"keep_non_alpha"`
	Workers      int    `koanf:"workers"`

	// RebuildInterval is how often the serving process reloads the
	// catalog and rebuilds the model. Zero disables periodic rebuilds.
	RebuildInterval time.Duration `koanf:"rebuild_interval"`

	// BuildTimeout bounds one load-and-build cycle end to end.
	BuildTimeout time.Duration `koanf:"build_timeout"`
}

// EvalConfig holds the offline evaluation parameters.
type EvalConfig struct {
	K             int   `koanf:"k"`
	Sample        int   `koanf:"sample"`
	MinCommonTags int   `koanf:"min_common_tags"`
	Seed          int64 `koanf:"seed"`
}

// APIConfig holds query limits and HTTP middleware settings.
type APIConfig struct {
	// DefaultK is the recommendation count when the caller omits k.
	DefaultK int `koanf:"default_k"`

	// MaxK caps the per-request recommendation count.
	MaxK int `koanf:"max_k"`

	// RateLimit is requests per window per client IP. Zero disables
	// rate limiting.
	RateLimit       int           `koanf:"rate_limit"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes the caller file and line in each entry.
	Caller bool `koanf:"caller"`
}

// defaultConfig returns a Config with every default applied. These are
// layered under the config file and environment overrides.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        1895, // year of the Lumières' first public screening
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Dataset: DatasetConfig{
			Path:       "data/cinelens.duckdb",
			MoviesCSV:  "data/raw/tmdb_5000_movies.csv",
			CreditsCSV: "data/raw/tmdb_5000_credits.csv",
			MaxMemory:  "2GB",
			Threads:    0, // 0 = use runtime.NumCPU()
		},
		Model: ModelConfig{
			MaxFeatures:     5000,
			TopCast:         3,
			DirectorJob:     "Director",
			KeepNonAlpha:    false,
			Workers:         0, // 0 = use runtime.GOMAXPROCS(0)
			RebuildInterval: 24 * time.Hour,
			BuildTimeout:    30 * time.Minute,
		},
		Eval: EvalConfig{
			K:             10,
			Sample:        100,
			MinCommonTags: 3,
			Seed:          42,
		},
		API: APIConfig{
			DefaultK:        5,
			MaxK:            50,
			RateLimit:       100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// BuildConfig converts the model section into core build parameters.
func (c ModelConfig) BuildConfig() *recommend.Config {
	return &recommend.Config{
		MaxFeatures:  c.MaxFeatures,
		TopCast:      c.TopCast,
		DirectorJob:  c.DirectorJob,
		KeepNonAlpha: c.KeepNonAlpha,
		Workers:      c.Workers,
	}
}

// EvaluatorConfig converts the eval section into evaluator parameters.
func (c EvalConfig) EvaluatorConfig() eval.Config {
	return eval.Config{
		K:             c.K,
		Sample:        c.Sample,
		MinCommonTags: c.MinCommonTags,
		Seed:          c.Seed,
	}
}
