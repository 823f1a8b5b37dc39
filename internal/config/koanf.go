// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths searched for a config file, in
// priority order. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinelens/config.yaml",
	"/etc/cinelens/config.yml",
}

// ConfigPathEnvVar overrides the config file search when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load builds the runtime configuration from layered sources with
// precedence ENV > YAML file > built-in defaults. A .env file in the
// working directory, if present, is read into the process environment
// first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	// Environment names map onto koanf paths, HTTP_PORT -> server.port;
	// unmapped variables stay out of the tree.
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first config file that exists, starting
// with the ConfigPathEnvVar override, or "" when there is none.
func findConfigFile() string {
	candidates := DefaultConfigPaths
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		candidates = append([]string{envPath}, candidates...)
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are the config paths that may arrive as
// comma-separated strings from the environment but unmarshal as slices.
var sliceConfigPaths = []string{
	"api.cors_origins",
}

// processSliceFields splits comma-separated string values into slices
// for the paths in sliceConfigPaths. Values that came from YAML are
// already slices and pass through untouched.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		raw, ok := k.Get(path).(string)
		if !ok || raw == "" {
			continue
		}

		var vals []string
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				vals = append(vals, p)
			}
		}
		if len(vals) == 0 {
			continue
		}
		if err := k.Set(path, vals); err != nil {
			return fmt.Errorf("set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings translates environment variable names (lowercased) to
// koanf config paths. Only listed variables reach the config tree.
var envMappings = map[string]string{
	"http_host":    "server.host",
	"http_port":    "server.port",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	"duckdb_path":       "dataset.path",
	"movies_csv":        "dataset.movies_csv",
	"credits_csv":       "dataset.credits_csv",
	"duckdb_max_memory": "dataset.max_memory",
	"duckdb_threads":    "dataset.threads",

	"model_max_features":     "model.max_features",
	"model_top_cast":         "model.top_cast",
	"model_director_job":     "model.director_job",
	"model_keep_non_alpha":   "model.keep_non_alpha",
	"model_workers":          "model.workers",
	"model_rebuild_interval": "model.rebuild_interval",
	"model_build_timeout":    "model.build_timeout",

	"eval_k":               "eval.k",
	"eval_sample":          "eval.sample",
	"eval_min_common_tags": "eval.min_common_tags",
	"eval_seed":            "eval.seed",

	"api_default_k":       "api.default_k",
	"api_max_k":           "api.max_k",
	"rate_limit_requests": "api.rate_limit",
	"rate_limit_window":   "api.rate_limit_window",
	"cors_origins":        "api.cors_origins",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc resolves one environment variable name to its koanf
// path, or "" to skip it.
//
//	HTTP_PORT          -> server.port
//	DUCKDB_PATH        -> dataset.path
//	MODEL_MAX_FEATURES -> model.max_features
//	LOG_LEVEL          -> logging.level
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
