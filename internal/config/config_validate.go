// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	validEnvironments = []string{"development", "staging", "production"}
	validLogLevels    = []string{"trace", "debug", "info", "warn", "error"}
	validLogFormats   = []string{"json", "console"}
)

// Validate checks that the loaded configuration is complete and within
// bounds. Error messages name the environment variable that controls
// each setting.
func (c *Config) Validate() error {
	checks := []func() error{
		c.validateServer,
		c.validateDataset,
		c.validateModel,
		c.validateEval,
		c.validateAPI,
		c.validateLogging,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// oneOf rejects values outside the allowed set, naming the variable
// and the full set in the error.
func oneOf(envVar, got string, allowed []string) error {
	if slices.Contains(allowed, got) {
		return nil
	}
	return fmt.Errorf("%s must be one of: %s", envVar, strings.Join(allowed, ", "))
}

// validateServer validates the HTTP listener configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New("HTTP_PORT must be a valid TCP port (1-65535)")
	}
	if c.Server.Timeout <= 0 {
		return errors.New("HTTP_TIMEOUT must be positive")
	}
	return oneOf("ENVIRONMENT", c.Server.Environment, validEnvironments)
}

// validateDataset validates the catalog and CSV locations
func (c *Config) validateDataset() error {
	if c.Dataset.Path == "" {
		return errors.New("DUCKDB_PATH is required")
	}
	if c.Dataset.Threads < 0 {
		return errors.New("DUCKDB_THREADS must be non-negative")
	}
	return nil
}

// validateModel validates the model build parameters
func (c *Config) validateModel() error {
	if c.Model.MaxFeatures < 1 {
		return errors.New("MODEL_MAX_FEATURES must be at least 1")
	}
	if c.Model.TopCast < 0 {
		return errors.New("MODEL_TOP_CAST must be non-negative")
	}
	if c.Model.DirectorJob == "" {
		return errors.New("MODEL_DIRECTOR_JOB is required")
	}
	if c.Model.Workers < 0 {
		return errors.New("MODEL_WORKERS must be non-negative")
	}
	if c.Model.RebuildInterval < 0 {
		return errors.New("MODEL_REBUILD_INTERVAL must be non-negative")
	}
	if c.Model.BuildTimeout <= 0 {
		return errors.New("MODEL_BUILD_TIMEOUT must be positive")
	}
	return nil
}

// validateEval validates the offline evaluation parameters
func (c *Config) validateEval() error {
	if c.Eval.K < 1 {
		return errors.New("EVAL_K must be at least 1")
	}
	if c.Eval.Sample < 0 {
		return errors.New("EVAL_SAMPLE must be non-negative")
	}
	if c.Eval.MinCommonTags < 1 {
		return errors.New("EVAL_MIN_COMMON_TAGS must be at least 1")
	}
	return nil
}

// validateAPI validates query limits and middleware settings
func (c *Config) validateAPI() error {
	if c.API.DefaultK < 1 {
		return errors.New("API_DEFAULT_K must be at least 1")
	}
	if c.API.MaxK < c.API.DefaultK {
		return errors.New("API_MAX_K must be at least API_DEFAULT_K")
	}
	if c.API.RateLimit < 0 {
		return errors.New("RATE_LIMIT_REQUESTS must be non-negative")
	}
	if c.API.RateLimit > 0 && c.API.RateLimitWindow <= 0 {
		return errors.New("RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
	}
	return nil
}

// validateLogging validates the log level and format. An empty format
// falls back to the environment default, so only non-empty values are
// checked against the known set.
func (c *Config) validateLogging() error {
	if err := oneOf("LOG_LEVEL", c.Logging.Level, validLogLevels); err != nil {
		return err
	}
	if c.Logging.Format == "" {
		return nil
	}
	return oneOf("LOG_FORMAT", c.Logging.Format, validLogFormats)
}
