// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package recommend

import "runtime"

// Config contains all build parameters for the recommendation model.
type Config struct {
	// MaxFeatures caps the vocabulary size. The most frequent stemmed
	// tokens are kept, ties broken by first occurrence in the corpus.
	MaxFeatures int `json:"max_features"`

	// TopCast is how many leading cast names enter the tag blob.
	TopCast int `json:"top_cast"`

	// DirectorJob is the crew job string that marks a director credit.
	DirectorJob string `json:"director_job"`

	// KeepNonAlpha keeps tokens containing no letter (bare years, rating
	// codes). Default false: such tokens carry no content signal.
	KeepNonAlpha bool `json:"keep_non_alpha"`

	// Workers bounds the similarity build pool. Zero means GOMAXPROCS.
	Workers int `json:"workers"`
}

// DefaultConfig returns the standard build parameters. MaxFeatures 5000
// matches the vocabulary cap the catalog was tuned against.
func DefaultConfig() *Config {
	return &Config{
		MaxFeatures: 5000,
		TopCast:     3,
		DirectorJob: "Director",
		Workers:     0,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MaxFeatures < 1 {
		return newConfigErr("max_features", "must be positive, got %d", c.MaxFeatures)
	}
	if c.TopCast < 0 {
		return newConfigErr("top_cast", "must be non-negative, got %d", c.TopCast)
	}
	if c.DirectorJob == "" {
		return newConfigErr("director_job", "must not be empty")
	}
	if c.Workers < 0 {
		return newConfigErr("workers", "must be non-negative, got %d", c.Workers)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - all fields are value types
	cp := *c
	return &cp
}

// workers resolves the effective pool size.
func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
