// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package main

import (
	"context"
	"errors"

	"github.com/cinelens/cinelens/internal/config"
	"github.com/cinelens/cinelens/internal/dataset"
	"github.com/cinelens/cinelens/internal/logging"
	"github.com/cinelens/cinelens/internal/recommend"
)

// mustLoadConfig loads the layered configuration or exits. One-shot
// commands keep stderr quiet: results go to stdout, and the logging
// layers only speak up for warnings and errors.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading configuration: %v", err)
	}

	logging.Init(logging.Config{Level: "warn", Format: "console"})
	return cfg
}

// mustOpenStore opens the DuckDB catalog or exits.
func mustOpenStore(cfg *config.Config) *dataset.Store {
	store, err := dataset.Open(&cfg.Dataset)
	if err != nil {
		exitWithError(ExitDataError, "opening catalog %s: %v", cfg.Dataset.Path, err)
	}
	return store
}

// mustBuildModel loads the catalog and builds a model or exits. The
// build is bounded by the configured build timeout.
func mustBuildModel(ctx context.Context, cfg *config.Config, store *dataset.Store) *recommend.Model {
	if cfg.Model.BuildTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Model.BuildTimeout)
		defer cancel()
	}

	count, err := store.Count(ctx)
	if err != nil {
		exitWithError(ExitDataError, "counting catalog rows: %v", err)
	}
	if count == 0 {
		exitWithError(ExitDataError, "Catalog %s is empty\n\nRun 'cinelens merge' to import the raw CSV files first.", cfg.Dataset.Path)
	}

	movies, err := store.LoadMovies(ctx)
	if err != nil {
		exitWithError(ExitDataError, "loading catalog: %v", err)
	}

	m, err := recommend.BuildModel(ctx, movies, cfg.Model.BuildConfig())
	if err != nil {
		exitWithError(ExitError, "building model: %v", err)
	}
	return m
}

// exitOnQueryError maps a recommendation query failure to an exit code.
func exitOnQueryError(err error) {
	var notFound *recommend.NotFoundError
	if errors.As(err, &notFound) {
		exitWithError(ExitNotFound, "%v", err)
	}
	exitWithError(ExitError, "%v", err)
}
