// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	_ "github.com/cinelens/cinelens/docs" // Import generated swagger docs
	"github.com/cinelens/cinelens/internal/api"
	"github.com/cinelens/cinelens/internal/config"
	"github.com/cinelens/cinelens/internal/dataset"
	"github.com/cinelens/cinelens/internal/logging"
	"github.com/cinelens/cinelens/internal/metrics"
	"github.com/cinelens/cinelens/internal/model"
	"github.com/cinelens/cinelens/internal/supervisor"
	"github.com/cinelens/cinelens/internal/supervisor/services"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the supervised HTTP API server",
	Long: `Run the recommendation API under a supervisor tree.

The server opens the DuckDB catalog, builds the model in a supervised
background service and answers recommendation queries over HTTP. A
crashing rebuild never takes down serving: the API keeps answering
from the last good model while the model layer backs off and retries.

An empty catalog is bootstrapped from the raw CSV exports when they
are present; otherwise the server comes up empty, answers 503 on
query endpoints and can be filled later with 'cinelens merge' plus
POST /api/v1/model/rebuild.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// Config comes first, it carries the logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Cannot load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Str("version", Version).Msg("Starting Cinelens with supervisor tree")
	logging.Info().
		Str("db_path", cfg.Dataset.Path).
		Str("movies_csv", cfg.Dataset.MoviesCSV).
		Str("credits_csv", cfg.Dataset.CreditsCSV).
		Int("max_features", cfg.Model.MaxFeatures).
		Msg("Configuration loaded")

	metrics.AppInfo.WithLabelValues(Version, runtime.Version()).Set(1)

	store, err := dataset.Open(&cfg.Dataset)
	if err != nil {
		logging.Fatal().Err(err).Msg("Cannot open catalog")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing catalog")
		}
	}()
	logging.Info().Msg("Catalog opened")

	bootstrapCatalog(store, cfg)

	// The signal context drives the whole shutdown path: canceling it
	// asks the supervisor tree to stop every service.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// sutureslog speaks slog, so supervision events go through the
	// zerolog-backed slog adapter.
	tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Cannot create supervisor tree")
	}

	// No model is built here, the supervised model service runs the
	// first build so a crashing build stays inside the tree.
	mgr := model.NewManager(store, &cfg.Model)

	router := api.NewRouter(store, mgr, cfg)
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree.AddModelService(services.NewModelService(mgr, services.ModelServiceConfig{
		BuildOnStart:    true,
		RebuildInterval: cfg.Model.RebuildInterval,
	}, logging.WithComponent("model-service")))
	logging.Info().
		Dur("rebuild_interval", cfg.Model.RebuildInterval).
		Msg("Model service registered")

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service registered")

	logging.Info().Msg("Supervisor tree starting")
	awaitTree(ctx, tree, tree.ServeBackground(ctx))

	logging.Info().Msg("Shutdown complete")
	return nil
}

// awaitTree blocks until the supervisor tree has wound down, logging
// terminal errors and any services that missed the shutdown timeout.
func awaitTree(ctx context.Context, tree *supervisor.Tree, errCh <-chan error) {
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, stopping services")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree failed")
		}
	}

	// The channel closes once the tree has fully stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Error during supervisor shutdown")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service did not stop within the shutdown timeout")
	}
}

// bootstrapCatalog merges the raw CSV exports into an empty catalog so
// a fresh install serves recommendations without a manual merge step.
// A missing export is not fatal: the server comes up empty and can be
// filled by a later merge plus rebuild.
func bootstrapCatalog(store *dataset.Store, cfg *config.Config) {
	ctx := context.Background()
	if cfg.Model.BuildTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Model.BuildTimeout)
		defer cancel()
	}

	count, err := store.Count(ctx)
	if err != nil {
		logging.Warn().Err(err).Msg("Failed to count catalog rows, skipping bootstrap")
		return
	}
	if count > 0 {
		logging.Info().Int64("movies", count).Msg("Catalog already populated")
		return
	}

	if _, err := os.Stat(cfg.Dataset.MoviesCSV); err != nil {
		logging.Info().
			Str("movies_csv", cfg.Dataset.MoviesCSV).
			Msg("Catalog empty and raw exports not found, starting without data")
		return
	}

	logging.Info().Msg("Catalog empty, merging raw CSV exports")
	if err := store.Merge(ctx); err != nil {
		logging.Warn().Err(err).Msg("Bootstrap merge failed, starting with empty catalog")
	}
}
