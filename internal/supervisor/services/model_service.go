// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ModelBuilder is the slice of the model manager this service drives.
// Keeping it an interface here avoids a circular import and lets tests
// substitute a double.
type ModelBuilder interface {
	// Rebuild loads the catalog and swaps in a freshly built model.
	Rebuild(ctx context.Context) error
}

// ModelServiceConfig holds configuration for the model service.
type ModelServiceConfig struct {
	// BuildOnStart triggers a build when the service starts.
	BuildOnStart bool

	// RebuildInterval is how often to reload the catalog and rebuild.
	// Zero or negative disables periodic rebuilds; the model then only
	// changes through the rebuild endpoint.
	RebuildInterval time.Duration
}

// ModelService wraps the model manager's rebuild loop for suture
// supervision. It owns the schedule; the manager owns the build.
type ModelService struct {
	builder ModelBuilder
	config  ModelServiceConfig
	logger  zerolog.Logger
	name    string
}

// NewModelService creates a new model service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewModelService(builder ModelBuilder, cfg ModelServiceConfig, logger zerolog.Logger) *ModelService {
	return &ModelService{
		builder: builder,
		config:  cfg,
		logger:  logger.With().Str("service", "model").Logger(),
		name:    "model-service",
	}
}

// Serve implements the suture.Service interface.
//
// A failed startup build is returned to the supervisor: without a first
// model the API can only answer 503, and suture's backoff retries far
// sooner than the rebuild ticker would. A failed scheduled rebuild is
// only logged; the manager keeps serving the previous model.
func (s *ModelService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("build_on_start", s.config.BuildOnStart).
		Dur("rebuild_interval", s.config.RebuildInterval).
		Msg("model service starting")

	if s.config.BuildOnStart {
		if err := s.rebuild(ctx); err != nil {
			return fmt.Errorf("startup model build failed: %w", err)
		}
	}

	if s.config.RebuildInterval <= 0 {
		s.logger.Info().Msg("periodic rebuilds disabled")
		<-ctx.Done()
		s.logger.Info().Msg("model service shutting down")
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.RebuildInterval)
	defer ticker.Stop()

	s.logger.Info().Msg("model service running")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("model service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.logger.Debug().Msg("scheduled rebuild triggered")
			if err := s.rebuild(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled rebuild failed, previous model stays live")
			}
		}
	}
}

// rebuild runs one build cycle. The manager bounds each cycle with its
// own build timeout.
func (s *ModelService) rebuild(ctx context.Context) error {
	start := time.Now()
	s.logger.Info().Msg("starting model rebuild")

	if err := s.builder.Rebuild(ctx); err != nil {
		return err
	}

	s.logger.Info().
		Dur("duration", time.Since(start)).
		Msg("model rebuild complete")

	return nil
}

// String returns the service name for logging.
func (s *ModelService) String() string {
	return s.name
}
