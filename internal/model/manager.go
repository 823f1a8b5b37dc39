// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

// Package model owns the serving lifecycle of the recommendation model.
//
// A Manager loads the catalog, builds an immutable recommend.Model and
// swaps it in for request serving. Rebuilds are serialized: at most one
// load-and-build cycle runs at a time, and readers keep the previous
// model until the new one is ready, so a failed rebuild never degrades
// serving.
package model

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cinelens/cinelens/internal/config"
	"github.com/cinelens/cinelens/internal/logging"
	"github.com/cinelens/cinelens/internal/metrics"
	"github.com/cinelens/cinelens/internal/recommend"
)

// CatalogStore is the slice of the catalog layer the manager needs.
// Implemented by dataset.Store.
type CatalogStore interface {
	LoadMovies(ctx context.Context) ([]recommend.Movie, error)
}

var (
	// ErrNotReady is returned before the first successful build.
	ErrNotReady = errors.New("model not built yet")

	// ErrRebuildInProgress is returned when a rebuild cycle is already
	// running and the caller asked not to queue behind it.
	ErrRebuildInProgress = errors.New("model rebuild already in progress")
)

// Status describes the serving model for status and health endpoints.
type Status struct {
	Ready           bool      `json:"ready"`
	Rebuilding      bool      `json:"rebuilding"`
	Movies          int       `json:"movies"`
	VocabularySize  int       `json:"vocabulary_size"`
	MaxFeatures     int       `json:"max_features"`
	Builds          int64     `json:"builds"`
	BuiltAt         time.Time `json:"built_at,omitzero"`
	BuildDurationMS int64     `json:"build_duration_ms"`
}

// Manager coordinates model builds and hands out the current model.
// It is safe for concurrent use.
type Manager struct {
	store CatalogStore
	cfg   *config.ModelConfig

	mu         sync.RWMutex // Protects model, builds and rebuilding
	model      *recommend.Model
	builds     int64
	rebuilding bool

	rebuildMu sync.Mutex // Serializes rebuild execution
}

// NewManager creates a model manager over the given catalog store.
// No model is built until the first Rebuild call.
func NewManager(store CatalogStore, cfg *config.ModelConfig) *Manager {
	logging.Info().
		Int("max_features", cfg.MaxFeatures).
		Int("top_cast", cfg.TopCast).
		Int("workers", cfg.Workers).
		Dur("rebuild_interval", cfg.RebuildInterval).
		Dur("build_timeout", cfg.BuildTimeout).
		Msg("Model manager config loaded")

	return &Manager{
		store: store,
		cfg:   cfg,
	}
}

// Rebuild loads the catalog and builds a fresh model, replacing the
// serving one on success. Rebuilds are serialized; a second caller
// blocks until the running cycle finishes, then runs its own.
func (m *Manager) Rebuild(ctx context.Context) error {
	m.rebuildMu.Lock()
	defer m.rebuildMu.Unlock()

	return m.rebuild(ctx)
}

// RebuildAsync starts a rebuild in the background and returns
// immediately. It reports ErrRebuildInProgress when a cycle is already
// running, so callers can surface a conflict instead of queueing
// duplicate builds.
func (m *Manager) RebuildAsync() error {
	if !m.rebuildMu.TryLock() {
		return ErrRebuildInProgress
	}

	go func() {
		defer m.rebuildMu.Unlock()

		// Background rebuilds trace like requests.
		ctx := logging.ContextWithNewRequestID(context.Background())
		if err := m.rebuild(ctx); err != nil {
			logging.Ctx(ctx).Error().Err(err).Msg("Background model rebuild failed")
		}
	}()

	return nil
}

// rebuild runs one load-and-build cycle. Callers must hold rebuildMu.
func (m *Manager) rebuild(ctx context.Context) error {
	if m.cfg.BuildTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.cfg.BuildTimeout)
		defer cancel()
	}

	m.setRebuilding(true)
	defer m.setRebuilding(false)

	start := time.Now()
	logging.Ctx(ctx).Info().Msg("Rebuilding recommendation model")

	movies, err := m.store.LoadMovies(ctx)
	if err != nil {
		metrics.RecordModelBuild(time.Since(start), 0, 0, err)
		return fmt.Errorf("load catalog: %w", err)
	}

	built, err := recommend.BuildModel(ctx, movies, m.cfg.BuildConfig())
	if err != nil {
		metrics.RecordModelBuild(time.Since(start), len(movies), 0, err)
		return fmt.Errorf("build model: %w", err)
	}

	info := built.Info()
	metrics.RecordModelBuild(time.Since(start), info.Movies, info.VocabularySize, nil)

	m.mu.Lock()
	m.model = built
	m.builds++
	m.mu.Unlock()

	logging.Ctx(ctx).Info().
		Int("movies", info.Movies).
		Int("vocabulary_size", info.VocabularySize).
		Dur("duration", time.Since(start)).
		Msg("Model build complete")

	return nil
}

func (m *Manager) setRebuilding(v bool) {
	m.mu.Lock()
	m.rebuilding = v
	m.mu.Unlock()
}

// Current returns the serving model, or ErrNotReady before the first
// successful build. The returned model is immutable and remains valid
// after later rebuilds swap in a newer one.
func (m *Manager) Current() (*recommend.Model, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.model == nil {
		return nil, ErrNotReady
	}
	return m.model, nil
}

// Ready reports whether a model is available for serving.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.model != nil
}

// Status reports the serving model state.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Status{
		Ready:      m.model != nil,
		Rebuilding: m.rebuilding,
		Builds:     m.builds,
	}
	if m.model != nil {
		info := m.model.Info()
		s.Movies = info.Movies
		s.VocabularySize = info.VocabularySize
		s.MaxFeatures = info.MaxFeatures
		s.BuiltAt = info.BuiltAt
		s.BuildDurationMS = info.BuildDuration.Milliseconds()
	}
	return s
}
