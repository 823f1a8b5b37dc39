// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/cinelens/cinelens/internal/config"
	"github.com/cinelens/cinelens/internal/dataset"
	"github.com/cinelens/cinelens/internal/logging"
	"github.com/cinelens/cinelens/internal/model"
	"github.com/cinelens/cinelens/internal/recommend"
)

// Handler contains the HTTP handlers for the API.
type Handler struct {
	store     *dataset.Store
	model     *model.Manager
	cfg       *config.Config
	startTime time.Time
}

// NewHandler creates a new API handler.
func NewHandler(store *dataset.Store, modelMgr *model.Manager, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		model:     modelMgr,
		cfg:       cfg,
		startTime: time.Now(),
	}
}

// currentModel fetches the serving model or writes a 503 when no build
// has completed yet. Returns nil after writing the error.
func (h *Handler) currentModel(rw *ResponseWriter) *recommend.Model {
	m, err := h.model.Current()
	if err != nil {
		rw.ServiceUnavailable("Model not built yet, retry after the first build completes")
		return nil
	}
	return m
}

// writeRecommendError maps recommendation engine errors onto API
// responses and returns the outcome label for RecordRecommendation.
func (h *Handler) writeRecommendError(rw *ResponseWriter, r *http.Request, err error) string {
	var notFound *recommend.NotFoundError
	if errors.As(err, &notFound) {
		// The queried title is user input, so sanitize before logging.
		logging.Ctx(r.Context()).Debug().
			Str("query", sanitizeLogValue(notFound.Error())).
			Msg("Recommendation lookup miss")
		rw.NotFound(notFound.Error())
		return "miss"
	}

	var confErr *recommend.ConfigurationError
	if errors.As(err, &confErr) {
		rw.BadRequest(confErr.Error())
		return "invalid"
	}

	logging.Ctx(r.Context()).Error().
		Err(err).
		Str("path", r.URL.Path).
		Msg("Recommendation request failed")
	rw.InternalError("Failed to compute recommendations")
	return "invalid"
}

// capK applies the configured MaxK ceiling to a requested result
// count. Large requests are clamped, not rejected, matching the soft
// cap the engine applies when k exceeds the catalog.
func (h *Handler) capK(k int) int {
	if h.cfg.API.MaxK > 0 && k > h.cfg.API.MaxK {
		return h.cfg.API.MaxK
	}
	return k
}
