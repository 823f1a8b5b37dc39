// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package api

import (
	"errors"
	"net/http"

	"github.com/cinelens/cinelens/internal/model"
)

// GetModel returns the serving model status.
// @Summary Model status
// @Description Returns whether a model is serving, its catalog and vocabulary sizes, and when it was last built.
// @Tags Model
// @Produce json
// @Success 200 {object} APIResponse{data=model.Status}
// @Router /api/v1/model [get]
func (h *Handler) GetModel(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.model.Status())
}

// RebuildModel starts a background model rebuild.
// @Summary Rebuild the model
// @Description Reloads the catalog and rebuilds the model in the background. Serving continues on the old model until the new one is ready. Returns 409 if a rebuild is already running.
// @Tags Model
// @Produce json
// @Success 202 {object} APIResponse
// @Failure 409 {object} APIResponse
// @Router /api/v1/model/rebuild [post]
func (h *Handler) RebuildModel(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if err := h.model.RebuildAsync(); err != nil {
		if errors.Is(err, model.ErrRebuildInProgress) {
			rw.Conflict("A model rebuild is already in progress")
			return
		}
		rw.InternalError("Failed to start model rebuild")
		return
	}

	rw.Accepted(map[string]string{"message": "Model rebuild started"})
}
