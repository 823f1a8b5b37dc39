// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package api

import (
	"net/http"
	"time"

	"github.com/cinelens/cinelens/internal/logging"
)

// Health returns overall system health.
// @Summary Overall health snapshot
// @Description Returns database connectivity, model readiness, the serving model status and uptime. Reports degraded when either dependency is down but always answers 200.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	dbConnected := h.store != nil && h.store.Ping(r.Context()) == nil
	modelReady := h.model.Ready()

	status := "healthy"
	if !dbConnected || !modelReady {
		status = "degraded"
	}

	rw.Success(map[string]any{
		"status":             status,
		"database_connected": dbConnected,
		"model_ready":        modelReady,
		"model":              h.model.Status(),
		"uptime":             time.Since(h.startTime).Seconds(),
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
// @Summary Liveness probe
// @Description Returns 200 OK if the process is alive, regardless of external dependencies.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]any{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 200 OK only when the catalog is reachable and a model is
// serving, 503 otherwise.
// @Summary Readiness probe
// @Description Returns 200 OK only if the service can answer recommendation queries (catalog reachable and a model built). Returns 503 if not ready.
// @Tags Health
// @Produce json
// @Success 200 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	dbConnected := h.store != nil && h.store.Ping(r.Context()) == nil
	modelReady := h.model.Ready()
	ready := dbConnected && modelReady

	code := http.StatusOK
	if !ready {
		code = http.StatusServiceUnavailable
	}

	rw.writeJSON(code, &APIResponse{
		Success: ready,
		Data: map[string]any{
			"database_connected": dbConnected,
			"model_ready":        modelReady,
			"ready_to_serve":     ready,
			"uptime":             time.Since(h.startTime).Seconds(),
		},
		Meta: &APIMeta{
			Timestamp: time.Now(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
	})
}
