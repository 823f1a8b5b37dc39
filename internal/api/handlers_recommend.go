// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cinelens/cinelens/internal/metrics"
	"github.com/cinelens/cinelens/internal/recommend/reranking"
)

// diversifyPoolFactor sizes the candidate pool fetched ahead of MMR
// reranking. A pool of exactly k can only be reordered, so the fetch
// must overshoot for reranking to substitute items.
const diversifyPoolFactor = 3

// poolSize returns how many candidates to request from the model for
// a final result count of k.
func poolSize(k int, diversify bool) int {
	if !diversify {
		return k
	}
	return k * diversifyPoolFactor
}

// GetRecommendations returns movies similar to a queried title.
// @Summary Recommend movies by title
// @Description Returns the k movies most similar to the queried title, ranked by cosine similarity over tag vectors. Title matching is case-insensitive. Set diversify=true to rerank the result with MMR.
// @Tags Recommendations
// @Produce json
// @Param title query string true "Movie title (case-insensitive)"
// @Param k query int false "Number of results" default(5)
// @Param diversify query bool false "Rerank for diversity with MMR"
// @Param lambda query number false "MMR relevance weight in [0,1]" default(0.7)
// @Success 200 {object} APIResponse{data=[]recommend.Recommendation}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /api/v1/recommendations [get]
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	start := time.Now()

	q := RecommendQuery{
		Title:     strings.TrimSpace(r.URL.Query().Get("title")),
		K:         getIntParam(r, "k", h.cfg.API.DefaultK),
		Diversify: getBoolParam(r, "diversify", false),
		Lambda:    getFloatParam(r, "lambda", reranking.DefaultLambda),
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		metrics.RecordRecommendation("title", "invalid", time.Since(start), 0)
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	m := h.currentModel(rw)
	if m == nil {
		return
	}

	k := h.capK(q.K)
	recs, err := m.Recommend(q.Title, poolSize(k, q.Diversify))
	if err != nil {
		result := h.writeRecommendError(rw, r, err)
		metrics.RecordRecommendation("title", result, time.Since(start), 0)
		return
	}
	if q.Diversify {
		recs = reranking.NewMMR(q.Lambda).Rerank(recs, m.Similarity(), k)
	}

	metrics.RecordRecommendation("title", "hit", time.Since(start), len(recs))
	rw.Success(recs)
}

// GetSimilar returns movies similar to a catalog id.
// @Summary Recommend movies by catalog id
// @Description Returns the k movies most similar to the movie with the given catalog id. Set diversify=true to rerank the result with MMR.
// @Tags Recommendations
// @Produce json
// @Param id path int true "Movie catalog id"
// @Param k query int false "Number of results" default(5)
// @Param diversify query bool false "Rerank for diversity with MMR"
// @Param lambda query number false "MMR relevance weight in [0,1]" default(0.7)
// @Success 200 {object} APIResponse{data=[]recommend.Recommendation}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /api/v1/recommendations/similar/{id} [get]
func (h *Handler) GetSimilar(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	start := time.Now()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		metrics.RecordRecommendation("id", "invalid", time.Since(start), 0)
		rw.BadRequest("Movie id must be an integer")
		return
	}

	q := SimilarQuery{
		ID:        id,
		K:         getIntParam(r, "k", h.cfg.API.DefaultK),
		Diversify: getBoolParam(r, "diversify", false),
		Lambda:    getFloatParam(r, "lambda", reranking.DefaultLambda),
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		metrics.RecordRecommendation("id", "invalid", time.Since(start), 0)
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	m := h.currentModel(rw)
	if m == nil {
		return
	}

	k := h.capK(q.K)
	recs, err := m.SimilarByID(q.ID, poolSize(k, q.Diversify))
	if err != nil {
		result := h.writeRecommendError(rw, r, err)
		metrics.RecordRecommendation("id", result, time.Since(start), 0)
		return
	}
	if q.Diversify {
		recs = reranking.NewMMR(q.Lambda).Rerank(recs, m.Similarity(), k)
	}

	metrics.RecordRecommendation("id", "hit", time.Since(start), len(recs))
	rw.Success(recs)
}
