// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cinelens/cinelens/internal/logging"
	"github.com/cinelens/cinelens/internal/metrics"
	"github.com/cinelens/cinelens/internal/recommend/eval"
)

// GetEvaluation runs an offline evaluation against the serving model.
// @Summary Evaluate the model
// @Description Scores the serving model against its own catalog using tag-overlap relevance. Runs synchronously and is rate limited; large samples take correspondingly longer.
// @Tags Model
// @Produce json
// @Param k query int false "Recommendations per query" default(10)
// @Param sample query int false "Movies to query, 0 for the whole catalog" default(100)
// @Success 200 {object} APIResponse{data=eval.Report}
// @Failure 400 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /api/v1/evaluation [get]
func (h *Handler) GetEvaluation(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	start := time.Now()

	q := EvaluationQuery{
		K:      getIntParam(r, "k", h.cfg.Eval.K),
		Sample: getIntParam(r, "sample", h.cfg.Eval.Sample),
	}
	if apiErr := validateRequest(&q); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	m := h.currentModel(rw)
	if m == nil {
		return
	}

	evalCfg := h.cfg.Eval.EvaluatorConfig()
	evalCfg.K = q.K
	evalCfg.Sample = q.Sample

	// Bound the run by the server timeout so a huge sample cannot hold
	// the connection past what the deployment allows.
	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.Server.Timeout)
	defer cancel()

	report, err := eval.Evaluate(ctx, m, evalCfg)
	metrics.RecordEvaluation(time.Since(start), err)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			rw.ServiceUnavailable("Evaluation timed out, reduce sample or k")
			return
		}
		h.writeRecommendError(rw, r, err)
		return
	}

	metrics.SetEvaluationScores(map[string]float64{
		"precision": report.Precision,
		"recall":    report.Recall,
		"mrr":       report.MRR,
		"ndcg":      report.NDCG,
		"coverage":  report.Coverage,
		"diversity": report.Diversity,
	})

	logging.Ctx(r.Context()).Info().
		Int("queries", report.Queries).
		Int("k", report.K).
		Float64("precision", report.Precision).
		Float64("ndcg", report.NDCG).
		Dur("elapsed", report.Elapsed).
		Msg("Offline evaluation complete")

	rw.Success(report)
}
