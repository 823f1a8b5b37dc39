// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

// Package reranking implements post-processing for recommendation
// diversity. Rerankers operate on an already-ranked candidate list
// and reorder it to balance relevance against other objectives; they
// never touch the model itself.
package reranking

import (
	"math"

	"github.com/cinelens/cinelens/internal/recommend"
)

// MMR implements Maximal Marginal Relevance reranking. It selects
// items one at a time, each time picking the candidate maximizing
//
//	lambda*score(i) - (1-lambda)*nearest(i)
//
// where score(i) is the candidate's cosine similarity to the query
// movie and nearest(i) is its highest similarity to anything already
// selected, read from the model's own similarity matrix. Lambda 1.0
// ranks purely by relevance, 0.0 purely by dissimilarity.
//
// After Carbonell and Goldstein, "The Use of MMR, Diversity-Based
// Reranking for Reordering Documents and Producing Summaries",
// SIGIR 1998.
type MMR struct {
	lambda float64
}

// DefaultLambda is the relevance weight used when a caller enables
// diversification without choosing one.
const DefaultLambda = 0.7

// NewMMR creates a new MMR reranker. Lambda is clamped to [0, 1].
func NewMMR(lambda float64) *MMR {
	return &MMR{lambda: min(1, max(0, lambda))}
}

// Name returns the reranker identifier.
func (m *MMR) Name() string {
	return "mmr"
}

// Lambda returns the configured relevance weight.
func (m *MMR) Lambda() float64 {
	return m.lambda
}

// Rerank picks k items from a ranked candidate pool. Candidates must
// come from the same model as sim, since their Index fields are used
// as matrix coordinates. The input slice is not modified.
//
// Callers that want k diversified results should pass a pool larger
// than k (Recommend with a bigger cap); reranking a pool of exactly k
// can only reorder, not substitute.
func (m *MMR) Rerank(items []recommend.Recommendation, sim recommend.SimilarityMatrix, k int) []recommend.Recommendation {
	if len(items) == 0 || k <= 0 {
		return items
	}
	k = min(k, len(items))

	// Pure relevance keeps the incoming order.
	if m.lambda >= 1.0 {
		out := make([]recommend.Recommendation, k)
		copy(out, items[:k])
		return out
	}

	selected := make([]recommend.Recommendation, 0, k)
	chosen := make(map[int]struct{}, k)

	for len(selected) < k {
		best, bestScore := -1, math.Inf(-1)

		for i, cand := range items {
			if _, taken := chosen[i]; taken {
				continue
			}

			nearest := 0.0
			for _, s := range selected {
				if v := sim.At(cand.Index, s.Index); v > nearest {
					nearest = v
				}
			}

			if score := m.lambda*cand.Score - (1-m.lambda)*nearest; score > bestScore {
				best, bestScore = i, score
			}
		}

		if best < 0 {
			break
		}
		selected = append(selected, items[best])
		chosen[best] = struct{}{}
	}

	return selected
}
