// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package eval

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/cinelens/cinelens/internal/recommend"
)

// Config controls an offline evaluation run.
type Config struct {
	// K is how many recommendations each query requests.
	K int `json:"k"`

	// Sample is how many catalog movies to query. Zero or a value at
	// least the catalog size means every movie.
	Sample int `json:"sample"`

	// MinCommonTags is the shared-token threshold for binary
	// relevance.
	MinCommonTags int `json:"min_common_tags"`

	// Seed drives query sampling so repeated runs score the same
	// subset.
	Seed int64 `json:"seed"`
}

// DefaultConfig returns the standard evaluation parameters.
func DefaultConfig() Config {
	return Config{
		K:             10,
		Sample:        100,
		MinCommonTags: 3,
		Seed:          42,
	}
}

// Report is the aggregate outcome of one evaluation run. Ranking
// metrics are means over all queried movies.
type Report struct {
	Queries   int           `json:"queries"`
	K         int           `json:"k"`
	Precision float64       `json:"precision_at_k"`
	Recall    float64       `json:"recall_at_k"`
	MRR       float64       `json:"mrr"`
	NDCG      float64       `json:"ndcg_at_k"`
	Coverage  float64       `json:"catalog_coverage"`
	Diversity float64       `json:"intra_list_diversity"`
	Elapsed   time.Duration `json:"elapsed"`
}

// String renders the report as a compact one-line summary.
func (r *Report) String() string {
	return fmt.Sprintf(
		"queries=%d k=%d precision=%.4f recall=%.4f mrr=%.4f ndcg=%.4f coverage=%.4f diversity=%.4f elapsed=%s",
		r.Queries, r.K, r.Precision, r.Recall, r.MRR, r.NDCG, r.Coverage, r.Diversity, r.Elapsed,
	)
}

// Evaluate scores a model against its own catalog. Relevance is
// proxied by tag overlap: a candidate counts as relevant to a query
// when their blobs share at least MinCommonTags tokens, and NDCG
// grades candidates by Jaccard overlap. The model is read-only
// throughout; runs with the same seed score the same queries.
func Evaluate(ctx context.Context, model *recommend.Model, cfg Config) (*Report, error) {
	if model == nil {
		return nil, fmt.Errorf("evaluate: model is nil")
	}
	if cfg.K <= 0 {
		return nil, &recommend.ConfigurationError{Field: "k", Reason: fmt.Sprintf("must be positive, got %d", cfg.K)}
	}
	if cfg.Sample < 0 {
		return nil, &recommend.ConfigurationError{Field: "sample", Reason: fmt.Sprintf("must be non-negative, got %d", cfg.Sample)}
	}
	if cfg.MinCommonTags < 1 {
		return nil, &recommend.ConfigurationError{Field: "min_common_tags", Reason: fmt.Sprintf("must be positive, got %d", cfg.MinCommonTags)}
	}

	start := time.Now()
	n := model.Len()
	queries := sampleRows(n, cfg.Sample, cfg.Seed)

	tagSets := make([]map[string]struct{}, n)
	for i := 0; i < n; i++ {
		tagSets[i] = TagSet(model.TagBlobAt(i))
	}

	var (
		sumPrecision float64
		sumRecall    float64
		sumRR        float64
		sumNDCG      float64
		allRecs      = make([][]int, 0, len(queries))
	)

	sim := model.Similarity()

	for _, q := range queries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		recs, err := model.RecommendByRow(q, cfg.K)
		if err != nil {
			return nil, fmt.Errorf("evaluate row %d: %w", q, err)
		}

		indices := make([]int, len(recs))
		for i, r := range recs {
			indices[i] = r.Index
		}
		allRecs = append(allRecs, indices)

		relevant := make(map[int]struct{})
		for j := 0; j < n; j++ {
			if j == q {
				continue
			}
			if RelevantByTagOverlap(tagSets[q], tagSets[j], cfg.MinCommonTags) {
				relevant[j] = struct{}{}
			}
		}

		sumPrecision += PrecisionAtK(indices, relevant, cfg.K)
		sumRecall += RecallAtK(indices, relevant, cfg.K)
		sumRR += ReciprocalRank(indices, relevant)
		sumNDCG += NDCGAtK(indices, func(row int) float64 {
			return TagOverlapGrade(tagSets[q], tagSets[row])
		}, cfg.K)
	}

	count := float64(len(queries))
	report := &Report{
		Queries:   len(queries),
		K:         cfg.K,
		Coverage:  CatalogCoverage(allRecs, n),
		Diversity: AverageDiversity(sim, allRecs),
		Elapsed:   time.Since(start),
	}
	if count > 0 {
		report.Precision = sumPrecision / count
		report.Recall = sumRecall / count
		report.MRR = sumRR / count
		report.NDCG = sumNDCG / count
	}
	return report, nil
}

// sampleRows picks the catalog rows to query. A sample of zero or one
// covering the whole catalog returns every row in order; otherwise a
// seeded shuffle picks the subset, sorted back to catalog order.
func sampleRows(n, sample int, seed int64) []int {
	if sample <= 0 || sample >= n {
		rows := make([]int, n)
		for i := range rows {
			rows[i] = i
		}
		return rows
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)[:sample]

	rows := make([]int, sample)
	copy(rows, perm)
	sort.Ints(rows)
	return rows
}
