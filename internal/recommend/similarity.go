// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package recommend

import (
	"math"
	"sync"
)

// SimilarityMatrix holds pairwise cosine similarity for every movie
// pair. Square, symmetric, diagonal fixed at 1.0. Values are in
// [0, 1] because feature vectors are non-negative counts.
type SimilarityMatrix [][]float64

// Size returns the number of movies.
func (sm SimilarityMatrix) Size() int {
	return len(sm)
}

// At returns the similarity between movies i and j.
func (sm SimilarityMatrix) At(i, j int) float64 {
	return sm[i][j]
}

// Row returns the similarity row for movie i. The returned slice is
// the matrix's own storage; callers must not modify it.
func (sm SimilarityMatrix) Row(i int) []float64 {
	return sm[i]
}

// ComputeSimilarity builds the full cosine similarity matrix for a
// feature matrix.
//
//	cos(i, j) = dot(i, j) / (‖i‖ * ‖j‖)
//
// The diagonal is 1.0 unconditionally, including for all-zero rows: a
// movie is always maximally similar to itself. Any pair involving an
// all-zero vector scores 0.0, never NaN.
//
// Each pair is computed exactly once, in the upper triangle, then
// mirrored, so sim[i][j] and sim[j][i] are the same float64. Work is
// spread over a bounded pool; each worker owns whole rows, so no cell
// is written twice and the result is independent of scheduling.
func ComputeSimilarity(fm FeatureMatrix, cfg *Config) SimilarityMatrix {
	n := len(fm)
	sim := make(SimilarityMatrix, n)
	for i := range sim {
		sim[i] = make([]float64, n)
		sim[i][i] = 1.0
	}
	if n < 2 {
		return sim
	}

	norms := make([]float64, n)
	nonzero := make([][]int, n)
	for i, row := range fm {
		var sum float64
		var idx []int
		for j, v := range row {
			if v != 0 {
				sum += v * v
				idx = append(idx, j)
			}
		}
		norms[i] = math.Sqrt(sum)
		nonzero[i] = idx
	}

	// Upper triangle only; row i costs n-1-i dot products, so rows are
	// interleaved across workers rather than chunked.
	workers := cfg.workers()
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(first int) {
			defer wg.Done()

			for i := first; i < n; i += workers {
				if norms[i] == 0 {
					continue
				}
				row := sim[i]
				cols := nonzero[i]
				for j := i + 1; j < n; j++ {
					if norms[j] == 0 {
						continue
					}
					other := fm[j]
					var dot float64
					for _, c := range cols {
						dot += fm[i][c] * other[c]
					}
					if dot != 0 {
						row[j] = dot / (norms[i] * norms[j])
					}
				}
			}
		}(w)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim[j][i] = sim[i][j]
		}
	}

	return sim
}
