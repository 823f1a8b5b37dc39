// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package eval

import (
	"math"
	"sort"
	"strings"

	"github.com/cinelens/cinelens/internal/recommend"
)

// TagSet parses a tag blob into its set of tokens.
func TagSet(tags recommend.TagBlob) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(string(tags)) {
		set[strings.ToLower(tok)] = struct{}{}
	}
	return set
}

// overlap counts tokens present in both sets.
func overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			n++
		}
	}
	return n
}

// RelevantByTagOverlap reports whether two tag sets share at least
// minCommon tokens. This is the binary relevance proxy: without user
// feedback, "shares enough content tags" stands in for "a good
// recommendation".
func RelevantByTagOverlap(query, candidate map[string]struct{}, minCommon int) bool {
	return overlap(query, candidate) >= minCommon
}

// TagOverlapGrade is the Jaccard similarity of two tag sets, used as
// the graded relevance for NDCG. Empty sets grade 0.0.
func TagOverlapGrade(query, candidate map[string]struct{}) float64 {
	if len(query) == 0 || len(candidate) == 0 {
		return 0.0
	}
	inter := overlap(query, candidate)
	union := len(query) + len(candidate) - inter
	return float64(inter) / float64(union)
}

// PrecisionAtK is |recommended[:k] ∩ relevant| / k. A non-positive k
// means the full recommendation list.
func PrecisionAtK(recommended []int, relevant map[int]struct{}, k int) float64 {
	if k <= 0 {
		k = len(recommended)
	}
	if k == 0 {
		return 0.0
	}
	hits := hitsInPrefix(recommended, relevant, k)
	return float64(hits) / float64(k)
}

// RecallAtK is |recommended[:k] ∩ relevant| / |relevant|. An empty
// relevant set yields 0.0.
func RecallAtK(recommended []int, relevant map[int]struct{}, k int) float64 {
	if len(relevant) == 0 {
		return 0.0
	}
	if k <= 0 {
		k = len(recommended)
	}
	hits := hitsInPrefix(recommended, relevant, k)
	return float64(hits) / float64(len(relevant))
}

func hitsInPrefix(recommended []int, relevant map[int]struct{}, k int) int {
	if k > len(recommended) {
		k = len(recommended)
	}
	seen := make(map[int]struct{}, k)
	hits := 0
	for _, item := range recommended[:k] {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		if _, ok := relevant[item]; ok {
			hits++
		}
	}
	return hits
}

// ReciprocalRank is 1/rank of the first relevant item, 1-indexed, or
// 0.0 when nothing in the list is relevant.
func ReciprocalRank(recommended []int, relevant map[int]struct{}) float64 {
	for i, item := range recommended {
		if _, ok := relevant[item]; ok {
			return 1.0 / float64(i+1)
		}
	}
	return 0.0
}

// DCGAtK is the discounted cumulative gain of the first k grades:
// sum of grade_i / log2(i+2) with i zero-based.
func DCGAtK(grades []float64, k int) float64 {
	if k > len(grades) {
		k = len(grades)
	}
	dcg := 0.0
	for i := 0; i < k; i++ {
		dcg += grades[i] / math.Log2(float64(i)+2)
	}
	return dcg
}

// NDCGAtK is DCG over the first k recommendations normalized by the
// ideal DCG, where the ideal reorders the whole recommendation list
// by descending grade before truncating to k. grade maps a catalog
// row to its relevance. Returns 0.0 when the ideal gain is zero.
func NDCGAtK(recommended []int, grade func(int) float64, k int) float64 {
	if k <= 0 {
		k = len(recommended)
	}
	if len(recommended) == 0 || k == 0 {
		return 0.0
	}

	grades := make([]float64, len(recommended))
	for i, item := range recommended {
		grades[i] = grade(item)
	}

	ideal := make([]float64, len(grades))
	copy(ideal, grades)
	sort.Sort(sort.Reverse(sort.Float64Slice(ideal)))

	idcg := DCGAtK(ideal, k)
	if idcg <= 0 {
		return 0.0
	}
	return DCGAtK(grades, k) / idcg
}

// CatalogCoverage is the fraction of catalog rows that appear in at
// least one recommendation list.
func CatalogCoverage(allRecommendations [][]int, catalogSize int) float64 {
	if catalogSize == 0 {
		return 0.0
	}
	covered := make(map[int]struct{})
	for _, list := range allRecommendations {
		for _, item := range list {
			covered[item] = struct{}{}
		}
	}
	return float64(len(covered)) / float64(catalogSize)
}

// IntraListDiversity is the average pairwise (1 - similarity) within
// one recommendation list. Lists shorter than two items score 0.0.
func IntraListDiversity(sim recommend.SimilarityMatrix, indices []int) float64 {
	if len(indices) < 2 {
		return 0.0
	}
	total := 0.0
	count := 0
	for i := 0; i < len(indices); i++ {
		for j := i + 1; j < len(indices); j++ {
			total += 1.0 - sim.At(indices[i], indices[j])
			count++
		}
	}
	return total / float64(count)
}

// AverageDiversity is the mean intra-list diversity over every list
// with at least two items. No qualifying lists yields 0.0.
func AverageDiversity(sim recommend.SimilarityMatrix, allRecommendations [][]int) float64 {
	total := 0.0
	count := 0
	for _, list := range allRecommendations {
		if len(list) < 2 {
			continue
		}
		total += IntraListDiversity(sim, list)
		count++
	}
	if count == 0 {
		return 0.0
	}
	return total / float64(count)
}
