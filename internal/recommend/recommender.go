// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package recommend

import "sort"

// Recommend returns the k catalog movies most similar to the named
// one, best first. Title matching is case-insensitive and ignores
// surrounding whitespace; an unknown title returns NotFoundError.
//
// Ordering is score descending with ties broken by catalog order, so
// the same query on the same model always returns the same list. The
// queried movie itself is excluded. k is a soft cap: asking for more
// movies than exist returns everything else and no error. k <= 0 is a
// caller bug and returns ConfigurationError.
func (m *Model) Recommend(title string, k int) ([]Recommendation, error) {
	if k <= 0 {
		return nil, newConfigErr("k", "must be positive, got %d", k)
	}
	row, ok := m.Lookup(title)
	if !ok {
		return nil, &NotFoundError{Title: title}
	}
	return m.rankFrom(row, k), nil
}

// SimilarByID is Recommend keyed by catalog id instead of title.
func (m *Model) SimilarByID(id int64, k int) ([]Recommendation, error) {
	if k <= 0 {
		return nil, newConfigErr("k", "must be positive, got %d", k)
	}
	row, ok := m.LookupID(id)
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return m.rankFrom(row, k), nil
}

// RecommendByRow is Recommend keyed by catalog row. Unlike the title
// and id lookups it cannot be shadowed by duplicates, which makes it
// the right entry point for whole-catalog sweeps.
func (m *Model) RecommendByRow(row, k int) ([]Recommendation, error) {
	if k <= 0 {
		return nil, newConfigErr("k", "must be positive, got %d", k)
	}
	if row < 0 || row >= len(m.movies) {
		return nil, newConfigErr("row", "out of range [0, %d), got %d", len(m.movies), row)
	}
	return m.rankFrom(row, k), nil
}

// rankFrom orders every other catalog row by similarity to row and
// keeps the top k. The candidate list starts in catalog order and the
// sort is stable, which is what makes equal scores resolve to the
// earlier dataset row.
func (m *Model) rankFrom(row, k int) []Recommendation {
	scores := m.similarity[row]

	order := make([]int, 0, len(m.movies)-1)
	for i := range m.movies {
		if i != row {
			order = append(order, i)
		}
	}

	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if len(order) > k {
		order = order[:k]
	}

	recs := make([]Recommendation, len(order))
	for i, idx := range order {
		recs[i] = Recommendation{
			Index: idx,
			ID:    m.movies[idx].ID,
			Title: m.movies[idx].Title,
			Score: scores[idx],
		}
	}
	return recs
}
