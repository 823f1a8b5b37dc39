// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package recommend

import (
	"errors"
	"reflect"
	"testing"
)

func TestRecommend_ThreeMovieScenario(t *testing.T) {
	model := mustBuild(t, testCatalog(), nil)

	recs, err := model.Recommend("A", 2)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len(recs) = %d, want 2", len(recs))
	}

	// B shares the action tag with A, C shares nothing.
	if recs[0].Title != "B" {
		t.Errorf("recs[0].Title = %q, want %q", recs[0].Title, "B")
	}
	if recs[1].Title != "C" {
		t.Errorf("recs[1].Title = %q, want %q", recs[1].Title, "C")
	}
	if recs[0].Score <= recs[1].Score {
		t.Errorf("scores not descending: %v then %v", recs[0].Score, recs[1].Score)
	}
	if recs[0].Score != 1.0 {
		t.Errorf("recs[0].Score = %v, want 1.0", recs[0].Score)
	}
	if recs[1].Score != 0.0 {
		t.Errorf("recs[1].Score = %v, want 0.0", recs[1].Score)
	}
}

func TestRecommend_ExcludesSelf(t *testing.T) {
	model := mustBuild(t, testCatalog(), nil)

	for _, m := range model.Movies() {
		recs, err := model.Recommend(m.Title, model.Len())
		if err != nil {
			t.Fatalf("Recommend(%q) error = %v", m.Title, err)
		}
		for _, r := range recs {
			if r.ID == m.ID {
				t.Errorf("Recommend(%q) returned the queried movie", m.Title)
			}
		}
	}
}

func TestRecommend_CaseInsensitiveQueriesMatch(t *testing.T) {
	model := mustBuild(t, []Movie{
		{ID: 1, Title: "Avatar", Genres: []string{"Action", "Science Fiction"}},
		{ID: 2, Title: "Aliens", Genres: []string{"Action", "Science Fiction"}},
		{ID: 3, Title: "Brooklyn", Genres: []string{"Drama", "Romance"}},
	}, nil)

	base, err := model.Recommend("Avatar", 2)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	for _, title := range []string{"avatar", "AVATAR", "aVaTaR", " Avatar "} {
		got, err := model.Recommend(title, 2)
		if err != nil {
			t.Fatalf("Recommend(%q) error = %v", title, err)
		}
		if !reflect.DeepEqual(got, base) {
			t.Errorf("Recommend(%q) = %v, want %v", title, got, base)
		}
	}
}

func TestRecommend_UnknownTitle(t *testing.T) {
	model := mustBuild(t, testCatalog(), nil)

	_, err := model.Recommend("Nonexistent Title", 5)
	if err == nil {
		t.Fatal("Recommend() error = nil, want NotFoundError")
	}

	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("error type = %T, want *NotFoundError", err)
	}
	if nfErr.Title != "Nonexistent Title" {
		t.Errorf("Title = %q, want %q", nfErr.Title, "Nonexistent Title")
	}
}

func TestRecommend_KExceedsCatalog(t *testing.T) {
	model := mustBuild(t, testCatalog(), nil)

	recs, err := model.Recommend("A", 50)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("len(recs) = %d, want 2 (all other movies)", len(recs))
	}
}

func TestRecommend_InvalidK(t *testing.T) {
	model := mustBuild(t, testCatalog(), nil)

	for _, k := range []int{0, -1, -100} {
		_, err := model.Recommend("A", k)
		if err == nil {
			t.Fatalf("Recommend(k=%d) error = nil, want ConfigurationError", k)
		}
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("Recommend(k=%d) error type = %T, want *ConfigurationError", k, err)
		}
	}
}

func TestRecommend_TieBreakByCatalogOrder(t *testing.T) {
	// B and C have identical vectors, so they tie on every query and
	// must come back in catalog order.
	model := mustBuild(t, []Movie{
		{ID: 1, Title: "A", Genres: []string{"Action"}},
		{ID: 2, Title: "B", Genres: []string{"Action", "Drama"}},
		{ID: 3, Title: "C", Genres: []string{"Action", "Drama"}},
	}, nil)

	recs, err := model.Recommend("A", 2)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if recs[0].Title != "B" || recs[1].Title != "C" {
		t.Errorf("recs = [%q %q], want [B C]", recs[0].Title, recs[1].Title)
	}
	if recs[0].Score != recs[1].Score {
		t.Errorf("expected tied scores, got %v and %v", recs[0].Score, recs[1].Score)
	}
}

func TestRecommend_ResultFields(t *testing.T) {
	model := mustBuild(t, testCatalog(), nil)

	recs, err := model.Recommend("A", 1)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("len(recs) = %d, want 1", len(recs))
	}

	r := recs[0]
	if r.Index != 1 {
		t.Errorf("Index = %d, want 1", r.Index)
	}
	if r.ID != 2 {
		t.Errorf("ID = %d, want 2", r.ID)
	}
	if r.Title != "B" {
		t.Errorf("Title = %q, want %q", r.Title, "B")
	}
}

func TestSimilarByID(t *testing.T) {
	model := mustBuild(t, testCatalog(), nil)

	byID, err := model.SimilarByID(1, 2)
	if err != nil {
		t.Fatalf("SimilarByID() error = %v", err)
	}
	byTitle, err := model.Recommend("A", 2)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !reflect.DeepEqual(byID, byTitle) {
		t.Errorf("SimilarByID(1) = %v, want same as Recommend(A) = %v", byID, byTitle)
	}
}

func TestSimilarByID_UnknownID(t *testing.T) {
	model := mustBuild(t, testCatalog(), nil)

	_, err := model.SimilarByID(404, 2)
	if err == nil {
		t.Fatal("SimilarByID() error = nil, want NotFoundError")
	}

	var nfErr *NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("error type = %T, want *NotFoundError", err)
	}
	if nfErr.ID != 404 {
		t.Errorf("ID = %d, want 404", nfErr.ID)
	}
}

func TestSimilarByID_InvalidK(t *testing.T) {
	model := mustBuild(t, testCatalog(), nil)

	_, err := model.SimilarByID(1, 0)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error = %v, want ConfigurationError", err)
	}
}
