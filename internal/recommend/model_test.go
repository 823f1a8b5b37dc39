// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package recommend

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// testCatalog is the canonical three-movie fixture: A and B share a
// genre, C shares nothing with them.
func testCatalog() []Movie {
	return []Movie{
		{ID: 1, Title: "A", Genres: []string{"Action"}},
		{ID: 2, Title: "B", Genres: []string{"Action"}},
		{ID: 3, Title: "C", Genres: []string{"Drama"}},
	}
}

func mustBuild(t *testing.T, movies []Movie, cfg *Config) *Model {
	t.Helper()
	model, err := BuildModel(context.Background(), movies, cfg)
	if err != nil {
		t.Fatalf("BuildModel() error = %v", err)
	}
	return model
}

func TestBuildModel(t *testing.T) {
	model := mustBuild(t, testCatalog(), nil)

	if model.Len() != 3 {
		t.Errorf("Len() = %d, want 3", model.Len())
	}
	if got := model.MovieAt(1).Title; got != "B" {
		t.Errorf("MovieAt(1).Title = %q, want %q", got, "B")
	}
	if got := model.TagBlobAt(2); got != "drama" {
		t.Errorf("TagBlobAt(2) = %q, want %q", got, "drama")
	}
	if size := model.Vocabulary().Size(); size != 2 {
		t.Errorf("Vocabulary().Size() = %d, want 2", size)
	}
	if n := model.Similarity().Size(); n != 3 {
		t.Errorf("Similarity().Size() = %d, want 3", n)
	}
}

func TestBuildModel_Errors(t *testing.T) {
	tests := []struct {
		name   string
		movies []Movie
		cfg    *Config
	}{
		{
			name:   "empty catalog",
			movies: nil,
			cfg:    nil,
		},
		{
			name:   "invalid max features",
			movies: testCatalog(),
			cfg:    &Config{MaxFeatures: 0, TopCast: 3, DirectorJob: "Director"},
		},
		{
			name:   "negative workers",
			movies: testCatalog(),
			cfg:    &Config{MaxFeatures: 10, TopCast: 3, DirectorJob: "Director", Workers: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildModel(context.Background(), tt.movies, tt.cfg)
			if err == nil {
				t.Fatal("BuildModel() error = nil, want ConfigurationError")
			}
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("error type = %T, want *ConfigurationError", err)
			}
		})
	}
}

func TestBuildModel_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildModel(ctx, testCatalog(), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("BuildModel() error = %v, want context.Canceled", err)
	}
}

func TestBuildModel_NilConfigUsesDefaults(t *testing.T) {
	model := mustBuild(t, testCatalog(), nil)

	info := model.Info()
	if info.MaxFeatures != 5000 {
		t.Errorf("Info().MaxFeatures = %d, want 5000", info.MaxFeatures)
	}
}

func TestBuildModel_ConfigIsCloned(t *testing.T) {
	cfg := DefaultConfig()
	model := mustBuild(t, testCatalog(), cfg)

	cfg.MaxFeatures = 1
	if got := model.Config().MaxFeatures; got != 5000 {
		t.Errorf("Config().MaxFeatures after caller mutation = %d, want 5000", got)
	}
}

func TestBuildModel_Idempotent(t *testing.T) {
	movies := []Movie{
		{ID: 1, Title: "First", Genres: []string{"Action", "Thriller"}, Keywords: []string{"heist"}},
		{ID: 2, Title: "Second", Genres: []string{"Action"}, Cast: []string{"Same Actor"}},
		{ID: 3, Title: "Third", Genres: []string{"Drama"}, Cast: []string{"Same Actor"}},
		{ID: 4, Title: "Fourth"},
	}

	modelA := mustBuild(t, movies, nil)
	modelB := mustBuild(t, movies, nil)

	if !reflect.DeepEqual(modelA.Vocabulary().Terms(), modelB.Vocabulary().Terms()) {
		t.Errorf("vocabularies differ: %v vs %v", modelA.Vocabulary().Terms(), modelB.Vocabulary().Terms())
	}
	if !reflect.DeepEqual(modelA.features, modelB.features) {
		t.Error("feature matrices differ across identical builds")
	}
	if !reflect.DeepEqual(modelA.similarity, modelB.similarity) {
		t.Error("similarity matrices differ across identical builds")
	}

	recsA, err := modelA.Recommend("First", 3)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	recsB, err := modelB.Recommend("First", 3)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !reflect.DeepEqual(recsA, recsB) {
		t.Errorf("recommendations differ: %v vs %v", recsA, recsB)
	}
}

func TestModel_LookupCaseInsensitive(t *testing.T) {
	model := mustBuild(t, []Movie{
		{ID: 1, Title: "Avatar", Genres: []string{"Action"}},
		{ID: 2, Title: "Alien", Genres: []string{"Horror"}},
	}, nil)

	for _, title := range []string{"Avatar", "avatar", "AVATAR", "  Avatar  "} {
		row, ok := model.Lookup(title)
		if !ok {
			t.Errorf("Lookup(%q) missed", title)
			continue
		}
		if row != 0 {
			t.Errorf("Lookup(%q) = %d, want 0", title, row)
		}
	}

	if _, ok := model.Lookup("Av atar"); ok {
		t.Error("Lookup with interior space matched")
	}
}

func TestModel_DuplicateTitleFirstWins(t *testing.T) {
	model := mustBuild(t, []Movie{
		{ID: 10, Title: "The Thing", Genres: []string{"Horror"}},
		{ID: 20, Title: "the thing", Genres: []string{"Comedy"}},
	}, nil)

	row, ok := model.Lookup("THE THING")
	if !ok {
		t.Fatal("Lookup() missed")
	}
	if row != 0 {
		t.Errorf("Lookup() = %d, want 0 (first occurrence)", row)
	}
	if id := model.MovieAt(row).ID; id != 10 {
		t.Errorf("resolved ID = %d, want 10", id)
	}
}

func TestModel_LookupID(t *testing.T) {
	model := mustBuild(t, testCatalog(), nil)

	row, ok := model.LookupID(2)
	if !ok || row != 1 {
		t.Errorf("LookupID(2) = (%d, %v), want (1, true)", row, ok)
	}
	if _, ok := model.LookupID(999); ok {
		t.Error("LookupID(999) reported present")
	}
}

func TestModel_ZeroTagMovie(t *testing.T) {
	model := mustBuild(t, []Movie{
		{ID: 1, Title: "Tagged", Genres: []string{"Action"}},
		{ID: 2, Title: "Bare"},
		{ID: 3, Title: "Also Tagged", Genres: []string{"Action"}},
	}, nil)

	sim := model.Similarity()
	bare, _ := model.Lookup("Bare")

	if got := sim.At(bare, bare); got != 1.0 {
		t.Errorf("self-similarity = %v, want 1.0", got)
	}
	for other := 0; other < model.Len(); other++ {
		if other == bare {
			continue
		}
		if got := sim.At(bare, other); got != 0.0 {
			t.Errorf("At(bare, %d) = %v, want 0.0", other, got)
		}
	}

	// A zero-tag movie still answers queries; every candidate scores
	// 0.0 and the tie resolves to catalog order.
	recs, err := model.Recommend("Bare", 2)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len(recs) = %d, want 2", len(recs))
	}
	if recs[0].Title != "Tagged" || recs[1].Title != "Also Tagged" {
		t.Errorf("recs = [%q %q], want catalog order [Tagged, Also Tagged]", recs[0].Title, recs[1].Title)
	}
	for _, r := range recs {
		if r.Score != 0.0 {
			t.Errorf("score for %q = %v, want 0.0", r.Title, r.Score)
		}
	}
}

func TestModel_MoviesIsCopy(t *testing.T) {
	model := mustBuild(t, testCatalog(), nil)

	movies := model.Movies()
	movies[0].Title = "Mutated"
	if got := model.MovieAt(0).Title; got != "A" {
		t.Errorf("MovieAt(0).Title after caller mutation = %q, want %q", got, "A")
	}
}

func TestModel_Info(t *testing.T) {
	model := mustBuild(t, testCatalog(), nil)

	info := model.Info()
	if info.Movies != 3 {
		t.Errorf("Movies = %d, want 3", info.Movies)
	}
	if info.VocabularySize != 2 {
		t.Errorf("VocabularySize = %d, want 2", info.VocabularySize)
	}
	if info.BuiltAt.IsZero() {
		t.Error("BuiltAt is zero")
	}
	if info.BuildDuration < 0 {
		t.Errorf("BuildDuration = %v, want >= 0", info.BuildDuration)
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Avatar", "avatar"},
		{"  The Matrix  ", "the matrix"},
		{"UPPER lower", "upper lower"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeTitle(tt.in); got != tt.want {
			t.Errorf("normalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
