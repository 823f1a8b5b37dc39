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

func TestBuildVectors(t *testing.T) {
	cfg := DefaultConfig()

	blobs := []TagBlob{
		"action action drama",
		"action war",
		"",
	}

	vocab, matrix, err := BuildVectors(blobs, cfg)
	if err != nil {
		t.Fatalf("BuildVectors() error = %v", err)
	}

	// action appears 3 times, drama and war once each; drama occurred
	// first so it outranks war on the tie.
	wantTerms := []string{"action", "drama", "war"}
	if got := vocab.Terms(); !reflect.DeepEqual(got, wantTerms) {
		t.Errorf("Terms() = %v, want %v", got, wantTerms)
	}

	wantMatrix := FeatureMatrix{
		{2, 1, 0},
		{1, 0, 1},
		{0, 0, 0},
	}
	if !reflect.DeepEqual(matrix, wantMatrix) {
		t.Errorf("matrix = %v, want %v", matrix, wantMatrix)
	}
}

func TestBuildVectors_Errors(t *testing.T) {
	tests := []struct {
		name      string
		blobs     []TagBlob
		cfg       func() *Config
		wantField string
	}{
		{
			name:  "zero max features",
			blobs: []TagBlob{"action"},
			cfg: func() *Config {
				c := DefaultConfig()
				c.MaxFeatures = 0
				return c
			},
			wantField: "max_features",
		},
		{
			name:  "negative max features",
			blobs: []TagBlob{"action"},
			cfg: func() *Config {
				c := DefaultConfig()
				c.MaxFeatures = -5
				return c
			},
			wantField: "max_features",
		},
		{
			name:      "empty corpus",
			blobs:     nil,
			cfg:       DefaultConfig,
			wantField: "corpus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := BuildVectors(tt.blobs, tt.cfg())
			if err == nil {
				t.Fatal("BuildVectors() error = nil, want ConfigurationError")
			}

			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error type = %T, want *ConfigurationError", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
		})
	}
}

func TestBuildVectors_MaxFeaturesCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFeatures = 2

	blobs := []TagBlob{
		"action action action",
		"drama drama",
		"war",
		"alien",
	}

	vocab, matrix, err := BuildVectors(blobs, cfg)
	if err != nil {
		t.Fatalf("BuildVectors() error = %v", err)
	}

	wantTerms := []string{"action", "drama"}
	if got := vocab.Terms(); !reflect.DeepEqual(got, wantTerms) {
		t.Errorf("Terms() = %v, want %v", got, wantTerms)
	}
	if cols := matrix.Cols(); cols != 2 {
		t.Errorf("Cols() = %d, want 2", cols)
	}

	// war and alien fell outside the cap, so their movies vectorize
	// to all-zero rows rather than failing.
	for _, row := range []int{2, 3} {
		for j, v := range matrix[row] {
			if v != 0 {
				t.Errorf("matrix[%d][%d] = %v, want 0", row, j, v)
			}
		}
	}
}

func TestBuildVectors_TieBreakByFirstOccurrence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFeatures = 2

	// All tokens occur exactly once; the cap keeps the earliest two.
	blobs := []TagBlob{"drama war", "alien robot"}

	vocab, _, err := BuildVectors(blobs, cfg)
	if err != nil {
		t.Fatalf("BuildVectors() error = %v", err)
	}

	wantTerms := []string{"drama", "war"}
	if got := vocab.Terms(); !reflect.DeepEqual(got, wantTerms) {
		t.Errorf("Terms() = %v, want %v", got, wantTerms)
	}
}

func TestBuildVectors_StopwordsExcluded(t *testing.T) {
	cfg := DefaultConfig()

	blobs := []TagBlob{"the action of the war"}

	vocab, matrix, err := BuildVectors(blobs, cfg)
	if err != nil {
		t.Fatalf("BuildVectors() error = %v", err)
	}

	wantTerms := []string{"action", "war"}
	if got := vocab.Terms(); !reflect.DeepEqual(got, wantTerms) {
		t.Errorf("Terms() = %v, want %v", got, wantTerms)
	}

	want := FeatureMatrix{{1, 1}}
	if !reflect.DeepEqual(matrix, want) {
		t.Errorf("matrix = %v, want %v", matrix, want)
	}
}

func TestBuildVectors_CountsNotBinary(t *testing.T) {
	cfg := DefaultConfig()

	blobs := []TagBlob{"action action action", "action"}

	vocab, matrix, err := BuildVectors(blobs, cfg)
	if err != nil {
		t.Fatalf("BuildVectors() error = %v", err)
	}
	if vocab.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", vocab.Size())
	}
	if matrix[0][0] != 3 || matrix[1][0] != 1 {
		t.Errorf("counts = [%v %v], want [3 1]", matrix[0][0], matrix[1][0])
	}
}

func TestBuildVectors_StemmingUnifiesInflections(t *testing.T) {
	cfg := DefaultConfig()

	// Both blobs should land on the same single stemmed term.
	blobs := []TagBlob{"running", "runs"}

	vocab, matrix, err := BuildVectors(blobs, cfg)
	if err != nil {
		t.Fatalf("BuildVectors() error = %v", err)
	}
	if vocab.Size() != 1 {
		t.Fatalf("Size() = %d, want 1 (terms %v)", vocab.Size(), vocab.Terms())
	}
	if matrix[0][0] != 1 || matrix[1][0] != 1 {
		t.Errorf("counts = [%v %v], want [1 1]", matrix[0][0], matrix[1][0])
	}
}

func TestBuildVectors_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	blobs := []TagBlob{
		"action drama war alien",
		"drama war",
		"action alien robot",
	}

	vocabA, matrixA, err := BuildVectors(blobs, cfg)
	if err != nil {
		t.Fatalf("first build error = %v", err)
	}
	vocabB, matrixB, err := BuildVectors(blobs, cfg)
	if err != nil {
		t.Fatalf("second build error = %v", err)
	}

	if !reflect.DeepEqual(vocabA.Terms(), vocabB.Terms()) {
		t.Errorf("vocabularies differ: %v vs %v", vocabA.Terms(), vocabB.Terms())
	}
	if !reflect.DeepEqual(matrixA, matrixB) {
		t.Errorf("matrices differ across identical builds")
	}
}

func TestVocabulary_Index(t *testing.T) {
	cfg := DefaultConfig()
	vocab, _, err := BuildVectors([]TagBlob{"action drama"}, cfg)
	if err != nil {
		t.Fatalf("BuildVectors() error = %v", err)
	}

	if i, ok := vocab.Index("action"); !ok || i != 0 {
		t.Errorf("Index(action) = (%d, %v), want (0, true)", i, ok)
	}
	if _, ok := vocab.Index("missing"); ok {
		t.Error("Index(missing) reported present")
	}
}

func TestVocabulary_TermsIsCopy(t *testing.T) {
	cfg := DefaultConfig()
	vocab, _, err := BuildVectors([]TagBlob{"action drama"}, cfg)
	if err != nil {
		t.Fatalf("BuildVectors() error = %v", err)
	}

	terms := vocab.Terms()
	terms[0] = "mutated"
	if got := vocab.Terms()[0]; got != "action" {
		t.Errorf("Terms()[0] after caller mutation = %q, want %q", got, "action")
	}
}
