// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package recommend

import (
	"math"
	"testing"
)

const simTolerance = 1e-9

func TestComputeSimilarity_KnownValues(t *testing.T) {
	cfg := DefaultConfig()

	fm := FeatureMatrix{
		{1, 0},
		{1, 0},
		{0, 1},
		{1, 1},
	}

	sim := ComputeSimilarity(fm, cfg)

	tests := []struct {
		name string
		i, j int
		want float64
	}{
		{"identical vectors", 0, 1, 1.0},
		{"orthogonal vectors", 0, 2, 0.0},
		{"shared dimension", 0, 3, 1 / math.Sqrt2},
		{"shared dimension other side", 2, 3, 1 / math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sim.At(tt.i, tt.j); math.Abs(got-tt.want) > simTolerance {
				t.Errorf("At(%d, %d) = %v, want %v", tt.i, tt.j, got, tt.want)
			}
		})
	}
}

func TestComputeSimilarity_DiagonalAlwaysOne(t *testing.T) {
	cfg := DefaultConfig()

	// Row 2 is all zeros; its self-similarity must still be 1.0.
	fm := FeatureMatrix{
		{3, 1, 0},
		{0, 2, 5},
		{0, 0, 0},
	}

	sim := ComputeSimilarity(fm, cfg)
	for i := 0; i < sim.Size(); i++ {
		if got := sim.At(i, i); got != 1.0 {
			t.Errorf("At(%d, %d) = %v, want 1.0", i, i, got)
		}
	}
}

func TestComputeSimilarity_ZeroVectorPairs(t *testing.T) {
	cfg := DefaultConfig()

	fm := FeatureMatrix{
		{1, 2},
		{0, 0},
		{0, 0},
	}

	sim := ComputeSimilarity(fm, cfg)

	pairs := [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {0, 2}, {2, 0}}
	for _, p := range pairs {
		got := sim.At(p[0], p[1])
		if got != 0.0 {
			t.Errorf("At(%d, %d) = %v, want 0.0", p[0], p[1], got)
		}
		if math.IsNaN(got) {
			t.Errorf("At(%d, %d) is NaN", p[0], p[1])
		}
	}
}

func TestComputeSimilarity_Symmetry(t *testing.T) {
	cfg := DefaultConfig()

	fm := FeatureMatrix{
		{1, 0, 2, 0, 1},
		{0, 3, 1, 0, 0},
		{2, 1, 0, 4, 0},
		{0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1},
	}

	sim := ComputeSimilarity(fm, cfg)
	for i := 0; i < sim.Size(); i++ {
		for j := 0; j < sim.Size(); j++ {
			// Mirrored cells share one computation, so this is exact.
			if sim.At(i, j) != sim.At(j, i) {
				t.Errorf("At(%d,%d) = %v but At(%d,%d) = %v", i, j, sim.At(i, j), j, i, sim.At(j, i))
			}
		}
	}
}

func TestComputeSimilarity_ValuesBounded(t *testing.T) {
	cfg := DefaultConfig()

	fm := FeatureMatrix{
		{5, 0, 1},
		{2, 2, 2},
		{0, 7, 1},
		{1, 1, 0},
	}

	sim := ComputeSimilarity(fm, cfg)
	for i := 0; i < sim.Size(); i++ {
		for j := 0; j < sim.Size(); j++ {
			v := sim.At(i, j)
			if v < 0 || v > 1+simTolerance {
				t.Errorf("At(%d, %d) = %v, want within [0, 1]", i, j, v)
			}
		}
	}
}

func TestComputeSimilarity_WorkerCountInvariant(t *testing.T) {
	fm := FeatureMatrix{
		{1, 0, 2, 0},
		{0, 3, 1, 0},
		{2, 1, 0, 4},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{4, 0, 0, 1},
	}

	serial := DefaultConfig()
	serial.Workers = 1
	parallel := DefaultConfig()
	parallel.Workers = 8

	simA := ComputeSimilarity(fm, serial)
	simB := ComputeSimilarity(fm, parallel)

	for i := 0; i < simA.Size(); i++ {
		for j := 0; j < simA.Size(); j++ {
			if simA.At(i, j) != simB.At(i, j) {
				t.Errorf("worker counts disagree at (%d, %d): %v vs %v", i, j, simA.At(i, j), simB.At(i, j))
			}
		}
	}
}

func TestComputeSimilarity_SmallInputs(t *testing.T) {
	cfg := DefaultConfig()

	empty := ComputeSimilarity(FeatureMatrix{}, cfg)
	if empty.Size() != 0 {
		t.Errorf("Size() = %d, want 0", empty.Size())
	}

	single := ComputeSimilarity(FeatureMatrix{{1, 2, 3}}, cfg)
	if single.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", single.Size())
	}
	if got := single.At(0, 0); got != 1.0 {
		t.Errorf("At(0, 0) = %v, want 1.0", got)
	}
}
