// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package recommend

import (
	"context"
	"strings"
	"time"
)

// Model is the immutable output of one build: the catalog, its tag
// blobs, the vocabulary, feature and similarity matrices, and the
// title and id lookup tables. Nothing in a Model changes after
// BuildModel returns, so a single Model may be shared across
// goroutines without locks. Replacing a model means building a new
// one and swapping the pointer.
type Model struct {
	movies     []Movie
	blobs      []TagBlob
	vocab      *Vocabulary
	features   FeatureMatrix
	similarity SimilarityMatrix
	titles     map[string]int
	ids        map[int64]int
	cfg        *Config
	builtAt    time.Time
	buildDur   time.Duration
}

// BuildModel runs the full pipeline over a catalog: tag blobs, then
// vocabulary and count vectors, then the similarity matrix, then the
// lookup tables. The context is checked between stages; a build that
// is cancelled returns ctx.Err() and no partial model ever escapes.
//
// A nil cfg means DefaultConfig(). The config is cloned, so callers
// may reuse or modify theirs afterwards.
func BuildModel(ctx context.Context, movies []Movie, cfg *Config) (*Model, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, newConfigErr("corpus", "must not be empty")
	}

	start := time.Now()
	cfg = cfg.Clone()

	catalog := make([]Movie, len(movies))
	copy(catalog, movies)

	blobs := BuildTagBlobs(catalog, cfg)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vocab, features, err := BuildVectors(blobs, cfg)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	similarity := ComputeSimilarity(features, cfg)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	titles := make(map[string]int, len(catalog))
	ids := make(map[int64]int, len(catalog))
	for i, m := range catalog {
		key := normalizeTitle(m.Title)
		// First occurrence wins on duplicate titles and ids.
		if _, dup := titles[key]; !dup {
			titles[key] = i
		}
		if _, dup := ids[m.ID]; !dup {
			ids[m.ID] = i
		}
	}

	return &Model{
		movies:     catalog,
		blobs:      blobs,
		vocab:      vocab,
		features:   features,
		similarity: similarity,
		titles:     titles,
		ids:        ids,
		cfg:        cfg,
		builtAt:    time.Now().UTC(),
		buildDur:   time.Since(start),
	}, nil
}

// normalizeTitle produces the lookup key for a title: lowercased and
// stripped of surrounding whitespace. Interior spacing is preserved,
// "The Matrix" and "the matrix" collide, "TheMatrix" does not.
func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// Len returns the catalog size.
func (m *Model) Len() int {
	return len(m.movies)
}

// MovieAt returns the movie at a catalog row.
func (m *Model) MovieAt(i int) Movie {
	return m.movies[i]
}

// Movies returns a copy of the catalog in model order.
func (m *Model) Movies() []Movie {
	out := make([]Movie, len(m.movies))
	copy(out, m.movies)
	return out
}

// TagBlobAt returns the tag blob for a catalog row.
func (m *Model) TagBlobAt(i int) TagBlob {
	return m.blobs[i]
}

// Vocabulary returns the model's term space.
func (m *Model) Vocabulary() *Vocabulary {
	return m.vocab
}

// Similarity returns the model's similarity matrix. Read-only.
func (m *Model) Similarity() SimilarityMatrix {
	return m.similarity
}

// Lookup resolves a title to its catalog row, case-insensitively.
func (m *Model) Lookup(title string) (int, bool) {
	i, ok := m.titles[normalizeTitle(title)]
	return i, ok
}

// LookupID resolves a movie id to its catalog row.
func (m *Model) LookupID(id int64) (int, bool) {
	i, ok := m.ids[id]
	return i, ok
}

// Config returns a copy of the build parameters.
func (m *Model) Config() *Config {
	return m.cfg.Clone()
}

// Info summarizes the model for status surfaces.
func (m *Model) Info() ModelInfo {
	return ModelInfo{
		Movies:         len(m.movies),
		VocabularySize: m.vocab.Size(),
		MaxFeatures:    m.cfg.MaxFeatures,
		BuiltAt:        m.builtAt,
		BuildDuration:  m.buildDur,
	}
}
