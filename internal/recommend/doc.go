// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

// Package recommend implements the content-based recommendation core.
//
// # Pipeline
//
// The core transforms per-movie metadata into ranked recommendations in
// four stages, composed once into an immutable Model:
//
//   - Tag Builder: genres, keywords, top cast, and the director collapse
//     into one normalized lowercase tag blob per movie.
//   - Vectorizer: blobs are tokenized and stemmed (Snowball/Porter), a
//     fixed vocabulary of the most frequent terms is selected, and each
//     movie becomes a term-count vector over that vocabulary.
//   - Similarity Engine: a full pairwise cosine-similarity matrix is
//     computed over all movie vectors at build time.
//   - Recommender: a title resolves case-insensitively to a matrix row,
//     which is ranked descending with the movie itself excluded.
//
// # Design Principles
//
//   - Deterministic: same input produces identical vocabulary, vectors,
//     and rankings across builds (stable frequency tie-breaks, stable
//     score tie-breaks by dataset order).
//   - Immutable: nothing in a Model is mutated after BuildModel returns;
//     concurrent readers need no locks.
//   - Pure: the core never logs, retries, or prints. Failures surface as
//     typed errors (ConfigurationError, NotFoundError, DataIntegrityError)
//     for the caller layer to translate.
//
// The pairwise similarity build is O(n²) in movie count and is the
// performance ceiling of the whole system; it is acceptable only because
// catalogs are small (thousands of rows) and the build runs once.
//
// # Usage
//
//	model, err := recommend.BuildModel(ctx, movies, recommend.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	recs, err := model.Recommend("Avatar", 5)
package recommend
