// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

// Package eval provides offline evaluation for a built model.
//
// With no user feedback available, relevance is proxied by tag
// overlap: a candidate is relevant to a query movie when their tag
// blobs share enough tokens, and graded relevance is Jaccard overlap
// of the tag sets. On top of that proxy the package computes the
// standard ranking metrics (Precision@K, Recall@K, MRR, NDCG@K) plus
// catalog coverage and intra-list diversity.
//
// Evaluate runs the full report against a model's own catalog with a
// seeded query sample, so successive runs on the same model are
// comparable number for number.
package eval
