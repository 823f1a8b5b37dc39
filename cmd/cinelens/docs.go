// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

// Package main provides the Cinelens HTTP server
//
// The Cinelens API answers content-based movie recommendation queries
// over a model built from TMDB metadata.
//
// @title Cinelens API
// @version 1.0
// @description Content-based movie recommendation engine. Builds tag vectors from TMDB metadata, ranks by cosine similarity, optionally diversifies with MMR, and reports ranking metrics.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/cinelens/cinelens/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:1895
// @BasePath /
// @schemes http
//
// @tag.name Recommendations
// @tag.description Similarity queries over the serving model
//
// @tag.name Movies
// @tag.description Catalog browsing endpoints
//
// @tag.name Model
// @tag.description Model lifecycle and offline evaluation
//
// @tag.name Health
// @tag.description Liveness, readiness and full health reporting
package main
