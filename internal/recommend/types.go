// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package recommend

import "time"

// Movie is one catalog record as loaded from the merged dataset. All
// metadata fields are already decoded into flat labels: Genres and
// Keywords hold multi-word names as single strings ("Science Fiction"),
// Cast holds actor names in billing order, Crew holds name and job pairs.
// The builder decides which of these survive into the tag blob.
type Movie struct {
	// ID is the upstream catalog identifier. Unique per dataset row.
	ID int64 `json:"id"`

	// Title is the display title, preserved byte-for-byte for output.
	Title string `json:"title"`

	// Genres are genre labels in dataset order.
	Genres []string `json:"genres,omitempty"`

	// Keywords are plot keyword labels in dataset order.
	Keywords []string `json:"keywords,omitempty"`

	// Cast holds actor names in billing order. The builder keeps the
	// top three.
	Cast []string `json:"cast,omitempty"`

	// Crew holds all crew entries. The builder keeps directors only.
	Crew []CrewMember `json:"crew,omitempty"`
}

// CrewMember is one crew credit on a movie.
type CrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// Recommendation is one ranked result row. Index is the position of
// the recommended movie in the model's catalog ordering.
type Recommendation struct {
	Index int     `json:"index"`
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// ModelInfo summarizes a built model for diagnostics and the API
// surface. It carries no references into the model's internals.
type ModelInfo struct {
	Movies         int           `json:"movies"`
	VocabularySize int           `json:"vocabulary_size"`
	MaxFeatures    int           `json:"max_features"`
	BuiltAt        time.Time     `json:"built_at"`
	BuildDuration  time.Duration `json:"build_duration"`
}
