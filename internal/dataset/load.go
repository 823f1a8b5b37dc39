// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"github.com/cinelens/cinelens/internal/metrics"
	"github.com/cinelens/cinelens/internal/recommend"
)

// namedEntity is one element of a genres, keywords or cast JSON cell,
// e.g. {"id": 28, "name": "Action"}. Only the name is kept.
type namedEntity struct {
	Name string `json:"name"`
}

// crewEntity is one element of a crew JSON cell. Name and job survive
// so the model builder can select directors.
type crewEntity struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// LoadMovies returns the full catalog ordered by id, with the JSON
// list cells parsed into typed slices. A cell that fails to parse
// aborts the load with a *recommend.DataIntegrityError carrying the
// movie id as the row reference.
func (s *Store) LoadMovies(ctx context.Context) ([]recommend.Movie, error) {
	start := time.Now()

	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, title, genres, keywords, cast_list, crew
		FROM movies
		ORDER BY id`)
	if err != nil {
		err = fmt.Errorf("failed to query movies: %w", err)
		metrics.RecordDBQuery("select", "movies", time.Since(start), err)
		return nil, err
	}
	defer rows.Close()

	movies, err := scanMovies(rows)
	metrics.RecordDBQuery("select", "movies", time.Since(start), err)
	if err != nil {
		return nil, err
	}

	return movies, nil
}

// ListMovies returns a page of the catalog ordered by id.
func (s *Store) ListMovies(ctx context.Context, limit, offset int) ([]recommend.Movie, error) {
	start := time.Now()

	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, title, genres, keywords, cast_list, crew
		FROM movies
		ORDER BY id
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		err = fmt.Errorf("failed to query movies: %w", err)
		metrics.RecordDBQuery("list", "movies", time.Since(start), err)
		return nil, err
	}
	defer rows.Close()

	movies, err := scanMovies(rows)
	metrics.RecordDBQuery("list", "movies", time.Since(start), err)
	if err != nil {
		return nil, err
	}

	return movies, nil
}

// GetMovie returns a single catalog row by id. A miss surfaces as
// sql.ErrNoRows wrapped with the id.
func (s *Store) GetMovie(ctx context.Context, id int64) (*recommend.Movie, error) {
	start := time.Now()

	var r row
	err := s.conn.QueryRowContext(ctx, `
		SELECT id, title, genres, keywords, cast_list, crew
		FROM movies
		WHERE id = ?`, id).
		Scan(&r.id, &r.title, &r.genres, &r.keywords, &r.castList, &r.crew)
	metrics.RecordDBQuery("get", "movies", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("movie %d: %w", id, err)
	}

	m, err := r.toMovie()
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Count returns the number of movies in the catalog.
func (s *Store) Count(ctx context.Context) (int64, error) {
	start := time.Now()

	var n int64
	err := s.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM movies").Scan(&n)
	metrics.RecordDBQuery("count", "movies", time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return n, nil
}

// row is one unparsed catalog row, list cells still JSON text.
type row struct {
	id       int64
	title    string
	genres   string
	keywords string
	castList string
	crew     string
}

// toMovie parses the JSON list cells into a typed Movie.
func (r *row) toMovie() (recommend.Movie, error) {
	m := recommend.Movie{ID: r.id, Title: r.title}

	var err error
	if m.Genres, err = parseNames(r.genres); err != nil {
		return m, integrityErr(r.id, "genres", err)
	}
	if m.Keywords, err = parseNames(r.keywords); err != nil {
		return m, integrityErr(r.id, "keywords", err)
	}
	if m.Cast, err = parseNames(r.castList); err != nil {
		return m, integrityErr(r.id, "cast", err)
	}
	if m.Crew, err = parseCrew(r.crew); err != nil {
		return m, integrityErr(r.id, "crew", err)
	}

	return m, nil
}

func integrityErr(id int64, column string, err error) error {
	return &recommend.DataIntegrityError{
		Source: "movies",
		Row:    id,
		Reason: fmt.Sprintf("malformed %s cell: %v", column, err),
	}
}

// scanMovies drains a movies result set into typed values.
// Initialize with empty slice instead of nil for consistent JSON
// serialization.
func scanMovies(rows *sql.Rows) ([]recommend.Movie, error) {
	movies := []recommend.Movie{}
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.id, &r.title, &r.genres, &r.keywords, &r.castList, &r.crew); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		m, err := r.toMovie()
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movies: %w", err)
	}
	return movies, nil
}

// parseNames flattens a JSON cell of {"id", "name"} objects to the
// names, preserving cell order. Cast cells keep billing order this
// way.
func parseNames(cell string) ([]string, error) {
	if cell == "" || cell == "[]" {
		return nil, nil
	}
	var entries []namedEntity
	if err := json.Unmarshal([]byte(cell), &entries); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names, nil
}

// parseCrew parses a JSON crew cell, keeping name and job per entry.
func parseCrew(cell string) ([]recommend.CrewMember, error) {
	if cell == "" || cell == "[]" {
		return nil, nil
	}
	var entries []crewEntity
	if err := json.Unmarshal([]byte(cell), &entries); err != nil {
		return nil, err
	}
	crew := make([]recommend.CrewMember, 0, len(entries))
	for _, e := range entries {
		crew = append(crew, recommend.CrewMember{Name: e.Name, Job: e.Job})
	}
	return crew, nil
}
