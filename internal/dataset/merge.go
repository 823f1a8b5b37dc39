// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cinelens/cinelens/internal/logging"
	"github.com/cinelens/cinelens/internal/metrics"
	"github.com/cinelens/cinelens/internal/recommend"
)

// Merge rebuilds the movies table from the two raw TMDB CSV exports
// configured on the store. The movies export is joined against the
// credits export on the movie ID and the six catalog columns are
// projected into the movies table. Existing rows with the same id are
// replaced, so re-running a merge over unchanged inputs is a no-op.
//
// A row with a NULL id or title aborts the merge with a
// *recommend.DataIntegrityError before anything is written.
func (s *Store) Merge(ctx context.Context) error {
	start := time.Now()

	rows, err := s.merge(ctx)
	metrics.RecordMerge(time.Since(start), rows, err)
	if err != nil {
		return err
	}

	logging.Info().
		Int64("movies", rows).
		Dur("duration", time.Since(start)).
		Msg("Catalog merge complete")

	return nil
}

func (s *Store) merge(ctx context.Context) (int64, error) {
	moviesCSV := s.cfg.MoviesCSV
	creditsCSV := s.cfg.CreditsCSV

	for _, path := range []string{moviesCSV, creditsCSV} {
		if _, err := os.Stat(path); err != nil {
			return 0, fmt.Errorf("csv import: %w", err)
		}
	}

	logging.Info().
		Str("movies_csv", moviesCSV).
		Str("credits_csv", creditsCSV).
		Msg("Merging raw TMDB exports into catalog")

	if err := s.checkRawMovies(ctx, moviesCSV); err != nil {
		return 0, err
	}

	// "cast" is a reserved word in DuckDB, so the credits column needs
	// quoting. List cells missing from the export come through as NULL
	// and default to empty JSON arrays.
	query := fmt.Sprintf(`
		INSERT OR REPLACE INTO movies (id, title, genres, keywords, cast_list, crew)
		SELECT m.id, m.title,
			COALESCE(m.genres, '[]'),
			COALESCE(m.keywords, '[]'),
			COALESCE(c."cast", '[]'),
			COALESCE(c.crew, '[]')
		FROM read_csv_auto(%s, header = true) AS m
		JOIN read_csv_auto(%s, header = true) AS c ON m.id = c.movie_id`,
		sqlLiteral(moviesCSV), sqlLiteral(creditsCSV))

	insertStart := time.Now()
	res, err := s.conn.ExecContext(ctx, query)
	metrics.RecordDBQuery("merge", "movies", time.Since(insertStart), err)
	if err != nil {
		return 0, fmt.Errorf("csv import: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("query merge result: %w", err)
	}

	return rows, nil
}

// checkRawMovies rejects the merge when the movies export is missing
// an id or a title. The reported row is 1-based over data rows, the
// same count a reader sees after skipping the header line.
func (s *Store) checkRawMovies(ctx context.Context, path string) error {
	query := fmt.Sprintf(`
		SELECT rn, id IS NULL, title IS NULL
		FROM (
			SELECT ROW_NUMBER() OVER () AS rn, id, title
			FROM read_csv_auto(%s, header = true)
		) AS raw
		WHERE id IS NULL OR title IS NULL
		LIMIT 1`, sqlLiteral(path))

	var (
		row       int64
		idNull    bool
		titleNull bool
	)
	err := s.conn.QueryRowContext(ctx, query).Scan(&row, &idNull, &titleNull)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("csv import: %w", err)
	}

	reason := "title is NULL"
	if idNull {
		reason = "id is NULL"
	}
	return &recommend.DataIntegrityError{Source: path, Row: row, Reason: reason}
}

// sqlLiteral quotes a string for inlining into a SQL statement,
// doubling any embedded single quotes. Used for the CSV paths passed
// to read_csv_auto.
func sqlLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
