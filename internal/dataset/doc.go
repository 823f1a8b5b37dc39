// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

/*
Package dataset manages the movie catalog stored in DuckDB.

The catalog is a single processed table built from the two raw TMDB
CSV exports (movies and credits). The package owns the full lifecycle:

  - Open/Close the DuckDB database file (parent directory created on
    demand, WAL checkpointed on close)
  - Merge the raw CSVs into the movies table using DuckDB's
    read_csv_auto and a join on the movie ID
  - Load the catalog into typed [recommend.Movie] values, parsing the
    JSON-encoded list cells (genres, keywords, cast, crew) with
    goccy/go-json

# Merge Semantics

Merge joins movies.id against credits.movie_id and projects six
columns: id, title, genres, keywords, cast, crew. Rows whose id or
title is NULL are rejected before insertion and reported as a
*recommend.DataIntegrityError naming the offending source and row.
Re-running Merge replaces previously merged rows with the same id, so
the operation is idempotent over unchanged inputs.

# Load Semantics

LoadMovies returns the catalog ordered by id so that repeated loads
feed the model builder an identical sequence. A list cell that fails
to parse as JSON aborts the load with a *recommend.DataIntegrityError
carrying the movie id as the row reference. Genres and keywords
flatten to their "name" fields; cast keeps billing order; crew keeps
name and job so the model builder can select directors.

# Usage

	store, err := dataset.Open(&cfg.Dataset)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Merge(ctx); err != nil {
		return err
	}
	movies, err := store.LoadMovies(ctx)

Store is safe for concurrent use. All statements run through
database/sql, which serializes access to the embedded DuckDB
connection pool.
*/
package dataset
