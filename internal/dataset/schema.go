// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package dataset

import (
	"context"
	"fmt"
	"time"
)

// schemaTimeout caps how long the DDL batch may run at startup.
const schemaTimeout = 60 * time.Second

// schemaDDL holds the statements applied on every catalog open.
var schemaDDL = []string{
	// Processed movie catalog, one row per merged TMDB movie. The four
	// list columns hold the raw JSON-encoded cells from the CSVs; they
	// are parsed into typed slices at load time. "cast" is a reserved
	// word, hence cast_list.
	`CREATE TABLE IF NOT EXISTS movies (
		id BIGINT PRIMARY KEY,
		title TEXT NOT NULL,
		genres TEXT NOT NULL DEFAULT '[]',
		keywords TEXT NOT NULL DEFAULT '[]',
		cast_list TEXT NOT NULL DEFAULT '[]',
		crew TEXT NOT NULL DEFAULT '[]',
		merged_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// createTables applies schemaDDL, creating any missing catalog tables.
func (s *Store) createTables() error {
	ctx, cancel := context.WithTimeout(context.Background(), schemaTimeout)
	defer cancel()

	for i, ddl := range schemaDDL {
		if _, err := s.conn.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}

	return nil
}
