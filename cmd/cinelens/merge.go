// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cinelens/cinelens/internal/recommend"
)

func init() {
	rootCmd.AddCommand(mergeCmd)
}

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge raw TMDB CSV exports into the catalog",
	Long: `Merge the raw TMDB movies and credits CSV exports into the
DuckDB catalog.

The two exports are joined on the movie id and the catalog columns
(title, genres, keywords, cast, crew) are written to the movies table.
Rows with the same id are replaced, so re-running a merge over
unchanged inputs is a no-op. The CSV paths come from configuration
(MOVIES_CSV, CREDITS_CSV).

A movies row without an id or title aborts the merge before anything
is written.`,
	RunE: runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	start := time.Now()

	cfg := mustLoadConfig()
	store := mustOpenStore(cfg)
	defer func() { _ = store.Close() }()

	if err := store.Merge(ctx); err != nil {
		var integrity *recommend.DataIntegrityError
		if errors.As(err, &integrity) {
			exitWithError(ExitDataError, "%v", err)
		}
		exitWithError(ExitError, "merging catalog: %v", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		exitWithError(ExitDataError, "counting catalog rows: %v", err)
	}

	if humanOutput {
		fmt.Printf("Merged %d movies into %s in %s\n", count, cfg.Dataset.Path, formatDuration(time.Since(start)))
	} else {
		_ = outputJSON(MergeResponse{
			Status:  "ok",
			Movies:  count,
			Catalog: cfg.Dataset.Path,
		})
	}

	return nil
}
