// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

// Package main provides the cinelens CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cinelens",
	Short: "Content-based movie recommendation engine",
	Long: `Cinelens recommends movies by content similarity.

It merges raw TMDB metadata CSVs into a DuckDB catalog, builds tag
vectors from genres, keywords, cast and director, and ranks movies by
cosine similarity. Run one-shot queries from the command line or start
the supervised HTTP API with 'cinelens serve'.

One-shot commands output JSON by default for easy scripting; pass
--human for readable tables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
