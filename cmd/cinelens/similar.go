// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cinelens/cinelens/internal/recommend/reranking"
)

var (
	similarID        int64
	similarLimit     int
	similarDiversify bool
	similarLambda    float64
)

func init() {
	rootCmd.AddCommand(similarCmd)

	similarCmd.Flags().Int64Var(&similarID, "id", 0, "Movie catalog id to query")
	similarCmd.Flags().IntVarP(&similarLimit, "limit", "l", 5, "Maximum number of results")
	similarCmd.Flags().BoolVar(&similarDiversify, "diversify", false, "Rerank results for diversity with MMR")
	similarCmd.Flags().Float64Var(&similarLambda, "lambda", reranking.DefaultLambda, "MMR relevance weight in [0,1]")
	_ = similarCmd.MarkFlagRequired("id")
}

var similarCmd = &cobra.Command{
	Use:   "similar --id <movie-id>",
	Short: "Find movies similar to a catalog id",
	Long: `Find movies with content similar to the movie with the given
catalog id. Identical to 'cinelens recommend' except the query is by id,
which survives duplicate titles.

Requires a merged catalog; run 'cinelens merge' first.`,
	RunE: runSimilar,
}

func runSimilar(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg := mustLoadConfig()
	store := mustOpenStore(cfg)
	defer func() { _ = store.Close() }()

	m := mustBuildModel(ctx, cfg, store)

	row, ok := m.LookupID(similarID)
	if !ok {
		exitWithError(ExitNotFound, "movie not found: id %d", similarID)
	}
	source := m.MovieAt(row)

	recs, err := m.SimilarByID(similarID, poolSize(similarLimit, similarDiversify))
	if err != nil {
		exitOnQueryError(err)
	}
	if similarDiversify {
		recs = reranking.NewMMR(similarLambda).Rerank(recs, m.Similarity(), similarLimit)
	}

	if humanOutput {
		fmt.Printf("Movies similar to: %d\n", source.ID)
		fmt.Printf("%q\n\n", truncateString(source.Title, TitleMaxLen))
		printRecommendationsHuman(recs)
	} else {
		_ = outputJSON(SimilarResponse{
			Source: SimilarSource{
				ID:    source.ID,
				Title: source.Title,
			},
			Results: recs,
			Total:   len(recs),
		})
	}

	return nil
}
