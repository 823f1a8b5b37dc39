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
	recommendLimit     int
	recommendDiversify bool
	recommendLambda    float64
)

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "l", 5, "Maximum number of results")
	recommendCmd.Flags().BoolVar(&recommendDiversify, "diversify", false, "Rerank results for diversity with MMR")
	recommendCmd.Flags().Float64Var(&recommendLambda, "lambda", reranking.DefaultLambda, "MMR relevance weight in [0,1]")
}

var recommendCmd = &cobra.Command{
	Use:   "recommend <title>",
	Short: "Recommend movies similar to a title",
	Long: `Recommend movies with content similar to the given title.

The command loads the DuckDB catalog, builds the tag vector model in
memory and ranks every other movie by cosine similarity to the queried
one. Title matching is case-insensitive. The queried movie itself is
never part of the results.

Requires a merged catalog; run 'cinelens merge' first.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func runRecommend(cmd *cobra.Command, args []string) error {
	title := args[0]
	ctx := context.Background()

	cfg := mustLoadConfig()
	store := mustOpenStore(cfg)
	defer func() { _ = store.Close() }()

	m := mustBuildModel(ctx, cfg, store)

	recs, err := m.Recommend(title, poolSize(recommendLimit, recommendDiversify))
	if err != nil {
		exitOnQueryError(err)
	}
	if recommendDiversify {
		recs = reranking.NewMMR(recommendLambda).Rerank(recs, m.Similarity(), recommendLimit)
	}

	if humanOutput {
		fmt.Printf("Movies similar to: %s\n\n", truncateString(title, TitleMaxLen))
		printRecommendationsHuman(recs)
	} else {
		_ = outputJSON(RecommendResponse{
			Query:   title,
			Results: recs,
			Total:   len(recs),
		})
	}

	return nil
}

// poolSize returns how many candidates to rank ahead of MMR reranking.
// A pool of exactly limit can only be reordered, so the fetch must
// overshoot for reranking to substitute items.
func poolSize(limit int, diversify bool) int {
	if !diversify {
		return limit
	}
	return limit * 3
}
