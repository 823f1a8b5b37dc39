// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/cinelens/cinelens/internal/recommend"
)

// TitleMaxLen bounds titles in human-readable result listings.
const TitleMaxLen = 70

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		_ = outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RecommendResponse is the response for the recommend command.
type RecommendResponse struct {
	Query   string                     `json:"query"`
	Results []recommend.Recommendation `json:"results"`
	Total   int                        `json:"total"`
}

// SimilarSource is the source movie info for the similar command response.
type SimilarSource struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// SimilarResponse is the response for the similar command.
type SimilarResponse struct {
	Source  SimilarSource              `json:"source"`
	Results []recommend.Recommendation `json:"results"`
	Total   int                        `json:"total"`
}

// MergeResponse is the response for the merge command.
type MergeResponse struct {
	Status  string `json:"status"`
	Movies  int64  `json:"movies"`
	Catalog string `json:"catalog"`
}

// VersionResponse is the response for the version command.
type VersionResponse struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// printRecommendationsHuman prints ranked results in human-readable format.
func printRecommendationsHuman(recs []recommend.Recommendation) {
	for i, r := range recs {
		fmt.Printf("%d. [%.4f] %d\n", i+1, r.Score, r.ID)
		fmt.Printf("   %s\n", truncateString(r.Title, TitleMaxLen))
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
