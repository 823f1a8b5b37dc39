// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/cinelens/cinelens/internal/validation"
)

// RecommendQuery is the validated query surface of the title-based
// recommendation endpoint. The configured MaxK cap is enforced in the
// handler, since it is deployment-specific rather than structural.
type RecommendQuery struct {
	Title     string `validate:"required,max=512"`
	K         int    `validate:"min=1"`
	Diversify bool
	Lambda    float64 `validate:"gte=0,lte=1"`
}

// SimilarQuery is the validated query surface of the id-based
// recommendation endpoint.
type SimilarQuery struct {
	ID        int64 `validate:"min=1"`
	K         int   `validate:"min=1"`
	Diversify bool
	Lambda    float64 `validate:"gte=0,lte=1"`
}

// MoviesQuery is the validated query surface of the catalog listing.
type MoviesQuery struct {
	Limit  int `validate:"min=1,max=500"`
	Offset int `validate:"min=0"`
}

// EvaluationQuery is the validated query surface of the offline
// evaluation endpoint. Sample zero means the whole catalog.
type EvaluationQuery struct {
	K      int `validate:"min=1,max=100"`
	Sample int `validate:"min=0,max=5000"`
}

// validateRequest runs the struct tags through go-playground/validator
// and converts any failure into a VALIDATION_ERROR payload.
func validateRequest(v any) *APIError {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return nil
	}
	apiErr := verr.ToAPIError()
	return &APIError{Code: apiErr.Code, Message: apiErr.Message, Details: apiErr.Details}
}

// getIntParam reads an integer query parameter, falling back on absent
// or unparseable values.
func getIntParam(r *http.Request, key string, fallback int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(key)); err == nil {
		return v
	}
	return fallback
}

// getFloatParam reads a float query parameter, falling back on absent
// or unparseable values.
func getFloatParam(r *http.Request, key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(r.URL.Query().Get(key), 64); err == nil {
		return v
	}
	return fallback
}

// getBoolParam reads a boolean query parameter. Only "true" and "1"
// count as true; an absent parameter keeps the fallback.
func getBoolParam(r *http.Request, key string, fallback bool) bool {
	if v := r.URL.Query().Get(key); v != "" {
		return v == "true" || v == "1"
	}
	return fallback
}

// sanitizeLogValue escapes control characters so request-supplied text
// cannot forge or break up log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 0x20 && r != 0x7F {
			b.WriteRune(r)
			continue
		}
		fmt.Fprintf(&b, "\\x%02x", r)
	}
	return b.String()
}
