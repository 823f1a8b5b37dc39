// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package recommend

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigurationError_Error(t *testing.T) {
	err := &ConfigurationError{Field: "max_features", Reason: "must be positive, got 0"}

	msg := err.Error()
	if !strings.Contains(msg, "max_features") {
		t.Errorf("Error() = %q, want it to name the field", msg)
	}
	if !strings.Contains(msg, "must be positive") {
		t.Errorf("Error() = %q, want it to carry the reason", msg)
	}
}

func TestNotFoundError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *NotFoundError
		want string
	}{
		{
			name: "by title",
			err:  &NotFoundError{Title: "Gone Missing"},
			want: `movie not found: "Gone Missing"`,
		},
		{
			name: "by id",
			err:  &NotFoundError{ID: 42},
			want: "movie not found: id 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDataIntegrityError_Error(t *testing.T) {
	withRow := &DataIntegrityError{Source: "movies.csv", Row: 17, Reason: "title is null"}
	if got := withRow.Error(); got != "data integrity: movies.csv row 17: title is null" {
		t.Errorf("Error() = %q", got)
	}

	wholeFile := &DataIntegrityError{Source: "movies.csv", Reason: "no rows"}
	if got := wholeFile.Error(); got != "data integrity: movies.csv: no rows" {
		t.Errorf("Error() = %q", got)
	}
}

func TestErrorsMatchThroughWrapping(t *testing.T) {
	base := &NotFoundError{Title: "Wrapped"}
	wrapped := fmt.Errorf("handling request: %w", base)

	var nfErr *NotFoundError
	if !errors.As(wrapped, &nfErr) {
		t.Fatal("errors.As failed through wrapping")
	}
	if nfErr.Title != "Wrapped" {
		t.Errorf("Title = %q, want %q", nfErr.Title, "Wrapped")
	}

	var cfgErr *ConfigurationError
	if errors.As(wrapped, &cfgErr) {
		t.Error("errors.As matched the wrong error type")
	}
}
