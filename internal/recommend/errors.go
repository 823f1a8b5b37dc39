// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package recommend

import "fmt"

// ConfigurationError reports invalid build or query parameters: an empty
// corpus, a non-positive MaxFeatures, a non-positive k. Not retryable,
// the caller's parameters are wrong.
type ConfigurationError struct {
	// Field names the offending parameter.
	Field string

	// Reason describes the constraint that was violated.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// NotFoundError reports a lookup with no match in the model.
// Recoverable by the caller (re-prompt, 404); never fatal.
type NotFoundError struct {
	// Title is the queried title as the caller supplied it, when the
	// lookup was by title.
	Title string

	// ID is the queried catalog id, when the lookup was by id.
	ID int64
}

func (e *NotFoundError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("movie not found: %q", e.Title)
	}
	return fmt.Sprintf("movie not found: id %d", e.ID)
}

// DataIntegrityError reports an upstream dataset missing required fields
// or rows at load time. Fatal to model build: the entry point must abort
// initialization rather than build a partial model.
type DataIntegrityError struct {
	// Source identifies the dataset being loaded (path or table).
	Source string

	// Row is the 1-based offending row, or 0 when the whole input is bad.
	Row int64

	// Reason describes what was missing or malformed.
	Reason string
}

func (e *DataIntegrityError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("data integrity: %s row %d: %s", e.Source, e.Row, e.Reason)
	}
	return fmt.Sprintf("data integrity: %s: %s", e.Source, e.Reason)
}

// newConfigErr builds a ConfigurationError for the given field.
func newConfigErr(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
