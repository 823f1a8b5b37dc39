// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// GetValidator returns the shared validator instance. Initialized on
// first use; safe for concurrent callers.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		// The built-in tags cover the whole query and config surface:
		// required/max for titles, min/max for k, limit and offset,
		// gte/lte for the MMR lambda weight, oneof for enumerations.
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidationError is one failed field with its tag context and a
// ready-to-serve message.
type ValidationError struct {
	Field   string
	Tag     string
	Param   string
	Value   any
	Message string
}

// Error returns the translated message for this field.
func (e ValidationError) Error() string {
	return e.Message
}

// RequestValidationError aggregates every failed field of one request.
type RequestValidationError struct {
	Fields []ValidationError
}

// Error joins the per-field messages into one line.
func (ve *RequestValidationError) Error() string {
	if len(ve.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(ve.Fields))
	for i, fe := range ve.Fields {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// APIError mirrors the api package's error envelope fields. Declared
// here to avoid an import cycle with the api package.
type APIError struct {
	Code    string
	Message string
	Details map[string]any
}

// ToAPIError renders the failure set in the error envelope shape. A
// single failing field keeps its details flat; multiple fields
// aggregate under "fields" with a joined message.
func (ve *RequestValidationError) ToAPIError() *APIError {
	switch len(ve.Fields) {
	case 0:
		return &APIError{Code: "VALIDATION_ERROR", Message: "Validation failed"}

	case 1:
		fe := ve.Fields[0]
		return &APIError{
			Code:    "VALIDATION_ERROR",
			Message: fe.Message,
			Details: map[string]any{
				"field": fe.Field,
				"tag":   fe.Tag,
				"value": fe.Value,
			},
		}

	default:
		fields := make([]map[string]any, len(ve.Fields))
		msgs := make([]string, len(ve.Fields))
		for i, fe := range ve.Fields {
			fields[i] = map[string]any{
				"field":   fe.Field,
				"tag":     fe.Tag,
				"message": fe.Message,
			}
			msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
		}
		return &APIError{
			Code:    "VALIDATION_ERROR",
			Message: strings.Join(msgs, "; "),
			Details: map[string]any{"fields": fields},
		}
	}
}

// ValidateStruct runs the shared validator over s. Returns nil when s
// passes, otherwise a RequestValidationError with one entry per failed
// field.
func ValidateStruct(s any) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Struct() only returns a non-ValidationErrors error for
		// unvalidatable input, like a non-struct value.
		return &RequestValidationError{Fields: []ValidationError{{
			Field:   "unknown",
			Tag:     "unknown",
			Message: err.Error(),
		}}}
	}

	out := make([]ValidationError, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = ValidationError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: messageFor(fe),
		}
	}
	return &RequestValidationError{Fields: out}
}

// messageFor translates one field failure into a human-readable
// message. Only the tags the request and config structs actually use
// get bespoke wording; anything else falls back to a generic line.
func messageFor(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()
	counted := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "min":
		if counted {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if counted {
			return fmt.Sprintf("%s must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
