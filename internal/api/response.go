// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/cinelens/cinelens/internal/logging"
)

// APIResponse is the envelope every endpoint writes. Success responses
// carry Data, failures carry Error, and Meta rides along on both.
type APIResponse struct {
	// Success is true when the request was handled without error
	Success bool `json:"success"`

	// Data is the endpoint payload, absent on error
	Data any `json:"data,omitempty"`

	// Error describes the failure, absent on success
	Error *APIError `json:"error,omitempty"`

	// Meta carries per-request metadata
	Meta *APIMeta `json:"meta,omitempty"`
}

// APIError is the error half of the envelope.
type APIError struct {
	// Code is the stable machine-readable error code
	Code string `json:"code"`

	// Message is the human-oriented description
	Message string `json:"message"`

	// Details carries structured context, such as per-field validation errors
	Details any `json:"details,omitempty"`

	// RequestID correlates the error with server logs
	RequestID string `json:"request_id,omitempty"`
}

// APIMeta carries tracing and pagination metadata.
type APIMeta struct {
	// RequestID correlates the response with server logs
	RequestID string `json:"request_id,omitempty"`

	// Timestamp is the server time the response was written
	Timestamp time.Time `json:"timestamp"`

	// DurationMs is the server-side processing time in milliseconds
	DurationMs int64 `json:"duration_ms,omitempty"`

	// Pagination describes the window of a list response
	Pagination *PaginationMeta `json:"pagination,omitempty"`
}

// PaginationMeta describes the window returned by list endpoints.
type PaginationMeta struct {
	// Total is the number of items across all pages
	Total int64 `json:"total,omitempty"`

	// Count is the number of items in this page
	Count int `json:"count"`

	// Offset is the position of the first item
	Offset int `json:"offset,omitempty"`

	// Limit is the requested page size
	Limit int `json:"limit,omitempty"`

	// HasMore is true when items remain past this page
	HasMore bool `json:"has_more"`
}

// Error codes carried in the envelope's error.code field.
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeValidationFailed   = "VALIDATION_ERROR"
	ErrCodeDatabaseError      = "DATABASE_ERROR"
)

// ResponseWriter writes envelope responses for one request. Every
// payload gets the request ID and elapsed time stamped into its meta
// block so responses can be matched to their log lines.
type ResponseWriter struct {
	w       http.ResponseWriter
	r       *http.Request
	started time.Time
}

// NewResponseWriter creates a response writer for one request.
func NewResponseWriter(w http.ResponseWriter, r *http.Request) *ResponseWriter {
	return &ResponseWriter{w: w, r: r, started: time.Now()}
}

// stamp fills the tracing fields on a meta block, allocating one when
// the caller brought no metadata of its own.
func (rw *ResponseWriter) stamp(meta *APIMeta) *APIMeta {
	if meta == nil {
		meta = &APIMeta{}
	}
	meta.Timestamp = time.Now()
	meta.DurationMs = time.Since(rw.started).Milliseconds()
	meta.RequestID = logging.RequestIDFromContext(rw.r.Context())
	return meta
}

// success writes a success envelope with the given status.
func (rw *ResponseWriter) success(status int, data any, meta *APIMeta) {
	rw.writeJSON(status, APIResponse{
		Success: true,
		Data:    data,
		Meta:    rw.stamp(meta),
	})
}

// Success writes a 200 envelope around data.
func (rw *ResponseWriter) Success(data any) {
	rw.success(http.StatusOK, data, nil)
}

// SuccessWithPagination writes a 200 envelope with pagination metadata
// for list endpoints.
func (rw *ResponseWriter) SuccessWithPagination(data any, pagination *PaginationMeta) {
	rw.success(http.StatusOK, data, &APIMeta{Pagination: pagination})
}

// Accepted writes a 202 envelope for work started in the background.
func (rw *ResponseWriter) Accepted(data any) {
	rw.success(http.StatusAccepted, data, nil)
}

// Error writes an error envelope with the given status code.
func (rw *ResponseWriter) Error(status int, code, message string) {
	rw.ErrorWithDetails(status, code, message, nil)
}

// ErrorWithDetails writes an error envelope carrying extra detail,
// typically the per-field breakdown of a validation failure.
func (rw *ResponseWriter) ErrorWithDetails(status int, code, message string, details any) {
	rw.writeJSON(status, APIResponse{
		Success: false,
		Error: &APIError{
			Code:      code,
			Message:   message,
			Details:   details,
			RequestID: logging.RequestIDFromContext(rw.r.Context()),
		},
		Meta: rw.stamp(nil),
	})
}

// Shorthand writers for the error statuses the handlers produce.

func (rw *ResponseWriter) BadRequest(message string) {
	rw.Error(http.StatusBadRequest, ErrCodeBadRequest, message)
}

func (rw *ResponseWriter) NotFound(message string) {
	rw.Error(http.StatusNotFound, ErrCodeNotFound, message)
}

func (rw *ResponseWriter) Conflict(message string) {
	rw.Error(http.StatusConflict, ErrCodeConflict, message)
}

func (rw *ResponseWriter) TooManyRequests(message string) {
	rw.Error(http.StatusTooManyRequests, ErrCodeTooManyRequests, message)
}

func (rw *ResponseWriter) InternalError(message string) {
	rw.Error(http.StatusInternalServerError, ErrCodeInternalError, message)
}

func (rw *ResponseWriter) ServiceUnavailable(message string) {
	rw.Error(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message)
}

// ValidationError writes a 400 envelope whose details carry the
// per-field validation breakdown.
func (rw *ResponseWriter) ValidationError(message string, validationErrors any) {
	rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidationFailed, message, validationErrors)
}

// DatabaseError logs the underlying error and writes a 500 envelope
// with a generic message, keeping storage internals out of responses.
func (rw *ResponseWriter) DatabaseError(err error) {
	logging.Ctx(rw.r.Context()).Error().Err(err).Msg("Catalog query failed")
	rw.Error(http.StatusInternalServerError, ErrCodeDatabaseError, "The movie catalog could not be queried")
}

func (rw *ResponseWriter) writeJSON(status int, body any) {
	h := rw.w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	rw.w.WriteHeader(status)
	if err := json.NewEncoder(rw.w).Encode(body); err != nil {
		logging.Error().Err(err).Msg("Response encoding failed")
	}
}
