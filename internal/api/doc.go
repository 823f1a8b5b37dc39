// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

// Package api implements the HTTP surface of the recommendation
// engine: a Chi router, production middleware, and JSON handlers over
// the catalog store and the model manager.
//
// # Endpoints
//
//	GET  /api/v1/recommendations                  top-K by title
//	GET  /api/v1/recommendations/similar/{id}     top-K by catalog id
//	GET  /api/v1/movies                           paginated catalog listing
//	GET  /api/v1/movies/{id}                      single catalog record
//	GET  /api/v1/model                            serving model status
//	POST /api/v1/model/rebuild                    trigger a background rebuild
//	GET  /api/v1/evaluation                       offline ranking metrics
//	GET  /api/v1/health/live                      liveness probe
//	GET  /api/v1/health/ready                     readiness probe
//	GET  /api/v1/health                           full health document
//	GET  /metrics                                 Prometheus metrics
//	GET  /swagger/*                               OpenAPI UI
//
// # Response Envelope
//
// Every JSON endpoint wraps its payload in APIResponse:
//
//	{"success": true, "data": {...}, "meta": {"request_id": "...", "duration_ms": 2}}
//	{"success": false, "error": {"code": "NOT_FOUND", "message": "..."}}
//
// Error codes are stable strings (NOT_FOUND, VALIDATION_ERROR,
// SERVICE_UNAVAILABLE, ...) so clients can branch without parsing
// messages. Domain errors map onto them: an unknown title is
// NOT_FOUND, a bad parameter is VALIDATION_ERROR, an unbuilt model is
// SERVICE_UNAVAILABLE.
//
// # Middleware
//
// The global stack adds request IDs (X-Request-ID in and out),
// recovers panics, and applies CORS. Route groups add per-class IP
// rate limits, security headers, and Prometheus instrumentation keyed
// by route pattern.
package api
