// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

// Package validation wraps go-playground/validator v10 behind a
// process-wide singleton with human-readable messages. Every failed
// check surfaces through the API error envelope as the same
// VALIDATION_ERROR shape, so a handler validates with one call:
//
//	q := RecommendQuery{Title: r.URL.Query().Get("title"), K: k}
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    // respond 400 with verr.ToAPIError()
//	}
//
// Validation rules live in struct tags:
//
//	type RecommendQuery struct {
//	    Title string `validate:"required,max=512"`
//	    K     int    `validate:"min=1,max=100"`
//	}
//
// # Error shape
//
// One failing field keeps its details flat:
//
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "K must be at least 1",
//	    "details": {"field": "K", "tag": "min", "value": 0}
//	}
//
// Several failing fields aggregate under details.fields, and the
// message joins the per-field messages in field order.
//
// The singleton is initialized once and safe for concurrent use. It
// caches struct reflection info, so validating the same request type
// repeatedly is cheap.
package validation
