// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package main

// Exit codes for one-shot commands
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (bad settings, unreadable paths)
	ExitDataError   = 3 // Data error (missing catalog, integrity failure)
	ExitNotFound    = 4 // Queried title or id not in the catalog
)
