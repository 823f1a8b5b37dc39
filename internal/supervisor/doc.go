// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

/*
Package supervisor provides process supervision for the serve command
using suture v4.

This package implements a small supervisor tree that manages the
lifecycle of the long-running pieces of the serving process. It
provides Erlang/OTP-style supervision with automatic restart, failure
isolation, and graceful shutdown.

# Overview

The tree organizes services into two layers:

	Root ("cinelens")
	├── ModelSupervisor ("model-layer")
	│   └── ModelService (startup build + periodic rebuild)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The split exists for one reason: a failing rebuild cycle must not take
down HTTP serving. The API keeps answering from the last good model
while the model layer backs off and retries, and a crashed HTTP server
restarts without re-triggering a model build.

# Usage

Basic setup:

	logger := logging.NewSlogLogger()
	tree, err := supervisor.NewTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddModelService(services.NewModelService(manager, svcCfg, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	// Blocks until ctx is canceled.
	return tree.Serve(ctx)

# Failure Handling

The supervisor keeps a failure counter with exponential decay:

 1. Each service failure increments the counter.
 2. The counter decays over FailureDecay seconds.
 3. Past FailureThreshold the supervisor enters backoff and delays
    restarts by FailureBackoff.

So a single crash restarts immediately, while a crash loop (a missing
dataset file, a port conflict) settles into periodic retries instead of
a restart storm.

# Service Interface

Services implement suture.Service:

	type Service interface {
	    Serve(ctx context.Context) error
	}

Return nil to stop cleanly without restart, return an error to be
restarted, and return promptly once the context is canceled.

# What Is Not Supervised

DuckDB is not supervised: it is an embedded library, not a process, and
its connection lifecycle belongs to the dataset store. One-shot CLI
commands (merge, recommend, evaluate) run without the tree; only serve
builds one.

Supervisor events (service start, failure, backoff) are logged through
sutureslog into the zerolog pipeline via logging.NewSlogLogger.
*/
package supervisor
