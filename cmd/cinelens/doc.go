// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

/*
Package main is the entry point for the cinelens command.

Cinelens is a self-hosted content-based movie recommendation engine. It
merges raw TMDB metadata exports into a DuckDB catalog, builds tag
vectors from genres, keywords, cast and director, and ranks movies by
cosine similarity. The same model answers one-shot CLI queries and the
supervised HTTP API.

# Commands

	cinelens serve              Run the HTTP API under a supervisor tree
	cinelens merge              Merge raw TMDB CSV exports into the catalog
	cinelens recommend <title>  Print movies similar to a title
	cinelens similar --id N     Print movies similar to a catalog id
	cinelens evaluate           Score the model against its own catalog
	cinelens version            Print version and build information

One-shot commands print JSON to stdout by default; pass --human for
readable tables. Logs go to stderr.

# Application Architecture

The serve command implements a layered architecture with Suture v4
process supervision:

	RootSupervisor ("cinelens")
	├── ModelSupervisor ("model-layer")
	│   └── Model Service (startup build + periodic rebuilds)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router, port 1895)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Catalog: DuckDB store, bootstrapped from raw CSVs when empty
 4. Model Manager: serialized build cycles, atomic model swap
 5. Supervisor Tree: Suture v4 process supervision
 6. HTTP Server: Chi router with middleware stack

The model layer and the API layer fail independently. A crashing
rebuild cycle backs off and retries under supervision while the HTTP
server keeps answering from the last good model; before the first
build the query endpoints answer 503.

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest
priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Server
	HTTP_HOST=0.0.0.0
	HTTP_PORT=1895
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Catalog
	DUCKDB_PATH=data/cinelens.duckdb
	MOVIES_CSV=data/tmdb_5000_movies.csv
	CREDITS_CSV=data/tmdb_5000_credits.csv

	# Model
	MODEL_MAX_FEATURES=5000      # Vocabulary size cap
	MODEL_TOP_CAST=3             # Actors per movie in the tag blob
	MODEL_REBUILD_INTERVAL=24h   # 0 disables periodic rebuilds
	MODEL_WORKERS=0              # 0 means GOMAXPROCS

	# API
	API_DEFAULT_K=5
	API_MAX_K=50
	RATE_LIMIT_REQUESTS=100      # 0 disables rate limiting
	CORS_ORIGINS=*

A .env file in the working directory is read into the process
environment before loading. See internal/config for the complete
reference.

# Signal Handling

The serve command handles graceful shutdown on SIGINT and SIGTERM:

 1. Stops accepting new HTTP connections
 2. Waits for in-flight requests (10s timeout)
 3. Stops the model service mid-rebuild if one is running
 4. Closes the catalog store
 5. Reports any services that failed to stop

# Usage Examples

Fresh install from the Kaggle TMDB exports:

	export MOVIES_CSV=data/tmdb_5000_movies.csv
	export CREDITS_CSV=data/tmdb_5000_credits.csv
	cinelens merge
	cinelens recommend "Avatar" --limit 10

Development server:

	export LOG_FORMAT=console
	go run ./cmd/cinelens serve

Production:

	export LOG_LEVEL=info LOG_FORMAT=json
	export DUCKDB_PATH=/data/cinelens.duckdb
	./cinelens serve

# Port 1895

The default port 1895 references the year of the Lumière brothers'
first public film screening.

# API Documentation

Swagger documentation is available at /swagger/index.html when the
server is running. The API groups endpoints into categories:

  - Recommendations: similarity queries by title or catalog id
  - Movies: catalog browsing with pagination
  - Model: status, rebuild, offline evaluation
  - Health: liveness and readiness probes

# See Also

  - internal/config: Configuration management
  - internal/supervisor: Process supervision
  - internal/api: HTTP handlers and routing
  - internal/recommend: Model build and ranking core
  - internal/dataset: DuckDB catalog storage
*/
package main
