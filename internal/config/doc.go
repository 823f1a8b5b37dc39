// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

/*
Package config provides centralized configuration management for Cinelens.

Configuration is layered with Koanf v2. Later layers override earlier ones:

 1. Built-in defaults
 2. Optional YAML config file
 3. Environment variables

# Configuration Structure

The package organizes configuration into logical groups:

  - ServerConfig: HTTP server settings (host, port, timeouts)
  - DatasetConfig: DuckDB catalog path and raw TMDB CSV locations
  - ModelConfig: model build parameters and rebuild schedule
  - EvalConfig: offline evaluation parameters
  - APIConfig: query limits, rate limiting, CORS
  - LoggingConfig: log level and format

# Environment Variables

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 1895)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging, production (default: development)

Dataset (DatasetConfig):
  - DUCKDB_PATH: Catalog database file (default: data/cinelens.duckdb)
  - MOVIES_CSV: Raw TMDB movies export (default: data/raw/tmdb_5000_movies.csv)
  - CREDITS_CSV: Raw TMDB credits export (default: data/raw/tmdb_5000_credits.csv)
  - DUCKDB_MAX_MEMORY: Memory limit (default: 2GB)
  - DUCKDB_THREADS: Thread count, 0 = CPU count (default: 0)

Model (ModelConfig):
  - MODEL_MAX_FEATURES: Vocabulary size cap (default: 5000)
  - MODEL_TOP_CAST: Cast members per movie (default: 3)
  - MODEL_DIRECTOR_JOB: Crew job treated as director (default: Director)
  - MODEL_KEEP_NON_ALPHA: Keep digit-only tokens (default: false)
  - MODEL_WORKERS: Similarity workers, 0 = GOMAXPROCS (default: 0)
  - MODEL_REBUILD_INTERVAL: Periodic rebuild, 0 disables (default: 24h)
  - MODEL_BUILD_TIMEOUT: Per-build deadline (default: 30m)

Evaluation (EvalConfig):
  - EVAL_K: Recommendations per query (default: 10)
  - EVAL_SAMPLE: Query sample size, 0 = all (default: 100)
  - EVAL_MIN_COMMON_TAGS: Relevance threshold (default: 3)
  - EVAL_SEED: Sampling seed (default: 42)

API (APIConfig):
  - API_DEFAULT_K: Recommendation count when k is omitted (default: 5)
  - API_MAX_K: Per-request cap on k (default: 50)
  - RATE_LIMIT_REQUESTS: Requests per window, 0 disables (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller location (default: false)

# Config File

A YAML file is loaded from CONFIG_PATH if set, otherwise from the first
of config.yaml, config.yml, /etc/cinelens/config.yaml,
/etc/cinelens/config.yml that exists. Keys mirror the koanf struct
tags:

	server:
	  port: 1895
	model:
	  max_features: 5000
	api:
	  default_k: 5

A .env file in the working directory is loaded into the process
environment before the layers are read.

# Usage Example

	cfg, err := config.Load()
	if err != nil {
	    log.Fatalf("failed to load config: %v", err)
	}
	fmt.Printf("listening on %s:%d\n", cfg.Server.Host, cfg.Server.Port)

# Thread Safety

The Config struct is immutable after Load() returns, making it safe for
concurrent reads from multiple goroutines without synchronization.
*/
package config
