// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package implements application instrumentation using the Prometheus
client library, exposing metrics for monitoring performance, errors, and
system health.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - DuckDB query performance
  - Model build duration and catalog size
  - Recommendation request outcomes
  - Offline evaluation scores
  - Dataset merge statistics

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:1895/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Database Metrics:
  - duckdb_query_duration_seconds: Query execution time (histogram)
    Labels: operation, table
  - duckdb_query_errors_total: Failed queries (counter)
    Labels: operation, table, error_type

Model Metrics:
  - model_build_duration_seconds: Full build pipeline duration (histogram)
  - model_builds_total: Build outcomes (counter)
    Labels: result (success, failure)
  - model_movies: Movies in the serving model (gauge)
  - model_vocabulary_size: Terms in the serving vocabulary (gauge)
  - model_last_build_timestamp: Unix timestamp of last successful build (gauge)

Recommendation Metrics:
  - recommendation_requests_total: Recommendation outcomes (counter)
    Labels: lookup (title, id), result (hit, miss, invalid)
  - recommendation_duration_seconds: Ranking latency (histogram)
  - recommendations_returned: Result list sizes (histogram)

Evaluation Metrics:
  - evaluation_duration_seconds: Offline evaluation duration (histogram)
  - evaluation_runs_total: Evaluation outcomes (counter)
    Labels: result
  - evaluation_score: Latest score per metric (gauge)
    Labels: metric (precision, recall, mrr, ndcg, coverage, diversity)

Merge Metrics:
  - merge_duration_seconds: Dataset merge duration (histogram)
  - merge_rows_processed_total: Catalog rows written (counter)
  - merge_errors_total: Merge failures (counter)
    Labels: error_type (csv, database, integrity, other)
  - dataset_movies: Rows in the merged catalog (gauge)

System Metrics:
  - app_info: Application version and build information (gauge)
    Labels: version, go_version
  - app_uptime_seconds: Application uptime (gauge)

# Usage

Record metrics through the helper functions rather than the raw
collectors:

	start := time.Now()
	rows, err := store.LoadMovies(ctx)
	metrics.RecordDBQuery("SELECT", "movies", time.Since(start), err)

All collectors are registered with the default Prometheus registry at
package init via promauto, so importing the package is enough to expose
them.
*/
package metrics
