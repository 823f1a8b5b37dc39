// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog queries
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Catalog query latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Catalog query failures by operation, table and error",
		},
		[]string{"operation", "table", "error_type"},
	)

	// HTTP surface
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "HTTP requests served",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "In-flight HTTP requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// Model Build Metrics
	ModelBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "model_build_duration_seconds",
			Help:    "Duration of full model builds in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300, 600},
		},
	)

	ModelBuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_builds_total",
			Help: "Total number of model builds by result",
		},
		[]string{"result"}, // result is success or failure
	)

	ModelMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_movies",
			Help: "Number of movies in the serving model",
		},
	)

	ModelVocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_vocabulary_size",
			Help: "Number of terms in the serving vocabulary",
		},
	)

	ModelLastBuildSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "model_last_build_timestamp",
			Help: "Unix timestamp of last successful model build",
		},
	)

	// Recommendation Metrics
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"lookup", "result"}, // lookup: "title", "id"; result: "hit", "miss", "invalid"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of recommendation ranking in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	RecommendationsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendations_returned",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{1, 3, 5, 10, 20, 50},
		},
	)

	// Evaluation Metrics
	EvaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "evaluation_duration_seconds",
			Help:    "Duration of offline evaluation runs in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
		},
	)

	EvaluationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evaluation_runs_total",
			Help: "Total number of offline evaluation runs by result",
		},
		[]string{"result"}, // result is success or failure
	)

	EvaluationScore = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "evaluation_score",
			Help: "Latest offline evaluation score per metric",
		},
		[]string{"metric"}, // "precision", "recall", "mrr", "ndcg", "coverage", "diversity"
	)

	// Merge Metrics
	MergeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "merge_duration_seconds",
			Help:    "Duration of dataset merge operations in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	MergeRowsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "merge_rows_processed_total",
			Help: "Total number of catalog rows written during merges",
		},
	)

	MergeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "merge_errors_total",
			Help: "Total number of dataset merge errors",
		},
		[]string{"error_type"}, // "csv", "database", "integrity", "other"
	)

	DatasetMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_movies",
			Help: "Number of movie rows in the merged catalog",
		},
	)

	// Process
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Build metadata as a constant 1, labelled by version",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Seconds since the process started",
		},
	)
)

// maxErrorLabel bounds the error_type label so unbounded error messages
// cannot explode series cardinality.
const maxErrorLabel = 50

// RecordDBQuery observes one catalog query, counting the error when the
// query failed.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err == nil {
		return
	}
	label := err.Error()
	if len(label) > maxErrorLabel {
		label = label[:maxErrorLabel]
	}
	DBQueryErrors.WithLabelValues(operation, table, label).Inc()
}

// RecordAPIRequest counts one served request and observes its latency.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest moves the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordModelBuild records one model build. On success the serving
// gauges are updated; on failure only the outcome counter moves.
func RecordModelBuild(duration time.Duration, movies, vocabularySize int, err error) {
	ModelBuildDuration.Observe(duration.Seconds())
	if err != nil {
		ModelBuilds.WithLabelValues("failure").Inc()
		return
	}
	ModelBuilds.WithLabelValues("success").Inc()
	ModelMovies.Set(float64(movies))
	ModelVocabularySize.Set(float64(vocabularySize))
	ModelLastBuildSuccess.Set(float64(time.Now().Unix()))
}

// RecordRecommendation records one recommendation request outcome.
// lookup is "title" or "id"; result is "hit", "miss" or "invalid".
func RecordRecommendation(lookup, result string, duration time.Duration, returned int) {
	RecommendationRequests.WithLabelValues(lookup, result).Inc()
	RecommendationDuration.Observe(duration.Seconds())
	if returned > 0 {
		RecommendationsReturned.Observe(float64(returned))
	}
}

// RecordEvaluation records one offline evaluation run
func RecordEvaluation(duration time.Duration, err error) {
	EvaluationDuration.Observe(duration.Seconds())
	if err != nil {
		EvaluationRuns.WithLabelValues("failure").Inc()
		return
	}
	EvaluationRuns.WithLabelValues("success").Inc()
}

// SetEvaluationScores publishes the latest evaluation scores
func SetEvaluationScores(scores map[string]float64) {
	for metric, value := range scores {
		EvaluationScore.WithLabelValues(metric).Set(value)
	}
}

// RecordMerge records a dataset merge operation
func RecordMerge(duration time.Duration, rows int64, err error) {
	MergeDuration.Observe(duration.Seconds())
	MergeRowsProcessed.Add(float64(rows))
	if err != nil {
		MergeErrors.WithLabelValues(mergeErrorType(err)).Inc()
		return
	}
	DatasetMovies.Set(float64(rows))
}

// mergeErrorType classifies a merge error by the prefix its stage
// wraps it with.
func mergeErrorType(err error) string {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "csv"):
		return "csv"
	case strings.HasPrefix(msg, "database"), strings.HasPrefix(msg, "query"):
		return "database"
	case strings.HasPrefix(msg, "data integrity"):
		return "integrity"
	default:
		return "other"
	}
}
