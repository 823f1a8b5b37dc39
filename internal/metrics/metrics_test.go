// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package metrics

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// The collectors are process-global, so every assertion below works on
// deltas rather than absolute counter values.

func TestRecordDBQuery(t *testing.T) {
	series := DBQueryErrors.WithLabelValues("SELECT", "movies", "connection refused")
	before := testutil.ToFloat64(series)

	RecordDBQuery("SELECT", "movies", 10*time.Millisecond, nil)
	RecordDBQuery("INSERT", "movies", 5*time.Millisecond, nil)
	RecordDBQuery("SELECT", "movies", 500*time.Microsecond, nil)

	if got := testutil.ToFloat64(series); got != before {
		t.Errorf("error counter moved on successful queries: %v, want %v", got, before)
	}

	RecordDBQuery("SELECT", "movies", 100*time.Millisecond, errors.New("connection refused"))

	if got := testutil.ToFloat64(series); got != before+1 {
		t.Errorf("error counter = %v, want %v", got, before+1)
	}
}

func TestRecordDBQueryErrorTruncation(t *testing.T) {
	long := strings.Repeat("x", 80)
	RecordDBQuery("SELECT", "trunc_probe", time.Millisecond, errors.New(long))

	if got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("SELECT", "trunc_probe", long[:50])); got != 1 {
		t.Errorf("truncated label counter = %v, want 1", got)
	}

	exact := strings.Repeat("y", 50)
	RecordDBQuery("SELECT", "trunc_probe", time.Millisecond, errors.New(exact))

	if got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("SELECT", "trunc_probe", exact)); got != 1 {
		t.Errorf("exactly-50-char label counter = %v, want 1", got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	series := APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommendations", "200")
	before := testutil.ToFloat64(series)

	RecordAPIRequest("GET", "/api/v1/recommendations", "200", 25*time.Millisecond)
	RecordAPIRequest("GET", "/api/v1/recommendations", "200", 2*time.Millisecond)

	if got := testutil.ToFloat64(series); got != before+2 {
		t.Errorf("counter = %v, want %v", got, before+2)
	}

	// Distinct statuses and endpoints get their own series.
	RecordAPIRequest("GET", "/api/v1/recommendations", "404", time.Millisecond)
	RecordAPIRequest("POST", "/api/v1/model/rebuild", "202", 5*time.Millisecond)

	if got := testutil.ToFloat64(series); got != before+2 {
		t.Errorf("counter moved for another series: %v, want %v", got, before+2)
	}
	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/model/rebuild", "202")); got < 1 {
		t.Errorf("rebuild counter = %v, want at least 1", got)
	}
}

func TestRecordModelBuild(t *testing.T) {
	RecordModelBuild(time.Second, 1234, 567, nil)

	if got := testutil.ToFloat64(ModelMovies); got != 1234 {
		t.Errorf("ModelMovies = %v, want 1234", got)
	}
	if got := testutil.ToFloat64(ModelVocabularySize); got != 567 {
		t.Errorf("ModelVocabularySize = %v, want 567", got)
	}
	if got := testutil.ToFloat64(ModelLastBuildSuccess); got == 0 {
		t.Error("ModelLastBuildSuccess not set after a successful build")
	}

	// A failed build moves the outcome counter but not the serving gauges.
	failures := testutil.ToFloat64(ModelBuilds.WithLabelValues("failure"))
	RecordModelBuild(time.Second, 0, 0, errors.New("max_features must be positive"))

	if got := testutil.ToFloat64(ModelBuilds.WithLabelValues("failure")); got != failures+1 {
		t.Errorf("failure builds = %v, want %v", got, failures+1)
	}
	if got := testutil.ToFloat64(ModelMovies); got != 1234 {
		t.Errorf("ModelMovies after failure = %v, want 1234", got)
	}
	if got := testutil.ToFloat64(ModelVocabularySize); got != 567 {
		t.Errorf("ModelVocabularySize after failure = %v, want 567", got)
	}
}

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		name     string
		lookup   string
		result   string
		dur      time.Duration
		returned int
	}{
		{"title hit", "title", "hit", time.Millisecond, 5},
		{"title miss", "title", "miss", 100 * time.Microsecond, 0},
		{"id hit", "id", "hit", 2 * time.Millisecond, 10},
		{"invalid k", "title", "invalid", 50 * time.Microsecond, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := RecommendationRequests.WithLabelValues(tt.lookup, tt.result)
			before := testutil.ToFloat64(series)

			RecordRecommendation(tt.lookup, tt.result, tt.dur, tt.returned)

			if got := testutil.ToFloat64(series); got != before+1 {
				t.Errorf("request counter = %v, want %v", got, before+1)
			}
		})
	}
}

func TestRecordEvaluation(t *testing.T) {
	ok := testutil.ToFloat64(EvaluationRuns.WithLabelValues("success"))
	failed := testutil.ToFloat64(EvaluationRuns.WithLabelValues("failure"))

	RecordEvaluation(5*time.Second, nil)
	RecordEvaluation(time.Second, errors.New("model is nil"))

	if got := testutil.ToFloat64(EvaluationRuns.WithLabelValues("success")); got != ok+1 {
		t.Errorf("success runs = %v, want %v", got, ok+1)
	}
	if got := testutil.ToFloat64(EvaluationRuns.WithLabelValues("failure")); got != failed+1 {
		t.Errorf("failure runs = %v, want %v", got, failed+1)
	}
}

func TestSetEvaluationScores(t *testing.T) {
	SetEvaluationScores(map[string]float64{
		"precision": 0.42,
		"recall":    0.61,
		"mrr":       0.55,
		"ndcg":      0.58,
		"coverage":  0.87,
		"diversity": 0.33,
	})

	if got := testutil.ToFloat64(EvaluationScore.WithLabelValues("precision")); got != 0.42 {
		t.Errorf("precision score = %v, want 0.42", got)
	}
	if got := testutil.ToFloat64(EvaluationScore.WithLabelValues("coverage")); got != 0.87 {
		t.Errorf("coverage score = %v, want 0.87", got)
	}

	// Empty map is a no-op.
	SetEvaluationScores(map[string]float64{})
}

func TestRecordMerge(t *testing.T) {
	t.Run("success sets the catalog gauge", func(t *testing.T) {
		RecordMerge(30*time.Second, 4803, nil)
		if got := testutil.ToFloat64(DatasetMovies); got != 4803 {
			t.Errorf("DatasetMovies = %v, want 4803", got)
		}

		// A failed merge must not reset the gauge.
		RecordMerge(time.Second, 0, errors.New("csv import: truncated file"))
		if got := testutil.ToFloat64(DatasetMovies); got != 4803 {
			t.Errorf("DatasetMovies after failure = %v, want 4803", got)
		}
	})

	t.Run("errors are classified by stage prefix", func(t *testing.T) {
		classify := func(msg, wantType string) {
			t.Helper()
			series := MergeErrors.WithLabelValues(wantType)
			before := testutil.ToFloat64(series)
			RecordMerge(time.Second, 0, errors.New(msg))
			if got := testutil.ToFloat64(series); got != before+1 {
				t.Errorf("%s errors after %q = %v, want %v", wantType, msg, got, before+1)
			}
		}

		classify("csv import: no such file", "csv")
		classify("query movies: database is locked", "database")
		classify("data integrity (movies, row 7): id is NULL", "integrity")
		classify("something unexpected happened", "other")
	})
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != base+2 {
		t.Errorf("active requests = %v, want %v", got, base+2)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("active requests after drain = %v, want %v", got, base)
	}
}

func TestConcurrentMetricRecording(t *testing.T) {
	const goroutines = 50
	const perGoroutine = 20

	var wg sync.WaitGroup
	spawn := func(fn func(j int)) {
		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < perGoroutine; j++ {
					fn(j)
				}
			}()
		}
	}

	spawn(func(j int) {
		RecordDBQuery("SELECT", "movies", time.Duration(j)*time.Millisecond, nil)
	})
	spawn(func(j int) {
		RecordAPIRequest("GET", "/api/v1/recommendations", "200", time.Duration(j)*time.Millisecond)
		RecordRecommendation("title", "hit", time.Millisecond, 5)
	})
	spawn(func(_ int) {
		TrackActiveRequest(true)
		TrackActiveRequest(false)
	})

	wg.Wait()
}

func TestMetricsRegistration(t *testing.T) {
	collectors := map[string]prometheus.Collector{
		"DBQueryDuration":         DBQueryDuration,
		"DBQueryErrors":           DBQueryErrors,
		"APIRequestsTotal":        APIRequestsTotal,
		"APIRequestDuration":      APIRequestDuration,
		"APIActiveRequests":       APIActiveRequests,
		"APIRateLimitHits":        APIRateLimitHits,
		"ModelBuildDuration":      ModelBuildDuration,
		"ModelBuilds":             ModelBuilds,
		"ModelMovies":             ModelMovies,
		"ModelVocabularySize":     ModelVocabularySize,
		"ModelLastBuildSuccess":   ModelLastBuildSuccess,
		"RecommendationRequests":  RecommendationRequests,
		"RecommendationDuration":  RecommendationDuration,
		"RecommendationsReturned": RecommendationsReturned,
		"EvaluationDuration":      EvaluationDuration,
		"EvaluationRuns":          EvaluationRuns,
		"EvaluationScore":         EvaluationScore,
		"MergeDuration":           MergeDuration,
		"MergeRowsProcessed":      MergeRowsProcessed,
		"MergeErrors":             MergeErrors,
		"DatasetMovies":           DatasetMovies,
		"AppInfo":                 AppInfo,
		"AppUptime":               AppUptime,
	}

	for name, c := range collectors {
		ch := make(chan *prometheus.Desc, 4)
		c.Describe(ch)
		close(ch)
		if len(ch) == 0 {
			t.Errorf("%s has no descriptors", name)
		}
	}
}

func TestMetricsLint(t *testing.T) {
	RecordDBQuery("SELECT", "lint_probe", time.Millisecond, nil)
	RecordAPIRequest("GET", "/lint", "200", time.Millisecond)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, p := range problems {
		t.Logf("lint: %s: %s", p.Metric, p.Text)
	}
}

func BenchmarkRecordDBQuery(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordDBQuery("SELECT", "movies", 10*time.Millisecond, nil)
	}
}

func BenchmarkRecordAPIRequest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordAPIRequest("GET", "/api/v1/recommendations", "200", 25*time.Millisecond)
	}
}

func BenchmarkRecordRecommendation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordRecommendation("title", "hit", time.Millisecond, 5)
	}
}
