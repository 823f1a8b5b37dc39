// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*ModelService)(nil)

// mockModelBuilder is a test double for the ModelBuilder interface.
type mockModelBuilder struct {
	mu         sync.Mutex
	buildCalls int
	buildErr   error
	buildDelay time.Duration
}

func (m *mockModelBuilder) Rebuild(ctx context.Context) error {
	m.mu.Lock()
	m.buildCalls++
	m.mu.Unlock()

	if m.buildDelay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.buildDelay):
		}
	}

	return m.buildErr
}

func (m *mockModelBuilder) getBuildCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buildCalls
}

// serveFor runs a fresh service over the builder until the deadline
// passes and reports the Serve error.
func serveFor(t *testing.T, builder ModelBuilder, cfg ModelServiceConfig, d time.Duration) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	return NewModelService(builder, cfg, zerolog.Nop()).Serve(ctx)
}

func TestModelService_String(t *testing.T) {
	service := NewModelService(&mockModelBuilder{}, ModelServiceConfig{}, zerolog.Nop())

	if got := service.String(); got != "model-service" {
		t.Errorf("String() = %q, want %q", got, "model-service")
	}
}

func TestModelService_BuildOnStart(t *testing.T) {
	builder := &mockModelBuilder{}

	// The hour-long interval keeps the ticker quiet so only the
	// startup build can run.
	cfg := ModelServiceConfig{BuildOnStart: true, RebuildInterval: time.Hour}
	_ = serveFor(t, builder, cfg, 200*time.Millisecond)

	if got := builder.getBuildCalls(); got != 1 {
		t.Errorf("Rebuild() called %d times, want 1", got)
	}
}

func TestModelService_NoBuildOnStart(t *testing.T) {
	builder := &mockModelBuilder{}

	cfg := ModelServiceConfig{BuildOnStart: false, RebuildInterval: time.Hour}
	_ = serveFor(t, builder, cfg, 100*time.Millisecond)

	if got := builder.getBuildCalls(); got != 0 {
		t.Errorf("Rebuild() called %d times, want 0", got)
	}
}

func TestModelService_ScheduledRebuilds(t *testing.T) {
	builder := &mockModelBuilder{}

	cfg := ModelServiceConfig{BuildOnStart: false, RebuildInterval: 50 * time.Millisecond}
	_ = serveFor(t, builder, cfg, 130*time.Millisecond)

	// Ticks at 50ms and 100ms
	if got := builder.getBuildCalls(); got < 2 {
		t.Errorf("Rebuild() called %d times, want >= 2", got)
	}
}

func TestModelService_PeriodicDisabled(t *testing.T) {
	builder := &mockModelBuilder{}

	cfg := ModelServiceConfig{BuildOnStart: false, RebuildInterval: 0}
	err := serveFor(t, builder, cfg, 100*time.Millisecond)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() returned %v, want context.DeadlineExceeded", err)
	}
	if got := builder.getBuildCalls(); got != 0 {
		t.Errorf("Rebuild() called %d times, want 0", got)
	}
}

func TestModelService_StartupBuildFailureReturnsError(t *testing.T) {
	buildErr := errors.New("catalog is empty")
	builder := &mockModelBuilder{buildErr: buildErr}
	cfg := ModelServiceConfig{BuildOnStart: true, RebuildInterval: time.Hour}

	service := NewModelService(builder, cfg, zerolog.Nop())

	// The error must surface so the supervisor restarts the service
	// under backoff instead of idling until the next tick.
	err := service.Serve(context.Background())
	if !errors.Is(err, buildErr) {
		t.Errorf("Serve() returned %v, want wrapped %v", err, buildErr)
	}
}

func TestModelService_ScheduledFailureKeepsRunning(t *testing.T) {
	builder := &mockModelBuilder{buildErr: errors.New("load failed")}

	cfg := ModelServiceConfig{BuildOnStart: false, RebuildInterval: 40 * time.Millisecond}
	err := serveFor(t, builder, cfg, 150*time.Millisecond)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() returned %v, want context.DeadlineExceeded", err)
	}

	// Failures on the schedule are retried, not fatal.
	if got := builder.getBuildCalls(); got < 2 {
		t.Errorf("Rebuild() called %d times, want >= 2", got)
	}
}

func TestModelService_GracefulShutdown(t *testing.T) {
	builder := &mockModelBuilder{buildDelay: 50 * time.Millisecond}
	cfg := ModelServiceConfig{BuildOnStart: true, RebuildInterval: time.Hour}

	service := NewModelService(builder, cfg, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- service.Serve(ctx) }()

	// Wait for the build to start, then cancel mid-build.
	time.Sleep(25 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve() did not complete in time")
	}
}
