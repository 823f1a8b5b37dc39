// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package supervisor

import (
	"context"
	"errors"
	"sync"
)

// errInjectedFailure is what a MockService returns while it still has
// failures left to inject.
var errInjectedFailure = errors.New("injected mock failure")

// MockService is a test helper implementing suture.Service with
// controllable failure behavior.
type MockService struct {
	name string

	mu       sync.Mutex
	starts   int
	stops    int
	failures int
	failN    int
	serveErr error
}

// NewMockService creates a mock service for supervisor tests.
func NewMockService(name string) *MockService {
	return &MockService{name: name}
}

// Serve implements suture.Service. It fails the configured number of
// times, then either returns the configured error or blocks until the
// context is canceled.
func (m *MockService) Serve(ctx context.Context) error {
	m.mu.Lock()
	m.starts++
	injectFail := m.failures < m.failN
	if injectFail {
		m.failures++
	}
	serveErr := m.serveErr
	m.mu.Unlock()

	defer m.markStopped()

	switch {
	case injectFail:
		return errInjectedFailure
	case serveErr != nil:
		return serveErr
	}

	<-ctx.Done()
	return ctx.Err()
}

func (m *MockService) markStopped() {
	m.mu.Lock()
	m.stops++
	m.mu.Unlock()
}

// SetError makes every subsequent Serve call return err immediately.
func (m *MockService) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.serveErr = err
}

// SetFailCount makes the next n Serve calls fail before the service
// settles down.
func (m *MockService) SetFailCount(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failN = n
}

// StartCount returns how many times Serve was entered.
func (m *MockService) StartCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts
}

// StopCount reports how many Serve calls have returned.
func (m *MockService) StopCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stops
}

// String implements fmt.Stringer; suture uses it to identify services
// in log messages.
func (m *MockService) String() string {
	return m.name
}
