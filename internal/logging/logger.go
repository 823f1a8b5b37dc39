// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

// Package logging provides the process-wide zerolog logger for Cinelens.
//
// The logger is configured once at startup:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
// and used through package-level event starters, or through child
// loggers carrying default fields:
//
//	logging.Info().Msg("server starting")
//
//	logger := logging.With().Str("component", "dataset").Logger()
//	logger.Info().Int("rows", n).Msg("catalog loaded")
//
// Always terminate log chains with .Msg() or .Send(); a chain without a
// terminator is never emitted.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config controls the process-wide logger.
type Config struct {
	// Level is the minimum level to emit: trace, debug, info, warn,
	// error, fatal, panic, disabled. Unknown values fall back to info.
	Level string

	// Format selects the output encoding: "json" (default) or
	// "console" for colored human-readable lines.
	Format string

	// Caller adds the emitting file and line to every event.
	Caller bool

	// Timestamp adds an RFC3339 timestamp to every event.
	Timestamp bool

	// Output is the destination writer. Defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the production defaults: info-level JSON on
// stderr with timestamps.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "json", Timestamp: true, Output: os.Stderr}
}

var (
	// log is the process-wide logger.
	log zerolog.Logger

	// mu guards reads of log against reconfiguration.
	mu sync.RWMutex
)

//nolint:gochecknoinits // logging must work before the explicit Init() call
func init() {
	initLogger(DefaultConfig())
}

// Init configures the global logger. Called early in startup, once the
// configuration is known. Safe to call again; later calls reconfigure.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	initLogger(cfg)
}

// initLogger applies cfg to the global logger. Callers hold mu.
func initLogger(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = cfg.Output
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.TimeOnly}
	}

	lc := zerolog.New(out).With()
	if cfg.Timestamp {
		lc = lc.Timestamp()
	}
	if cfg.Caller {
		lc = lc.Caller()
	}
	log = lc.Logger()
}

// levelNames maps config strings to zerolog levels. "warning" is
// accepted as an alias for warn.
var levelNames = map[string]zerolog.Level{
	"trace":    zerolog.TraceLevel,
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"fatal":    zerolog.FatalLevel,
	"panic":    zerolog.PanicLevel,
	"disabled": zerolog.Disabled,
}

// parseLevel converts a level string to a zerolog.Level, defaulting to
// info for anything unrecognized (including the empty string).
func parseLevel(level string) zerolog.Level {
	if lvl, ok := levelNames[strings.ToLower(level)]; ok {
		return lvl
	}
	return zerolog.InfoLevel
}

// current returns a copy of the global logger under the read lock.
// zerolog loggers are values, so the copy stays valid after a
// concurrent SetLogger or Init.
func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Logger returns the global logger for direct zerolog use.
func Logger() zerolog.Logger {
	return current()
}

// SetLogger replaces the global logger. Tests use this to capture
// output and restore the original afterwards.
//
//nolint:gocritic // hugeParam: zerolog loggers are value types
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// With creates a child logger context with additional default fields.
//
//	datasetLogger := logging.With().Str("component", "dataset").Logger()
func With() zerolog.Context {
	return current().With()
}

// Debug starts a debug-level event.
func Debug() *zerolog.Event {
	l := current()
	return l.Debug()
}

// Info starts an info-level event.
func Info() *zerolog.Event {
	l := current()
	return l.Info()
}

// Warn starts a warn-level event.
func Warn() *zerolog.Event {
	l := current()
	return l.Warn()
}

// Error starts an error-level event.
func Error() *zerolog.Event {
	l := current()
	return l.Error()
}

// Fatal starts a fatal-level event. The process exits after the
// message is written.
func Fatal() *zerolog.Event {
	l := current()
	return l.Fatal()
}

// NewTestLogger returns a logger writing to w, for tests that assert
// on captured output.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
