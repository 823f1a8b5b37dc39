// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/cinelens/cinelens/internal/config"
	"github.com/cinelens/cinelens/internal/logging"
)

// Store wraps the DuckDB connection holding the movie catalog.
type Store struct {
	conn *sql.DB
	cfg  *config.DatasetConfig
}

// Open opens (or creates) the catalog database and initializes the
// schema. The parent directory of the database file is created on
// demand.
func Open(cfg *config.DatasetConfig) (*Store, error) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	// 0750 satisfies gosec G301 for the created directory.
	if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create catalog directory %s: %w", dir, err)
		}
	}

	dsn := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s",
		cfg.Path, threads, cfg.MaxMemory)

	conn, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", cfg.Path, err)
	}

	s := &Store{conn: conn, cfg: cfg}

	if err := s.createTables(); err != nil {
		closeQuietly(conn)
		return nil, err
	}

	logging.Debug().
		Str("path", cfg.Path).
		Int("threads", threads).
		Str("max_memory", cfg.MaxMemory).
		Msg("Catalog store opened")

	return s, nil
}

// Close closes the database connection.
// It performs a CHECKPOINT first to flush the WAL into the main
// database file, so the next open does not have to replay it.
func (s *Store) Close() error {
	if s.conn == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.Checkpoint(ctx); err != nil {
		// Best effort, the data is still in the WAL
		logging.Warn().Err(err).Msg("Checkpoint before close failed")
	}

	return s.conn.Close()
}

// Ping verifies the database connection is alive
func (s *Store) Ping(ctx context.Context) error {
	if s.conn == nil {
		return fmt.Errorf("catalog connection is nil")
	}
	return s.conn.PingContext(ctx)
}

// Checkpoint forces a WAL checkpoint
func (s *Store) Checkpoint(ctx context.Context) error {
	if _, err := s.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}
	return nil
}

// closeQuietly closes a resource on error paths where the Close error
// is not actionable.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
