// Package store persists solve results, keyed by a digest of the grid
// content, so repeated runs over the same puzzles can be skipped or
// reviewed later.
package store

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Solve is one recorded solving run.
type Solve struct {
	GridID    string // SHA-1 digest of the grid rows
	Width     int
	Height    int
	Markers   int
	Possible  bool
	Count     int64 // meaningful only when Possible
	CreatedAt time.Time
}

// Store provides persistence for solve results.
// The interface abstracts the backend so tests can run against the
// in-memory implementation.
type Store interface {
	// AddSolve stores a solve record. Re-adding the same grid digest
	// is idempotent.
	AddSolve(s *Solve) error

	// GetSolves retrieves all recorded solves, newest first.
	GetSolves() ([]*Solve, error)

	// SolveExists checks whether a grid digest was already solved.
	SolveExists(gridID string) (bool, error)

	// Close closes the backing resources.
	Close() error
}

// Config for store initialization.
type Config struct {
	// Path is the database file path.
	// Use ":memory:" for an in-memory store (useful for testing).
	Path string
}

// New creates a Store: in-memory for ":memory:", SQLite otherwise.
func New(cfg Config) (Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if cfg.Path == ":memory:" {
		return NewMemory(), nil
	}
	return NewSQLite(cfg.Path)
}

// GridID digests grid rows into the store key.
func GridID(rows []string) string {
	h := sha1.New()
	h.Write([]byte(strings.Join(rows, "\n")))
	return hex.EncodeToString(h.Sum(nil))
}
