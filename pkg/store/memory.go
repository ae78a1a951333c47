package store

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore implements Store using in-memory data structures.
type MemoryStore struct {
	mu     sync.RWMutex
	solves map[string]*Solve // keyed by GridID
}

// NewMemory creates a new in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		solves: make(map[string]*Solve),
	}
}

// AddSolve stores a solve record.
func (m *MemoryStore) AddSolve(s *Solve) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.solves[s.GridID]; exists {
		// Idempotent - already recorded
		return nil
	}

	rec := *s
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	m.solves[s.GridID] = &rec
	return nil
}

// GetSolves retrieves all recorded solves, newest first.
func (m *MemoryStore) GetSolves() ([]*Solve, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	solves := make([]*Solve, 0, len(m.solves))
	for _, s := range m.solves {
		solves = append(solves, s)
	}
	sort.Slice(solves, func(i, j int) bool {
		if solves[i].CreatedAt.Equal(solves[j].CreatedAt) {
			return solves[i].GridID < solves[j].GridID
		}
		return solves[i].CreatedAt.After(solves[j].CreatedAt)
	})
	return solves, nil
}

// SolveExists checks whether a grid digest was already solved.
func (m *MemoryStore) SolveExists(gridID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.solves[gridID]
	return exists, nil
}

// Close is a no-op for the memory store.
func (m *MemoryStore) Close() error {
	return nil
}
