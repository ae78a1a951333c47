package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite. The modernc driver is
// pure Go, so file-backed stores work without CGO.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-based store at path.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// AddSolve stores a solve record.
func (s *SQLiteStore) AddSolve(rec *Solve) error {
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO solves (grid_id, width, height, markers, possible, path_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		rec.GridID,
		rec.Width,
		rec.Height,
		rec.Markers,
		boolToInt(rec.Possible),
		rec.Count,
		createdAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting solve: %w", err)
	}
	return nil
}

// GetSolves retrieves all recorded solves, newest first.
func (s *SQLiteStore) GetSolves() ([]*Solve, error) {
	rows, err := s.db.Query(`
		SELECT grid_id, width, height, markers, possible, path_count, created_at
		FROM solves
		ORDER BY created_at DESC, grid_id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying solves: %w", err)
	}
	defer rows.Close()

	var solves []*Solve
	for rows.Next() {
		var (
			rec       Solve
			possible  int
			createdAt string
		)
		if err := rows.Scan(&rec.GridID, &rec.Width, &rec.Height, &rec.Markers, &possible, &rec.Count, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning solve: %w", err)
		}
		rec.Possible = possible != 0
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		solves = append(solves, &rec)
	}
	return solves, rows.Err()
}

// SolveExists checks whether a grid digest was already solved.
func (s *SQLiteStore) SolveExists(gridID string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM solves WHERE grid_id = ?", gridID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("querying solve: %w", err)
	}
	return count > 0, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
