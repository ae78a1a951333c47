// Package diagup counts monotonic lattice paths across staircase
// puzzle grids.
//
// A puzzle is a rectangular character grid with 'X' marker cells. The
// solver checks that the markers form a decomposable staircase layout
// and, if so, counts the paths from the first marker to the last as
// the product of Delannoy-style path counts between each consecutive
// marker pair.
//
// # Basic Usage
//
// Solve an in-memory grid:
//
//	result, err := diagup.Solve([]string{"..X", ".X.", "X.."})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.Possible {
//	    fmt.Println(result.Count) // 9
//	} else {
//	    fmt.Println(result) // "<invalid input>"
//	}
//
// # With Persistence
//
// Record every solve into a store:
//
//	st, err := store.New(store.Config{Path: "solves.db"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer st.Close()
//
//	s := diagup.NewSolver(diagup.WithStore(st))
//	result, err := s.SolveFile("puzzle.txt")
package diagup

import (
	"fmt"
	"io"

	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/grid"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/parser"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/solver"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/store"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/PiJoules/Moving-diagonally-Up-in-Life"
// without subpackages.
type (
	// Position is a cell coordinate within a grid.
	Position = types.Position

	// Result is either a path count or the distinguished impossible value.
	Result = types.Result

	// MalformedGridError reports rows of unequal width.
	MalformedGridError = types.MalformedGridError

	// NoMarkersError reports a grid without marker cells.
	NoMarkersError = types.NoMarkersError

	// InconsistentStateError signals an internal invariant violation.
	InconsistentStateError = types.InconsistentStateError
)

// InvalidInput is the fixed rendering of an impossible layout.
const InvalidInput = types.InvalidInput

// Solver solves staircase puzzle grids.
type Solver struct {
	store store.Store
}

// Option configures a Solver.
type Option func(*Solver)

// WithStore records every solve into st. The caller owns st's
// lifecycle; the solver never closes it.
func WithStore(st store.Store) Option {
	return func(s *Solver) {
		s.store = st
	}
}

// NewSolver creates a Solver with the given options.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve checks and counts a grid given as raw rows.
//
// Returns the impossible Result for a well-formed but non-decomposable
// layout. Errors are fatal: malformed rows, no markers, or an internal
// invariant violation.
func (s *Solver) Solve(rows []string) (Result, error) {
	g, err := grid.New(rows)
	if err != nil {
		return types.Impossible(), err
	}
	return s.solveGrid(g)
}

// SolveReader parses a full puzzle document (header line plus rows)
// from r and solves it.
func (s *Solver) SolveReader(r io.Reader) (Result, error) {
	g, err := parser.FromReader(r)
	if err != nil {
		return types.Impossible(), err
	}
	return s.solveGrid(g)
}

// SolveFile parses and solves the puzzle file at path.
func (s *Solver) SolveFile(path string) (Result, error) {
	g, err := parser.FromFile(path)
	if err != nil {
		return types.Impossible(), err
	}
	return s.solveGrid(g)
}

// SolveString parses and solves an in-memory puzzle document.
func (s *Solver) SolveString(doc string) (Result, error) {
	g, err := parser.FromString(doc)
	if err != nil {
		return types.Impossible(), err
	}
	return s.solveGrid(g)
}

func (s *Solver) solveGrid(g *grid.Grid) (Result, error) {
	res, err := solver.Solve(g)
	if err != nil {
		return res, err
	}

	if s.store != nil {
		rec := &store.Solve{
			GridID:   store.GridID(g.Rows()),
			Width:    g.Width(),
			Height:   g.Height(),
			Markers:  len(g.Markers()),
			Possible: res.Possible,
			Count:    res.Count,
		}
		if err := s.store.AddSolve(rec); err != nil {
			return res, fmt.Errorf("recording solve: %w", err)
		}
	}
	return res, nil
}

// Solve is the one-shot form of NewSolver().Solve(rows).
func Solve(rows []string) (Result, error) {
	return NewSolver().Solve(rows)
}
