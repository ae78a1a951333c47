// Package solver aggregates the validity walk and the per-rectangle
// path counts into a whole-grid result.
package solver

import (
	"sync"

	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/grid"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/lattice"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/types"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/walk"
)

// Puzzle memoizes the derived answers for one immutable grid. The
// validity verdict and the path count are each computed at most once
// for the puzzle's lifetime; the grid never changes, so there is no
// invalidation path.
type Puzzle struct {
	g *grid.Grid

	possibleOnce sync.Once
	possible     bool
	possibleErr  error

	resultOnce sync.Once
	result     types.Result
	resultErr  error
}

// New wraps a grid for solving.
func New(g *grid.Grid) *Puzzle {
	return &Puzzle{g: g}
}

// Grid returns the underlying grid.
func (p *Puzzle) Grid() *grid.Grid { return p.g }

// Possible reports whether the marker layout is decomposable. The
// error branch is a *types.InconsistentStateError and means a bug.
func (p *Puzzle) Possible() (bool, error) {
	p.possibleOnce.Do(func() {
		p.possible, p.possibleErr = walk.Check(p.g)
	})
	return p.possible, p.possibleErr
}

// Result computes the puzzle's outcome: the product of path counts
// over each consecutive marker pair, or the impossible result when the
// layout is not decomposable. A single-marker grid counts exactly one
// path (there are no pairs to multiply).
func (p *Puzzle) Result() (types.Result, error) {
	p.resultOnce.Do(func() {
		p.result, p.resultErr = p.solve()
	})
	return p.result, p.resultErr
}

func (p *Puzzle) solve() (types.Result, error) {
	possible, err := p.Possible()
	if err != nil {
		return types.Impossible(), err
	}
	if !possible {
		return types.Impossible(), nil
	}

	markers := p.g.Markers()
	total := int64(1)
	for i := 1; i < len(markers); i++ {
		sub, err := p.g.Sub(markers[i-1], markers[i])
		if err != nil {
			return types.Impossible(), err
		}
		total *= lattice.Count(sub)
	}
	return types.CountOf(total), nil
}

// Solve is the one-shot form of New(g).Result().
func Solve(g *grid.Grid) (types.Result, error) {
	return New(g).Result()
}
