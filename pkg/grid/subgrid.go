package grid

import (
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/types"
)

// Sub carves the axis-aligned rectangle spanned by markers a and b,
// inclusive on both axes. a must be the earlier marker in scan order,
// so a.Y >= b.Y and a.X <= b.X under a valid layout. Rows keep their
// original ascending-index order; each is sliced to columns a.X..b.X.
//
// A subgrid built between two consecutive markers of a valid outer
// grid must contain exactly those two markers. Any other count means
// the caller's invariants were violated, reported as a fatal
// *types.InconsistentStateError.
func (g *Grid) Sub(a, b types.Position) (*Grid, error) {
	rows := make([]string, 0, a.Y-b.Y+1)
	for y := 0; y < g.height; y++ {
		if y <= a.Y && y >= b.Y {
			rows = append(rows, g.rows[y][a.X:b.X+1])
		}
	}

	sub, err := New(rows)
	if err != nil {
		return nil, types.Inconsistentf("subgrid %v..%v: %v", a, b, err)
	}
	if n := len(sub.markers); n != 2 {
		return nil, types.Inconsistentf("subgrid %v..%v has %d markers, want 2", a, b, n)
	}
	return sub, nil
}
