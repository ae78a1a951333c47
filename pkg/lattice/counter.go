// Package lattice counts the monotonic paths across a 2-marker
// subgrid: unit steps right, up (toward smaller stored row index), or
// diagonally both at once.
package lattice

import (
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/grid"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/types"
)

// Count returns the number of monotonic paths from sub's start marker
// to its end marker. sub must be a 2-marker subgrid as produced by
// grid.Sub.
//
// The enumeration is the plain recursive descent with up to three
// branches per cell, so it is exponential in the rectangle size.
// Stack depth grows with the rectangle perimeter. No bound is imposed;
// very large subgrids are a resource concern by design.
func Count(sub *grid.Grid) int64 {
	return count(sub.Start(), sub.End())
}

func count(cur, end types.Position) int64 {
	if cur == end {
		return 1
	}
	var n int64
	if cur.X < end.X {
		n += count(types.Position{X: cur.X + 1, Y: cur.Y}, end)
	}
	if cur.Y > end.Y {
		n += count(types.Position{X: cur.X, Y: cur.Y - 1}, end)
	}
	if cur.X < end.X && cur.Y > end.Y {
		n += count(types.Position{X: cur.X + 1, Y: cur.Y - 1}, end)
	}
	return n
}

// Enumerate materializes every monotonic path from sub's start marker
// to its end marker, each path including both endpoints.
//
// Every recursive branch receives its own copy of the path so far, so
// sibling branches never observe each other's extensions. Callers that
// only need the quantity should prefer Count; len(Enumerate(sub)) and
// Count(sub) always agree.
func Enumerate(sub *grid.Grid) [][]types.Position {
	return enumerate(sub.Start(), sub.End(), nil)
}

func enumerate(cur, end types.Position, prefix []types.Position) [][]types.Position {
	path := make([]types.Position, len(prefix), len(prefix)+1)
	copy(path, prefix)
	path = append(path, cur)

	if cur == end {
		return [][]types.Position{path}
	}

	var paths [][]types.Position
	if cur.X < end.X {
		paths = append(paths, enumerate(types.Position{X: cur.X + 1, Y: cur.Y}, end, path)...)
	}
	if cur.Y > end.Y {
		paths = append(paths, enumerate(types.Position{X: cur.X, Y: cur.Y - 1}, end, path)...)
	}
	if cur.X < end.X && cur.Y > end.Y {
		paths = append(paths, enumerate(types.Position{X: cur.X + 1, Y: cur.Y - 1}, end, path)...)
	}
	return paths
}
