// Package walk decides whether a grid's marker layout is decomposable:
// reducible to a chain of 2-marker rectangles whose path counts
// multiply into the whole grid's count.
package walk

import (
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/grid"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/types"
)

// checker carries the state of one validity walk. The visited set is
// owned by a single Check call and never escapes it.
type checker struct {
	g       *grid.Grid
	visited map[types.Position]bool
}

// Check reports whether the grid's markers form a decomposable
// staircase layout.
//
// The walk starts at the first marker in scan order and repeatedly
// advances to the nearest unvisited marker in the right-and-up
// direction. At each step the layout is rejected when an unvisited
// marker has been skipped over, or when the other markers mix
// row-resident and column-resident placements around the current cell.
//
// A returned error is always a *types.InconsistentStateError: the walk
// reached a state its own preconditions forbid. It signals a bug, not
// invalid puzzle input.
func Check(g *grid.Grid) (bool, error) {
	c := &checker{
		g:       g,
		visited: make(map[types.Position]bool, len(g.Markers())),
	}
	return c.step(g.Start())
}

// step advances the walk from cur. cur is marked visited before any
// condition is evaluated.
func (c *checker) step(cur types.Position) (bool, error) {
	c.visited[cur] = true

	if !c.nothingBefore(cur) {
		return false, nil
	}
	if !c.exclusiveRowCol(cur) {
		return false, nil
	}

	nearest, ok := c.nearest(cur)
	remaining := len(c.g.Markers()) - len(c.visited)

	if !ok {
		if remaining > 0 {
			// Unreachable when the two conditions above hold: every
			// unvisited marker satisfies the nearest-candidate bounds.
			return false, types.Inconsistentf(
				"no next marker from %v but %d markers remain unvisited", cur, remaining)
		}
		return true, nil
	}
	return c.step(nearest)
}

// nothingBefore reports whether no unvisited marker lies behind cur:
// strictly left of its column, or on an earlier row of the scan
// (larger stored index). Such a marker was skipped by the walk.
func (c *checker) nothingBefore(cur types.Position) bool {
	for _, p := range c.g.Markers() {
		if c.visited[p] {
			continue
		}
		if p.X < cur.X || p.Y > cur.Y {
			return false
		}
	}
	return true
}

// exclusiveRowCol enforces the staircase corner shape: the unvisited
// markers may share cur's row, or share cur's column, but never both.
// A marker off both axes constrains neither side.
func (c *checker) exclusiveRowCol(cur types.Position) bool {
	var onRow, onCol bool
	for _, p := range c.g.Markers() {
		if p == cur || c.visited[p] {
			continue
		}
		if p.Y == cur.Y {
			onRow = true
		}
		if p.X == cur.X {
			onCol = true
		}
	}
	return !(onRow && onCol)
}

// nearest picks the unvisited marker reachable by the monotonic
// advance (p.X >= cur.X, p.Y <= cur.Y, p != cur) at minimal Euclidean
// distance. Squared distances keep the comparison exact; on ties the
// earliest marker in scan order wins. That tie-break is load-bearing
// for asymmetric layouts and is deliberately order-dependent.
func (c *checker) nearest(cur types.Position) (types.Position, bool) {
	var (
		best   types.Position
		bestSq int
		found  bool
	)
	for _, p := range c.g.Markers() {
		if c.visited[p] || p == cur {
			continue
		}
		if p.X < cur.X || p.Y > cur.Y {
			continue
		}
		if sq := cur.DistanceSq(p); !found || sq < bestSq {
			best, bestSq, found = p, sq, true
		}
	}
	return best, found
}
