package types

import "fmt"

// Position is a cell coordinate within a grid.
// X is the column (increases rightward), Y is the stored row index
// (row 0 is the first line read). The marker walk advances toward
// larger X and smaller Y.
type Position struct {
	X int
	Y int
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// DistanceSq is the squared Euclidean distance to q.
// Squared distance preserves the argmin and the exact tie set of the
// true Euclidean distance, without floating point.
func (p Position) DistanceSq(q Position) int {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}
