// Package grid holds the immutable character-grid model: rows, derived
// columns, and the ordered marker list that defines a puzzle's waypoints.
package grid

import (
	"strings"
	"sync"

	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/types"
)

// Marker is the character that marks a waypoint cell.
const Marker = 'X'

// Grid is an immutable view over a rectangular character matrix.
// Construct with New; the zero value is not usable.
type Grid struct {
	rows    []string
	width   int
	height  int
	markers []types.Position

	colsOnce sync.Once
	cols     []string
}

// New builds a Grid from equal-width rows.
//
// The marker list is produced by scanning rows bottom-up (descending
// stored index) and each row left to right. That ordering, not reading
// order, defines the start and end markers.
//
// Returns *types.MalformedGridError on ragged rows and
// *types.NoMarkersError when no marker cell exists.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, &types.MalformedGridError{Row: 0, Want: 1, Got: 0}
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, &types.MalformedGridError{Row: i, Want: width, Got: len(row)}
		}
	}

	g := &Grid{
		rows:   append([]string(nil), rows...),
		width:  width,
		height: len(rows),
	}
	g.markers = scanMarkers(g.rows)
	if len(g.markers) == 0 {
		return nil, &types.NoMarkersError{}
	}
	return g, nil
}

// scanMarkers walks rows from the last to the first, columns left to
// right, collecting marker positions in discovery order.
func scanMarkers(rows []string) []types.Position {
	var markers []types.Position
	for y := len(rows) - 1; y >= 0; y-- {
		for x := 0; x < len(rows[y]); x++ {
			if rows[y][x] == Marker {
				markers = append(markers, types.Position{X: x, Y: y})
			}
		}
	}
	return markers
}

// Width is the number of columns.
func (g *Grid) Width() int { return g.width }

// Height is the number of rows.
func (g *Grid) Height() int { return g.height }

// Rows returns the row strings in stored order. Callers must not rely
// on mutating the returned slice; it is shared.
func (g *Grid) Rows() []string { return g.rows }

// Row returns the row at stored index y.
func (g *Grid) Row(y int) string { return g.rows[y] }

// Columns returns the column strings, transposed from the rows.
// Computed once on first use.
func (g *Grid) Columns() []string {
	g.colsOnce.Do(func() {
		cols := make([]string, g.width)
		var b strings.Builder
		for x := 0; x < g.width; x++ {
			b.Reset()
			for y := 0; y < g.height; y++ {
				b.WriteByte(g.rows[y][x])
			}
			cols[x] = b.String()
		}
		g.cols = cols
	})
	return g.cols
}

// Markers returns the marker positions in scan order.
// The slice is shared; callers must not mutate it.
func (g *Grid) Markers() []types.Position { return g.markers }

// Start is the first marker discovered by the scan.
func (g *Grid) Start() types.Position { return g.markers[0] }

// End is the last marker discovered by the scan.
func (g *Grid) End() types.Position { return g.markers[len(g.markers)-1] }
