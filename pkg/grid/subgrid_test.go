package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/types"
)

func TestSub(t *testing.T) {
	g, err := New([]string{"..X", ".X.", "X.."})
	require.NoError(t, err)

	markers := g.Markers()
	sub, err := g.Sub(markers[0], markers[1])
	require.NoError(t, err)

	// Rows 1..2 sliced to columns 0..1, kept in ascending row order.
	assert.Equal(t, []string{".X", "X."}, sub.Rows())
	assert.Equal(t, types.Position{X: 0, Y: 1}, sub.Start())
	assert.Equal(t, types.Position{X: 1, Y: 0}, sub.End())
}

func TestSubUpperPair(t *testing.T) {
	g, err := New([]string{"..X", ".X.", "X.."})
	require.NoError(t, err)

	markers := g.Markers()
	sub, err := g.Sub(markers[1], markers[2])
	require.NoError(t, err)

	assert.Equal(t, []string{".X", "X."}, sub.Rows())
	require.Len(t, sub.Markers(), 2)
}

func TestSubTooManyMarkers(t *testing.T) {
	g, err := New([]string{"..X", ".X.", "X.."})
	require.NoError(t, err)

	// Spanning the outer corners swallows the middle marker.
	_, err = g.Sub(g.Start(), g.End())
	require.Error(t, err)

	var inconsistent *types.InconsistentStateError
	require.ErrorAs(t, err, &inconsistent)
	assert.Contains(t, err.Error(), "3 markers")
}

func TestSubDegenerate(t *testing.T) {
	// Two markers on the same row form a 1-row subgrid.
	g, err := New([]string{"...", "X.X"})
	require.NoError(t, err)

	markers := g.Markers()
	sub, err := g.Sub(markers[0], markers[1])
	require.NoError(t, err)
	assert.Equal(t, []string{"X.X"}, sub.Rows())
}
