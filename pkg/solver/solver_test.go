package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/grid"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/lattice"
)

func mustGrid(t *testing.T, rows []string) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows)
	require.NoError(t, err)
	return g
}

func TestSolveStaircase(t *testing.T) {
	res, err := Solve(mustGrid(t, []string{"..X", ".X.", "X.."}))
	require.NoError(t, err)
	assert.True(t, res.Possible)
	assert.Equal(t, int64(9), res.Count)
}

func TestSolveSingleMarker(t *testing.T) {
	res, err := Solve(mustGrid(t, []string{"X"}))
	require.NoError(t, err)
	assert.True(t, res.Possible)
	assert.Equal(t, int64(1), res.Count)

	res, err = Solve(mustGrid(t, []string{"....", ".X..", "...."}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Count)
}

func TestSolveImpossible(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"row and column mix", []string{"X..", "X.X", "..."}},
		{"main diagonal", []string{"X..", ".X.", "..X"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Solve(mustGrid(t, tt.rows))
			require.NoError(t, err)
			assert.False(t, res.Possible)
			assert.Equal(t, "<invalid input>", res.String())
		})
	}
}

func TestSolveMultiplicativity(t *testing.T) {
	// The whole-grid count is the product of the per-pair subgrid
	// counts.
	g := mustGrid(t, []string{"...X", "....", ".X..", "X..."})

	markers := g.Markers()
	require.Len(t, markers, 3)

	want := int64(1)
	for i := 1; i < len(markers); i++ {
		sub, err := g.Sub(markers[i-1], markers[i])
		require.NoError(t, err)
		want *= lattice.Count(sub)
	}
	assert.Equal(t, int64(39), want) // D(1,1) * D(2,2)

	res, err := Solve(g)
	require.NoError(t, err)
	require.True(t, res.Possible)
	assert.Equal(t, want, res.Count)
}

func TestSolveCollinearCorner(t *testing.T) {
	// Consecutive markers on one row contribute a factor of 1.
	res, err := Solve(mustGrid(t, []string{"...", ".X.", "XX."}))
	require.NoError(t, err)
	require.True(t, res.Possible)
	assert.Equal(t, int64(1), res.Count)
}

func TestPuzzleMemoizes(t *testing.T) {
	p := New(mustGrid(t, []string{"..X", ".X.", "X.."}))

	first, err := p.Result()
	require.NoError(t, err)
	second, err := p.Result()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	possible, err := p.Possible()
	require.NoError(t, err)
	assert.True(t, possible)
}

func TestPuzzleGrid(t *testing.T) {
	g := mustGrid(t, []string{"X"})
	assert.Same(t, g, New(g).Grid())
}
