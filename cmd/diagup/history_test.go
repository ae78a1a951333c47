package main

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/store"
)

func TestRunHistory(t *testing.T) {
	historyColor = "never"
	quiet = false
	historyDBPath = filepath.Join(t.TempDir(), "solves.db")

	st, err := store.New(store.Config{Path: historyDBPath})
	require.NoError(t, err)
	require.NoError(t, st.AddSolve(&store.Solve{
		GridID:    store.GridID([]string{"..X", ".X.", "X.."}),
		Width:     3,
		Height:    3,
		Markers:   3,
		Possible:  true,
		Count:     9,
		CreatedAt: time.Now(),
	}))
	require.NoError(t, st.AddSolve(&store.Solve{
		GridID:  store.GridID([]string{"X..", "X.X", "..."}),
		Width:   3,
		Height:  3,
		Markers: 3,
	}))
	require.NoError(t, st.Close())

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err = runHistory(cmd, nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "3x3")
	assert.Contains(t, out, "9")
	assert.Contains(t, out, "<invalid input>")
	assert.Contains(t, out, "2 solves")
}

func TestRunHistoryMissingDB(t *testing.T) {
	historyColor = "never"
	historyDBPath = filepath.Join(t.TempDir(), "nope.db")

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runHistory(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestRunHistoryEmpty(t *testing.T) {
	historyColor = "never"
	historyDBPath = filepath.Join(t.TempDir(), "solves.db")

	st, err := store.New(store.Config{Path: historyDBPath})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runHistory(cmd, nil))
	assert.Contains(t, buf.String(), "No solves recorded")
}
