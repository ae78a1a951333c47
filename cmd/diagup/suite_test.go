package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingSuite = `puzzles:
  - name: staircase
    grid: |
      3,3
      ..X
      .X.
      X..
    expect: "9"
  - name: mixed
    grid: |
      3,3
      X..
      X.X
      ...
    expect: impossible
`

func writeSuite(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	return path
}

func TestRunSuite(t *testing.T) {
	suiteColor = "never"
	quiet = false
	path := writeSuite(t, passingSuite)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runSuite(cmd, []string{path})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "PASS staircase: 9")
	assert.Contains(t, out, "PASS mixed: <invalid input>")
	assert.Contains(t, out, "2 passed, 0 failed")
}

func TestRunSuiteFailure(t *testing.T) {
	suiteColor = "never"
	quiet = false
	path := writeSuite(t, `puzzles:
  - name: wrong
    grid: |
      3,3
      ..X
      .X.
      X..
    expect: "7"
`)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runSuite(cmd, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1")
	assert.Contains(t, buf.String(), "FAIL wrong: got 9, want 7")
}

func TestRunSuiteMissingFile(t *testing.T) {
	suiteColor = "never"

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runSuite(cmd, []string{filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
}
