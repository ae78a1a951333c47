// Package parser reads puzzle files: a "width,height" header line
// followed by the grid rows, one per line.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/grid"
)

// FromReader parses a puzzle from r. The header's declared dimensions
// are parsed for well-formedness but not cross-checked against the
// rows; the rows alone define the grid's width and height. Ragged rows
// surface as *types.MalformedGridError from grid construction.
func FromReader(r io.Reader) (*grid.Grid, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading header: %w", err)
		}
		return nil, fmt.Errorf("empty input: missing width,height header")
	}
	if _, _, err := parseHeader(scanner.Text()); err != nil {
		return nil, err
	}

	var rows []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	return grid.New(rows)
}

// FromFile parses the puzzle file at path.
func FromFile(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening puzzle file: %w", err)
	}
	defer f.Close()
	return FromReader(f)
}

// FromString parses a puzzle from an in-memory document.
func FromString(doc string) (*grid.Grid, error) {
	return FromReader(strings.NewReader(doc))
}

// parseHeader splits and validates a "width,height" line.
func parseHeader(line string) (width, height int, err error) {
	parts := strings.SplitN(strings.TrimSpace(line), ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed header %q: want \"width,height\"", line)
	}
	width, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed header %q: bad width: %w", line, err)
	}
	height, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed header %q: bad height: %w", line, err)
	}
	return width, height, nil
}
