package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/grid"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/parser"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/solver"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/store"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/types"
)

var (
	solveFormat string
	solveDBPath string
	solveColor  string
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve a puzzle from a file or stdin",
	Long: `Solve a staircase puzzle. The input is a "width,height" header line
followed by the grid rows. Reads stdin when no file is given.

Exit codes: 0 with the path count for a valid layout; 1 with the literal
"<invalid input>" for a non-decomposable layout; 2 on fatal errors such as a
grid without markers.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveFormat, "format", "human", "Output format: human, json")
	solveCmd.Flags().StringVar(&solveDBPath, "db", "", "Record the solve into this database")
	solveCmd.Flags().StringVar(&solveColor, "color", "auto", "Colorize output: always, never, auto")
}

// solveReport is the JSON rendering of one solved puzzle.
type solveReport struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Markers  int    `json:"markers"`
	Possible bool   `json:"possible"`
	Count    *int64 `json:"count,omitempty"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	g, err := readGrid(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	res, err := solver.Solve(g)
	if err != nil {
		return err
	}

	if solveDBPath != "" {
		if err := recordSolve(solveDBPath, g, res); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	switch solveFormat {
	case "json":
		if err := writeSolveJSON(out, g, res); err != nil {
			return err
		}
	default:
		s := configureColor(solveColor)
		if res.Possible {
			s.count.Fprintln(out, res.String())
		} else {
			s.invalid.Fprintln(out, types.InvalidInput)
		}
	}

	if !res.Possible {
		return errInvalidLayout
	}
	return nil
}

// readGrid parses the puzzle from the file argument or from stdin.
func readGrid(args []string, stdin io.Reader) (*grid.Grid, error) {
	if len(args) == 1 {
		if _, err := os.Stat(args[0]); err != nil {
			return nil, fmt.Errorf("puzzle file does not exist: %s", args[0])
		}
		return parser.FromFile(args[0])
	}
	return parser.FromReader(stdin)
}

func writeSolveJSON(out io.Writer, g *grid.Grid, res types.Result) error {
	report := solveReport{
		Width:    g.Width(),
		Height:   g.Height(),
		Markers:  len(g.Markers()),
		Possible: res.Possible,
	}
	if res.Possible {
		count := res.Count
		report.Count = &count
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// recordSolve persists the result into the database at path.
func recordSolve(path string, g *grid.Grid, res types.Result) error {
	st, err := store.New(store.Config{Path: path})
	if err != nil {
		return fmt.Errorf("creating store: %w", err)
	}
	defer st.Close()

	rec := &store.Solve{
		GridID:   store.GridID(g.Rows()),
		Width:    g.Width(),
		Height:   g.Height(),
		Markers:  len(g.Markers()),
		Possible: res.Possible,
		Count:    res.Count,
	}
	if err := st.AddSolve(rec); err != nil {
		return fmt.Errorf("recording solve: %w", err)
	}
	return nil
}
