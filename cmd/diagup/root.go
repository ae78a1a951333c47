package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

// errInvalidLayout marks the expected not-computable outcome. The
// command has already rendered "<invalid input>" by the time it is
// returned; main maps it to exit code 1 without further output.
var errInvalidLayout = errors.New("invalid layout")

var rootCmd = &cobra.Command{
	Use:   "diagup",
	Short: "diagup - staircase grid path counter",
	Long: `Diagup solves staircase puzzle grids: rectangular character grids whose
'X' markers must form a decomposable staircase. For a valid layout it counts
the monotonic lattice paths from the first marker to the last, multiplying the
per-rectangle counts between consecutive markers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	// Add subcommands
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(suiteCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
