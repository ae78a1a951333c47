package main

import (
	"github.com/spf13/cobra"

	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/solver"
)

var checkColor string

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check whether a puzzle layout is decomposable",
	Long: `Check a puzzle's marker layout without counting paths. Prints "possible"
or "impossible". Reads stdin when no file is given. An impossible layout exits
with code 1, matching solve.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkColor, "color", "auto", "Colorize output: always, never, auto")
}

func runCheck(cmd *cobra.Command, args []string) error {
	g, err := readGrid(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	possible, err := solver.New(g).Possible()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	s := configureColor(checkColor)
	if !possible {
		s.invalid.Fprintln(out, "impossible")
		return errInvalidLayout
	}
	s.pass.Fprintln(out, "possible")
	return nil
}
