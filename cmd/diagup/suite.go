package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/suite"
)

var suiteColor string

var suiteCmd = &cobra.Command{
	Use:   "suite <file.yaml>",
	Short: "Run a YAML puzzle suite",
	Long: `Run a YAML-defined suite of puzzles with optional expected outcomes.
Each case is solved and checked against its expectation: a number, the word
"impossible", or no expectation at all.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuite,
}

func init() {
	suiteCmd.Flags().StringVar(&suiteColor, "color", "auto", "Colorize output: always, never, auto")
}

func runSuite(cmd *cobra.Command, args []string) error {
	s, err := suite.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("loading suite: %w", err)
	}

	outcomes := suite.Run(s)

	out := cmd.OutOrStdout()
	st := configureColor(suiteColor)
	failed := 0
	for _, o := range outcomes {
		name := o.Name
		if name == "" {
			name = "(unnamed)"
		}
		switch {
		case o.Err != nil:
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", st.fail.Sprint("ERROR"), name, o.Err)
		case !o.Pass:
			failed++
			fmt.Fprintf(out, "%s %s: got %s, want %s\n",
				st.fail.Sprint("FAIL"), name, o.Result.String(), o.Expect)
		default:
			fmt.Fprintf(out, "%s %s: %s\n", st.pass.Sprint("PASS"), name, o.Result.String())
		}
	}

	if !quiet {
		fmt.Fprintf(out, "\n%s %d passed, %d failed (%d cases)\n",
			st.heading.Sprint("Summary:"), len(outcomes)-failed, failed, len(outcomes))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d suite cases failed", failed, len(outcomes))
	}
	return nil
}
