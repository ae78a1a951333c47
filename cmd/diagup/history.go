package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/store"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/types"
)

var (
	historyDBPath string
	historyColor  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves",
	Long:  "List solve results previously recorded with --db, newest first.",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyDBPath, "db", "", "Database path (required)")
	historyCmd.Flags().StringVar(&historyColor, "color", "auto", "Colorize output: always, never, auto")
	historyCmd.MarkFlagRequired("db")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(historyDBPath); err != nil {
		return fmt.Errorf("database does not exist: %s", historyDBPath)
	}

	st, err := store.New(store.Config{Path: historyDBPath})
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	solves, err := st.GetSolves()
	if err != nil {
		return fmt.Errorf("reading solves: %w", err)
	}

	out := cmd.OutOrStdout()
	s := configureColor(historyColor)
	if len(solves) == 0 {
		fmt.Fprintln(out, "No solves recorded.")
		return nil
	}

	for _, rec := range solves {
		outcome := types.InvalidInput
		if rec.Possible {
			outcome = fmt.Sprintf("%d", rec.Count)
		}
		fmt.Fprintf(out, "%s  %dx%d  %d markers  %s  %s\n",
			rec.CreatedAt.Local().Format(time.DateTime),
			rec.Width, rec.Height, rec.Markers,
			s.count.Sprint(outcome),
			s.path.Sprint(rec.GridID[:12]))
	}

	if !quiet {
		fmt.Fprintf(out, "\n%s %d solves\n", s.heading.Sprint("Total:"), len(solves))
	}
	return nil
}
