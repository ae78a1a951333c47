package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/enum"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/parser"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/solver"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/store"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/types"
)

var (
	batchExtensions    string
	batchIncludeHidden bool
	batchMaxFileSize   int64
	batchDBPath        string
	batchColor         string
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Solve every puzzle file under a directory",
	Long: `Walk a directory tree, solve each puzzle file found, and print one line
per file. Hidden entries are skipped by default and .gitignore patterns at the
root are honored. A file that fails to parse or solve is reported and does not
stop the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchExtensions, "ext", ".txt", "Comma-separated file extensions to solve (empty for all)")
	batchCmd.Flags().BoolVar(&batchIncludeHidden, "include-hidden", false, "Include hidden files and directories")
	batchCmd.Flags().Int64Var(&batchMaxFileSize, "max-file-size", 1024*1024, "Maximum puzzle file size (bytes)")
	batchCmd.Flags().StringVar(&batchDBPath, "db", "", "Record every solve into this database")
	batchCmd.Flags().StringVar(&batchColor, "color", "auto", "Colorize output: always, never, auto")
}

// batchResult is the per-file outcome of a batch run.
type batchResult struct {
	path   string
	result types.Result
	err    error
}

func runBatch(cmd *cobra.Command, args []string) error {
	root := args[0]
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("directory does not exist: %s", root)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", root)
	}

	var st store.Store
	if batchDBPath != "" {
		st, err = store.New(store.Config{Path: batchDBPath})
		if err != nil {
			return fmt.Errorf("creating store: %w", err)
		}
		defer st.Close()
	}

	enumerator := enum.NewFilesystemEnumerator(enum.Config{
		Root:          root,
		Extensions:    splitExtensions(batchExtensions),
		IncludeHidden: batchIncludeHidden,
		MaxFileSize:   batchMaxFileSize,
	})

	var (
		mu      sync.Mutex
		results []batchResult
	)
	err = enumerator.Enumerate(context.Background(), func(path string, content []byte) error {
		res := solveDocument(string(content), st)
		mu.Lock()
		results = append(results, batchResult{path: path, result: res.result, err: res.err})
		mu.Unlock()
		return nil
	})
	if err != nil {
		return fmt.Errorf("enumerating puzzles: %w", err)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].path < results[j].path })

	out := cmd.OutOrStdout()
	s := configureColor(batchColor)
	solved, impossible, failed := 0, 0, 0
	for _, r := range results {
		switch {
		case r.err != nil:
			failed++
			fmt.Fprintf(out, "%s: error: %v\n", s.path.Sprint(r.path), r.err)
		case !r.result.Possible:
			impossible++
			fmt.Fprintf(out, "%s: %s\n", s.path.Sprint(r.path), s.invalid.Sprint(types.InvalidInput))
		default:
			solved++
			fmt.Fprintf(out, "%s: %s\n", s.path.Sprint(r.path), s.count.Sprint(r.result.String()))
		}
	}

	if !quiet {
		fmt.Fprintf(out, "\n%s %d solved, %d impossible, %d errors (%d files)\n",
			s.heading.Sprint("Summary:"), solved, impossible, failed, len(results))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d puzzle files failed", failed, len(results))
	}
	return nil
}

// solveDocument parses and solves one puzzle document, recording the
// outcome when a store is configured.
func solveDocument(doc string, st store.Store) batchResult {
	g, err := parser.FromString(doc)
	if err != nil {
		return batchResult{err: err}
	}
	res, err := solver.Solve(g)
	if err != nil {
		return batchResult{err: err}
	}
	if st != nil {
		rec := &store.Solve{
			GridID:   store.GridID(g.Rows()),
			Width:    g.Width(),
			Height:   g.Height(),
			Markers:  len(g.Markers()),
			Possible: res.Possible,
			Count:    res.Count,
		}
		if err := st.AddSolve(rec); err != nil {
			return batchResult{err: fmt.Errorf("recording solve: %w", err)}
		}
	}
	return batchResult{result: res}
}

func splitExtensions(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, ".") {
			p = "." + p
		}
		exts = append(exts, p)
	}
	return exts
}
