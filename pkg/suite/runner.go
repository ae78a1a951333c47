package suite

import (
	"strconv"
	"strings"

	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/parser"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/solver"
	"github.com/PiJoules/Moving-diagonally-Up-in-Life/pkg/types"
)

// ExpectImpossible is the expectation keyword for a non-decomposable
// layout.
const ExpectImpossible = "impossible"

// Outcome is the per-case result of a suite run.
type Outcome struct {
	Name   string
	Result types.Result
	Err    error  // fatal parse/solve error, if any
	Expect string // the case's expectation, verbatim
	Pass   bool   // true when the expectation (if any) was met
}

// Run solves every case in the suite and checks expectations.
// A case without an expectation passes whenever it solves without a
// fatal error; the impossible outcome is still a normal completion.
func Run(s *Suite) []Outcome {
	outcomes := make([]Outcome, 0, len(s.Puzzles))
	for _, c := range s.Puzzles {
		outcomes = append(outcomes, runCase(c))
	}
	return outcomes
}

func runCase(c Case) Outcome {
	out := Outcome{Name: c.Name, Expect: strings.TrimSpace(c.Expect)}

	g, err := parser.FromString(c.Grid)
	if err != nil {
		out.Err = err
		return out
	}
	res, err := solver.Solve(g)
	if err != nil {
		out.Err = err
		return out
	}
	out.Result = res
	out.Pass = met(out.Expect, res)
	return out
}

// met checks a case expectation against the solved result.
func met(expect string, res types.Result) bool {
	switch expect {
	case "":
		return true
	case ExpectImpossible:
		return !res.Possible
	default:
		want, err := strconv.ParseInt(expect, 10, 64)
		if err != nil {
			return false
		}
		return res.Possible && res.Count == want
	}
}
