package types

import "strconv"

// InvalidInput is the fixed rendering of an impossible layout.
// The CLI prints it verbatim and exits 1.
const InvalidInput = "<invalid input>"

// Result is the outcome of solving a grid: either a path count, or the
// distinguished "impossible" value for a non-decomposable marker layout.
// Impossible is an expected outcome for well-formed puzzle input, so it
// is represented as data rather than an error.
type Result struct {
	Possible bool
	Count    int64
}

// Impossible is the distinguished not-computable result.
func Impossible() Result {
	return Result{}
}

// CountOf wraps a path count in a Result.
func CountOf(n int64) Result {
	return Result{Possible: true, Count: n}
}

// String renders the count, or InvalidInput when the layout is impossible.
func (r Result) String() string {
	if !r.Possible {
		return InvalidInput
	}
	return strconv.FormatInt(r.Count, 10)
}
