package types

import "fmt"

// MalformedGridError reports rows of unequal width.
type MalformedGridError struct {
	Row  int // index of the offending row
	Want int // expected width (width of row 0)
	Got  int // actual width of the offending row
}

func (e *MalformedGridError) Error() string {
	return fmt.Sprintf("malformed grid: row %d has width %d, want %d", e.Row, e.Got, e.Want)
}

// NoMarkersError reports a grid that contains no marker cells.
type NoMarkersError struct{}

func (e *NoMarkersError) Error() string {
	return "unable to find starting coord from grid: no markers present"
}

// InconsistentStateError signals a state the solver's own invariants
// forbid. It indicates a bug, never bad puzzle input, and is fatal.
type InconsistentStateError struct {
	Msg string
}

func (e *InconsistentStateError) Error() string {
	return "inconsistent state: " + e.Msg
}

// Inconsistentf builds an InconsistentStateError with a formatted message.
func Inconsistentf(format string, args ...any) *InconsistentStateError {
	return &InconsistentStateError{Msg: fmt.Sprintf(format, args...)}
}
