package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionString(t *testing.T) {
	assert.Equal(t, "(2,3)", Position{X: 2, Y: 3}.String())
	assert.Equal(t, "(0,0)", Position{}.String())
}

func TestPositionDistanceSq(t *testing.T) {
	a := Position{X: 0, Y: 2}
	assert.Equal(t, 0, a.DistanceSq(a))
	assert.Equal(t, 2, a.DistanceSq(Position{X: 1, Y: 1}))
	assert.Equal(t, 8, a.DistanceSq(Position{X: 2, Y: 0}))

	// Symmetric
	b := Position{X: 5, Y: 7}
	assert.Equal(t, a.DistanceSq(b), b.DistanceSq(a))
}

func TestPositionEquality(t *testing.T) {
	// Positions are value types: usable as map keys and comparable.
	seen := map[Position]bool{{X: 1, Y: 2}: true}
	assert.True(t, seen[Position{X: 1, Y: 2}])
	assert.False(t, seen[Position{X: 2, Y: 1}])
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "<invalid input>", Impossible().String())
	assert.Equal(t, "9", CountOf(9).String())
	assert.Equal(t, "1", CountOf(1).String())
}

func TestErrorMessages(t *testing.T) {
	var err error = &MalformedGridError{Row: 2, Want: 3, Got: 5}
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "width 5")

	err = &NoMarkersError{}
	assert.Contains(t, err.Error(), "starting coord")

	err = Inconsistentf("found %d markers", 3)
	assert.Contains(t, err.Error(), "inconsistent state")
	assert.Contains(t, err.Error(), "found 3 markers")

	var inconsistent *InconsistentStateError
	assert.True(t, errors.As(err, &inconsistent))
}
