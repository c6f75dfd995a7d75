package pins_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/stringart/pins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLayout_Geometry checks centre, radius and angular order on a 4-pin board.
func TestLayout_Geometry(t *testing.T) {
	coords, err := pins.Layout(4, 10)
	require.NoError(t, err)
	require.Len(t, coords, 4)

	// centre (5,5), radius 4.
	want := [][2]float64{{9, 5}, {5, 9}, {1, 5}, {5, 1}}
	for i, w := range want {
		assert.InDelta(t, w[0], coords[i].X, 1e-9, "pin %d x", i)
		assert.InDelta(t, w[1], coords[i].Y, 1e-9, "pin %d y", i)
	}
}

// TestLayout_AllPinsInsideCanvas ensures every pin rounds into [0,size).
func TestLayout_AllPinsInsideCanvas(t *testing.T) {
	const size = 101
	coords, err := pins.Layout(288, size)
	require.NoError(t, err)
	for i, c := range coords {
		x, y := math.Round(c.X), math.Round(c.Y)
		assert.True(t, x >= 0 && x < size && y >= 0 && y < size, "pin %d at (%v,%v)", i, x, y)
	}
}

// TestLayout_Errors verifies sentinel errors on bad input.
func TestLayout_Errors(t *testing.T) {
	_, err := pins.Layout(0, 10)
	assert.ErrorIs(t, err, pins.ErrBadPinCount)

	_, err = pins.Layout(8, 0)
	assert.ErrorIs(t, err, pins.ErrBadSize)

	_, err = pins.LayoutWithMargin(8, 20, 10)
	assert.ErrorIs(t, err, pins.ErrBadSize)
}

// TestLayoutWithMargin checks the margin shrinks the radius.
func TestLayoutWithMargin(t *testing.T) {
	coords, err := pins.LayoutWithMargin(2, 100, 10)
	require.NoError(t, err)
	assert.InDelta(t, 90.0, coords[0].X, 1e-9)
	assert.InDelta(t, 10.0, coords[1].X, 1e-9)
}

// TestCircularDistance covers wrap-around symmetry.
func TestCircularDistance(t *testing.T) {
	cases := []struct {
		i, j, n, want int
	}{
		{0, 0, 8, 0},
		{0, 1, 8, 1},
		{0, 7, 8, 1},
		{0, 4, 8, 4},
		{2, 6, 8, 4},
		{6, 1, 8, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pins.CircularDistance(tc.i, tc.j, tc.n), "d(%d,%d)", tc.i, tc.j)
		assert.Equal(t, tc.want, pins.CircularDistance(tc.j, tc.i, tc.n), "d(%d,%d)", tc.j, tc.i)
	}
}

// TestValid rejects self chords, out-of-range pins and short chords.
func TestValid(t *testing.T) {
	assert.True(t, pins.Valid(0, 2, 8, 2))
	assert.True(t, pins.Valid(0, 6, 8, 2))
	assert.False(t, pins.Valid(0, 7, 8, 2))
	assert.False(t, pins.Valid(3, 3, 8, 0))
	assert.False(t, pins.Valid(-1, 3, 8, 2))
	assert.False(t, pins.Valid(0, 8, 8, 2))
}

// TestValidateSequence reports the first offending position.
func TestValidateSequence(t *testing.T) {
	require.NoError(t, pins.ValidateSequence([]int{0, 2, 5, 1}, 8, 2))
	require.NoError(t, pins.ValidateSequence(nil, 8, 2))

	err := pins.ValidateSequence([]int{0, 2, 3}, 8, 2)
	assert.ErrorIs(t, err, pins.ErrChordTooShort)

	err = pins.ValidateSequence([]int{0, 9}, 8, 2)
	assert.ErrorIs(t, err, pins.ErrPinOutOfRange)
}
