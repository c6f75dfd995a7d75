package chord

import "errors"

// Sentinel errors returned by Build.
var (
	// ErrBadPinCount indicates fewer than two pin coordinates.
	ErrBadPinCount = errors.New("chord: at least two pins are required")

	// ErrBadMinDistance indicates a minimum distance below 1 or one that
	// leaves no admissible pair.
	ErrBadMinDistance = errors.New("chord: minimum distance out of range")

	// ErrBadSize indicates a non-positive canvas size.
	ErrBadSize = errors.New("chord: canvas size must be positive")
)

// Point is an integer pixel coordinate on the canvas.
type Point struct {
	X, Y int
}

// Key is the canonical cache key of an unordered pin pair: A < B.
type Key struct {
	A, B int
}

// NewKey returns the canonical key for the pair {i, j}.
func NewKey(i, j int) Key {
	if i > j {
		i, j = j, i
	}

	return Key{A: i, B: j}
}
