package pins

import (
	"errors"
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// Sentinel errors for pin layout and sequence checks.
var (
	// ErrBadPinCount indicates a non-positive pin count.
	ErrBadPinCount = errors.New("pins: pin count must be positive")

	// ErrBadSize indicates a non-positive canvas size.
	ErrBadSize = errors.New("pins: canvas size must be positive")

	// ErrPinOutOfRange indicates a pin index outside [0, N).
	ErrPinOutOfRange = errors.New("pins: pin index out of range")

	// ErrChordTooShort indicates two consecutive pins closer than the minimum distance.
	ErrChordTooShort = errors.New("pins: consecutive pins closer than minimum distance")
)

// Layout returns pinCount coordinates evenly spaced on the circle inscribed
// in a size×size canvas. The radius is one pixel short of the half edge so
// that every pin rounds to an in-bounds pixel.
func Layout(pinCount, size int) ([]geom.Coord, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}

	return layout(pinCount, float64(size)/2, float64(size/2)-1)
}

// LayoutWithMargin is Layout with an explicit blank margin between the
// circle and the canvas edge: radius = (size − 2·margin)/2.
func LayoutWithMargin(pinCount, size int, margin float64) ([]geom.Coord, error) {
	if size <= 0 || margin < 0 || 2*margin >= float64(size) {
		return nil, ErrBadSize
	}

	return layout(pinCount, float64(size)/2, (float64(size)-2*margin)/2)
}

func layout(pinCount int, center, radius float64) ([]geom.Coord, error) {
	if pinCount <= 0 {
		return nil, ErrBadPinCount
	}

	coords := make([]geom.Coord, pinCount)
	var (
		i     int
		angle float64
	)
	for i = 0; i < pinCount; i++ {
		angle = 2 * math.Pi * float64(i) / float64(pinCount)
		coords[i] = geom.Coord{
			X: center + radius*math.Cos(angle),
			Y: center + radius*math.Sin(angle),
		}
	}

	return coords, nil
}

// CircularDistance returns min(|i−j|, n−|i−j|), the number of steps between
// two pins going the short way round.
func CircularDistance(i, j, n int) int {
	d := i - j
	if d < 0 {
		d = -d
	}
	if n-d < d {
		return n - d
	}

	return d
}

// Valid reports whether {i, j} is an admissible chord on an n-pin board.
func Valid(i, j, n, minDistance int) bool {
	if i < 0 || i >= n || j < 0 || j >= n || i == j {
		return false
	}

	return CircularDistance(i, j, n) >= minDistance
}

// ValidateSequence checks that every pin of seq lies in [0, n) and that every
// consecutive pair is at least minDistance apart.
func ValidateSequence(seq []int, n, minDistance int) error {
	var i int
	for i = range seq {
		if seq[i] < 0 || seq[i] >= n {
			return fmt.Errorf("%w: seq[%d]=%d, n=%d", ErrPinOutOfRange, i, seq[i], n)
		}
		if i == 0 {
			continue
		}
		if seq[i] == seq[i-1] || CircularDistance(seq[i-1], seq[i], n) < minDistance {
			return fmt.Errorf("%w: seq[%d]=%d → seq[%d]=%d", ErrChordTooShort, i-1, seq[i-1], i, seq[i])
		}
	}

	return nil
}
