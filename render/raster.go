package render

import (
	"errors"
	"fmt"
	"image/png"
	"io"

	"github.com/katalvlaran/stringart/canvas"
	"github.com/katalvlaran/stringart/chord"
)

// Sentinel errors for rendering.
var (
	// ErrNilCache indicates Raster was called without a chord cache.
	ErrNilCache = errors.New("render: chord cache is nil")

	// ErrBadWeight indicates a line weight outside (0,1].
	ErrBadWeight = errors.New("render: line weight out of range")

	// ErrPinOutOfRange indicates a sequence entry outside [0, N).
	ErrPinOutOfRange = errors.New("render: pin out of range")

	// ErrBadColor indicates an unparsable SVG stroke colour.
	ErrBadColor = errors.New("render: bad colour")
)

// Raster draws seq onto a white size×size canvas. Chords outside the cache
// are rasterised on the fly; values are floored at 0.
func Raster(seq []int, cache *chord.Cache, weight float64) (*canvas.Canvas, error) {
	if cache == nil {
		return nil, ErrNilCache
	}
	if !(weight > 0 && weight <= 1) {
		return nil, fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}
	if err := checkPins(seq, cache.PinCount()); err != nil {
		return nil, err
	}

	out, err := canvas.New(cache.Size(), cache.Size(), 1)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 1; i < len(seq); i++ {
		out.Subtract(cache.Trace(seq[i-1], seq[i]), weight, canvas.ClampZero)
	}

	return out, nil
}

// WritePNG encodes c as an 8-bit grayscale PNG.
func WritePNG(w io.Writer, c *canvas.Canvas) error {
	return png.Encode(w, c.ToGray())
}

func checkPins(seq []int, n int) error {
	for i, p := range seq {
		if p < 0 || p >= n {
			return fmt.Errorf("%w: seq[%d]=%d, n=%d", ErrPinOutOfRange, i, p, n)
		}
	}

	return nil
}
