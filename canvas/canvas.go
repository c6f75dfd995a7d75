package canvas

import (
	"image"
	"math"

	"github.com/katalvlaran/stringart/chord"
	"gonum.org/v1/gonum/floats"
)

// Canvas is a w×h grid of float64 values backed by one flat slice.
type Canvas struct {
	w, h int
	data []float64 // len == w*h, data[y*w+x]
}

// New returns a w×h canvas with every pixel set to fill.
func New(w, h int, fill float64) (*Canvas, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrBadShape
	}
	c := &Canvas{w: w, h: h, data: make([]float64, w*h)}
	if fill != 0 {
		for i := range c.data {
			c.data[i] = fill
		}
	}

	return c, nil
}

// FromValues wraps a copy of values (row-major, len == w*h).
func FromValues(w, h int, values []float64) (*Canvas, error) {
	if w <= 0 || h <= 0 || len(values) != w*h {
		return nil, ErrBadShape
	}

	return &Canvas{w: w, h: h, data: append([]float64(nil), values...)}, nil
}

// NewResidual returns the ink-debt image of target: a copy with every value
// mapped v ↦ 1 − v.
func NewResidual(target *Canvas) *Canvas {
	r := target.Clone()
	r.Invert()

	return r
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.w }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.h }

// Values returns a copy of the row-major buffer.
func (c *Canvas) Values() []float64 {
	return append([]float64(nil), c.data...)
}

// At returns the value at (x, y).
func (c *Canvas) At(x, y int) (float64, error) {
	if !c.inBounds(x, y) {
		return 0, ErrOutOfRange
	}

	return c.data[y*c.w+x], nil
}

// Set stores v at (x, y).
func (c *Canvas) Set(x, y int, v float64) error {
	if !c.inBounds(x, y) {
		return ErrOutOfRange
	}
	c.data[y*c.w+x] = v

	return nil
}

// Add adds delta to the value at (x, y).
func (c *Canvas) Add(x, y int, delta float64) error {
	if !c.inBounds(x, y) {
		return ErrOutOfRange
	}
	c.data[y*c.w+x] += delta

	return nil
}

// Get returns the value under a chord sample, clamping p into the canvas.
func (c *Canvas) Get(p chord.Point) float64 {
	return c.data[c.index(p)]
}

// Score sums the values under every sample of a chord. Repeated samples
// count once per occurrence.
func (c *Canvas) Score(points []chord.Point) float64 {
	var s float64
	for _, p := range points {
		s += c.data[c.index(p)]
	}

	return s
}

// Subtract removes weight at every sample of a chord, honouring policy.
// Repeated samples are hit once per occurrence. It returns the resulting
// change of SumAbs, so callers can track the residual without rescanning.
func (c *Canvas) Subtract(points []chord.Point, weight float64, policy ClampPolicy) float64 {
	var (
		i      int
		before float64
		delta  float64
	)
	for _, p := range points {
		i = c.index(p)
		before = math.Abs(c.data[i])
		c.data[i] -= weight
		if policy == ClampZero && c.data[i] < 0 {
			c.data[i] = 0
		}
		delta += math.Abs(c.data[i]) - before
	}

	return delta
}

// SumAbs returns Σ|v| over the whole canvas.
func (c *Canvas) SumAbs() float64 {
	return floats.Norm(c.data, 1)
}

// Invert maps every value v ↦ 1 − v.
func (c *Canvas) Invert() {
	floats.Scale(-1, c.data)
	floats.AddConst(1, c.data)
}

// Clone returns an independent copy.
func (c *Canvas) Clone() *Canvas {
	return &Canvas{w: c.w, h: c.h, data: append([]float64(nil), c.data...)}
}

// CopyFrom overwrites c with the contents of src, reusing c's buffer.
// Shapes must match.
func (c *Canvas) CopyFrom(src *Canvas) error {
	if src.w != c.w || src.h != c.h {
		return ErrBadShape
	}
	copy(c.data, src.data)

	return nil
}

// ToGray converts the canvas to an 8-bit grayscale image, clamping values
// into [0,1] first.
func (c *Canvas) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, c.w, c.h))
	var (
		x, y int
		v    float64
	)
	for y = 0; y < c.h; y++ {
		for x = 0; x < c.w; x++ {
			v = c.data[y*c.w+x]
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			img.Pix[y*img.Stride+x] = uint8(math.Round(v * 255))
		}
	}

	return img
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}

// index maps a sample to its flat offset, clamping each axis.
func (c *Canvas) index(p chord.Point) int {
	x, y := p.X, p.Y
	if x < 0 {
		x = 0
	} else if x >= c.w {
		x = c.w - 1
	}
	if y < 0 {
		y = 0
	} else if y >= c.h {
		y = c.h - 1
	}

	return y*c.w + x
}
