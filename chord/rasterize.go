package chord

import (
	"math"

	"github.com/jbeda/geom"
)

// Rasterize samples the segment p0→p1 into integer pixels of a size×size
// canvas. The first sample is round(p0) and the last is round(p1), both
// clamped. Coincident endpoints yield a single sample.
func Rasterize(p0, p1 geom.Coord, size int) []Point {
	n := int(math.Ceil(p0.DistanceFrom(p1)))
	if n < 0 {
		n = 0
	}
	out := make([]Point, n+1)
	if n == 0 {
		out[0] = Point{X: clampPixel(p0.X, size), Y: clampPixel(p0.Y, size)}
		return out
	}

	var (
		k    int
		t, u float64
	)
	for k = 0; k <= n; k++ {
		t = float64(k) / float64(n)
		u = 1 - t
		out[k] = Point{
			X: clampPixel(p0.X*u+p1.X*t, size),
			Y: clampPixel(p0.Y*u+p1.Y*t, size),
		}
	}

	return out
}

// clampPixel rounds v to the nearest pixel and clamps it into [0, size).
func clampPixel(v float64, size int) int {
	p := int(math.Round(v))
	if p < 0 {
		return 0
	}
	if p >= size {
		return size - 1
	}

	return p
}
