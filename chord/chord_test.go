package chord_test

import (
	"math"
	"testing"

	"github.com/jbeda/geom"
	"github.com/katalvlaran/stringart/chord"
	"github.com/katalvlaran/stringart/pins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pointSet collapses samples into a multiplicity map for order-free comparison.
func pointSet(pts []chord.Point) map[chord.Point]int {
	m := make(map[chord.Point]int, len(pts))
	for _, p := range pts {
		m[p]++
	}
	return m
}

// roundedPin returns the clamped pixel a pin coordinate rounds to.
func roundedPin(c geom.Coord, size int) chord.Point {
	clamp := func(v float64) int {
		p := int(math.Round(v))
		if p < 0 {
			return 0
		}
		if p >= size {
			return size - 1
		}
		return p
	}
	return chord.Point{X: clamp(c.X), Y: clamp(c.Y)}
}

// TestRasterize_Horizontal checks sample count and contiguity on an axis-aligned chord.
func TestRasterize_Horizontal(t *testing.T) {
	pts := chord.Rasterize(geom.Coord{X: 1, Y: 3}, geom.Coord{X: 6, Y: 3}, 10)
	require.Len(t, pts, 6) // ceil(5) + 1
	for k, p := range pts {
		assert.Equal(t, chord.Point{X: 1 + k, Y: 3}, p)
	}
}

// TestRasterize_Reversed verifies p0→p1 and p1→p0 visit the same pixels.
func TestRasterize_Reversed(t *testing.T) {
	a, b := geom.Coord{X: 0, Y: 0}, geom.Coord{X: 8, Y: 4}
	fwd := chord.Rasterize(a, b, 10)
	rev := chord.Rasterize(b, a, 10)
	require.Len(t, rev, len(fwd))
	assert.Equal(t, fwd[0], rev[len(rev)-1])
	assert.Equal(t, fwd[len(fwd)-1], rev[0])
}

// TestRasterize_Degenerate returns a single sample for coincident endpoints.
func TestRasterize_Degenerate(t *testing.T) {
	pts := chord.Rasterize(geom.Coord{X: 2.2, Y: 2.7}, geom.Coord{X: 2.2, Y: 2.7}, 10)
	assert.Equal(t, []chord.Point{{X: 2, Y: 3}}, pts)
}

// TestRasterize_NoDeduplication keeps repeated pixels from rounding.
func TestRasterize_NoDeduplication(t *testing.T) {
	pts := chord.Rasterize(geom.Coord{X: 0, Y: 0}, geom.Coord{X: 0.4, Y: 0.4}, 10)
	assert.Equal(t, []chord.Point{{X: 0, Y: 0}, {X: 0, Y: 0}}, pts)
}

// TestRasterize_ClampsToCanvas keeps every sample inside [0,size).
func TestRasterize_ClampsToCanvas(t *testing.T) {
	pts := chord.Rasterize(geom.Coord{X: -2, Y: 5}, geom.Coord{X: 12, Y: 5}, 10)
	require.Len(t, pts, 15)
	assert.Equal(t, chord.Point{X: 0, Y: 5}, pts[0])
	assert.Equal(t, chord.Point{X: 9, Y: 5}, pts[len(pts)-1])
	for _, p := range pts {
		assert.True(t, p.X >= 0 && p.X < 10 && p.Y >= 0 && p.Y < 10, "sample %v out of canvas", p)
	}
}

// TestNewKey canonicalises unordered pairs.
func TestNewKey(t *testing.T) {
	assert.Equal(t, chord.Key{A: 2, B: 7}, chord.NewKey(7, 2))
	assert.Equal(t, chord.Key{A: 2, B: 7}, chord.NewKey(2, 7))
}

// TestBuild_Errors verifies sentinel errors on bad arguments.
func TestBuild_Errors(t *testing.T) {
	coords, err := pins.Layout(8, 10)
	require.NoError(t, err)

	_, err = chord.Build(coords[:1], 10, 1, 1)
	assert.ErrorIs(t, err, chord.ErrBadPinCount)

	_, err = chord.Build(coords, 0, 2, 1)
	assert.ErrorIs(t, err, chord.ErrBadSize)

	_, err = chord.Build(coords, 10, 0, 1)
	assert.ErrorIs(t, err, chord.ErrBadMinDistance)

	_, err = chord.Build(coords, 10, 5, 1)
	assert.ErrorIs(t, err, chord.ErrBadMinDistance)
}

// TestBuild_PopulatesExactlyAdmissiblePairs checks the key set on an 8-pin board.
func TestBuild_PopulatesExactlyAdmissiblePairs(t *testing.T) {
	const n, size, d = 8, 10, 2
	coords, err := pins.Layout(n, size)
	require.NoError(t, err)
	c, err := chord.Build(coords, size, d, 3)
	require.NoError(t, err)

	// 28 unordered pairs minus the 8 neighbouring ones.
	assert.Equal(t, 20, c.Len())
	assert.Len(t, c.Keys(), 20)
	assert.Equal(t, n, c.PinCount())
	assert.Equal(t, d, c.MinDistance())
	assert.Equal(t, size, c.Size())

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_, ok := c.Points(i, j)
			assert.Equal(t, pins.Valid(i, j, n, d), ok, "pair (%d,%d)", i, j)
		}
	}
	for k := 1; k < len(c.Keys()); k++ {
		prev, cur := c.Keys()[k-1], c.Keys()[k]
		assert.True(t, prev.A < cur.A || (prev.A == cur.A && prev.B < cur.B), "keys not ascending")
	}
}

// TestCache_SymmetryAndEndpoints verifies (i,j) and (j,i) share samples and
// that the samples start and end on the rounded pin pixels.
func TestCache_SymmetryAndEndpoints(t *testing.T) {
	const n, size, d = 36, 64, 4
	coords, err := pins.Layout(n, size)
	require.NoError(t, err)
	c, err := chord.Build(coords, size, d, 0)
	require.NoError(t, err)

	for _, k := range c.Keys() {
		ij, ok := c.Points(k.A, k.B)
		require.True(t, ok)
		ji, ok := c.Points(k.B, k.A)
		require.True(t, ok)
		assert.Equal(t, pointSet(ij), pointSet(ji), "chord %v", k)

		assert.Equal(t, roundedPin(coords[k.A], size), ij[0], "chord %v first sample", k)
		assert.Equal(t, roundedPin(coords[k.B], size), ij[len(ij)-1], "chord %v last sample", k)
	}
}

// TestBuild_WorkerCountInvariant builds with 1 and many workers and compares.
func TestBuild_WorkerCountInvariant(t *testing.T) {
	coords, err := pins.Layout(48, 80)
	require.NoError(t, err)
	one, err := chord.Build(coords, 80, 6, 1)
	require.NoError(t, err)
	many, err := chord.Build(coords, 80, 6, 16)
	require.NoError(t, err)

	require.Equal(t, one.Keys(), many.Keys())
	for _, k := range one.Keys() {
		a, _ := one.Points(k.A, k.B)
		b, _ := many.Points(k.A, k.B)
		assert.Equal(t, a, b)
	}
}

// TestCache_Trace falls back to direct rasterisation outside the cache.
func TestCache_Trace(t *testing.T) {
	coords, err := pins.Layout(8, 10)
	require.NoError(t, err)
	c, err := chord.Build(coords, 10, 2, 1)
	require.NoError(t, err)

	cached, _ := c.Points(0, 4)
	assert.Equal(t, cached, c.Trace(4, 0))

	_, ok := c.Points(0, 1)
	require.False(t, ok)
	assert.Equal(t, chord.Rasterize(coords[0], coords[1], 10), c.Trace(1, 0))
	assert.Nil(t, c.Trace(0, 8))
}
