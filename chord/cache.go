package chord

import (
	"runtime"

	"github.com/jbeda/geom"
	"github.com/katalvlaran/stringart/pins"
	"golang.org/x/sync/errgroup"
)

// Cache holds the rasterised samples of every admissible pin pair.
// It is immutable once Build returns.
type Cache struct {
	coords      []geom.Coord
	size        int
	minDistance int
	n           int
	lines       [][]Point // lines[a*n+b] for a<b; nil when the pair is not admissible
	count       int
}

// Build rasterises every unordered pin pair whose circular distance is at
// least minDistance. Rows of the pair triangle are distributed over at most
// workers goroutines (workers ≤ 0 ⇒ GOMAXPROCS). Each goroutine writes only
// the slots of its own row, so no locking is needed.
//
// Errors: ErrBadPinCount, ErrBadSize, ErrBadMinDistance.
func Build(coords []geom.Coord, size, minDistance, workers int) (*Cache, error) {
	n := len(coords)
	if n < 2 {
		return nil, ErrBadPinCount
	}
	if size <= 0 {
		return nil, ErrBadSize
	}
	if minDistance < 1 || minDistance > n/2 {
		return nil, ErrBadMinDistance
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	c := &Cache{
		coords:      append([]geom.Coord(nil), coords...),
		size:        size,
		minDistance: minDistance,
		n:           n,
		lines:       make([][]Point, n*n),
	}

	var g errgroup.Group
	g.SetLimit(workers)
	var a int
	for a = 0; a < n; a++ {
		row := a
		g.Go(func() error {
			var b int
			for b = row + 1; b < n; b++ {
				if pins.CircularDistance(row, b, n) < minDistance {
					continue
				}
				c.lines[row*n+b] = Rasterize(c.coords[row], c.coords[b], size)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for a = range c.lines {
		if c.lines[a] != nil {
			c.count++
		}
	}

	return c, nil
}

// Points returns the cached samples of chord {i, j}. The slice is shared and
// must not be modified. ok is false for pairs outside the cache.
func (c *Cache) Points(i, j int) ([]Point, bool) {
	if i < 0 || j < 0 || i >= c.n || j >= c.n || i == j {
		return nil, false
	}
	k := NewKey(i, j)
	pts := c.lines[k.A*c.n+k.B]

	return pts, pts != nil
}

// Trace returns the samples of chord {i, j}: the cached list when the pair is
// admissible, otherwise a fresh rasterisation between the two pin positions
// (ordered from the smaller pin index, like the cache). Out-of-range pins
// yield nil.
func (c *Cache) Trace(i, j int) []Point {
	if pts, ok := c.Points(i, j); ok {
		return pts
	}
	if i < 0 || j < 0 || i >= c.n || j >= c.n {
		return nil
	}
	k := NewKey(i, j)

	return Rasterize(c.coords[k.A], c.coords[k.B], c.size)
}

// PinCount returns the number of pins the cache was built for.
func (c *Cache) PinCount() int { return c.n }

// MinDistance returns the minimum circular distance used at build time.
func (c *Cache) MinDistance() int { return c.minDistance }

// Size returns the canvas edge length the samples are clamped to.
func (c *Cache) Size() int { return c.size }

// Len returns the number of cached chords.
func (c *Cache) Len() int { return c.count }

// Coords returns a copy of the pin coordinates.
func (c *Cache) Coords() []geom.Coord {
	return append([]geom.Coord(nil), c.coords...)
}

// Keys returns the canonical keys of all cached chords in ascending order.
func (c *Cache) Keys() []Key {
	keys := make([]Key, 0, c.count)
	var a, b int
	for a = 0; a < c.n; a++ {
		for b = a + 1; b < c.n; b++ {
			if c.lines[a*c.n+b] != nil {
				keys = append(keys, Key{A: a, B: b})
			}
		}
	}

	return keys
}
