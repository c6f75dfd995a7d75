package genetic

import (
	"github.com/katalvlaran/stringart/canvas"
	"github.com/katalvlaran/stringart/chord"
	"github.com/katalvlaran/stringart/params"
	"golang.org/x/sync/errgroup"
)

// Fitness replays seq onto a copy of residual and returns −Σ|residual|.
// Chords outside the cache are rasterised on the fly.
func Fitness(residual *canvas.Canvas, cache *chord.Cache, seq []int, weight float64, policy canvas.ClampPolicy) float64 {
	work := residual.Clone()

	return replay(work, cache, seq, weight, policy)
}

// replay subtracts every chord of seq from work, in place.
func replay(work *canvas.Canvas, cache *chord.Cache, seq []int, weight float64, policy canvas.ClampPolicy) float64 {
	var i int
	for i = 1; i < len(seq); i++ {
		work.Subtract(cache.Trace(seq[i-1], seq[i]), weight, policy)
	}

	return -work.SumAbs()
}

// evaluate fills fit[i] for every chromosome. Chromosomes are split into
// contiguous chunks; each worker owns one scratch canvas and its slots.
func evaluate(residual *canvas.Canvas, cache *chord.Cache, pop [][]int, fit []float64, cfg params.Config) error {
	p := len(pop)
	w := cfg.WorkerCount()
	if w > p {
		w = p
	}
	chunk := (p + w - 1) / w

	var g errgroup.Group
	var lo int
	for lo = 0; lo < p; lo += chunk {
		from, to := lo, lo+chunk
		if to > p {
			to = p
		}
		g.Go(func() error {
			work := residual.Clone()
			var i int
			for i = from; i < to; i++ {
				if err := work.CopyFrom(residual); err != nil {
					return err
				}
				fit[i] = replay(work, cache, pop[i], cfg.LineWeight, cfg.Clamp)
			}
			return nil
		})
	}

	return g.Wait()
}
