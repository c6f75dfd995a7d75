package genetic

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/stringart/canvas"
	"github.com/katalvlaran/stringart/chord"
	"github.com/katalvlaran/stringart/params"
	"github.com/katalvlaran/stringart/pins"
	"github.com/katalvlaran/stringart/tabu"
	"golang.org/x/sync/errgroup"
)

// initialPopulation builds PopulationSize chromosomes under cfg.Init, then
// overwrites the tail with seeds.
func initialPopulation(target *canvas.Canvas, cache *chord.Cache, cfg params.Config, seeds [][]int) ([][]int, error) {
	p := cfg.PopulationSize
	pop := make([][]int, p)

	// seeded slots are not built at all
	built := p - len(seeds)
	// jittered distances never go below the configured constraint
	floor := max(cache.MinDistance(), cfg.MinDistance)

	var i int

	switch cfg.Init {
	case params.InitTabuJitter:
		var g errgroup.Group
		g.SetLimit(cfg.WorkerCount())
		for i = 0; i < built; i++ {
			slot := i
			g.Go(func() error {
				jc := cfg
				if slot > 0 {
					jc = jitter(cfg, floor, initRNG(cfg.Seed, slot))
				}
				jc.Workers = 1
				res, err := tabu.Solve(target, cache, jc)
				if err != nil {
					return fmt.Errorf("tabu seed %d: %w", slot, err)
				}
				pop[slot] = res.Sequence
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	default:
		for i = 0; i < built; i++ {
			pop[i] = randomWalk(cfg, initRNG(cfg.Seed, i))
		}
	}

	for i = range seeds {
		pop[built+i] = seeds[i]
	}

	return pop, nil
}

// randomWalk returns a sequence of LineCount+1 pins from StartPin, each step
// taking a uniform offset from the admissible range.
func randomWalk(cfg params.Config, rng *rand.Rand) []int {
	lo, hi := cfg.Offsets()
	seq := make([]int, cfg.LineCount+1)
	seq[0] = cfg.StartPin
	var i int
	for i = 1; i < len(seq); i++ {
		seq[i] = (seq[i-1] + lo + rng.Intn(hi-lo)) % cfg.PinCount
	}

	return seq
}

// jitter perturbs weight, distance and window by up to ±JitterPercent and
// clamps them back into a valid configuration whose distance is at least
// floor.
func jitter(cfg params.Config, floor int, rng *rand.Rand) params.Config {
	pct := cfg.JitterPercent
	scale := func() float64 { return 1 + (2*rng.Float64()-1)*pct }

	out := cfg
	if w := cfg.LineWeight * scale(); w > 0 && w < 1 {
		out.LineWeight = w
	}

	d := int(math.Round(float64(cfg.MinDistance) * scale()))
	if d < floor {
		d = floor
	}
	if maxD := (cfg.PinCount - 1) / 2; d > maxD {
		d = maxD
	}
	out.MinDistance = d

	win := int(math.Round(float64(cfg.TabuWindow) * scale()))
	if win < 0 {
		win = 0
	}
	if maxW := cfg.PinCount - 2*d - 1; win > maxW {
		win = maxW
	}
	out.TabuWindow = win

	return out
}

// checkSeeds validates caller-supplied sequences against cfg.
func checkSeeds(seeds [][]int, cfg params.Config) error {
	if len(seeds) > cfg.PopulationSize {
		return fmt.Errorf("%w: %d seeds for %d slots", ErrBadSeedSequence, len(seeds), cfg.PopulationSize)
	}
	dist := cfg.MinDistance
	if cfg.Mutation == params.MutateUniformUnchecked {
		dist = 0
	}
	for i, s := range seeds {
		if len(s) != cfg.LineCount+1 {
			return fmt.Errorf("%w: seed %d has %d pins, want %d", ErrBadSeedSequence, i, len(s), cfg.LineCount+1)
		}
		if err := pins.ValidateSequence(s, cfg.PinCount, dist); err != nil {
			return fmt.Errorf("%w: seed %d: %v", ErrBadSeedSequence, i, err)
		}
	}

	return nil
}
