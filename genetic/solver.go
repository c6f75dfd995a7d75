package genetic

import (
	"math"

	"github.com/katalvlaran/stringart/canvas"
	"github.com/katalvlaran/stringart/chord"
	"github.com/katalvlaran/stringart/params"
	"github.com/katalvlaran/stringart/tabu"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Solve runs GenerationCount generations and returns the best chromosome of
// the final population; ties go to the lowest slot.
//
// Errors: params.ErrInvalidConfig, tabu.ErrNilInput, tabu.ErrCacheMismatch,
// tabu.ErrCanvasMismatch, ErrBadSeedSequence, or the context error.
func Solve(target *canvas.Canvas, cache *chord.Cache, cfg params.Config, opts ...Option) (Result, error) {
	if err := cfg.ValidateGenetic(); err != nil {
		return Result{}, err
	}
	if err := tabu.CheckInputs(target, cache, cfg); err != nil {
		return Result{}, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := checkSeeds(o.Seeds, cfg); err != nil {
		return Result{}, err
	}

	pop, err := initialPopulation(target, cache, cfg, o.Seeds)
	if err != nil {
		return Result{}, err
	}

	residual := canvas.NewResidual(target)
	p := cfg.PopulationSize
	fit := make([]float64, p)
	next := make([][]int, p)
	var i int
	for i = range next {
		next[i] = make([]int, cfg.LineCount+1)
	}
	history := make([]GenerationStats, 0, cfg.GenerationCount+1)

	var gen int
	for gen = 0; gen < cfg.GenerationCount; gen++ {
		if err = o.Ctx.Err(); err != nil {
			return Result{}, err
		}
		if err = evaluate(residual, cache, pop, fit, cfg); err != nil {
			return Result{}, err
		}
		history = append(history, summarize(gen, fit))
		o.OnGeneration(history[len(history)-1])

		if err = breed(pop, next, fit, cfg, gen); err != nil {
			return Result{}, err
		}
		pop, next = next, pop
	}

	if err = evaluate(residual, cache, pop, fit, cfg); err != nil {
		return Result{}, err
	}
	history = append(history, summarize(cfg.GenerationCount, fit))
	o.OnGeneration(history[len(history)-1])

	best := floats.MaxIdx(fit)

	return Result{
		Sequence: append([]int(nil), pop[best]...),
		Fitness:  fit[best],
		History:  history,
	}, nil
}

// breed fills next from the frozen parents. Each slot owns its RNG stream
// and its output row, so slots run in any order.
func breed(parents, next [][]int, fit []float64, cfg params.Config, gen int) error {
	check := cfg.Mutation != params.MutateUniformUnchecked

	var g errgroup.Group
	g.SetLimit(cfg.WorkerCount())
	var i int
	for i = range next {
		slot := i
		g.Go(func() error {
			rng := childRNG(cfg.Seed, gen, slot)
			child := next[slot][:len(parents[0])]
			a := tournament(fit, cfg.TournamentSize, rng)
			b := tournament(fit, cfg.TournamentSize, rng)
			if rng.Float64() < cfg.CrossoverRate {
				crossover(child, parents[a], parents[b], cfg.PinCount, cfg.MinDistance, check, rng)
			} else {
				copy(child, parents[a])
			}
			if rng.Float64() < cfg.MutationRate {
				mutate(child, cfg, rng)
			}
			return nil
		})
	}

	return g.Wait()
}

// summarize computes best, mean and population standard deviation.
func summarize(gen int, fit []float64) GenerationStats {
	mean, std := stat.PopMeanStdDev(fit, nil)
	if math.IsNaN(std) {
		std = 0
	}

	return GenerationStats{
		Generation: gen,
		Best:       floats.Max(fit),
		Mean:       mean,
		StdDev:     std,
	}
}
