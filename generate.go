package stringart

import (
	"fmt"

	"github.com/katalvlaran/stringart/canvas"
	"github.com/katalvlaran/stringart/chord"
	"github.com/katalvlaran/stringart/genetic"
	"github.com/katalvlaran/stringart/params"
	"github.com/katalvlaran/stringart/pins"
	"github.com/katalvlaran/stringart/tabu"
)

// Generate lays out the pins, builds (or reuses) the chord cache and runs
// strategy on target.
//
// Errors: params.ErrInvalidConfig, ErrUnknownStrategy, and the sentinel
// errors of pins, chord, tabu and genetic.
func Generate(target *canvas.Canvas, cfg params.Config, strategy Strategy, opts ...Option) (Output, error) {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	switch strategy {
	case StrategyTabu:
		if err := cfg.Validate(); err != nil {
			return Output{}, err
		}
	case StrategyGenetic, StrategyHybrid:
		if err := cfg.ValidateGenetic(); err != nil {
			return Output{}, err
		}
	default:
		return Output{}, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}

	cache, err := prepareCache(cfg, o.Cache)
	if err != nil {
		return Output{}, err
	}

	out := Output{Coords: cache.Coords(), Cache: cache}
	switch strategy {
	case StrategyTabu:
		res, err := tabu.Solve(target, cache, cfg, o.Tabu...)
		if err != nil {
			return Output{}, err
		}
		out.Sequence, out.Residual = res.Sequence, res.Residual

	case StrategyGenetic, StrategyHybrid:
		gopts := o.Genetic
		if strategy == StrategyHybrid {
			base, err := tabu.Solve(target, cache, cfg, o.Tabu...)
			if err != nil {
				return Output{}, fmt.Errorf("hybrid seed: %w", err)
			}
			gopts = append([]genetic.Option{genetic.WithSeedSequences(base.Sequence)}, gopts...)
		}
		res, err := genetic.Solve(target, cache, cfg, gopts...)
		if err != nil {
			return Output{}, err
		}
		out.Sequence, out.Residual, out.History = res.Sequence, -res.Fitness, res.History
	}

	return out, nil
}

// prepareCache returns c when it fits cfg, otherwise a fresh cache.
func prepareCache(cfg params.Config, c *chord.Cache) (*chord.Cache, error) {
	if c != nil && c.PinCount() == cfg.PinCount && c.Size() == cfg.Size && c.MinDistance() <= cfg.MinDistance {
		return c, nil
	}
	coords, err := pins.Layout(cfg.PinCount, cfg.Size)
	if err != nil {
		return nil, err
	}

	return chord.Build(coords, cfg.Size, cfg.MinDistance, cfg.WorkerCount())
}
