package stringart

import (
	"errors"
	"fmt"

	"github.com/jbeda/geom"
	"github.com/katalvlaran/stringart/chord"
	"github.com/katalvlaran/stringart/genetic"
	"github.com/katalvlaran/stringart/tabu"
)

// ErrUnknownStrategy indicates a Strategy value or name Generate cannot run.
var ErrUnknownStrategy = errors.New("stringart: unknown strategy")

// Strategy selects the search that produces the sequence.
type Strategy int

const (
	// StrategyTabu runs the greedy tabu search.
	StrategyTabu Strategy = iota

	// StrategyGenetic runs the genetic search from its own initial population.
	StrategyGenetic

	// StrategyHybrid runs the tabu search and seeds the genetic search with
	// its sequence.
	StrategyHybrid
)

// String returns the strategy name used by the command line.
func (s Strategy) String() string {
	switch s {
	case StrategyTabu:
		return "tabu"
	case StrategyGenetic:
		return "genetic"
	case StrategyHybrid:
		return "hybrid"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a strategy name back to its value.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "tabu", "":
		return StrategyTabu, nil
	case "genetic":
		return StrategyGenetic, nil
	case "hybrid":
		return StrategyHybrid, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Output is everything a renderer needs after a run.
type Output struct {
	Sequence []int
	Coords   []geom.Coord
	Cache    *chord.Cache
	Residual float64 // Σ|residual| after replaying Sequence

	// History is filled by the genetic and hybrid strategies.
	History []genetic.GenerationStats
}

// Option configures Generate.
type Option func(*Options)

// Options forwards options to the underlying solvers and an optional
// prebuilt cache.
type Options struct {
	Tabu    []tabu.Option
	Genetic []genetic.Option

	// Cache, when set and matching, skips chord.Build.
	Cache *chord.Cache
}

// WithTabuOptions forwards options to the tabu search.
func WithTabuOptions(opts ...tabu.Option) Option {
	return func(o *Options) { o.Tabu = append(o.Tabu, opts...) }
}

// WithGeneticOptions forwards options to the genetic search.
func WithGeneticOptions(opts ...genetic.Option) Option {
	return func(o *Options) { o.Genetic = append(o.Genetic, opts...) }
}

// WithCache reuses a cache built earlier for the same pins and size.
func WithCache(c *chord.Cache) Option {
	return func(o *Options) { o.Cache = c }
}
