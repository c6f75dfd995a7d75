package genetic

import (
	"context"
	"errors"
)

// ErrBadSeedSequence indicates a seed sequence of the wrong length, with a
// pin out of range or with an inadmissible chord, or more seeds than
// population slots.
var ErrBadSeedSequence = errors.New("genetic: invalid seed sequence")

// GenerationStats summarises the fitness of one evaluated population.
type GenerationStats struct {
	Generation int
	Best       float64
	Mean       float64
	StdDev     float64
}

// Result is the best chromosome of the final population.
type Result struct {
	Sequence []int
	Fitness  float64 // −Σ|residual| after replaying Sequence

	// History holds one entry per evaluated population: the initial one and
	// one per generation, GenerationCount+1 entries in total.
	History []GenerationStats
}

// Option configures the search beyond params.Config.
type Option func(*Options)

// Options holds hooks, context and seed sequences.
type Options struct {
	// Ctx is checked between generations.
	Ctx context.Context

	// OnGeneration runs after every population evaluation.
	OnGeneration func(GenerationStats)

	// Seeds replace the tail of the initial population.
	Seeds [][]int
}

// DefaultOptions returns a background context, a no-op hook and no seeds.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnGeneration: func(GenerationStats) {},
	}
}

// WithContext sets the context checked between generations.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnGeneration registers a hook called after each evaluation.
func WithOnGeneration(fn func(GenerationStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGeneration = fn
		}
	}
}

// WithSeedSequences adds externally built chromosomes to the initial
// population. Sequences are copied; they are validated by Solve.
func WithSeedSequences(seqs ...[]int) Option {
	return func(o *Options) {
		for _, s := range seqs {
			o.Seeds = append(o.Seeds, append([]int(nil), s...))
		}
	}
}
