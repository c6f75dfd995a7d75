package params

import (
	"fmt"

	"github.com/katalvlaran/stringart/canvas"
)

// Option mutates a Config under construction. Nonsensical arguments are
// recorded and reported by New as ErrInvalidConfig.
type Option func(*Config)

// New applies opts to DefaultConfig and validates the core fields.
// Genetic fields are checked later by ValidateGenetic.
func New(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.err != nil {
		err := cfg.err
		cfg.err = nil
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// fail records the first option violation.
func (c *Config) fail(format string, args ...any) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
	}
}

// WithPins sets the pin count N.
func WithPins(n int) Option {
	return func(c *Config) {
		if n <= 0 {
			c.fail("pin count must be positive (%d)", n)
			return
		}
		c.PinCount = n
	}
}

// WithLines sets the number of chords to place.
func WithLines(n int) Option {
	return func(c *Config) {
		if n <= 0 {
			c.fail("line count must be positive (%d)", n)
			return
		}
		c.LineCount = n
	}
}

// WithWeight sets the residual decrement per sample.
func WithWeight(w float64) Option {
	return func(c *Config) {
		if !(w > 0 && w < 1) {
			c.fail("line weight must be in (0,1) (%v)", w)
			return
		}
		c.LineWeight = w
	}
}

// WithSize sets the canvas edge length.
func WithSize(px int) Option {
	return func(c *Config) {
		if px <= 0 {
			c.fail("size must be positive (%d)", px)
			return
		}
		c.Size = px
	}
}

// WithMinDistance sets the minimal circular pin separation.
func WithMinDistance(d int) Option {
	return func(c *Config) {
		if d < 1 {
			c.fail("min distance must be at least 1 (%d)", d)
			return
		}
		c.MinDistance = d
	}
}

// WithTabuWindow sets the tabu memory capacity; 0 disables the memory.
func WithTabuWindow(w int) Option {
	return func(c *Config) {
		if w < 0 {
			c.fail("tabu window cannot be negative (%d)", w)
			return
		}
		c.TabuWindow = w
	}
}

// WithStartPin sets the first pin of every sequence.
func WithStartPin(p int) Option {
	return func(c *Config) {
		if p < 0 {
			c.fail("start pin cannot be negative (%d)", p)
			return
		}
		c.StartPin = p
	}
}

// WithClamp selects the residual floor policy.
func WithClamp(p canvas.ClampPolicy) Option {
	return func(c *Config) {
		if !p.Valid() {
			c.fail("unknown clamp policy %v", p)
			return
		}
		c.Clamp = p
	}
}

// WithWorkers sets the parallel fan-out; 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Config) {
		if n < 0 {
			c.fail("workers cannot be negative (%d)", n)
			return
		}
		c.Workers = n
	}
}

// WithSeed sets the RNG seed.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithPopulation sets the genetic population size.
func WithPopulation(n int) Option {
	return func(c *Config) {
		if n <= 0 {
			c.fail("population size must be positive (%d)", n)
			return
		}
		c.PopulationSize = n
	}
}

// WithGenerations sets the number of generations.
func WithGenerations(n int) Option {
	return func(c *Config) {
		if n < 0 {
			c.fail("generation count cannot be negative (%d)", n)
			return
		}
		c.GenerationCount = n
	}
}

// WithRates sets crossover and mutation probabilities.
func WithRates(crossover, mutation float64) Option {
	return func(c *Config) {
		if !isProbability(crossover) || !isProbability(mutation) {
			c.fail("rates must be in [0,1] (crossover=%v, mutation=%v)", crossover, mutation)
			return
		}
		c.CrossoverRate = crossover
		c.MutationRate = mutation
	}
}

// WithMutation selects the mutation policy.
func WithMutation(p MutationPolicy) Option {
	return func(c *Config) { c.Mutation = p }
}

// WithInit selects the population initialisation policy.
func WithInit(p InitPolicy) Option {
	return func(c *Config) { c.Init = p }
}

// WithJitter sets the relative jitter applied by InitTabuJitter.
func WithJitter(pct float64) Option {
	return func(c *Config) {
		if !(pct >= 0 && pct < 1) {
			c.fail("jitter percent must be in [0,1) (%v)", pct)
			return
		}
		c.JitterPercent = pct
	}
}

// WithTournamentSize sets the tournament size k.
func WithTournamentSize(k int) Option {
	return func(c *Config) {
		if k < 1 {
			c.fail("tournament size must be at least 1 (%d)", k)
			return
		}
		c.TournamentSize = k
	}
}
