package params

import (
	"fmt"
	"runtime"
)

// Validate checks the fields used by pin layout, chord cache and the tabu
// search. Every failure wraps ErrInvalidConfig.
//
// Rules:
//   - MinDistance ≥ 1 and PinCount > 2·MinDistance (at least one candidate offset);
//   - LineCount > 0, LineWeight ∈ (0,1), Size > 0;
//   - StartPin ∈ [0, PinCount);
//   - 0 ≤ TabuWindow < PinCount − 2·MinDistance (the candidate set can never empty);
//   - Workers ≥ 0, Clamp is a known policy.
func (c Config) Validate() error {
	if c.MinDistance < 1 {
		return fmt.Errorf("%w: min_distance must be at least 1 (%d)", ErrInvalidConfig, c.MinDistance)
	}
	if c.PinCount <= 2*c.MinDistance {
		return fmt.Errorf("%w: pin_count (%d) must exceed 2*min_distance (%d)", ErrInvalidConfig, c.PinCount, 2*c.MinDistance)
	}
	if c.LineCount <= 0 {
		return fmt.Errorf("%w: line_count must be positive (%d)", ErrInvalidConfig, c.LineCount)
	}
	if !(c.LineWeight > 0 && c.LineWeight < 1) {
		return fmt.Errorf("%w: line_weight must be in (0,1) (%v)", ErrInvalidConfig, c.LineWeight)
	}
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive (%d)", ErrInvalidConfig, c.Size)
	}
	if c.StartPin < 0 || c.StartPin >= c.PinCount {
		return fmt.Errorf("%w: start_pin %d outside [0,%d)", ErrInvalidConfig, c.StartPin, c.PinCount)
	}
	if c.TabuWindow < 0 {
		return fmt.Errorf("%w: tabu_window cannot be negative (%d)", ErrInvalidConfig, c.TabuWindow)
	}
	if c.TabuWindow >= c.CandidateCount() {
		return fmt.Errorf("%w: tabu_window (%d) must be below pin_count-2*min_distance (%d)",
			ErrInvalidConfig, c.TabuWindow, c.CandidateCount())
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative (%d)", ErrInvalidConfig, c.Workers)
	}
	if !c.Clamp.Valid() {
		return fmt.Errorf("%w: unknown clamp policy %v", ErrInvalidConfig, c.Clamp)
	}

	return nil
}

// ValidateGenetic runs Validate and then checks the population-search fields.
func (c Config) ValidateGenetic() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.PopulationSize <= 0 {
		return fmt.Errorf("%w: population_size must be positive (%d)", ErrInvalidConfig, c.PopulationSize)
	}
	if !isProbability(c.CrossoverRate) {
		return fmt.Errorf("%w: crossover_rate must be in [0,1] (%v)", ErrInvalidConfig, c.CrossoverRate)
	}
	if !isProbability(c.MutationRate) {
		return fmt.Errorf("%w: mutation_rate must be in [0,1] (%v)", ErrInvalidConfig, c.MutationRate)
	}
	if c.GenerationCount < 0 {
		return fmt.Errorf("%w: generation_count cannot be negative (%d)", ErrInvalidConfig, c.GenerationCount)
	}
	if c.TournamentSize < 1 {
		return fmt.Errorf("%w: tournament_size must be at least 1 (%d)", ErrInvalidConfig, c.TournamentSize)
	}
	switch c.Mutation {
	case MutateOffset, MutateUniform, MutateUniformUnchecked:
	default:
		return fmt.Errorf("%w: unknown mutation policy %v", ErrInvalidConfig, c.Mutation)
	}
	switch c.Init {
	case InitRandomWalk, InitTabuJitter:
	default:
		return fmt.Errorf("%w: unknown init policy %v", ErrInvalidConfig, c.Init)
	}
	if !(c.JitterPercent >= 0 && c.JitterPercent < 1) {
		return fmt.Errorf("%w: jitter_percent must be in [0,1) (%v)", ErrInvalidConfig, c.JitterPercent)
	}

	return nil
}

// Offsets returns the half-open candidate offset range [lo, hi): from a
// current pin p, the candidates are (p + o) mod N for o in the range.
func (c Config) Offsets() (lo, hi int) {
	return c.MinDistance, c.PinCount - c.MinDistance
}

// CandidateCount returns hi − lo of Offsets, the number of candidate pins
// from any current pin.
func (c Config) CandidateCount() int {
	return c.PinCount - 2*c.MinDistance
}

// WorkerCount resolves Workers, mapping 0 to GOMAXPROCS.
func (c Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}

	return runtime.GOMAXPROCS(0)
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
