package params

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stringart/canvas"
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("params: invalid configuration")

// MutationPolicy selects how the genetic search rewrites a gene.
type MutationPolicy int

const (
	// MutateOffset moves the gene to current + offset with offset drawn from
	// the admissible range, keeping both neighbouring chords admissible.
	MutateOffset MutationPolicy = iota

	// MutateUniform draws a pin uniformly from [0, N) and rejects the
	// mutation when a neighbouring chord would break the minimum distance.
	MutateUniform

	// MutateUniformUnchecked draws a pin uniformly from [0, N) and keeps it
	// even when the minimum distance is violated.
	MutateUniformUnchecked
)

// String returns the policy name used in configuration files and flags.
func (p MutationPolicy) String() string {
	switch p {
	case MutateOffset:
		return "offset"
	case MutateUniform:
		return "uniform"
	case MutateUniformUnchecked:
		return "uniform-unchecked"
	default:
		return fmt.Sprintf("MutationPolicy(%d)", int(p))
	}
}

// ParseMutationPolicy maps a policy name back to its value.
func ParseMutationPolicy(s string) (MutationPolicy, error) {
	switch s {
	case "offset", "":
		return MutateOffset, nil
	case "uniform":
		return MutateUniform, nil
	case "uniform-unchecked":
		return MutateUniformUnchecked, nil
	default:
		return 0, fmt.Errorf("%w: unknown mutation policy %q", ErrInvalidConfig, s)
	}
}

// InitPolicy selects how the initial population is built.
type InitPolicy int

const (
	// InitRandomWalk builds every chromosome as a constrained random walk.
	InitRandomWalk InitPolicy = iota

	// InitTabuJitter runs the tabu search once per chromosome with jittered
	// weight, distance and tabu window.
	InitTabuJitter
)

// String returns the policy name used in configuration files and flags.
func (p InitPolicy) String() string {
	switch p {
	case InitRandomWalk:
		return "random-walk"
	case InitTabuJitter:
		return "tabu-jitter"
	default:
		return fmt.Sprintf("InitPolicy(%d)", int(p))
	}
}

// ParseInitPolicy maps a policy name back to its value.
func ParseInitPolicy(s string) (InitPolicy, error) {
	switch s {
	case "random-walk", "":
		return InitRandomWalk, nil
	case "tabu-jitter":
		return InitTabuJitter, nil
	default:
		return 0, fmt.Errorf("%w: unknown init policy %q", ErrInvalidConfig, s)
	}
}

// Defaults.
const (
	DefaultPins           = 288
	DefaultLines          = 4000
	DefaultWeight         = 20.0 / 256.0
	DefaultSize           = 800
	DefaultMinDistance    = 20
	DefaultTabuWindow     = 10
	DefaultPopulationSize = 32
	DefaultCrossoverRate  = 0.7
	DefaultMutationRate   = 0.2
	DefaultGenerations    = 50
	DefaultTournamentSize = 3
	DefaultJitterPercent  = 0.1
)

// Config is the immutable configuration of one run.
//
// Core fields:
//   - PinCount    – N, pins on the circle.
//   - LineCount   – chords to place; sequences have LineCount+1 pins.
//   - LineWeight  – residual decrement per sample, in (0,1).
//   - Size        – canvas edge in pixels.
//   - MinDistance – minimal circular pin separation of a chord (≥1).
//   - TabuWindow  – tabu memory capacity; must stay below N − 2·MinDistance.
//   - StartPin    – first pin of every sequence.
//   - Clamp       – residual floor policy.
//   - Workers     – fan-out for parallel stages; 0 ⇒ GOMAXPROCS.
//   - Seed        – RNG seed; 0 ⇒ fixed default.
//
// Genetic fields are ignored by the tabu search.
type Config struct {
	PinCount    int
	LineCount   int
	LineWeight  float64
	Size        int
	MinDistance int
	TabuWindow  int
	StartPin    int
	Clamp       canvas.ClampPolicy
	Workers     int
	Seed        int64

	PopulationSize  int
	CrossoverRate   float64
	MutationRate    float64
	GenerationCount int
	TournamentSize  int
	Mutation        MutationPolicy
	Init            InitPolicy
	JitterPercent   float64

	// err records the first invalid argument seen by a With* setter.
	err error
}

// DefaultConfig returns the command-line defaults.
func DefaultConfig() Config {
	return Config{
		PinCount:        DefaultPins,
		LineCount:       DefaultLines,
		LineWeight:      DefaultWeight,
		Size:            DefaultSize,
		MinDistance:     DefaultMinDistance,
		TabuWindow:      DefaultTabuWindow,
		StartPin:        0,
		Clamp:           canvas.Unclamped,
		Workers:         0,
		Seed:            0,
		PopulationSize:  DefaultPopulationSize,
		CrossoverRate:   DefaultCrossoverRate,
		MutationRate:    DefaultMutationRate,
		GenerationCount: DefaultGenerations,
		TournamentSize:  DefaultTournamentSize,
		Mutation:        MutateOffset,
		Init:            InitRandomWalk,
		JitterPercent:   DefaultJitterPercent,
	}
}
