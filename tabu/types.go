package tabu

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for the tabu search.
var (
	// ErrCandidatesExhausted is returned when every candidate pin is tabu.
	ErrCandidatesExhausted = errors.New("tabu: every candidate pin is tabu")

	// ErrBudgetExhausted is returned by Step once LineCount chords are placed.
	ErrBudgetExhausted = errors.New("tabu: line budget exhausted")

	// ErrCacheMismatch indicates a cache built for other pins, distance or size.
	ErrCacheMismatch = errors.New("tabu: chord cache does not match configuration")

	// ErrCanvasMismatch indicates a target canvas that is not Size×Size.
	ErrCanvasMismatch = errors.New("tabu: target canvas does not match configuration")

	// ErrNilInput indicates a nil target or cache.
	ErrNilInput = errors.New("tabu: target and cache are required")
)

// Step describes one committed chord.
type Step struct {
	Index       int           // 1-based number of the chord
	From, To    int           // pins joined by the chord
	Score       float64       // residual sum along the chord before commit
	ResidualSum float64       // Σ|residual| after commit
	Elapsed     time.Duration // wall time of the step
}

// Result is the outcome of a full run.
type Result struct {
	// Sequence has LineCount+1 pins and starts at the configured start pin.
	Sequence []int

	// Residual is Σ|residual| after the last commit.
	Residual float64
}

// Option configures the solver beyond params.Config.
type Option func(*Options)

// Options holds hooks and the cancellation context.
type Options struct {
	// Ctx is checked between steps by Run.
	Ctx context.Context

	// OnCommit runs after every committed chord, on the solver goroutine.
	OnCommit func(Step)
}

// DefaultOptions returns a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnCommit: func(Step) {},
	}
}

// WithContext sets the context checked by Run between steps.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnCommit registers a hook called after each committed chord.
func WithOnCommit(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCommit = fn
		}
	}
}
