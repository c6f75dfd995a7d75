package tabu

import (
	"fmt"
	"time"

	"github.com/katalvlaran/stringart/canvas"
	"github.com/katalvlaran/stringart/chord"
	"github.com/katalvlaran/stringart/params"
	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest candidate slice worth a goroutine.
const minChunk = 16

// Solver runs the tabu search step by step. It is not safe for concurrent use.
type Solver struct {
	cfg      params.Config
	cache    *chord.Cache
	residual *canvas.Canvas
	memory   *Memory
	opts     Options
	workers  int

	seq     []int
	current int
	sum     float64 // running Σ|residual|

	// per-step scratch, reused
	cands  []int
	scores []float64
}

// NewSolver validates its inputs and prepares a residual image from target.
// target is not modified.
//
// Errors: params.ErrInvalidConfig, ErrNilInput, ErrCacheMismatch,
// ErrCanvasMismatch.
func NewSolver(target *canvas.Canvas, cache *chord.Cache, cfg params.Config, opts ...Option) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := CheckInputs(target, cache, cfg); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	s := &Solver{
		cfg:      cfg,
		cache:    cache,
		residual: canvas.NewResidual(target),
		memory:   NewMemory(cfg.TabuWindow),
		opts:     o,
		workers:  cfg.WorkerCount(),
		seq:      make([]int, 1, cfg.LineCount+1),
		current:  cfg.StartPin,
		cands:    make([]int, 0, cfg.CandidateCount()),
		scores:   make([]float64, cfg.CandidateCount()),
	}
	s.seq[0] = cfg.StartPin
	s.sum = s.residual.SumAbs()

	return s, nil
}

// CheckInputs verifies that target and cache fit cfg. A cache built with a
// smaller minimum distance is accepted: it holds every chord cfg needs.
func CheckInputs(target *canvas.Canvas, cache *chord.Cache, cfg params.Config) error {
	if target == nil || cache == nil {
		return ErrNilInput
	}
	if cache.PinCount() != cfg.PinCount || cache.Size() != cfg.Size || cache.MinDistance() > cfg.MinDistance {
		return fmt.Errorf("%w: cache has %d pins, size %d, distance %d",
			ErrCacheMismatch, cache.PinCount(), cache.Size(), cache.MinDistance())
	}
	if target.Width() != cfg.Size || target.Height() != cfg.Size {
		return fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrCanvasMismatch, target.Width(), target.Height(), cfg.Size, cfg.Size)
	}

	return nil
}

// Step places one chord and reports it.
//
// Errors: ErrBudgetExhausted after LineCount chords, ErrCandidatesExhausted
// when every candidate is tabu (impossible for a validated config).
func (s *Solver) Step() (Step, error) {
	if len(s.seq) > s.cfg.LineCount {
		return Step{}, ErrBudgetExhausted
	}
	start := time.Now()

	s.collect()
	if len(s.cands) == 0 {
		return Step{}, ErrCandidatesExhausted
	}
	if err := s.score(); err != nil {
		return Step{}, err
	}
	best, bestScore := s.pick()

	pts, _ := s.cache.Points(s.current, best)
	s.memory.Push(best)
	s.seq = append(s.seq, best)
	s.sum += s.residual.Subtract(pts, s.cfg.LineWeight, s.cfg.Clamp)

	st := Step{
		Index:       len(s.seq) - 1,
		From:        s.current,
		To:          best,
		Score:       bestScore,
		ResidualSum: s.sum,
		Elapsed:     time.Since(start),
	}
	s.current = best
	s.opts.OnCommit(st)

	return st, nil
}

// collect fills s.cands with the non-tabu candidates of the current pin,
// ordered by offset.
func (s *Solver) collect() {
	lo, hi := s.cfg.Offsets()
	n := s.cfg.PinCount
	s.cands = s.cands[:0]

	var off, pin int
	for off = lo; off < hi; off++ {
		pin = (s.current + off) % n
		if s.memory.Contains(pin) {
			continue
		}
		s.cands = append(s.cands, pin)
	}
}

// score fills s.scores[i] for every s.cands[i]. Chunks are contiguous and
// disjoint, so workers never share a slot.
func (s *Solver) score() error {
	m := len(s.cands)
	w := s.workers
	if limit := (m + minChunk - 1) / minChunk; w > limit {
		w = limit
	}
	if w <= 1 {
		return s.scoreRange(0, m)
	}

	chunk := (m + w - 1) / w
	var g errgroup.Group
	g.SetLimit(w)
	var lo int
	for lo = 0; lo < m; lo += chunk {
		from, to := lo, lo+chunk
		if to > m {
			to = m
		}
		g.Go(func() error { return s.scoreRange(from, to) })
	}

	return g.Wait()
}

func (s *Solver) scoreRange(from, to int) error {
	var i int
	for i = from; i < to; i++ {
		pts, ok := s.cache.Points(s.current, s.cands[i])
		if !ok {
			return fmt.Errorf("%w: chord %d-%d not cached", ErrCacheMismatch, s.current, s.cands[i])
		}
		s.scores[i] = s.residual.Score(pts)
	}

	return nil
}

// pick returns the arg-max candidate; equal scores go to the smaller pin.
func (s *Solver) pick() (int, float64) {
	best, bestScore := s.cands[0], s.scores[0]
	var i int
	for i = 1; i < len(s.cands); i++ {
		if s.scores[i] > bestScore || (s.scores[i] == bestScore && s.cands[i] < best) {
			best, bestScore = s.cands[i], s.scores[i]
		}
	}

	return best, bestScore
}

// Run performs the remaining steps up to LineCount, checking the option
// context between steps.
func (s *Solver) Run() (Result, error) {
	for len(s.seq) <= s.cfg.LineCount {
		if err := s.opts.Ctx.Err(); err != nil {
			return Result{}, err
		}
		if _, err := s.Step(); err != nil {
			return Result{}, err
		}
	}

	return Result{Sequence: s.Sequence(), Residual: s.residual.SumAbs()}, nil
}

// Sequence returns a copy of the pins placed so far, start pin first.
func (s *Solver) Sequence() []int {
	return append([]int(nil), s.seq...)
}

// Memory returns the current tabu entries, oldest first.
func (s *Solver) Memory() []int {
	return s.memory.Snapshot()
}

// Residual returns a copy of the current residual image.
func (s *Solver) Residual() *canvas.Canvas {
	return s.residual.Clone()
}

// Solve builds a solver and runs it to completion.
func Solve(target *canvas.Canvas, cache *chord.Cache, cfg params.Config, opts ...Option) (Result, error) {
	s, err := NewSolver(target, cache, cfg, opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Run()
}
