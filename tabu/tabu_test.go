package tabu_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/stringart/canvas"
	"github.com/katalvlaran/stringart/chord"
	"github.com/katalvlaran/stringart/params"
	"github.com/katalvlaran/stringart/pins"
	"github.com/katalvlaran/stringart/tabu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// board builds a config, its chord cache and a uniform target.
func board(t *testing.T, n, size, dist, window, lines int, fill float64) (params.Config, *chord.Cache, *canvas.Canvas) {
	t.Helper()
	cfg := params.DefaultConfig()
	cfg.PinCount, cfg.Size, cfg.MinDistance, cfg.TabuWindow, cfg.LineCount = n, size, dist, window, lines
	cfg.LineWeight = 0.1
	require.NoError(t, cfg.Validate())

	coords, err := pins.Layout(n, size)
	require.NoError(t, err)
	cache, err := chord.Build(coords, size, dist, 0)
	require.NoError(t, err)
	target, err := canvas.New(size, size, fill)
	require.NoError(t, err)

	return cfg, cache, target
}

// noisy returns a size×size target with reproducible random values.
func noisy(t *testing.T, size int, seed int64) *canvas.Canvas {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	vals := make([]float64, size*size)
	for i := range vals {
		vals[i] = r.Float64()
	}
	c, err := canvas.FromValues(size, size, vals)
	require.NoError(t, err)

	return c
}

// TestMemory_Ring covers eviction order and the zero-capacity memory.
func TestMemory_Ring(t *testing.T) {
	m := tabu.NewMemory(3)
	for _, p := range []int{4, 5, 6, 7} {
		m.Push(p)
	}
	assert.Equal(t, []int{5, 6, 7}, m.Snapshot())
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 3, m.Cap())
	assert.False(t, m.Contains(4))
	assert.True(t, m.Contains(7))

	z := tabu.NewMemory(0)
	z.Push(1)
	assert.Equal(t, 0, z.Len())
	assert.False(t, z.Contains(1))
	assert.Empty(t, z.Snapshot())
}

// TestStep_ZeroResidualTieBreak: a white target leaves no ink debt, every
// candidate scores 0 and the smallest pin wins.
func TestStep_ZeroResidualTieBreak(t *testing.T) {
	cfg, cache, target := board(t, 8, 10, 2, 0, 3, 1.0)

	res, err := tabu.Solve(target, cache, cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 6}, res.Sequence)
}

// TestStep_HalfGray: on a uniform 0.5 residual the score is proportional to
// the sample count. Chords 0-3, 0-4 and 0-5 all carry nine samples, so the
// tie-break settles on pin 3.
func TestStep_HalfGray(t *testing.T) {
	cfg, cache, target := board(t, 8, 10, 2, 0, 3, 0.5)

	s, err := tabu.NewSolver(target, cache, cfg)
	require.NoError(t, err)

	first, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, 0, first.From)
	assert.Equal(t, 3, first.To)
	assert.InDelta(t, 4.5, first.Score, 1e-12)

	second, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, 3, second.From)
	assert.Less(t, second.ResidualSum, first.ResidualSum)

	_, err = s.Step()
	require.NoError(t, err)
	_, err = s.Step()
	assert.ErrorIs(t, err, tabu.ErrBudgetExhausted)
	assert.Len(t, s.Sequence(), 4)
}

// TestRun_Invariants checks length, start pin, minimum distance and the
// tabu window on a noisy target.
func TestRun_Invariants(t *testing.T) {
	const n, size, dist, window, lines = 24, 40, 3, 5, 60
	cfg, cache, _ := board(t, n, size, dist, window, lines, 0)
	cfg.StartPin = 7
	target := noisy(t, size, 11)

	res, err := tabu.Solve(target, cache, cfg)
	require.NoError(t, err)
	require.Len(t, res.Sequence, lines+1)
	assert.Equal(t, 7, res.Sequence[0])
	require.NoError(t, pins.ValidateSequence(res.Sequence, n, dist))

	for k := 1; k < len(res.Sequence); k++ {
		from := k - window
		if from < 1 {
			from = 1
		}
		assert.NotContains(t, res.Sequence[from:k], res.Sequence[k], "pin at %d reused inside window", k)
	}
}

// TestRun_DeterministicAcrossWorkers compares one worker with many.
func TestRun_DeterministicAcrossWorkers(t *testing.T) {
	const n, size = 96, 60
	cfg, cache, _ := board(t, n, size, 4, 8, 120, 0)
	target := noisy(t, size, 3)

	cfg.Workers = 1
	one, err := tabu.Solve(target, cache, cfg)
	require.NoError(t, err)

	cfg.Workers = 8
	many, err := tabu.Solve(target, cache, cfg)
	require.NoError(t, err)

	assert.Equal(t, one.Sequence, many.Sequence)
	assert.InDelta(t, one.Residual, many.Residual, 1e-9)
}

// TestRun_ClampZeroMonotonic: with the zero floor every commit can only
// shrink the residual mass, and the running sum matches a full rescan.
func TestRun_ClampZeroMonotonic(t *testing.T) {
	const size = 30
	cfg, cache, _ := board(t, 20, size, 3, 4, 80, 0)
	cfg.Clamp = canvas.ClampZero
	target := noisy(t, size, 5)

	var sums []float64
	s, err := tabu.NewSolver(target, cache, cfg, tabu.WithOnCommit(func(st tabu.Step) {
		sums = append(sums, st.ResidualSum)
	}))
	require.NoError(t, err)
	res, err := s.Run()
	require.NoError(t, err)

	require.Len(t, sums, 80)
	for i := 1; i < len(sums); i++ {
		assert.LessOrEqual(t, sums[i], sums[i-1]+1e-9)
	}
	assert.InDelta(t, res.Residual, sums[len(sums)-1], 1e-6)
	assert.InDelta(t, res.Residual, s.Residual().SumAbs(), 1e-12)
	for _, v := range s.Residual().Values() {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

// TestSolver_DoesNotTouchTarget ensures the residual is a private copy.
func TestSolver_DoesNotTouchTarget(t *testing.T) {
	cfg, cache, target := board(t, 8, 10, 2, 1, 5, 0.25)
	before := target.Values()
	_, err := tabu.Solve(target, cache, cfg)
	require.NoError(t, err)
	assert.Equal(t, before, target.Values())
}

// TestNewSolver_Errors covers configuration, cache and canvas mismatches.
func TestNewSolver_Errors(t *testing.T) {
	cfg, cache, target := board(t, 8, 10, 2, 0, 3, 0.5)

	bad := cfg
	bad.TabuWindow = 4
	_, err := tabu.NewSolver(target, cache, bad)
	assert.ErrorIs(t, err, params.ErrInvalidConfig)

	_, err = tabu.NewSolver(nil, cache, cfg)
	assert.ErrorIs(t, err, tabu.ErrNilInput)

	other := cfg
	other.Size = 12
	small, err := canvas.New(12, 12, 0.5)
	require.NoError(t, err)
	_, err = tabu.NewSolver(small, cache, other)
	assert.ErrorIs(t, err, tabu.ErrCacheMismatch)

	wrong, err := canvas.New(10, 9, 0.5)
	require.NoError(t, err)
	_, err = tabu.NewSolver(wrong, cache, cfg)
	assert.ErrorIs(t, err, tabu.ErrCanvasMismatch)
}

// TestRun_ContextCancelled stops before the first step.
func TestRun_ContextCancelled(t *testing.T) {
	cfg, cache, target := board(t, 8, 10, 2, 0, 3, 0.5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := tabu.NewSolver(target, cache, cfg, tabu.WithContext(ctx))
	require.NoError(t, err)
	_, err = s.Run()
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []int{0}, s.Sequence())
}

// TestSolver_MemoryExcludesStart checks the start pin never enters memory.
func TestSolver_MemoryExcludesStart(t *testing.T) {
	cfg, cache, target := board(t, 8, 10, 2, 2, 3, 1.0)
	s, err := tabu.NewSolver(target, cache, cfg)
	require.NoError(t, err)
	assert.Empty(t, s.Memory())

	_, err = s.Run()
	require.NoError(t, err)
	seq := s.Sequence()
	assert.Equal(t, seq[2:], s.Memory())
}
