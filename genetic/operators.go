package genetic

import (
	"math/rand"

	"github.com/katalvlaran/stringart/params"
	"github.com/katalvlaran/stringart/pins"
)

// tournament draws k slots with replacement and returns the fittest.
// Strict comparison keeps the first drawn on ties.
func tournament(fit []float64, k int, rng *rand.Rand) int {
	best := rng.Intn(len(fit))
	var i, c int
	for i = 1; i < k; i++ {
		c = rng.Intn(len(fit))
		if fit[c] > fit[best] {
			best = c
		}
	}

	return best
}

// crossover writes into child the genes of p1 on [start, end) and of p2
// elsewhere, with cut points drawn from [0, len). If a junction breaks the
// minimum distance and check is set, child becomes a copy of p1.
func crossover(child, p1, p2 []int, n, minDistance int, check bool, rng *rand.Rand) {
	l := len(p1)
	start, end := rng.Intn(l), rng.Intn(l)
	if start > end {
		start, end = end, start
	}
	copy(child, p2)
	copy(child[start:end], p1[start:end])

	if !check || start == end {
		return
	}
	if !junctionOK(child, start, n, minDistance) || !junctionOK(child, end, n, minDistance) {
		copy(child, p1)
	}
}

// junctionOK checks the chord ending at gene i, if any.
func junctionOK(seq []int, i, n, minDistance int) bool {
	if i <= 0 || i >= len(seq) {
		return true
	}

	return pins.Valid(seq[i-1], seq[i], n, minDistance)
}

// mutate rewrites gene pos+1 for a uniformly drawn pos in [0, len−1).
func mutate(child []int, cfg params.Config, rng *rand.Rand) {
	if len(child) < 2 {
		return
	}
	pos := rng.Intn(len(child) - 1)
	gene := pos + 1
	cur := child[pos]
	n := cfg.PinCount
	hasNext := gene+1 < len(child)

	switch cfg.Mutation {
	case params.MutateUniformUnchecked:
		child[gene] = rng.Intn(n)

	case params.MutateUniform:
		p := rng.Intn(n)
		if !pins.Valid(cur, p, n, cfg.MinDistance) {
			return
		}
		if hasNext && !pins.Valid(p, child[gene+1], n, cfg.MinDistance) {
			return
		}
		child[gene] = p

	default:
		lo, hi := cfg.Offsets()
		var (
			off, p, count int
		)
		// count admissible offsets first, then pick the k-th one.
		for off = lo; off < hi; off++ {
			p = (cur + off) % n
			if !hasNext || pins.Valid(p, child[gene+1], n, cfg.MinDistance) {
				count++
			}
		}
		if count == 0 {
			return
		}
		k := rng.Intn(count)
		for off = lo; off < hi; off++ {
			p = (cur + off) % n
			if hasNext && !pins.Valid(p, child[gene+1], n, cfg.MinDistance) {
				continue
			}
			if k == 0 {
				child[gene] = p
				return
			}
			k--
		}
	}
}
