package genetic

import "math/rand"

// defaultRNGSeed replaces a zero seed so the default run is reproducible.
const defaultRNGSeed int64 = 1

// initPhase keys the initial-population streams; generations use 0..G-1.
const initPhase = ^uint64(0)

func normSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// mix64 is the SplitMix64 step: one golden-ratio increment, then the
// finalizer. Consecutive inputs land far apart.
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}

// streamSeed folds every key of path into seed, one mix per key.
func streamSeed(seed int64, path ...uint64) int64 {
	s := uint64(normSeed(seed))
	for _, k := range path {
		s = mix64(s ^ mix64(k))
	}

	return int64(s)
}

// streamRNG returns the generator addressed by (seed, path). It depends on
// nothing but its arguments, so goroutines may call it in any order.
//
// Complexity: O(len(path)).
func streamRNG(seed int64, path ...uint64) *rand.Rand {
	return rand.New(rand.NewSource(streamSeed(seed, path...)))
}

// initRNG is the stream of initial-population slot.
func initRNG(seed int64, slot int) *rand.Rand {
	return streamRNG(seed, initPhase, uint64(slot))
}

// childRNG is the stream of child slot in generation gen.
func childRNG(seed int64, gen, slot int) *rand.Rand {
	return streamRNG(seed, uint64(gen), uint64(slot))
}
