// Package chord rasterises the straight segments ("chords") between pins and
// caches the resulting pixel samples for every admissible pin pair.
//
// Rasterisation:
//
//	n    = ceil(|p1 − p0|)
//	p(t) = p0·(1−t) + p1·t,  t = k/n, k = 0..n
//	pixel = round(p(t)), clamped into [0, size)
//
// Samples are NOT deduplicated: a short or steep chord may hit the same
// pixel twice, and every hit counts when scoring or subtracting. Longer
// chords therefore carry more samples: ceil(length)+1.
//
// Cache:
//
//	Build rasterises each unordered pair {i, j} with circular distance
//	≥ minDistance exactly once, fanning rows out over an errgroup. After Build
//	returns the cache is read-only; any number of goroutines may call Points
//	concurrently without locking.
//
// Complexity:
//
//	– Rasterize: O(|p1−p0|) time and memory.
//	– Build:     O(N²·size) time, O(N²·size) memory for N pins.
//	– Points:    O(1).
package chord
