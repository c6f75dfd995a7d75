// Package pins computes the nail ("pin") layout of a string-art board and
// the circular-distance rules that decide which pin pairs may be joined.
//
// N pins sit evenly on a circle inscribed in a square canvas of edge size:
//
//	centre = (size/2, size/2)
//	radius = size/2 − 1
//	pin i  = centre + radius·(cos 2πi/N, sin 2πi/N)
//
// Two pins i, j form an admissible chord when their circular distance
//
//	min(|i−j|, N−|i−j|)
//
// is at least the configured minimum distance. Very short chords hug the rim
// and add nothing to the picture, so they are never considered.
//
// Complexity: Layout is O(N); all distance helpers are O(1);
// ValidateSequence is O(len(seq)).
package pins
