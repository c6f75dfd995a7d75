// Package tabu implements the greedy string-art search with a short-term
// memory of visited pins.
//
// Starting from cfg.StartPin, each step looks at every pin whose circular
// offset from the current pin lies in [MinDistance, N − MinDistance), drops
// the pins held by the tabu memory, and scores the rest by summing the
// residual image along the cached chord samples. The highest score wins;
// equal scores go to the smaller pin index. The winner is then committed:
//
//  1. pushed into the memory (evicting the oldest entry when full);
//  2. appended to the sequence;
//  3. its chord is subtracted from the residual with cfg.LineWeight under
//     cfg.Clamp.
//
// The start pin itself is never pushed into the memory.
//
// Parallelism:
//
//	Candidate scoring is split into contiguous chunks over an errgroup. Each
//	worker reads the residual and writes only its own score slots; the
//	arg-max reduction runs afterwards on one goroutine, so the sequence is
//	identical for every worker count.
//
// Memory:
//
//	Memory is a ring buffer of fixed capacity. Capacity 0 disables it.
//	params.Config.Validate guarantees capacity < N − 2·MinDistance, so a
//	step always has at least one candidate.
//
// Complexity (N pins, L lines, S = size):
//
//	– Step: O((N − 2d)·S) scoring + O(S) commit.
//	– Run:  O(L·N·S).
package tabu
