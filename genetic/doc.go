// Package genetic searches for a pin sequence with a generational genetic
// algorithm.
//
// A chromosome is a full sequence of LineCount+1 pins. Its fitness is the
// negated Σ|residual| left after replaying every chord of the sequence onto
// a fresh residual image, so higher is better and 0 is a perfect cover.
//
// One generation:
//
//  1. evaluate every chromosome (parallel, one slot each);
//  2. for each child slot: pick two parents by tournament, cross them over
//     with probability CrossoverRate (two cut points, parent1 inside the cut,
//     parent2 outside), then mutate one gene with probability MutationRate;
//  3. replace the whole population with the children.
//
// Children are built in parallel from the frozen parent population. Every
// child draws from its own RNG stream derived from (Seed, generation, slot),
// so the outcome is identical for any worker count.
//
// Initial population:
//
//	InitRandomWalk – constrained random walks from StartPin.
//	InitTabuJitter – one tabu run per chromosome with line weight, distance
//	                 and tabu window perturbed by ±JitterPercent; slot 0 runs
//	                 the unperturbed configuration.
//
// WithSeedSequences overwrites the tail of the initial population with
// caller-supplied sequences, e.g. the output of a previous tabu run.
//
// Mutation policies (params.MutationPolicy):
//
//	offset            – new gene = current + offset, restricted to offsets
//	                    that keep both neighbouring chords admissible.
//	uniform           – uniform pin; discarded when it breaks the distance.
//	uniform-unchecked – uniform pin kept as is; the resulting sequence may
//	                    violate MinDistance and is scored with Cache.Trace.
//
// Complexity (P population, G generations, L lines, S size):
//
//	– Evaluation: O(P·(S² + L·S)) per generation.
//	– Breeding:   O(P·(L + k)) per generation, k = tournament size.
package genetic
