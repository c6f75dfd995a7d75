// Package params defines the single configuration value shared by every
// stage of the string-art pipeline: pin layout, chord cache, residual policy
// and both search strategies.
//
// A Config is a plain value. Build one with DefaultConfig and adjust fields,
// or with New and functional options:
//
//	cfg, err := params.New(
//	    params.WithPins(288),
//	    params.WithLines(4000),
//	    params.WithMinDistance(20),
//	    params.WithSeed(42),
//	)
//
// Validation is split in two stages, both returning errors that wrap
// ErrInvalidConfig:
//
//	– Validate:        everything the chord cache and the tabu search need.
//	– ValidateGenetic: Validate plus the population-search knobs.
//
// Randomness is never drawn from process-wide state: Seed feeds every RNG
// the genetic search creates (Seed == 0 selects a fixed default seed).
package params
