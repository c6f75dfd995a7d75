package genetic_test

import (
	"fmt"

	"github.com/katalvlaran/stringart/canvas"
	"github.com/katalvlaran/stringart/chord"
	"github.com/katalvlaran/stringart/genetic"
	"github.com/katalvlaran/stringart/params"
	"github.com/katalvlaran/stringart/pins"
	"github.com/katalvlaran/stringart/tabu"
)

// ExampleSolve seeds the population with a tabu result and evolves it.
func ExampleSolve() {
	cfg, err := params.New(
		params.WithPins(16),
		params.WithSize(24),
		params.WithMinDistance(3),
		params.WithTabuWindow(2),
		params.WithLines(12),
		params.WithPopulation(8),
		params.WithGenerations(5),
		params.WithSeed(42),
	)
	if err != nil {
		fmt.Println("config:", err)
		return
	}

	coords, _ := pins.Layout(cfg.PinCount, cfg.Size)
	cache, _ := chord.Build(coords, cfg.Size, cfg.MinDistance, 0)
	gray, _ := canvas.New(cfg.Size, cfg.Size, 0.4)

	base, err := tabu.Solve(gray, cache, cfg)
	if err != nil {
		fmt.Println("tabu:", err)
		return
	}
	res, err := genetic.Solve(gray, cache, cfg, genetic.WithSeedSequences(base.Sequence))
	if err != nil {
		fmt.Println("genetic:", err)
		return
	}

	fmt.Println("pins:", len(res.Sequence))
	fmt.Println("evaluations:", len(res.History))
	fmt.Println("admissible:", pins.ValidateSequence(res.Sequence, cfg.PinCount, cfg.MinDistance) == nil)
	// Output:
	// pins: 13
	// evaluations: 6
	// admissible: true
}
