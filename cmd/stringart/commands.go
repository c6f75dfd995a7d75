package main

import (
	"github.com/katalvlaran/stringart"
	"github.com/katalvlaran/stringart/params"
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	configPath  string
	logLevel    string
	logFormat   string
	flagValues  = DefaultFileConfig()
	svgMargin   float64
	metricsPath string

	rootCmd = &cobra.Command{
		Use:   "stringart",
		Short: "Compute a string-art thread path for a picture",
		Long: `stringart places pins on a circle around a picture and finds the
order in which a single thread should visit them so that the straight
segments rebuild the picture.`,
		SilenceUsage: true,
	}

	tabuCmd = &cobra.Command{
		Use:   "tabu [flags] IMAGE",
		Short: "Greedy search with a short tabu memory",
		Args:  cobra.ExactArgs(1),
		RunE:  runWith(stringart.StrategyTabu),
	}

	geneticCmd = &cobra.Command{
		Use:   "genetic [flags] IMAGE",
		Short: "Genetic search over whole pin sequences",
		Args:  cobra.ExactArgs(1),
		RunE:  runWith(stringart.StrategyGenetic),
	}

	hybridCmd = &cobra.Command{
		Use:   "hybrid [flags] IMAGE",
		Short: "Tabu search followed by a genetic search seeded with its result",
		Args:  cobra.ExactArgs(1),
		RunE:  runWith(stringart.StrategyHybrid),
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML or JSON configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")

	for _, c := range []*cobra.Command{tabuCmd, geneticCmd, hybridCmd} {
		addRunFlags(c)
		rootCmd.AddCommand(c)
	}
	addGeneticFlags(geneticCmd)
	addGeneticFlags(hybridCmd)
}

// addRunFlags binds the flags shared by every strategy.
func addRunFlags(c *cobra.Command) {
	f := c.Flags()
	f.IntVarP(&flagValues.PinCount, "pin", "p", params.DefaultPins, "number of pins on the circle")
	f.IntVarP(&flagValues.LineCount, "lines", "l", params.DefaultLines, "number of chords to place")
	f.Float64VarP(&flagValues.LineWeight, "weight", "w", params.DefaultWeight, "darkness added by one chord, in (0,1)")
	f.IntVar(&flagValues.Size, "size", params.DefaultSize, "working canvas edge in pixels")
	f.IntVar(&flagValues.MinDistance, "distance", params.DefaultMinDistance, "minimal circular distance between joined pins")
	f.IntVar(&flagValues.TabuWindow, "tabu", params.DefaultTabuWindow, "tabu memory size")
	f.IntVar(&flagValues.StartPin, "start", 0, "first pin of the sequence")
	f.StringVar(&flagValues.Clamp, "clamp", "unclamped", "residual floor: unclamped or clamp-zero")
	f.IntVar(&flagValues.Workers, "workers", 0, "parallel workers, 0 for GOMAXPROCS")
	f.Int64Var(&flagValues.Seed, "seed", 0, "random seed, 0 for the fixed default")
	f.StringVar(&flagValues.Filter, "filter", "lanczos3", "resampling kernel: lanczos3 or catmull-rom")
	f.StringVarP(&flagValues.Output, "output", "o", "output.png", "rendered PNG preview")
	f.StringVar(&flagValues.SVG, "svg", "", "optional SVG output")
	f.Float64Var(&flagValues.SVGStroke, "svg-stroke", 0.5, "SVG stroke width")
	f.StringVar(&flagValues.SVGColor, "svg-color", "#000000", "SVG stroke colour, hex or SVG name")
	f.Float64Var(&svgMargin, "svg-margin", 10, "SVG pin circle inset")
	f.StringVar(&metricsPath, "metrics-file", "", "write Prometheus metrics to this textfile")
}

// addGeneticFlags binds the population-search flags.
func addGeneticFlags(c *cobra.Command) {
	f := c.Flags()
	f.IntVar(&flagValues.PopulationSize, "population", params.DefaultPopulationSize, "population size")
	f.IntVar(&flagValues.GenerationCount, "generations", params.DefaultGenerations, "number of generations")
	f.Float64Var(&flagValues.CrossoverRate, "crossover", params.DefaultCrossoverRate, "crossover probability")
	f.Float64Var(&flagValues.MutationRate, "mutation-rate", params.DefaultMutationRate, "mutation probability")
	f.IntVar(&flagValues.TournamentSize, "tournament", params.DefaultTournamentSize, "tournament size")
	f.StringVar(&flagValues.Mutation, "mutation", "offset", "mutation policy: offset, uniform, uniform-unchecked")
	f.StringVar(&flagValues.Init, "init", "random-walk", "initial population: random-walk or tabu-jitter")
	f.Float64Var(&flagValues.JitterPercent, "jitter", params.DefaultJitterPercent, "relative jitter for tabu-jitter init")
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(c *cobra.Command, cfg *FileConfig) {
	f := c.Flags()
	set := func(name string, apply func()) {
		if fl := f.Lookup(name); fl != nil && fl.Changed {
			apply()
		}
	}
	set("pin", func() { cfg.PinCount = flagValues.PinCount })
	set("lines", func() { cfg.LineCount = flagValues.LineCount })
	set("weight", func() { cfg.LineWeight = flagValues.LineWeight })
	set("size", func() { cfg.Size = flagValues.Size })
	set("distance", func() { cfg.MinDistance = flagValues.MinDistance })
	set("tabu", func() { cfg.TabuWindow = flagValues.TabuWindow })
	set("start", func() { cfg.StartPin = flagValues.StartPin })
	set("clamp", func() { cfg.Clamp = flagValues.Clamp })
	set("workers", func() { cfg.Workers = flagValues.Workers })
	set("seed", func() { cfg.Seed = flagValues.Seed })
	set("filter", func() { cfg.Filter = flagValues.Filter })
	set("output", func() { cfg.Output = flagValues.Output })
	set("svg", func() { cfg.SVG = flagValues.SVG })
	set("svg-stroke", func() { cfg.SVGStroke = flagValues.SVGStroke })
	set("svg-color", func() { cfg.SVGColor = flagValues.SVGColor })
	set("metrics-file", func() { cfg.MetricsFile = metricsPath })
	set("population", func() { cfg.PopulationSize = flagValues.PopulationSize })
	set("generations", func() { cfg.GenerationCount = flagValues.GenerationCount })
	set("crossover", func() { cfg.CrossoverRate = flagValues.CrossoverRate })
	set("mutation-rate", func() { cfg.MutationRate = flagValues.MutationRate })
	set("tournament", func() { cfg.TournamentSize = flagValues.TournamentSize })
	set("mutation", func() { cfg.Mutation = flagValues.Mutation })
	set("init", func() { cfg.Init = flagValues.Init })
	set("jitter", func() { cfg.JitterPercent = flagValues.JitterPercent })
}
