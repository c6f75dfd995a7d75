package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/stringart/canvas"
	"github.com/katalvlaran/stringart/imageio"
	"github.com/katalvlaran/stringart/params"
	"gopkg.in/yaml.v3"
)

var configValidate = validator.New()

// FileConfig is the on-disk and environment shape of a run configuration.
type FileConfig struct {
	PinCount        int     `yaml:"pin_count" json:"pin_count" validate:"gte=3"`
	LineCount       int     `yaml:"line_count" json:"line_count" validate:"gte=1"`
	LineWeight      float64 `yaml:"line_weight" json:"line_weight" validate:"gt=0,lt=1"`
	Size            int     `yaml:"size" json:"size" validate:"gte=1"`
	MinDistance     int     `yaml:"min_distance" json:"min_distance" validate:"gte=1"`
	TabuWindow      int     `yaml:"tabu_window" json:"tabu_window" validate:"gte=0"`
	StartPin        int     `yaml:"start_pin" json:"start_pin" validate:"gte=0"`
	Clamp           string  `yaml:"clamp" json:"clamp" validate:"oneof=unclamped clamp-zero clamped"`
	Workers         int     `yaml:"workers" json:"workers" validate:"gte=0"`
	Seed            int64   `yaml:"seed" json:"seed"`
	PopulationSize  int     `yaml:"population_size" json:"population_size" validate:"gte=1"`
	CrossoverRate   float64 `yaml:"crossover_rate" json:"crossover_rate" validate:"gte=0,lte=1"`
	MutationRate    float64 `yaml:"mutation_rate" json:"mutation_rate" validate:"gte=0,lte=1"`
	GenerationCount int     `yaml:"generation_count" json:"generation_count" validate:"gte=0"`
	TournamentSize  int     `yaml:"tournament_size" json:"tournament_size" validate:"gte=1"`
	Mutation        string  `yaml:"mutation" json:"mutation" validate:"oneof=offset uniform uniform-unchecked"`
	Init            string  `yaml:"init" json:"init" validate:"oneof=random-walk tabu-jitter"`
	JitterPercent   float64 `yaml:"jitter_percent" json:"jitter_percent" validate:"gte=0,lt=1"`

	Filter      string  `yaml:"filter" json:"filter" validate:"oneof=lanczos3 catmull-rom"`
	Output      string  `yaml:"output" json:"output" validate:"required"`
	SVG         string  `yaml:"svg" json:"svg"`
	SVGStroke   float64 `yaml:"svg_stroke_width" json:"svg_stroke_width" validate:"gt=0"`
	SVGColor    string  `yaml:"svg_color" json:"svg_color" validate:"required"`
	MetricsFile string  `yaml:"metrics_file" json:"metrics_file"`
}

// DefaultFileConfig mirrors params.DefaultConfig plus output defaults.
func DefaultFileConfig() FileConfig {
	d := params.DefaultConfig()
	return FileConfig{
		PinCount:        d.PinCount,
		LineCount:       d.LineCount,
		LineWeight:      d.LineWeight,
		Size:            d.Size,
		MinDistance:     d.MinDistance,
		TabuWindow:      d.TabuWindow,
		StartPin:        d.StartPin,
		Clamp:           d.Clamp.String(),
		Workers:         d.Workers,
		Seed:            d.Seed,
		PopulationSize:  d.PopulationSize,
		CrossoverRate:   d.CrossoverRate,
		MutationRate:    d.MutationRate,
		GenerationCount: d.GenerationCount,
		TournamentSize:  d.TournamentSize,
		Mutation:        d.Mutation.String(),
		Init:            d.Init.String(),
		JitterPercent:   d.JitterPercent,
		Filter:          imageio.Lanczos3.String(),
		Output:          "output.png",
		SVGStroke:       0.5,
		SVGColor:        "#000000",
	}
}

// LoadConfig merges defaults, the optional file at path and STRINGART_*
// environment variables, in that order of increasing priority. A missing
// file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()
	if path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := loadConfigFromEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("load config env: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(path string, cfg *FileConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// YAML first, then JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}

	return nil
}

func loadConfigFromEnv(cfg *FileConfig) error {
	var env envReader
	env.setInt("STRINGART_PIN_COUNT", &cfg.PinCount)
	env.setInt("STRINGART_LINE_COUNT", &cfg.LineCount)
	env.setFloat("STRINGART_LINE_WEIGHT", &cfg.LineWeight)
	env.setInt("STRINGART_SIZE", &cfg.Size)
	env.setInt("STRINGART_MIN_DISTANCE", &cfg.MinDistance)
	env.setInt("STRINGART_TABU_WINDOW", &cfg.TabuWindow)
	env.setInt("STRINGART_START_PIN", &cfg.StartPin)
	env.setString("STRINGART_CLAMP", &cfg.Clamp)
	env.setInt("STRINGART_WORKERS", &cfg.Workers)
	env.setInt64("STRINGART_SEED", &cfg.Seed)
	env.setInt("STRINGART_POPULATION_SIZE", &cfg.PopulationSize)
	env.setFloat("STRINGART_CROSSOVER_RATE", &cfg.CrossoverRate)
	env.setFloat("STRINGART_MUTATION_RATE", &cfg.MutationRate)
	env.setInt("STRINGART_GENERATION_COUNT", &cfg.GenerationCount)
	env.setInt("STRINGART_TOURNAMENT_SIZE", &cfg.TournamentSize)
	env.setString("STRINGART_MUTATION", &cfg.Mutation)
	env.setString("STRINGART_INIT", &cfg.Init)
	env.setFloat("STRINGART_JITTER_PERCENT", &cfg.JitterPercent)
	env.setString("STRINGART_FILTER", &cfg.Filter)
	env.setString("STRINGART_OUTPUT", &cfg.Output)
	env.setString("STRINGART_SVG", &cfg.SVG)
	env.setString("STRINGART_SVG_COLOR", &cfg.SVGColor)
	env.setString("STRINGART_METRICS_FILE", &cfg.MetricsFile)

	return errors.Join(env.errs...)
}

// envReader applies STRINGART_* overrides and collects every parse failure.
type envReader struct {
	errs []error
}

func (r *envReader) fail(key, v string, err error) {
	r.errs = append(r.errs, fmt.Errorf("%s=%q: %w", key, v, err))
}

func (r *envReader) setInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			r.fail(key, v, err)
			return
		}
		*dst = i
	}
}

func (r *envReader) setInt64(key string, dst *int64) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			r.fail(key, v, err)
			return
		}
		*dst = i
	}
}

func (r *envReader) setFloat(key string, dst *float64) {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			r.fail(key, v, err)
			return
		}
		*dst = f
	}
}

func (r *envReader) setString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Params validates the struct tags and converts to params.Config, which
// then runs its own cross-field checks.
func (c FileConfig) Params() (params.Config, error) {
	if err := configValidate.Struct(c); err != nil {
		return params.Config{}, fmt.Errorf("%w: %v", params.ErrInvalidConfig, err)
	}
	clamp, err := canvas.ParseClampPolicy(c.Clamp)
	if err != nil {
		return params.Config{}, fmt.Errorf("%w: %v", params.ErrInvalidConfig, err)
	}
	mutation, err := params.ParseMutationPolicy(c.Mutation)
	if err != nil {
		return params.Config{}, err
	}
	initPolicy, err := params.ParseInitPolicy(c.Init)
	if err != nil {
		return params.Config{}, err
	}

	p := params.DefaultConfig()
	p.PinCount = c.PinCount
	p.LineCount = c.LineCount
	p.LineWeight = c.LineWeight
	p.Size = c.Size
	p.MinDistance = c.MinDistance
	p.TabuWindow = c.TabuWindow
	p.StartPin = c.StartPin
	p.Clamp = clamp
	p.Workers = c.Workers
	p.Seed = c.Seed
	p.PopulationSize = c.PopulationSize
	p.CrossoverRate = c.CrossoverRate
	p.MutationRate = c.MutationRate
	p.GenerationCount = c.GenerationCount
	p.TournamentSize = c.TournamentSize
	p.Mutation = mutation
	p.Init = initPolicy
	p.JitterPercent = c.JitterPercent

	if err = p.Validate(); err != nil {
		return params.Config{}, err
	}

	return p, nil
}
