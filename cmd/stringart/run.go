package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/stringart"
	"github.com/katalvlaran/stringart/genetic"
	"github.com/katalvlaran/stringart/imageio"
	"github.com/katalvlaran/stringart/metrics"
	"github.com/katalvlaran/stringart/params"
	"github.com/katalvlaran/stringart/render"
	"github.com/katalvlaran/stringart/tabu"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// progressMask logs every 512th chord.
const progressMask = 511

// newLogger builds the slog logger selected by --log-level and --log-format.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

func runWith(strategy stringart.Strategy) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return err
		}

		fc, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd, &fc)
		cfg, err := fc.Params()
		if err != nil {
			return err
		}

		return run(cmd.OutOrStdout(), logger, args[0], fc, cfg, strategy)
	}
}

// run loads the picture, solves, renders and prints the sequence.
func run(stdout io.Writer, logger *slog.Logger, imagePath string, fc FileConfig, cfg params.Config, strategy stringart.Strategy) error {
	start := time.Now()
	filter, err := imageio.ParseFilter(fc.Filter)
	if err != nil {
		return err
	}
	target, err := imageio.LoadFile(imagePath, cfg.Size, imageio.WithFilter(filter))
	if err != nil {
		logger.Error("failed to load image", "path", imagePath, "error", err)
		return err
	}
	logger.Info("image loaded", "path", imagePath, "size", cfg.Size, "filter", filter.String())

	var (
		reg      *prometheus.Registry
		recorder *metrics.Recorder
	)
	if fc.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		if recorder, err = metrics.NewRecorder(reg); err != nil {
			return err
		}
	}

	onCommit := func(s tabu.Step) {
		if recorder != nil {
			recorder.ObserveStep(s)
		}
		if s.Index&progressMask == 0 || s.Index == cfg.LineCount {
			logger.Info("tabu progress", "line", s.Index, "of", cfg.LineCount, "residual", s.ResidualSum)
		}
	}
	onGeneration := func(g genetic.GenerationStats) {
		if recorder != nil {
			recorder.ObserveGeneration(g)
		}
		logger.Info("generation", "index", g.Generation, "best", g.Best, "mean", g.Mean, "stddev", g.StdDev)
	}

	out, err := stringart.Generate(target, cfg, strategy,
		stringart.WithTabuOptions(tabu.WithOnCommit(onCommit)),
		stringart.WithGeneticOptions(genetic.WithOnGeneration(onGeneration)),
	)
	if err != nil {
		return err
	}
	if recorder != nil {
		recorder.ObserveCache(out.Cache)
	}
	logger.Info("search finished",
		"strategy", strategy.String(),
		"chords", len(out.Sequence)-1,
		"cached_chords", out.Cache.Len(),
		"residual", out.Residual,
		"elapsed", time.Since(start))

	if err = writePNG(fc.Output, out, cfg.LineWeight); err != nil {
		return err
	}
	logger.Info("preview written", "path", fc.Output)

	if fc.SVG != "" {
		if err = writeSVG(fc, out, cfg); err != nil {
			return err
		}
		logger.Info("svg written", "path", fc.SVG)
	}

	if reg != nil {
		if err = metrics.WriteTextfile(fc.MetricsFile, reg); err != nil {
			return err
		}
		logger.Debug("metrics written", "path", fc.MetricsFile)
	}

	_, err = fmt.Fprintln(stdout, out.Sequence)
	return err
}

func writePNG(path string, out stringart.Output, weight float64) error {
	img, err := render.Raster(out.Sequence, out.Cache, weight)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = render.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func writeSVG(fc FileConfig, out stringart.Output, cfg params.Config) error {
	opts := render.DefaultSVGOptions()
	opts.Margin = svgMargin
	opts.StrokeWidth = fc.SVGStroke
	opts.StrokeColor = fc.SVGColor

	f, err := os.Create(fc.SVG)
	if err != nil {
		return err
	}
	if err = render.WriteSVG(f, out.Sequence, cfg.PinCount, cfg.Size, opts); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
