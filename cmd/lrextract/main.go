package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lrlab/lrextract/internal/pipeline"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath string
		inputDir   string
		rasterDir  string
		outputDir  string
		journal    string
		zoom       float64
		threshold  int
		thickness  int
		minLength  int
		blindSpot  float64
		timeout    time.Duration
		window     int
		trimWords  int
		trimFrac   float64
		workers    int
		verbose    bool
	)

	defaults := pipeline.DefaultConfig()
	flag.StringVar(&configPath, "config", os.Getenv("LREXTRACT_CONFIG"), "Path to optional YAML config file")
	flag.StringVar(&inputDir, "input", os.Getenv("LREXTRACT_INPUT"), "Directory containing the article PDFs")
	flag.StringVar(&rasterDir, "rasters", os.Getenv("LREXTRACT_RASTERS"), "Directory containing rendered page images, one subdirectory per document stem")
	flag.StringVar(&outputDir, "output", os.Getenv("LREXTRACT_OUTPUT"), "Directory to write per-document artifacts")
	flag.StringVar(&journal, "journal", os.Getenv("LREXTRACT_JOURNAL"), "Journal registry key, e.g. BuffLR")
	flag.Float64Var(&zoom, "detect.zoom", defaults.Zoom, "Zoom factor the page rasters were rendered at")
	flag.IntVar(&threshold, "detect.threshold", defaults.GrayThreshold, "Grayscale binarization threshold (0-255)")
	flag.IntVar(&thickness, "detect.thickness", defaults.MaxThickness, "Maximum separator-rule thickness in pixels")
	flag.IntVar(&minLength, "detect.minLength", defaults.MinLineLength, "Minimum separator-rule length in pixels")
	flag.Float64Var(&blindSpot, "detect.blindSpot", defaults.BlindSpot, "Fraction of page height ignored at the top of the first processed page")
	flag.DurationVar(&timeout, "timeout", defaults.DocTimeout, "Per-document extraction deadline")
	flag.IntVar(&window, "excerpt.window", defaults.ExcerptWindow, "Excerpt window size in words")
	flag.IntVar(&trimWords, "excerpt.overlapWords", defaults.OverlapTrimWords, "Flat seam trim for short-document excerpts, in words")
	flag.Float64Var(&trimFrac, "excerpt.overlapFrac", defaults.OverlapTrimFrac, "Fractional seam trim for very short documents")
	flag.IntVar(&workers, "workers", defaults.Workers, "Number of documents processed concurrently")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := defaults
	if configPath != "" {
		fc, err := pipeline.LoadFileConfig(configPath)
		if err != nil {
			log.Error().Err(err).Msg("config file unreadable")
			os.Exit(2)
		}
		fc.Apply(&cfg)
	}
	// Flags take precedence over the config file.
	applyFlags(&cfg, inputDir, rasterDir, outputDir, journal, zoom, threshold, thickness, minLength, blindSpot, timeout, window, trimWords, trimFrac, workers, verbose)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(2)
	}
}

// applyFlags overlays explicitly set or non-default flag values onto cfg.
func applyFlags(cfg *pipeline.Config, inputDir, rasterDir, outputDir, journal string, zoom float64, threshold, thickness, minLength int, blindSpot float64, timeout time.Duration, window, trimWords int, trimFrac float64, workers int, verbose bool) {
	if inputDir != "" {
		cfg.InputDir = inputDir
	}
	if rasterDir != "" {
		cfg.RasterDir = rasterDir
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if journal != "" {
		cfg.Journal = journal
	}
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["detect.zoom"] {
		cfg.Zoom = zoom
	}
	if set["detect.threshold"] {
		cfg.GrayThreshold = threshold
	}
	if set["detect.thickness"] {
		cfg.MaxThickness = thickness
	}
	if set["detect.minLength"] {
		cfg.MinLineLength = minLength
	}
	if set["detect.blindSpot"] {
		cfg.BlindSpot = blindSpot
	}
	if set["timeout"] {
		cfg.DocTimeout = timeout
	}
	if set["excerpt.window"] {
		cfg.ExcerptWindow = window
	}
	if set["excerpt.overlapWords"] {
		cfg.OverlapTrimWords = trimWords
	}
	if set["excerpt.overlapFrac"] {
		cfg.OverlapTrimFrac = trimFrac
	}
	if set["workers"] {
		cfg.Workers = workers
	}
	if verbose {
		cfg.Verbose = true
	}
}

func run(cfg pipeline.Config) error {
	runner, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	results, err := runner.Run(context.Background())
	if err != nil {
		return err
	}
	for _, r := range results {
		if !r.OK {
			log.Warn().Str("doc", r.Stem).Str("reason", r.Reason).Msg("document flagged for review")
		}
	}
	return nil
}
