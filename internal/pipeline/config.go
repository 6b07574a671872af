package pipeline

import (
	"fmt"
	"os"
	"time"

	"github.com/lrlab/lrextract/internal/article"
)

// Config holds runtime configuration for the pipeline.
type Config struct {
	// InputDir holds the source PDFs, one per article.
	InputDir string
	// RasterDir holds rendered page images, one subdirectory per article
	// stem with one raster per page.
	RasterDir string
	// OutputDir receives all per-document artifacts.
	OutputDir string

	// Journal is the short registry key (e.g. "BuffLR") selecting the
	// running-header name to strip and the collection ID to stamp.
	Journal string

	// Page-image detection
	Zoom          float64
	GrayThreshold int
	MaxThickness  int
	MinLineLength int
	BlindSpot     float64

	// DocTimeout bounds rendering and zone splitting per document.
	DocTimeout time.Duration

	// Excerpting
	ExcerptWindow    int
	OverlapTrimWords int
	OverlapTrimFrac  float64

	// Behavior
	Workers int
	Verbose bool
}

// DefaultConfig returns the built-in defaults; flags and the config file
// override them.
func DefaultConfig() Config {
	return Config{
		Zoom:             2.0,
		GrayThreshold:    128,
		MaxThickness:     6,
		MinLineLength:    200,
		BlindSpot:        0.1,
		DocTimeout:       30 * time.Second,
		ExcerptWindow:    1500,
		OverlapTrimWords: 500,
		OverlapTrimFrac:  0.6,
		Workers:          4,
	}
}

// Validate rejects configurations the pipeline cannot run with.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input directory is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.RasterDir != "" {
		info, err := os.Stat(c.RasterDir)
		if err != nil {
			return fmt.Errorf("raster directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("raster path %q is not a directory", c.RasterDir)
		}
	}
	if c.Zoom <= 0 {
		return fmt.Errorf("zoom must be positive, got %v", c.Zoom)
	}
	if c.GrayThreshold < 0 || c.GrayThreshold > 255 {
		return fmt.Errorf("gray threshold must be in [0,255], got %d", c.GrayThreshold)
	}
	if c.Journal != "" {
		if _, ok := article.Journals[c.Journal]; !ok {
			return fmt.Errorf("unknown journal key %q", c.Journal)
		}
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.ExcerptWindow <= 0 {
		return fmt.Errorf("excerpt window must be positive, got %d", c.ExcerptWindow)
	}
	return nil
}
