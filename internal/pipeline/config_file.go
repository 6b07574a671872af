package pipeline

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file YAML configuration schema. Nested sections
// map naturally onto the flag namespace.
type FileConfig struct {
	Input   string `yaml:"input"`
	Rasters string `yaml:"rasters"`
	Output  string `yaml:"output"`
	Journal string `yaml:"journal"`

	Detect struct {
		Zoom      float64 `yaml:"zoom"`
		Threshold int     `yaml:"threshold"`
		Thickness int     `yaml:"thickness"`
		MinLength int     `yaml:"minLength"`
		BlindSpot float64 `yaml:"blindSpot"`
	} `yaml:"detect"`

	Timeout time.Duration `yaml:"timeout"`

	Excerpt struct {
		Window       int     `yaml:"window"`
		OverlapWords int     `yaml:"overlapWords"`
		OverlapFrac  float64 `yaml:"overlapFrac"`
	} `yaml:"excerpt"`

	Workers int  `yaml:"workers"`
	Verbose bool `yaml:"verbose"`
}

// LoadFileConfig reads and parses a YAML config file.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

// Apply overlays the file values onto cfg. Zero values in the file leave the
// existing setting untouched, so flag and default precedence survives.
func (fc FileConfig) Apply(cfg *Config) {
	if fc.Input != "" {
		cfg.InputDir = fc.Input
	}
	if fc.Rasters != "" {
		cfg.RasterDir = fc.Rasters
	}
	if fc.Output != "" {
		cfg.OutputDir = fc.Output
	}
	if fc.Journal != "" {
		cfg.Journal = fc.Journal
	}
	if fc.Detect.Zoom > 0 {
		cfg.Zoom = fc.Detect.Zoom
	}
	if fc.Detect.Threshold > 0 {
		cfg.GrayThreshold = fc.Detect.Threshold
	}
	if fc.Detect.Thickness > 0 {
		cfg.MaxThickness = fc.Detect.Thickness
	}
	if fc.Detect.MinLength > 0 {
		cfg.MinLineLength = fc.Detect.MinLength
	}
	if fc.Detect.BlindSpot > 0 {
		cfg.BlindSpot = fc.Detect.BlindSpot
	}
	if fc.Timeout > 0 {
		cfg.DocTimeout = fc.Timeout
	}
	if fc.Excerpt.Window > 0 {
		cfg.ExcerptWindow = fc.Excerpt.Window
	}
	if fc.Excerpt.OverlapWords > 0 {
		cfg.OverlapTrimWords = fc.Excerpt.OverlapWords
	}
	if fc.Excerpt.OverlapFrac > 0 {
		cfg.OverlapTrimFrac = fc.Excerpt.OverlapFrac
	}
	if fc.Workers > 0 {
		cfg.Workers = fc.Workers
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}
