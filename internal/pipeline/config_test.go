package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.InputDir = "in"
	cfg.OutputDir = "out"
	return cfg
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing input", func(c *Config) { c.InputDir = "" }},
		{"missing output", func(c *Config) { c.OutputDir = "" }},
		{"zero zoom", func(c *Config) { c.Zoom = 0 }},
		{"threshold range", func(c *Config) { c.GrayThreshold = 300 }},
		{"unknown journal", func(c *Config) { c.Journal = "NopeLR" }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"zero window", func(c *Config) { c.ExcerptWindow = 0 }},
	}
	for _, c := range cases {
		cfg := validConfig()
		c.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", c.name)
		}
	}
}

func TestValidateRasterDir(t *testing.T) {
	cfg := validConfig()
	cfg.RasterDir = filepath.Join(t.TempDir(), "absent")
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing raster directory")
	}
	cfg.RasterDir = t.TempDir()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("existing raster directory rejected: %v", err)
	}
}

func TestValidateKnownJournal(t *testing.T) {
	cfg := validConfig()
	cfg.Journal = "BuffLR"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("known journal rejected: %v", err)
	}
}

func TestFileConfigApply(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lrextract.yaml")
	body := `
input: /data/pdfs
rasters: /data/rasters
output: /data/out
journal: MichLR
detect:
  zoom: 3.0
  threshold: 150
timeout: 45s
excerpt:
  window: 1200
workers: 8
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}

	cfg := DefaultConfig()
	fc.Apply(&cfg)
	if cfg.InputDir != "/data/pdfs" || cfg.OutputDir != "/data/out" {
		t.Fatalf("paths not applied: %+v", cfg)
	}
	if cfg.Journal != "MichLR" {
		t.Fatalf("journal = %q", cfg.Journal)
	}
	if cfg.Zoom != 3.0 || cfg.GrayThreshold != 150 {
		t.Fatalf("detect values not applied: zoom=%v threshold=%d", cfg.Zoom, cfg.GrayThreshold)
	}
	if cfg.DocTimeout != 45*time.Second {
		t.Fatalf("timeout = %v", cfg.DocTimeout)
	}
	if cfg.ExcerptWindow != 1200 || cfg.Workers != 8 {
		t.Fatalf("excerpt/workers not applied: %+v", cfg)
	}
	// Unset file values keep defaults.
	if cfg.MaxThickness != DefaultConfig().MaxThickness {
		t.Fatalf("unset value overwritten: %d", cfg.MaxThickness)
	}
}

func TestLoadFileConfigMissing(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
