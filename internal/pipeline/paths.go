package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

// Artifact paths are all derived from the per-document stem, matching the
// corpus layout downstream tooling expects: main text as <stem>_M.txt,
// footnotes as <stem>_FN.txt, excerpt windows as <stem>_start/_mid/_end,
// the merged excerpt as <stem>_SME.txt and the record as <stem>.json.

func (c Config) mainPath(stem string) string {
	return filepath.Join(c.OutputDir, stem+"_M.txt")
}

func (c Config) fnsPath(stem string) string {
	return filepath.Join(c.OutputDir, stem+"_FN.txt")
}

func (c Config) startPath(stem string) string {
	return filepath.Join(c.OutputDir, stem+"_start.txt")
}

func (c Config) midPath(stem string) string {
	return filepath.Join(c.OutputDir, stem+"_mid.txt")
}

func (c Config) endPath(stem string) string {
	return filepath.Join(c.OutputDir, stem+"_end.txt")
}

func (c Config) excerptPath(stem string) string {
	return filepath.Join(c.OutputDir, stem+"_SME.txt")
}

func (c Config) recordPath(stem string) string {
	return filepath.Join(c.OutputDir, stem+".json")
}

// rasterExtensions are tried in order when locating a page raster.
var rasterExtensions = []string{"png", "jpg", "jpeg", "tif", "tiff", "bmp"}

// checkRasters verifies the per-document raster directory exists. A document
// with no rasters at all cannot be zone-split; without this check every page
// would silently fall back to whole-page-main and footnotes would leak into
// the main stream.
func (c Config) checkRasters(stem string) error {
	dir := filepath.Join(c.RasterDir, stem)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("raster directory for %s: %w", stem, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("raster path %s is not a directory", dir)
	}
	return nil
}

// findRaster locates the rendered raster for a zero-based page of the given
// document, or returns ok=false when none exists.
func (c Config) findRaster(stem string, page int) (string, bool) {
	for _, ext := range rasterExtensions {
		p := filepath.Join(c.RasterDir, stem, fmt.Sprintf("page-%d.%s", page, ext))
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}
