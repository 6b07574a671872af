package pageimage

import (
	"fmt"
	"image"
	"os"

	// Page rasters arrive in whatever format the renderer produced; register
	// the common ones. TIFF and BMP cover archival scans.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	xdraw "golang.org/x/image/draw"
)

// DecodeFile reads and decodes a page raster from disk.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raster: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode raster %s: %w", path, err)
	}
	return img, nil
}

// NormalizeWidth rescales img to the given pixel width, preserving aspect
// ratio. The pipeline uses it when a raster was rendered at a different zoom
// than configured, so that row positions keep dividing back to page
// coordinates by the configured zoom factor.
func NormalizeWidth(img image.Image, width int) image.Image {
	b := img.Bounds()
	if width <= 0 || b.Dx() == width || b.Dx() == 0 {
		return img
	}
	height := int(float64(b.Dy()) * float64(width) / float64(b.Dx()))
	if height <= 0 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
