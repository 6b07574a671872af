// Package pageimage locates candidate separator rules on rendered page
// rasters. A separator rule is a thin, wide horizontal mark dividing the main
// text of a law-review page from its footnote zone.
package pageimage

import (
	"image"
)

// Params controls separator detection on a page raster.
type Params struct {
	// GrayThreshold is the binarization cutoff: a pixel is ink when its
	// channel-averaged gray value is strictly below this.
	GrayThreshold uint8
	// MaxThickness is the maximum row span of a candidate rule in pixels.
	MaxThickness int
	// MinLength is the minimum column span of a candidate rule in pixels;
	// a candidate must exceed it.
	MinLength int
	// BlindSpot is the fraction of page height from the top to ignore on the
	// first processed page, to skip running headers.
	BlindSpot float64
}

// DefaultParams returns detection parameters tuned for 2x-zoom renders of
// letter-size law-review pages.
func DefaultParams() Params {
	return Params{
		GrayThreshold: 128,
		MaxThickness:  6,
		MinLength:     200,
		BlindSpot:     0.1,
	}
}

// Candidate is a detected horizontal-line candidate: the top row of its
// bounding box and its column span, both in raster pixels.
type Candidate struct {
	Row  int
	Span int
}

// Detect finds horizontal-line candidates on a rendered page. firstPage
// applies the blind-spot cutoff; on later pages the whole page is scanned.
// An empty result is a normal outcome, it means no separator rule exists on
// this page.
func Detect(img image.Image, firstPage bool, p Params) []Candidate {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	ink := binarize(img, p.GrayThreshold)

	blind := 0
	if firstPage {
		blind = int(p.BlindSpot * float64(h))
	}

	var out []Candidate
	visited := make([]bool, w*h)
	// BFS over 8-connected ink components; diagonal touching merges broken
	// rule segments into one candidate.
	queue := make([]int, 0, 256)
	for start := 0; start < w*h; start++ {
		if visited[start] || !ink[start] {
			continue
		}
		minRow, maxRow := h, -1
		minCol, maxCol := w, -1
		queue = queue[:0]
		queue = append(queue, start)
		visited[start] = true
		for len(queue) > 0 {
			idx := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			y, x := idx/w, idx%w
			if y < minRow {
				minRow = y
			}
			if y > maxRow {
				maxRow = y
			}
			if x < minCol {
				minCol = x
			}
			if x > maxCol {
				maxCol = x
			}
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dy == 0 && dx == 0 {
						continue
					}
					ny, nx := y+dy, x+dx
					if ny < 0 || ny >= h || nx < 0 || nx >= w {
						continue
					}
					n := ny*w + nx
					if !visited[n] && ink[n] {
						visited[n] = true
						queue = append(queue, n)
					}
				}
			}
		}

		rowSpan := maxRow - minRow + 1
		colSpan := maxCol - minCol + 1
		if rowSpan <= p.MaxThickness && colSpan > p.MinLength && minRow >= blind {
			out = append(out, Candidate{Row: minRow, Span: colSpan})
		}
	}
	return out
}

// Longest returns the candidate with the greatest column span, the longest
// rule wins because the true divider typically spans most of the page width.
func Longest(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Span > best.Span {
			best = c
		}
	}
	return best, true
}

// binarize converts the image to a flat ink mask. Gray value is the plain
// average of the R, G, B channels.
func binarize(img image.Image, threshold uint8) []bool {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	ink := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			gray := uint8(((r >> 8) + (g >> 8) + (bl >> 8)) / 3)
			ink[y*w+x] = gray < threshold
		}
	}
	return ink
}
