// Package zone clips a page into its main-text and footnote regions using
// the separator-rule candidates found on the page raster, and exposes the
// per-page text surface the clipping runs against.
package zone

import (
	"github.com/lrlab/lrextract/internal/pageimage"
)

// Split is one page's contribution to the document streams. Every page
// yields exactly one Split, empty fragments included, so that page order is
// preserved when the assembler concatenates them.
type Split struct {
	Main string
	Fns  string
	// SeparatorFound is false when the page had no detectable rule and the
	// whole page was classified as main text. Not an error, but worth a log.
	SeparatorFound bool
}

// PageSource is the rectangular text-extraction surface of one document.
// Pages are zero-based; page 0 is the title page.
type PageSource interface {
	// PageCount returns the number of pages.
	PageCount() int
	// PageSize returns the page width and height in page coordinates.
	PageSize(page int) (w, h float64, err error)
	// FullText returns all extractable text of the page.
	FullText(page int) (string, error)
	// TextSplitAt returns the text above and below a horizontal cut located
	// yFromTop page units below the top edge.
	TextSplitAt(page int, yFromTop float64) (above, below string, err error)
}

// SplitPage classifies one page's text into main and footnote fragments.
// The longest raster candidate wins; its pixel row converts back to page
// coordinates by dividing by the render zoom. With no candidate the whole
// page is main text. A page with no extractable text at all contributes a
// single newline placeholder so page ordering survives reassembly.
func SplitPage(src PageSource, page int, cands []pageimage.Candidate, zoom float64) (Split, error) {
	best, found := pageimage.Longest(cands)
	if !found {
		text, err := src.FullText(page)
		if err != nil {
			return Split{}, err
		}
		if text == "" {
			text = "\n"
		}
		return Split{Main: text}, nil
	}

	yFromTop := float64(best.Row) / zoom
	above, below, err := src.TextSplitAt(page, yFromTop)
	if err != nil {
		return Split{}, err
	}
	if above == "" && below == "" {
		above = "\n"
	}
	return Split{Main: above, Fns: below, SeparatorFound: true}, nil
}
