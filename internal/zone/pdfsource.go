package zone

import (
	"fmt"
	"os"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// Default page box for PDFs with a missing or malformed MediaBox
// (US letter, in points).
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// PDFSource is a PageSource backed by a PDF file. Positioned text fragments
// from each page are filtered against the separator cut to produce the
// above/below regions.
type PDFSource struct {
	f      *os.File
	reader *pdflib.Reader
}

// OpenPDF opens a PDF by path. The caller must Close the source.
func OpenPDF(path string) (*PDFSource, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &PDFSource{f: f, reader: reader}, nil
}

// Close releases the underlying file handle.
func (s *PDFSource) Close() error {
	return s.f.Close()
}

// PageCount returns the number of pages in the PDF.
func (s *PDFSource) PageCount() int {
	return s.reader.NumPage()
}

// PageSize returns the page's MediaBox dimensions in points, falling back to
// US letter when the box is absent.
func (s *PDFSource) PageSize(page int) (float64, float64, error) {
	p := s.reader.Page(page + 1)
	if p.V.IsNull() {
		return 0, 0, fmt.Errorf("page %d: no page object", page)
	}
	box := p.V.Key("MediaBox")
	if box.IsNull() || box.Len() < 4 {
		return defaultPageWidth, defaultPageHeight, nil
	}
	w := box.Index(2).Float64() - box.Index(0).Float64()
	h := box.Index(3).Float64() - box.Index(1).Float64()
	if w <= 0 || h <= 0 {
		return defaultPageWidth, defaultPageHeight, nil
	}
	return w, h, nil
}

// FullText returns the page's plain text in reading order.
func (s *PDFSource) FullText(page int) (string, error) {
	p := s.reader.Page(page + 1)
	if p.V.IsNull() {
		return "", nil
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("page %d: plain text: %w", page, err)
	}
	return text, nil
}

// TextSplitAt partitions the page's positioned text at a horizontal cut
// yFromTop points below the top edge. PDF user space has its origin at the
// bottom-left, so the cut converts to pageHeight - yFromTop before
// comparing fragment baselines.
func (s *PDFSource) TextSplitAt(page int, yFromTop float64) (string, string, error) {
	p := s.reader.Page(page + 1)
	if p.V.IsNull() {
		return "", "", nil
	}
	_, h, err := s.PageSize(page)
	if err != nil {
		return "", "", err
	}
	cut := h - yFromTop

	content := p.Content()
	var above, below []pdflib.Text
	for _, t := range content.Text {
		if t.Y > cut {
			above = append(above, t)
		} else {
			below = append(below, t)
		}
	}
	return assembleLines(above), assembleLines(below), nil
}

// assembleLines rebuilds reading-order text from positioned fragments:
// fragments are bucketed into lines by baseline Y (top of page first), each
// line ordered by X, with a space inserted at horizontal gaps wider than a
// third of the font size.
func assembleLines(texts []pdflib.Text) string {
	if len(texts) == 0 {
		return ""
	}
	sorted := make([]pdflib.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	const lineTolerance = 2.0

	var b strings.Builder
	lineY := sorted[0].Y
	var prev *pdflib.Text
	for i := range sorted {
		t := &sorted[i]
		if lineY-t.Y > lineTolerance {
			b.WriteString("\n")
			lineY = t.Y
			prev = nil
		}
		if prev != nil {
			gap := t.X - (prev.X + prev.W)
			if gap > prev.FontSize/3 && !strings.HasSuffix(b.String(), " ") {
				b.WriteString(" ")
			}
		}
		b.WriteString(t.S)
		prev = t
	}
	b.WriteString("\n")
	return b.String()
}
