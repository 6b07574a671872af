// Package article defines the per-document record enriched by the pipeline
// stages, plus the journal registry and filename metadata helpers.
package article

import (
	"path/filepath"
	"strings"
)

// NoAcknowledgment is the sentinel recorded when no acknowledgment text
// precedes the first footnote, or when the candidate turned out to be bleed
// from an adjacent article.
const NoAcknowledgment = "no acknowledgment text"

// Article is the unit of work. Fields are filled in progressively by the
// pipeline stages; a nil optional field means the corresponding stage could
// not determine a value, which is a logged condition rather than an error.
// Text bodies are held in memory during processing and persisted as separate
// artifacts; only their derived measurements serialize into the record.
type Article struct {
	Stem      string `json:"stem"`
	Journal   string `json:"journal,omitempty"`
	JournalID int    `json:"journal_id,omitempty"`
	PDFPath   string `json:"pdf_path,omitempty"`
	NumPages  int    `json:"number_of_pages,omitempty"`

	MainText string `json:"-"`
	FnsText  string `json:"-"`

	MainTextLength *int `json:"main_text_length,omitempty"`
	FnsTextLength  *int `json:"fns_text_length,omitempty"`

	FirstFnNum  *int    `json:"first_fn_num,omitempty"`
	LastFnNum   *int    `json:"last_fn_num,omitempty"`
	TotalFns    *int    `json:"total_fns,omitempty"`
	FirstFnText *string `json:"first_fn_text,omitempty"`
	LastFnText  *string `json:"last_fn_text,omitempty"`

	Acknowledgment            *string `json:"acknowledgment,omitempty"`
	AcknowledgmentLength      *int    `json:"acknowledgment_length,omitempty"`
	ReorgAcknowledgment       *string `json:"reorg_acknowledgment,omitempty"`
	ReorgAcknowledgmentLength *int    `json:"reorg_acknowledgment_length,omitempty"`

	FnsWordsRatio   *float64 `json:"fns_words_ratio,omitempty"`
	MainFnsPortions *float64 `json:"main_fns_portions,omitempty"`

	ShortExcerptFlag bool `json:"short_excerpt_flag"`

	Start   string `json:"-"`
	Mid     string `json:"-"`
	End     string `json:"-"`
	Excerpt string `json:"-"`
}

// SetMainText replaces the main-text body and recomputes its word count in
// the same step, so the recorded length can never go stale after a mutation.
func (a *Article) SetMainText(text string, wordCount int) {
	a.MainText = text
	a.MainTextLength = IntPtr(wordCount)
}

// Ratios fills fns_words_ratio and main_fns_portions when both stream
// lengths are known and the main text is non-empty.
func (a *Article) Ratios() {
	if a.MainTextLength == nil || a.FnsTextLength == nil {
		return
	}
	m, f := *a.MainTextLength, *a.FnsTextLength
	if m <= 0 {
		return
	}
	a.FnsWordsRatio = FloatPtr(float64(f) / float64(m))
	a.MainFnsPortions = FloatPtr(float64(m) / float64(m+f))
}

// ParseStem returns the stable per-document filename stem for a source path:
// the base name without its extension. Every artifact the pipeline writes is
// named from this stem.
func ParseStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IntPtr returns a pointer to v, for filling optional record fields.
func IntPtr(v int) *int { return &v }

// StringPtr returns a pointer to v.
func StringPtr(v string) *string { return &v }

// FloatPtr returns a pointer to v.
func FloatPtr(v float64) *float64 { return &v }
