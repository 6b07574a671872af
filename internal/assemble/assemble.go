// Package assemble concatenates per-page zone fragments into the two
// document-level streams and applies the running-header cleanup.
package assemble

import (
	"regexp"
	"strings"

	"github.com/lrlab/lrextract/internal/zone"
)

// Streams holds the assembled document-level text.
type Streams struct {
	Main string
	Fns  string
}

// Concat joins per-page splits in page order. The caller passes only the
// non-title pages; the title page never contributes to structural recovery.
func Concat(splits []zone.Split) Streams {
	var m, f strings.Builder
	for _, s := range splits {
		m.WriteString(s.Main)
		f.WriteString(s.Fns)
	}
	return Streams{Main: m.String(), Fns: f.String()}
}

// StripJournalName removes every case-insensitive occurrence of the
// journal's name from text. Running headers repeat the name on each page and
// it carries no content.
func StripJournalName(text, name string) string {
	if strings.TrimSpace(name) == "" {
		return text
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name))
	return re.ReplaceAllString(text, "")
}
