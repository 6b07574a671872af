package footnote

import (
	"strings"

	"github.com/lrlab/lrextract/internal/textutil"
)

// ReorganizeAcknowledgment re-splits an acknowledgment block into logical
// paragraphs. Lines opening with a digit, "t", "*" or "†" start a new
// footnote-style marker paragraph (author affiliation markers; "t" is a
// common extraction artifact for the dagger); all other lines join onto the
// current paragraph with a single space. Internal "- " wrap artifacts are
// stripped and blank paragraphs dropped. The pass is idempotent.
func ReorganizeAcknowledgment(ack string) string {
	var paras []string
	var cur strings.Builder
	flush := func() {
		p := strings.ReplaceAll(cur.String(), "- ", "")
		p = strings.TrimSpace(p)
		if p != "" {
			paras = append(paras, p)
		}
		cur.Reset()
	}

	for _, line := range strings.Split(ack, "\n") {
		if startsMarker(line) {
			flush()
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if cur.Len() > 0 {
			cur.WriteString(" ")
		}
		cur.WriteString(trimmed)
	}
	flush()
	return textutil.Clean(strings.Join(paras, "\n"))
}

func startsMarker(line string) bool {
	s := strings.TrimLeft(line, " ")
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	return (r >= '0' && r <= '9') || r == 't' || r == '*' || r == '†'
}
