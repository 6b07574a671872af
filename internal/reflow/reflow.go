// Package reflow repairs line breaks in extracted main text: it rejoins
// lines wrapped by column-based extraction and inserts breaks the extractor
// missed at genuine sentence boundaries. Word-count preservation is the
// correctness guarantee; a pass that drifts more than the tolerance is
// discarded.
package reflow

import (
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lrlab/lrextract/internal/textutil"
)

// Options bounds the two reflow passes.
type Options struct {
	// JoinPasses is the number of line-joining cycles. Single-pass joining
	// does not resolve cascading bad breaks, so several cycles run.
	JoinPasses int
	// SplitPasses is the number of sentence-splitting cycles.
	SplitPasses int
	// Tolerance is the allowed relative word-count drift per pass.
	Tolerance float64
}

// DefaultOptions returns the empirically settled pass counts.
func DefaultOptions() Options {
	return Options{JoinPasses: 6, SplitPasses: 3, Tolerance: 0.05}
}

// Run applies the joining cycles, then the sentence-splitting cycles.
func Run(text string, opt Options) string {
	text = JoinLines(text, opt)
	return SplitSentences(text, opt)
}

// JoinLines runs the line-joining pass for up to opt.JoinPasses cycles,
// stopping early at a fixed point. A cycle whose output drifts beyond the
// word-count tolerance is discarded; the text reverts to its pre-cycle state
// and no further cycles run, since the pass is deterministic and would
// re-violate.
func JoinLines(text string, opt Options) string {
	for pass := 0; pass < opt.JoinPasses; pass++ {
		before := textutil.WordCount(text)
		candidate := strings.Join(joinOnce(strings.Split(text, "\n")), "\n")
		if candidate == text {
			break
		}
		if !withinTolerance(before, textutil.WordCount(candidate), opt.Tolerance) {
			log.Error().Int("pass", pass).Int("words_before", before).
				Int("words_after", textutil.WordCount(candidate)).
				Msg("reflow join pass discarded: word count drift over tolerance")
			break
		}
		text = candidate
	}
	return text
}

// SplitSentences runs the sentence-splitting pass for opt.SplitPasses
// cycles under the same word-count guard.
func SplitSentences(text string, opt Options) string {
	for pass := 0; pass < opt.SplitPasses; pass++ {
		before := textutil.WordCount(text)
		candidate := splitOnce(text)
		if candidate == text {
			break
		}
		if !withinTolerance(before, textutil.WordCount(candidate), opt.Tolerance) {
			log.Error().Int("pass", pass).Msg("reflow split pass discarded: word count drift over tolerance")
			break
		}
		text = candidate
	}
	return text
}

func withinTolerance(before, after int, tol float64) bool {
	if before == 0 {
		return after == 0
	}
	lo := float64(before) * (1 - tol)
	hi := float64(before) * (1 + tol)
	return float64(after) >= lo && float64(after) <= hi
}

// joinOnce performs one joining cycle: each line joins with its successor at
// most once per cycle.
func joinOnce(lines []string) []string {
	out := make([]string, 0, len(lines))
	i := 0
	for i < len(lines) {
		cur := lines[i]
		if i == len(lines)-1 || !joinableLine(cur) || startsGenuineBreak(lines[i+1]) {
			out = append(out, cur)
			i++
			continue
		}
		next := strings.TrimLeft(lines[i+1], " ")
		trimmed := strings.TrimRight(cur, " ")
		var joined string
		if strings.HasSuffix(trimmed, "-") {
			// True word-wrap hyphenation: drop the hyphen, append directly.
			joined = strings.TrimSuffix(trimmed, "-") + next
		} else {
			// A trailing comma, like any other non-terminal ending, keeps a
			// single separating space.
			joined = trimmed + " " + next
		}
		out = append(out, joined)
		i += 2
	}
	return out
}

// joinableLine reports whether a line may join with its successor. Headings
// (title case, fully or mostly uppercase) and sentence-terminated lines are
// genuine breaks.
func joinableLine(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return false
	}
	if isTitleCase(s) || isAllUpper(s) || isMostlyUpper(s) {
		return false
	}
	return !endsTerminal(s)
}

// startsGenuineBreak reports whether the successor line must not be pulled
// up into the current one.
func startsGenuineBreak(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return true
	}
	return isTitleCase(s) || isMostlyUpper(s)
}

func isTitleCase(s string) bool {
	if !hasLetter(s) {
		return false
	}
	// A Caser is stateful and must not be shared across the concurrent
	// per-document workers.
	return cases.Title(language.English).String(s) == s
}

func isAllUpper(s string) bool {
	if !hasLetter(s) {
		return false
	}
	return strings.ToUpper(s) == s
}

// isMostlyUpper reports whether at least 75% of the line's non-space
// characters are uppercase letters, the heuristic for headings and running
// titles.
func isMostlyUpper(s string) bool {
	total, upper := 0, 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return total > 0 && float64(upper)/float64(total) >= 0.75
}

// endsTerminal reports whether the line ends in sentence-terminal
// punctuation: any punctuation except hyphen or comma.
func endsTerminal(s string) bool {
	r := lastRune(s)
	if r == '-' || r == ',' {
		return false
	}
	return unicode.IsPunct(r)
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
