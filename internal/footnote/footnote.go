// Package footnote reconciles footnote numbering from the assembled
// footnote stream: which footnote opens and closes this article (as opposed
// to bleed-over from adjacent articles in the same scan), how many footnotes
// the article has, and what acknowledgment text precedes the first footnote.
package footnote

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lrlab/lrextract/internal/article"
	"github.com/lrlab/lrextract/internal/textutil"
)

// tokenRe matches a footnote-number line: leading whitespace, one to three
// digits, an optional space, then a period, at the start of a line.
var tokenRe = regexp.MustCompile(`(?m)^[ \t]*(\d{1,3}) ?\..*$`)

// Match is a footnote-number token found in the stream: the parsed number
// and the full matched line, trimmed.
type Match struct {
	Num  int
	Line string
}

// Result carries the reconciler's findings. Nil fields mean the stream was
// indeterminate for that value; Reason says why.
type Result struct {
	FirstNum  *int
	LastNum   *int
	TotalFns  *int
	FirstText *string
	LastText  *string
	Reason    string
}

// Extract scans the footnote stream for number tokens in document order.
func Extract(fns string) []Match {
	raw := tokenRe.FindAllStringSubmatch(fns, -1)
	out := make([]Match, 0, len(raw))
	for _, m := range raw {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		out = append(out, Match{Num: n, Line: strings.TrimSpace(m[0])})
	}
	return out
}

// Reconcile determines the article's footnote range from its stream.
func Reconcile(fns string) Result {
	matches := Extract(fns)
	if len(matches) == 0 {
		return Result{Reason: "no footnote-number tokens found"}
	}

	deduped := dedupe(matches)

	first, okFirst := firstSequential(deduped)
	last, okLast := lastSequential(deduped)
	if !okFirst || !okLast {
		return Result{Reason: "no sequential triplet found"}
	}
	// A nonsensical range on a stream with plenty of tokens means the
	// triplets came from different articles' runs; call it indeterminate.
	if len(matches) > 3 && last.Num <= first.Num {
		return Result{Reason: "computed last footnote not after first"}
	}

	res := Result{
		FirstNum: article.IntPtr(first.Num),
		LastNum:  article.IntPtr(last.Num),
	}
	if last.Num >= first.Num {
		res.TotalFns = article.IntPtr(last.Num - first.Num + 1)
	}

	// Prefer the instance nearest the article body: first occurrence in
	// document order for the opening footnote, last occurrence for the
	// closing one.
	for _, m := range matches {
		if m.Num == first.Num {
			res.FirstText = article.StringPtr(m.Line)
			break
		}
	}
	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i].Num == last.Num {
			res.LastText = article.StringPtr(matches[i].Line)
			break
		}
	}
	return res
}

// dedupe drops later duplicates of a number, keeping the first occurrence.
// Triplet scanning stays in document order so that the last<=first sanity
// check can catch streams whose runs belong to different articles.
func dedupe(matches []Match) []Match {
	seen := make(map[int]bool, len(matches))
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		if seen[m.Num] {
			continue
		}
		seen[m.Num] = true
		out = append(out, m)
	}
	return out
}

// firstSequential scans forward for the first run of three consecutive
// numbers and returns its first element. Requiring a run of three filters
// out stray number-like tokens such as page numbers.
func firstSequential(ms []Match) (Match, bool) {
	for i := 0; i+2 < len(ms); i++ {
		if ms[i+1].Num == ms[i].Num+1 && ms[i+2].Num == ms[i].Num+2 {
			return ms[i], true
		}
	}
	return Match{}, false
}

// lastSequential scans backward for the last run of three consecutive
// numbers and returns its last element.
func lastSequential(ms []Match) (Match, bool) {
	for i := len(ms) - 1; i >= 2; i-- {
		if ms[i].Num == ms[i-1].Num+1 && ms[i-1].Num == ms[i-2].Num+1 {
			return ms[i], true
		}
	}
	return Match{}, false
}

// Acknowledgment extracts the acknowledgment block preceding the first
// footnote line. It returns the sentinel when nothing precedes the footnote
// or when the candidate itself contains footnote-pattern lines (bleed from a
// previous article). ok is false when firstText cannot be located verbatim
// in the stream, which leaves the result indeterminate.
func Acknowledgment(fns, firstText string) (string, bool) {
	idx := strings.Index(fns, firstText)
	if idx < 0 {
		return "", false
	}
	cand := textutil.Clean(fns[:idx])
	if cand == "" {
		return article.NoAcknowledgment, true
	}
	if tokenRe.MatchString(cand) {
		return article.NoAcknowledgment, true
	}
	return cand, true
}
