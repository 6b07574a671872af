// Package excerpt cuts the reflowed main text into start/middle/end word
// windows and merges them into the single excerpt document used downstream.
package excerpt

import (
	"strings"

	"github.com/lrlab/lrextract/internal/textutil"
)

// Options sizes the excerpt windows.
type Options struct {
	// Window is the word count of each of start, mid and end when the
	// document is long enough for fixed windows.
	Window int
	// MinWords is the floor under which excerpting is skipped entirely.
	MinWords int
	// OverlapTrimWords is the flat trim applied at the merge seams of short
	// documents when the combined segments reach OverlapCombinedMin words.
	OverlapTrimWords int
	// OverlapTrimFrac is the per-segment trim fraction used below that.
	OverlapTrimFrac float64
	// OverlapCombinedMin is the combined-length threshold selecting between
	// the flat and the fractional trim.
	OverlapCombinedMin int
}

// DefaultOptions matches the production window sizes.
func DefaultOptions() Options {
	return Options{
		Window:             1500,
		MinWords:           100,
		OverlapTrimWords:   500,
		OverlapTrimFrac:    0.6,
		OverlapCombinedMin: 2000,
	}
}

// Segments are the three word windows plus the short-document flag.
type Segments struct {
	Start string
	Mid   string
	End   string
	// Short is set when the document is below three windows and the thirds
	// necessarily overlap-adjoin.
	Short bool
}

// Segment cuts text into start/mid/end windows. ok is false when the text is
// empty, whitespace-only or under the minimum word count, in which case no
// artifacts should be produced.
func Segment(text string, opt Options) (Segments, bool) {
	words := textutil.Words(text)
	n := len(words)
	if n < opt.MinWords {
		return Segments{}, false
	}

	if n >= 3*opt.Window {
		midStart := (n - opt.Window) / 2
		return Segments{
			Start: strings.Join(words[:opt.Window], " "),
			Mid:   strings.Join(words[midStart:midStart+opt.Window], " "),
			End:   strings.Join(words[n-opt.Window:], " "),
		}, true
	}

	// Short document: three roughly equal thirds.
	i1, i2 := n/3, 2*n/3
	return Segments{
		Start: strings.Join(words[:i1], " "),
		Mid:   strings.Join(words[i1:i2], " "),
		End:   strings.Join(words[i2:], " "),
		Short: true,
	}, true
}

// separator is the fixed five-line dotted divider between long-document
// segments.
const separator = "\n.\n.\n.\n.\n.\n"

// Merge builds the single excerpt document, title prefixed and suffixed.
// Long documents join the three windows with the dotted separator. Short
// documents trim the first trim-count words from start and the last from
// end, then concatenate without a separator, reducing duplicate overlap
// between the adjacent thirds.
func Merge(title string, seg Segments, opt Options) string {
	if !seg.Short {
		return title + "\n\n" + seg.Start + separator + seg.Mid + separator + seg.End + "\n\n" + title
	}

	start, end := seg.Start, seg.End
	combined := textutil.WordCount(seg.Start) + textutil.WordCount(seg.Mid) + textutil.WordCount(seg.End)
	if combined >= opt.OverlapCombinedMin {
		start = dropFirstWords(start, opt.OverlapTrimWords)
		end = dropLastWords(end, opt.OverlapTrimWords)
	} else {
		start = dropFirstWords(start, int(opt.OverlapTrimFrac*float64(textutil.WordCount(start))))
		end = dropLastWords(end, int(opt.OverlapTrimFrac*float64(textutil.WordCount(end))))
	}
	return title + "\n\n" + start + " " + seg.Mid + " " + end + "\n\n" + title
}

func dropFirstWords(s string, n int) string {
	words := textutil.Words(s)
	if n >= len(words) {
		return ""
	}
	return strings.Join(words[n:], " ")
}

func dropLastWords(s string, n int) string {
	words := textutil.Words(s)
	if n >= len(words) {
		return ""
	}
	return strings.Join(words[:len(words)-n], " ")
}
