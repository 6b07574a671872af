package reflow

import (
	"strings"
	"testing"

	"github.com/lrlab/lrextract/internal/textutil"
)

func opts() Options { return DefaultOptions() }

func TestJoinWrappedLines(t *testing.T) {
	in := "The court held that the\nstatute was unconstitutional.\n"
	got := JoinLines(in, opts())
	want := "The court held that the statute was unconstitutional.\n"
	if got != want {
		t.Fatalf("JoinLines = %q, want %q", got, want)
	}
}

func TestJoinHyphenatedWrap(t *testing.T) {
	// Long enough that rejoining one hyphenated word stays inside the 5%
	// word-count tolerance.
	in := "The court reached the difficult constitu-\n" +
		"tional question only after it had resolved every one of the statutory claims presented in the parties' briefs"
	got := JoinLines(in, opts())
	want := "The court reached the difficult constitutional question only after it had resolved every one of the statutory claims presented in the parties' briefs"
	if got != want {
		t.Fatalf("JoinLines = %q, want %q", got, want)
	}
}

func TestJoinTrailingCommaKeepsSpace(t *testing.T) {
	in := "first clause,\nsecond clause ends here and runs on"
	got := JoinLines(in, opts())
	want := "first clause, second clause ends here and runs on"
	if got != want {
		t.Fatalf("JoinLines = %q, want %q", got, want)
	}
}

func TestJoinStopsAtTerminalPunctuation(t *testing.T) {
	in := "A finished sentence.\nanother line of prose continues"
	if got := JoinLines(in, opts()); got != in {
		t.Fatalf("terminated line was joined: %q", got)
	}
}

func TestJoinSkipsHeadings(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"all upper current", "III. JUDICIAL REVIEW\nthe following prose line"},
		{"title case next", "some wrapped prose without end\nThe Next Section Heading"},
		{"mostly upper next", "some wrapped prose without end\nPART II: REMEDIES"},
		{"empty next", "some wrapped prose without end\n\nmore prose"},
	}
	for _, c := range cases {
		if got := JoinLines(c.in, opts()); got != c.in {
			t.Fatalf("%s: heading boundary joined: %q", c.name, got)
		}
	}
}

func TestJoinIdempotentAtFixedPoint(t *testing.T) {
	in := "First sentence stands alone.\nSECTION HEADING\nAnother finished line."
	once := JoinLines(in, opts())
	if twice := JoinLines(once, opts()); twice != once {
		t.Fatalf("join not idempotent at fixed point: %q vs %q", once, twice)
	}
}

func TestJoinCascadingBreaksResolveWithinPassBudget(t *testing.T) {
	in := "one\ntwo\nthree\nfour\nfive\nsix\nseven"
	got := JoinLines(in, opts())
	want := "one two three four five six seven"
	if got != want {
		t.Fatalf("cascading joins = %q, want %q", got, want)
	}
}

func TestJoinWordCountGuardDiscardsPass(t *testing.T) {
	// Every join here is hyphenated, so one pass halves the word count, far
	// outside the 5% tolerance. The pass must be discarded and the text kept.
	in := strings.TrimSpace(strings.Repeat("aaa-\nbbb\n", 10))
	got := JoinLines(in, opts())
	if got != in {
		t.Fatalf("integrity-violating pass was committed:\n%q", got)
	}
}

func TestJoinWordCountProperty(t *testing.T) {
	inputs := []string{
		"plain prose that wraps\nonto another line without end\nand then stops.",
		"hyphen-\nated once in otherwise normal length prose that flows on",
		strings.Repeat("word word word word word\n", 40),
	}
	for _, in := range inputs {
		before := textutil.WordCount(in)
		out := Run(in, opts())
		after := textutil.WordCount(out)
		if out != in {
			lo := float64(before) * 0.95
			hi := float64(before) * 1.05
			if float64(after) < lo || float64(after) > hi {
				t.Fatalf("committed output outside tolerance: before=%d after=%d", before, after)
			}
		}
	}
}

func TestSplitSentences(t *testing.T) {
	in := "The first sentence ends here. The second begins with a capital."
	got := SplitSentences(in, opts())
	want := "The first sentence ends here. \nThe second begins with a capital."
	if got != want {
		t.Fatalf("SplitSentences = %q, want %q", got, want)
	}
}

func TestSplitSkipsAbbreviations(t *testing.T) {
	cases := []string{
		"As Dr. Smith argued before the court",
		"In the U.S. Supreme Court the rule differs",
		"See, e.g., the cases cited above",
		"Smith v. Jones controls this question",
	}
	for _, in := range cases {
		if got := SplitSentences(in, opts()); got != in {
			t.Fatalf("abbreviation split: %q -> %q", in, got)
		}
	}
}

func TestSplitSkipsDigitRuns(t *testing.T) {
	// The period inside "2.25" is followed by digits, so the digits belong
	// to the same token and no break is inserted there.
	in := "Rule 2.25 governs the filing. Deadlines follow."
	got := SplitSentences(in, opts())
	want := "Rule 2.25 governs the filing. \nDeadlines follow."
	if got != want {
		t.Fatalf("SplitSentences = %q, want %q", got, want)
	}
}

func TestSplitRequiresUppercaseAfterWhitespace(t *testing.T) {
	in := "an ellipsis trails off. and resumes lowercase"
	if got := SplitSentences(in, opts()); got != in {
		t.Fatalf("lowercase continuation split: %q", got)
	}
}

func TestSplitIdempotent(t *testing.T) {
	in := "One sentence here. Two sentences here. Three now."
	once := SplitSentences(in, opts())
	if twice := SplitSentences(once, opts()); twice != once {
		t.Fatalf("split not idempotent: %q vs %q", once, twice)
	}
}
