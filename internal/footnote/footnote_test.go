package footnote

import (
	"strings"
	"testing"

	"github.com/lrlab/lrextract/internal/article"
)

func stream(nums ...string) string {
	return strings.Join(nums, "\n") + "\n"
}

func TestExtract(t *testing.T) {
	fns := "  1. First footnote text.\nprose continuation line\n2 . Second footnote.\n999. Big one.\n1234. Too many digits.\n"
	got := Extract(fns)
	if len(got) != 3 {
		t.Fatalf("matches = %d, want 3 (%+v)", len(got), got)
	}
	if got[0].Num != 1 || got[0].Line != "1. First footnote text." {
		t.Fatalf("first match = %+v", got[0])
	}
	if got[1].Num != 2 {
		t.Fatalf("second match = %+v", got[1])
	}
	if got[2].Num != 999 {
		t.Fatalf("third match = %+v", got[2])
	}
}

func TestReconcileSpuriousRunOn(t *testing.T) {
	// 7 is an isolated run-on from another article; [7,8,9] is itself
	// sequential, so the backward triplet scan must still land on 9.
	fns := stream(
		"1. one", "2. two", "3. three", "4. four",
		"7. seven", "8. eight", "9. nine",
	)
	res := Reconcile(fns)
	if res.FirstNum == nil || *res.FirstNum != 1 {
		t.Fatalf("first = %v, want 1", res.FirstNum)
	}
	if res.LastNum == nil || *res.LastNum != 9 {
		t.Fatalf("last = %v, want 9", res.LastNum)
	}
	if res.TotalFns == nil || *res.TotalFns != 9 {
		t.Fatalf("total = %v, want 9", res.TotalFns)
	}
	if res.LastText == nil || *res.LastText != "9. nine" {
		t.Fatalf("last text = %v", res.LastText)
	}
}

func TestReconcileDuplicatesCollapse(t *testing.T) {
	fns := stream("1. first occurrence", "1. duplicate", "2. two", "3. three")
	res := Reconcile(fns)
	if res.FirstNum == nil || *res.FirstNum != 1 {
		t.Fatalf("first = %v", res.FirstNum)
	}
	if res.TotalFns == nil || *res.TotalFns != 3 {
		t.Fatalf("total after dedupe = %v, want 3", res.TotalFns)
	}
	if res.FirstText == nil || *res.FirstText != "1. first occurrence" {
		t.Fatalf("first text = %v, want first occurrence", res.FirstText)
	}
}

func TestReconcileIndeterminate(t *testing.T) {
	cases := []struct {
		name string
		fns  string
	}{
		{"no tokens", "just prose with no numbering\n"},
		{"no triplet", stream("4. four", "9. nine", "17. seventeen")},
		{"out of order runs", stream("7. a", "8. b", "9. c", "1. d", "2. e", "3. f")},
	}
	for _, c := range cases {
		res := Reconcile(c.fns)
		if res.FirstNum != nil || res.LastNum != nil {
			t.Fatalf("%s: expected indeterminate, got %+v", c.name, res)
		}
		if res.Reason == "" {
			t.Fatalf("%s: indeterminate result needs a reason", c.name)
		}
	}
}

func TestAcknowledgment(t *testing.T) {
	fns := "Acknowledgment line.\n1. First footnote text...\n2. Second.\n"
	got, ok := Acknowledgment(fns, "1. First footnote text...")
	if !ok {
		t.Fatal("acknowledgment should be locatable")
	}
	if got != "Acknowledgment line." {
		t.Fatalf("acknowledgment = %q", got)
	}
}

func TestAcknowledgmentSentinelWhenEmpty(t *testing.T) {
	fns := "\n  \n1. First footnote.\n"
	got, ok := Acknowledgment(fns, "1. First footnote.")
	if !ok || got != article.NoAcknowledgment {
		t.Fatalf("got %q ok=%v, want sentinel", got, ok)
	}
}

func TestAcknowledgmentSentinelOnBleed(t *testing.T) {
	// Footnote-pattern lines inside the candidate mean it is bleed from the
	// previous article, not an acknowledgment.
	fns := "98. trailing footnote of prior article\nsome text\n1. First footnote.\n"
	got, ok := Acknowledgment(fns, "1. First footnote.")
	if !ok || got != article.NoAcknowledgment {
		t.Fatalf("got %q ok=%v, want sentinel", got, ok)
	}
}

func TestAcknowledgmentNotLocatable(t *testing.T) {
	if _, ok := Acknowledgment("stream without the line\n", "1. Missing."); ok {
		t.Fatal("expected not-locatable result")
	}
}

func TestReorganizeAcknowledgment(t *testing.T) {
	in := "* Professor of Law, some\nuniversity. Thanks to col-\nleagues for comments.\n† Further thanks to the\neditors."
	got := ReorganizeAcknowledgment(in)
	want := "* Professor of Law, some university. Thanks to colleagues for comments.\n† Further thanks to the editors."
	if got != want {
		t.Fatalf("reorg = %q, want %q", got, want)
	}
}

func TestReorganizeIdempotent(t *testing.T) {
	in := "* Professor of Law.\nt Thanks to readers of early drafts."
	once := ReorganizeAcknowledgment(in)
	if twice := ReorganizeAcknowledgment(once); twice != once {
		t.Fatalf("reorg not idempotent: %q vs %q", once, twice)
	}
}
