package pipeline

import (
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lrlab/lrextract/internal/article"
)

func testRunner(t *testing.T) *Runner {
	t.Helper()
	cfg := DefaultConfig()
	cfg.InputDir = t.TempDir()
	cfg.OutputDir = t.TempDir()
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestReconcileFootnotesFillsFields(t *testing.T) {
	r := testRunner(t)
	art := article.Article{
		Stem:    "doc",
		FnsText: "* Thanks to everyone.\n1. First footnote.\n2. Second.\n3. Third.\n",
	}
	r.reconcileFootnotes(&art, zerolog.Nop())

	if art.FirstFnNum == nil || *art.FirstFnNum != 1 {
		t.Fatalf("first fn = %v", art.FirstFnNum)
	}
	if art.TotalFns == nil || *art.TotalFns != 3 {
		t.Fatalf("total fns = %v", art.TotalFns)
	}
	if art.Acknowledgment == nil || *art.Acknowledgment != "* Thanks to everyone." {
		t.Fatalf("acknowledgment = %v", art.Acknowledgment)
	}
	if art.ReorgAcknowledgment == nil || *art.ReorgAcknowledgment != "* Thanks to everyone." {
		t.Fatalf("reorg = %v", art.ReorgAcknowledgment)
	}
}

func TestReconcileFootnotesIndeterminate(t *testing.T) {
	r := testRunner(t)
	art := article.Article{Stem: "doc", FnsText: "prose only\n"}
	r.reconcileFootnotes(&art, zerolog.Nop())
	if art.FirstFnNum != nil || art.Acknowledgment != nil {
		t.Fatalf("fields set on indeterminate stream: %+v", art)
	}
}

func TestReconcileFootnotesSentinelAck(t *testing.T) {
	r := testRunner(t)
	art := article.Article{
		Stem:    "doc",
		FnsText: "1. First footnote.\n2. Second.\n3. Third.\n",
	}
	r.reconcileFootnotes(&art, zerolog.Nop())
	if art.Acknowledgment == nil || *art.Acknowledgment != article.NoAcknowledgment {
		t.Fatalf("acknowledgment = %v, want sentinel", art.Acknowledgment)
	}
	if art.AcknowledgmentLength == nil || *art.AcknowledgmentLength != 0 {
		t.Fatalf("acknowledgment length = %v, want 0", art.AcknowledgmentLength)
	}
	if art.ReorgAcknowledgmentLength == nil || *art.ReorgAcknowledgmentLength != 0 {
		t.Fatalf("reorg length = %v, want 0", art.ReorgAcknowledgmentLength)
	}
}

func TestExcerptDocumentWritesArtifacts(t *testing.T) {
	r := testRunner(t)
	words := make([]string, 6000)
	for i := range words {
		words[i] = "word"
	}
	art := article.Article{Stem: "doc"}
	art.SetMainText(strings.Join(words, " "), 6000)

	if err := r.excerptDocument(&art, zerolog.Nop()); err != nil {
		t.Fatalf("excerptDocument: %v", err)
	}
	if art.ShortExcerptFlag {
		t.Fatal("long document flagged short")
	}
	for _, path := range []string{
		r.cfg.startPath("doc"), r.cfg.midPath("doc"), r.cfg.endPath("doc"), r.cfg.excerptPath("doc"),
	} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("artifact missing: %v", err)
		}
	}
}

func TestExcerptDocumentSkipsTinyText(t *testing.T) {
	r := testRunner(t)
	art := article.Article{Stem: "doc"}
	art.SetMainText("just a handful of words", 5)

	if err := r.excerptDocument(&art, zerolog.Nop()); err != nil {
		t.Fatalf("excerptDocument: %v", err)
	}
	if _, err := os.Stat(r.cfg.startPath("doc")); err == nil {
		t.Fatal("artifacts written for under-threshold text")
	}
}
