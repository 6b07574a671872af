// Package textutil holds the small text normalization helpers shared by the
// structural-recovery stages: whitespace cleanup and word counting. Word
// counts are the pipeline's integrity currency, so every stage counts words
// the same way, through this package.
package textutil

import (
	"regexp"
	"strings"
)

var (
	blankLineRe = regexp.MustCompile(`\n\s*\n`)
	multiSpace  = regexp.MustCompile(` +`)
)

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Words splits s into its whitespace-separated words.
func Words(s string) []string {
	return strings.Fields(s)
}

// TrimEdges removes leading and trailing whitespace from the whole text.
func TrimEdges(s string) string {
	return strings.TrimSpace(s)
}

// CollapseBlankLines removes empty (or whitespace-only) lines.
func CollapseBlankLines(s string) string {
	return blankLineRe.ReplaceAllString(s, "\n")
}

// TrimLines removes leading and trailing spaces from each line.
func TrimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSpace(ln)
	}
	return strings.Join(lines, "\n")
}

// CollapseSpaces replaces runs of spaces within lines with a single space.
func CollapseSpaces(s string) string {
	return multiSpace.ReplaceAllString(s, " ")
}

// Clean applies the full normalization chain: edge trim, blank-line removal,
// per-line trim, space collapse. It is idempotent.
func Clean(s string) string {
	s = TrimEdges(s)
	s = CollapseBlankLines(s)
	s = TrimLines(s)
	s = CollapseSpaces(s)
	return s
}
