package reflow

import (
	"strings"
	"unicode"
)

// abbreviations are tokens whose trailing period never ends a sentence.
// The set skews toward tokens common in law-review prose.
var abbreviations = map[string]bool{
	"Mr.":   true,
	"Mrs.":  true,
	"Ms.":   true,
	"Dr.":   true,
	"Prof.": true,
	"Jr.":   true,
	"Sr.":   true,
	"St.":   true,
	"U.S.":  true,
	"U.K.":  true,
	"e.g.":  true,
	"i.e.":  true,
	"etc.":  true,
	"cf.":   true,
	"vs.":   true,
	"No.":   true,
	"Co.":   true,
	"Inc.":  true,
	"Ltd.":  true,
	"Stat.": true,
	"Cong.": true,
	"Sess.": true,
	"art.":  true,
	"sec.":  true,
	"ch.":   true,
	"Vol.":  true,
}

// splitOnce scans each line for sentence boundaries and inserts a line break
// after the whitespace that follows a terminating period.
func splitOnce(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = splitLine(line)
	}
	return strings.Join(lines, "\n")
}

func splitLine(line string) string {
	runes := []rune(line)
	var b strings.Builder
	i := 0
	for i < len(runes) {
		r := runes[i]
		b.WriteRune(r)
		if r != '.' {
			i++
			continue
		}

		tok := tokenEndingAt(runes, i)
		if abbreviations[tok] {
			i++
			continue
		}
		// Standalone "v"/"V" before the period marks a case citation
		// ("Smith v. Jones").
		if bare := strings.TrimSuffix(tok, "."); bare == "v" || bare == "V" {
			i++
			continue
		}

		// Digits straight after the period are part of the same token
		// (page and section numbers); consume them and move on.
		if i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
			j := i + 1
			for j < len(runes) && unicode.IsDigit(runes[j]) {
				b.WriteRune(runes[j])
				j++
			}
			i = j
			continue
		}

		// Whitespace followed by an uppercase letter: a new sentence starts
		// with a capital, so break after the whitespace.
		k := i + 1
		for k < len(runes) && (runes[k] == ' ' || runes[k] == '\t') {
			k++
		}
		if k > i+1 && k < len(runes) && unicode.IsUpper(runes[k]) {
			for t := i + 1; t < k; t++ {
				b.WriteRune(runes[t])
			}
			b.WriteRune('\n')
			i = k
			continue
		}
		i++
	}
	return b.String()
}

// tokenEndingAt returns the whitespace-delimited token that ends with the
// period at index i, period included.
func tokenEndingAt(runes []rune, i int) string {
	start := i
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}
	return string(runes[start : i+1])
}
