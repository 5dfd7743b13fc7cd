// Package rst holds the reStructuredText fragments autotoc emits.
package rst

import (
	"strings"

	"golang.org/x/text/width"
)

// Indent is the directive body indentation used in toctree blocks.
const Indent = "   "

// Width is the number of columns s occupies; East Asian wide and fullwidth
// characters count double, as docutils counts them for title underlines.
func Width(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// Rule returns a section underline as wide as title.
func Rule(title string) string {
	n := Width(title)
	if n == 0 {
		n = 1
	}
	return strings.Repeat("=", n)
}

// TocEntry formats one toctree body line.
func TocEntry(target string) string {
	return Indent + target
}

// TitledTocEntry formats a toctree line with explicit link text.
func TitledTocEntry(title, target string) string {
	return Indent + title + " <" + target + ">"
}

// EntryTarget extracts the document reference from a toctree body line, dropping
// an explicit title. It returns "" for lines that are not entries.
func EntryTarget(line string) string {
	s := strings.TrimSpace(line)
	if s == "" || strings.HasPrefix(s, ":") || strings.HasPrefix(s, "..") || !strings.HasPrefix(line, Indent) {
		return ""
	}
	if strings.HasSuffix(s, ">") {
		if i := strings.LastIndex(s, " <"); i >= 0 {
			return s[i+2 : len(s)-1]
		}
	}
	return s
}
