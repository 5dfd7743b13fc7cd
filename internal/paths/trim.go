package paths

import (
	"strings"
	"unicode"
)

// TrimLeadingNumbers strips an ordering prefix such as "12. " from a folder name.
// The prefix is one or more ASCII digits and a period; it is only removed when a
// non-empty name remains after trimming leading whitespace. Only the outermost
// prefix is removed.
func TrimLeadingNumbers(name string) string {
	number, rest, found := strings.Cut(name, ".")
	if !found || number == "" {
		return name
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return name
		}
	}
	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	if rest == "" {
		return name
	}
	return rest
}

// DisplayName is the folder title shown in generated headings and captions.
func DisplayName(name string, trimNumbers bool) string {
	if trimNumbers {
		return TrimLeadingNumbers(name)
	}
	return name
}
