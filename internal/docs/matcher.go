package docs

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	derrors "git.home.luguber.info/inful/autotoc/internal/docs/errors"
	"git.home.luguber.info/inful/autotoc/internal/paths"
)

// Matcher decides whether a relative path is excluded from the build.
//
// Patterns are anchored at the docs root and also match at any depth: "*hidden*"
// excludes "hidden_folder" as well as "guide/hidden_file.rst". "*" and "?" never
// cross a "/", "**" does.
type Matcher struct {
	patterns []string
}

// NewMatcher validates and compiles exclusion globs. Blank patterns are ignored.
func NewMatcher(globs []string) (*Matcher, error) {
	m := &Matcher{patterns: make([]string, 0, len(globs)*2)}
	for _, g := range globs {
		g = strings.TrimPrefix(strings.TrimSpace(g), "/")
		if g == "" {
			continue
		}
		if !doublestar.ValidatePattern(g) {
			return nil, fmt.Errorf("%w: %q", derrors.ErrInvalidPattern, g)
		}
		m.patterns = append(m.patterns, g)
		if !strings.HasPrefix(g, "**/") {
			m.patterns = append(m.patterns, "**/"+g)
		}
	}
	return m, nil
}

// Match reports whether rel is excluded.
func (m *Matcher) Match(rel paths.Rel) bool {
	if m == nil || rel.IsRoot() {
		return false
	}
	key := rel.Key()
	for _, p := range m.patterns {
		if ok, _ := doublestar.Match(p, string(rel)); ok {
			return true
		}
		if key != string(rel) {
			if ok, _ := doublestar.Match(p, key); ok {
				return true
			}
		}
	}
	return false
}
