package routes

import (
	"slices"

	"github.com/maruel/natural"

	"git.home.luguber.info/inful/autotoc/internal/paths"
)

// Order sorts the children of dir for display: folders first, then files, each
// group in natural order of its display key (numeric runs compare by value, so
// "2" precedes "10"). Folders sort by name, files by name without extension.
// Equal keys keep their input order. A generated navigator never lists itself.
func Order(dir paths.Rel, entries []Entry) []Entry {
	dirs := make([]Entry, 0, len(entries))
	files := make([]Entry, 0, len(entries))
	for _, e := range entries {
		switch {
		case e.IsDir:
			dirs = append(dirs, e)
		case isSelfReference(dir, e):
			continue
		default:
			files = append(files, e)
		}
	}

	slices.SortStableFunc(dirs, func(a, b Entry) int { return compareNatural(a.Name(), b.Name()) })
	slices.SortStableFunc(files, func(a, b Entry) int { return compareNatural(a.Path.Stem(), b.Path.Stem()) })
	return append(dirs, files...)
}

func isSelfReference(dir paths.Rel, e Entry) bool {
	if dir.IsRoot() {
		return e.Name() == paths.EntryPageName
	}
	return e.Name() == paths.NavigatorName(dir.Name())
}

func compareNatural(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	default:
		return 0
	}
}
