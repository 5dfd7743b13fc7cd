// Package routes groups collected paths by folder and orders each folder's listing.
package routes

import (
	"slices"

	"git.home.luguber.info/inful/autotoc/internal/paths"
)

// Source is the flat result of path collection.
type Source interface {
	Paths() []paths.Rel
	IsDir(p paths.Rel) bool
}

// Entry is one direct child of a folder.
type Entry struct {
	Path  paths.Rel
	IsDir bool
}

// Name is the entry's last path segment.
func (e Entry) Name() string { return e.Path.Name() }

// Table maps each folder to its direct children.
type Table struct {
	children map[paths.Rel][]Entry
	dirs     []paths.Rel
}

// Build groups every collected path under its exact parent. Children keep the
// enumeration order of the source; Ordered applies the display order.
func Build(src Source) *Table {
	t := &Table{children: make(map[paths.Rel][]Entry)}
	seen := make(map[paths.Rel]bool)
	for _, p := range src.Paths() {
		if p.IsRoot() || seen[p] {
			continue
		}
		seen[p] = true
		parent := p.Parent()
		if _, ok := t.children[parent]; !ok {
			t.dirs = append(t.dirs, parent)
		}
		t.children[parent] = append(t.children[parent], Entry{Path: p, IsDir: src.IsDir(p)})
	}
	slices.SortStableFunc(t.dirs, func(a, b paths.Rel) int { return compareNatural(string(a), string(b)) })
	return t
}

// Dirs lists every folder that has children, in natural path order.
func (t *Table) Dirs() []paths.Rel {
	return slices.Clone(t.dirs)
}

// Has reports whether dir has any children.
func (t *Table) Has(dir paths.Rel) bool {
	_, ok := t.children[dir]
	return ok
}

// Ordered returns dir's direct children after the ordering policy.
func (t *Table) Ordered(dir paths.Rel) []Entry {
	return Order(dir, t.children[dir])
}

// Len is the number of folders in the table.
func (t *Table) Len() int { return len(t.dirs) }
