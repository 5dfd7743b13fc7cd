// Package visual renders a route table as a text tree for the terminal.
package visual

import (
	"strings"

	"github.com/disiqueira/gotree/v3"

	"git.home.luguber.info/inful/autotoc/internal/paths"
	"git.home.luguber.info/inful/autotoc/internal/routes"
)

// Options controls node labels.
type Options struct {
	TrimFolderNumbers bool
	// ShowNavigators appends the navigator name to every folder that gets one,
	// which is each folder except ContentDir.
	ShowNavigators bool
	ContentDir     paths.Rel
}

// RouteTree is a gotree view of a route table, listed in display order.
type RouteTree struct {
	tree  gotree.Tree
	table *routes.Table
	opts  Options
}

// NewRouteTree builds the tree of table under a root labeled rootLabel.
func NewRouteTree(rootLabel string, table *routes.Table, opts Options) RouteTree {
	t := RouteTree{tree: gotree.New(rootLabel), table: table, opts: opts}
	t.addChildren(t.tree, paths.Root)
	return t
}

func (t RouteTree) addChildren(node gotree.Tree, dir paths.Rel) {
	for _, e := range t.table.Ordered(dir) {
		if !e.IsDir {
			node.Add(e.Name())
			continue
		}
		t.addChildren(node.Add(t.dirLabel(e.Path)), e.Path)
	}
}

func (t RouteTree) dirLabel(dir paths.Rel) string {
	var b strings.Builder
	b.WriteString(dir.Name())
	b.WriteString("/")
	if display := paths.DisplayName(dir.Name(), t.opts.TrimFolderNumbers); display != dir.Name() {
		b.WriteString(" (")
		b.WriteString(display)
		b.WriteString(")")
	}
	if t.opts.ShowNavigators && !dir.Equal(t.opts.ContentDir) {
		b.WriteString(" -> ")
		b.WriteString(paths.NavigatorName(dir.Name()))
	}
	return b.String()
}

// Render returns the printed tree.
func (t RouteTree) Render() string {
	return t.tree.Print()
}
