// Package paths defines the relative path identity used by every pipeline stage
// and the fixed names of the files autotoc generates.
package paths

import (
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	// ServicePrefix starts the name of every generated navigator.
	ServicePrefix = "autotoc"
	// EntryPageName is the generated top-level page, written at the docs root.
	EntryPageName = ServicePrefix + ".rst"
	// NavigatorExt is the extension of generated navigators.
	NavigatorExt = ".rst"
	// AutosummaryDir is where the host build writes per-symbol summaries.
	AutosummaryDir = "_autosummary"
)

// Rel is a slash-separated path relative to the docs root. It keeps the segment
// spelling found on disk, so it can always be joined back onto the root for I/O.
// Names typed by a user may use another Unicode form; compare those with Equal.
type Rel string

// Root is the docs root itself.
const Root Rel = "."

// Normalize converts an OS path (relative to the docs root) to a Rel.
func Normalize(p string) Rel {
	p = path.Clean(filepath.ToSlash(p))
	if p == "." || p == "/" || p == "" {
		return Root
	}
	return Rel(strings.TrimPrefix(p, "./"))
}

// Key is the NFC form of r, used when r is compared with names from another source.
func (r Rel) Key() string { return norm.NFC.String(string(r)) }

// Equal reports whether r and other name the same path up to Unicode normalization.
func (r Rel) Equal(other Rel) bool {
	return r == other || r.Key() == other.Key()
}

// FromOS computes the Rel of target under root.
func FromOS(root, target string) (Rel, error) {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return "", err
	}
	return Normalize(rel), nil
}

func (r Rel) String() string { return string(r) }

// IsRoot reports whether r is the docs root.
func (r Rel) IsRoot() bool { return r == Root || r == "" }

// Name is the last segment; the root has no name.
func (r Rel) Name() string {
	if r.IsRoot() {
		return ""
	}
	return path.Base(string(r))
}

// Parent returns the containing folder; the parent of a top-level entry is Root.
func (r Rel) Parent() Rel {
	if r.IsRoot() {
		return Root
	}
	return Normalize(path.Dir(string(r)))
}

// Join appends segments to r.
func (r Rel) Join(elem ...string) Rel {
	return Normalize(path.Join(append([]string{string(r)}, elem...)...))
}

// Segments splits r into its path segments. The root has none.
func (r Rel) Segments() []string {
	if r.IsRoot() {
		return nil
	}
	return strings.Split(string(r), "/")
}

// Ancestors lists every folder containing r, nearest first, excluding Root.
func (r Rel) Ancestors() []Rel {
	var out []Rel
	for p := r.Parent(); !p.IsRoot(); p = p.Parent() {
		out = append(out, p)
	}
	return out
}

// Stem is the name without its final extension.
func (r Rel) Stem() string {
	name := r.Name()
	return strings.TrimSuffix(name, path.Ext(name))
}

// OS converts r to an absolute OS path under root.
func (r Rel) OS(root string) string {
	if r.IsRoot() {
		return root
	}
	return filepath.Join(root, filepath.FromSlash(string(r)))
}

// NavigatorName is the file name of the navigator generated for a folder named dirName.
func NavigatorName(dirName string) string {
	return ServicePrefix + "." + dirName + NavigatorExt
}

// NavigatorOf is the navigator location for dir.
func NavigatorOf(dir Rel) Rel {
	return dir.Join(NavigatorName(dir.Name()))
}

// IsGenerated reports whether file is an output of autotoc: the navigator of its own
// folder, or the entry page at the root.
func IsGenerated(file Rel) bool {
	parent := file.Parent()
	if parent.IsRoot() {
		return file.Name() == EntryPageName
	}
	return file.Name() == NavigatorName(parent.Name())
}
