package docs

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	derrors "git.home.luguber.info/inful/autotoc/internal/docs/errors"
	ferrors "git.home.luguber.info/inful/autotoc/internal/foundation/errors"
	"git.home.luguber.info/inful/autotoc/internal/logfields"
	"git.home.luguber.info/inful/autotoc/internal/paths"
	"git.home.luguber.info/inful/autotoc/internal/util/sets"
)

// Options controls which files count as documentation content.
type Options struct {
	ExcludePatterns []string
	SourceSuffixes  []string
}

// Collection is the set of paths that must appear in the generated tree: every
// recognized content file plus each of its ancestor folders. The docs root is
// implicit and never part of the collection.
type Collection struct {
	Root  string // absolute docs root
	files sets.Set[paths.Rel]
	dirs  sets.Set[paths.Rel]
	order []paths.Rel // enumeration order of first insertion

	skipped []paths.Rel
}

func newCollection(root string) *Collection {
	return &Collection{
		Root:  root,
		files: sets.New[paths.Rel](),
		dirs:  sets.New[paths.Rel](),
	}
}

// Paths returns every collected path in enumeration order.
func (c *Collection) Paths() []paths.Rel {
	out := make([]paths.Rel, len(c.order))
	copy(out, c.order)
	return out
}

// IsDir reports whether p was collected as a folder.
func (c *Collection) IsDir(p paths.Rel) bool { return c.dirs.Has(p) }

// Has reports whether p was collected at all.
func (c *Collection) Has(p paths.Rel) bool { return c.dirs.Has(p) || c.files.Has(p) }

// Files returns the collected content files in enumeration order.
func (c *Collection) Files() []paths.Rel {
	out := make([]paths.Rel, 0, c.files.Len())
	for _, p := range c.order {
		if c.files.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

func (c *Collection) Len() int { return len(c.order) }

// Skipped lists the paths left out because they could not be read.
func (c *Collection) Skipped() []paths.Rel { return c.skipped }

// Resolve returns the collected spelling of p. Paths typed by a user may use a
// different Unicode normalization than the file system; p is returned unchanged
// when nothing collected matches it.
func (c *Collection) Resolve(p paths.Rel) paths.Rel {
	if p.IsRoot() || c.Has(p) {
		return p
	}
	for _, q := range c.order {
		if q.Equal(p) {
			return q
		}
	}
	return p
}

func (c *Collection) addFile(p paths.Rel) {
	if c.Has(p) {
		return
	}
	// Ancestors go first so a folder always precedes its content in Paths.
	ancestors := p.Ancestors()
	for i := len(ancestors) - 1; i >= 0; i-- {
		if c.dirs.Has(ancestors[i]) {
			continue
		}
		c.dirs.Add(ancestors[i])
		c.order = append(c.order, ancestors[i])
	}
	c.files.Add(p)
	c.order = append(c.order, p)
}

// Collect walks root and returns the documentation paths it contains.
//
// Folders matching an exclusion pattern or whose name starts with "_" are pruned
// with their whole subtree. Files are kept when they carry a recognized suffix, do
// not match an exclusion pattern, and are not outputs of a previous run. Folders
// are only ever added as ancestors of kept files, so folders without content never
// appear.
func Collect(root string, opts Options) (*Collection, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, ferrors.ConfigError("cannot resolve docs root").WithContext("path", root).Build()
	}
	if err := CheckDir(absRoot); err != nil {
		return nil, err
	}

	matcher, err := NewMatcher(opts.ExcludePatterns)
	if err != nil {
		return nil, ferrors.ValidationError(err.Error()).Build()
	}
	suffixes := normalizeSuffixes(opts.SourceSuffixes)

	c := newCollection(absRoot)
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		rel, err := paths.FromOS(absRoot, path)
		if err != nil {
			return err
		}
		if walkErr != nil {
			if rel.IsRoot() {
				return walkErr
			}
			return c.skip(rel, d, walkErr)
		}
		if rel.IsRoot() {
			return nil
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), "_") {
				slog.Debug("Skipping underscored folder", logfields.Dir(rel.String()))
				return fs.SkipDir
			}
			if matcher.Match(rel) {
				slog.Debug("Skipping excluded folder", logfields.Dir(rel.String()))
				return fs.SkipDir
			}
			return nil
		}

		if matcher.Match(rel) {
			slog.Debug("Skipping excluded file", logfields.File(rel.String()))
			return nil
		}
		if !hasSuffix(rel.Name(), suffixes) {
			return nil
		}
		if paths.IsGenerated(rel) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			if info, statErr := os.Stat(path); statErr != nil || info.IsDir() {
				return nil
			}
		}

		c.addFile(rel)
		slog.Debug("Discovered file", logfields.File(rel.String()))
		return nil
	})
	if err != nil {
		return nil, ferrors.FileSystemError(fmt.Errorf("%w: %w", derrors.ErrDocsDirWalkFailed, err), "walk docs root").
			WithContext("path", absRoot).
			Build()
	}

	slog.Debug("Collected documentation paths", logfields.Path(absRoot), logfields.Count(c.Len()))
	return c, nil
}

// skip records an unreadable path and keeps walking past it.
func (c *Collection) skip(rel paths.Rel, d fs.DirEntry, cause error) error {
	warn := ferrors.FileSystemError(cause, "skipping unreadable path").
		Warning().
		WithContext("path", rel.String()).
		Build()
	slog.Warn(warn.Message(), logfields.Path(rel.String()), logfields.Error(warn))
	c.skipped = append(c.skipped, rel)
	if d != nil && d.IsDir() {
		return fs.SkipDir
	}
	return nil
}

// CheckDir fails with a configuration error unless dir is an existing, non-empty folder.
func CheckDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ferrors.WrapError(derrors.ErrDocsRootMissing, ferrors.CategoryConfig, "folder does not exist").
			Fatal().
			WithContext("path", dir).
			Build()
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, "folder is not readable").
			Fatal().
			WithContext("path", dir).
			Build()
	}
	if len(entries) == 0 {
		return ferrors.WrapError(derrors.ErrContentDirEmpty, ferrors.CategoryConfig, "folder is empty").
			Fatal().
			WithContext("path", dir).
			Build()
	}
	return nil
}

func normalizeSuffixes(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if !strings.HasPrefix(s, ".") {
			s = "." + s
		}
		out = append(out, s)
	}
	return out
}

func hasSuffix(name string, suffixes []string) bool {
	for _, s := range suffixes {
		if len(name) > len(s) && strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
