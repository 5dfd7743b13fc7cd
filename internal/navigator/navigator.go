// Package navigator writes the per-folder navigators and the top-level entry page.
package navigator

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path"

	ferrors "git.home.luguber.info/inful/autotoc/internal/foundation/errors"
	"git.home.luguber.info/inful/autotoc/internal/logfields"
	"git.home.luguber.info/inful/autotoc/internal/metrics"
	"git.home.luguber.info/inful/autotoc/internal/paths"
	"git.home.luguber.info/inful/autotoc/internal/routes"
)

// Options controls the generated markup.
type Options struct {
	ProjectName          string
	ContentDir           paths.Rel
	HeaderText           string
	TrimFolderNumbers    bool
	HeadersFromSubfolder bool
	ReadmeNames          []string
}

// Generator renders navigation files from a route table.
type Generator struct {
	root     string
	table    *routes.Table
	opts     Options
	recorder metrics.Recorder
	logger   *slog.Logger
}

// NewGenerator creates a generator writing beneath the absolute docs root.
func NewGenerator(root string, table *routes.Table, opts Options) *Generator {
	return &Generator{
		root:     root,
		table:    table,
		opts:     opts,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
}

// WithRecorder sets the metrics recorder.
func (g *Generator) WithRecorder(r metrics.Recorder) *Generator {
	if r != nil {
		g.recorder = r
	}
	return g
}

// WithLogger sets the logger.
func (g *Generator) WithLogger(l *slog.Logger) *Generator {
	if l != nil {
		g.logger = l
	}
	return g
}

// NavigatorDirs lists the folders that receive a navigator: every folder in the
// table except the docs root and the content folder, whose listing goes to the
// entry page instead.
func (g *Generator) NavigatorDirs() []paths.Rel {
	var out []paths.Rel
	for _, dir := range g.table.Dirs() {
		if dir.IsRoot() || dir.Equal(g.opts.ContentDir) {
			continue
		}
		out = append(out, dir)
	}
	return out
}

// WriteNavigators writes one navigator per folder and returns their paths.
func (g *Generator) WriteNavigators() ([]paths.Rel, error) {
	dirs := g.NavigatorDirs()
	written := make([]paths.Rel, 0, len(dirs))
	for _, dir := range dirs {
		content, err := g.RenderNavigator(dir)
		if err != nil {
			return written, err
		}
		target := paths.NavigatorOf(dir)
		if err := g.write(target, content); err != nil {
			return written, err
		}
		g.recorder.IncFilesWritten(metrics.KindNavigator)
		g.logger.Debug("Generated navigator", logfields.Dir(dir.String()), logfields.Target(target.String()))
		written = append(written, target)
	}
	g.logger.Info("Generated navigators", logfields.Count(len(written)))
	return written, nil
}

// RenderNavigator produces the navigator of dir: its display title, the README
// preamble if one exists, and a toctree listing the ordered children. Child
// folders link to their own navigator.
func (g *Generator) RenderNavigator(dir paths.Rel) (string, error) {
	preamble, err := g.readme(dir)
	if err != nil {
		return "", err
	}
	return render("navigator", navigatorData{
		Title:    paths.DisplayName(dir.Name(), g.opts.TrimFolderNumbers),
		Preamble: preamble,
		Entries:  g.entries(dir, ""),
	})
}

// entries lists toctree targets for dir's children, prefixed by prefix.
func (g *Generator) entries(dir paths.Rel, prefix string) []string {
	ordered := g.table.Ordered(dir)
	out := make([]string, 0, len(ordered))
	for _, e := range ordered {
		target := e.Name()
		if e.IsDir {
			target = path.Join(e.Name(), paths.NavigatorName(e.Name()))
		}
		if prefix != "" && prefix != "." {
			target = path.Join(prefix, target)
		}
		out = append(out, target)
	}
	return out
}

func (g *Generator) readme(dir paths.Rel) (string, error) {
	for _, name := range g.opts.ReadmeNames {
		file := dir.Join(name).OS(g.root)
		data, err := os.ReadFile(file)
		if err == nil {
			g.logger.Debug("Embedding README", logfields.File(file))
			return string(data), nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return "", ferrors.FileSystemError(err, "read README").WithContext("path", file).Build()
	}
	return "", nil
}

func (g *Generator) write(target paths.Rel, content string) error {
	file := target.OS(g.root)
	// #nosec G306 -- generated documentation sources are public content
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		return ferrors.FileSystemError(err, "write generated file").WithContext("path", file).Build()
	}
	return nil
}
