// Package watch reruns generation whenever the documentation tree changes.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	ferrors "git.home.luguber.info/inful/autotoc/internal/foundation/errors"
	"git.home.luguber.info/inful/autotoc/internal/logfields"
	"git.home.luguber.info/inful/autotoc/internal/paths"
)

// DefaultDebounce is how long the tree must stay quiet before a rerun.
const DefaultDebounce = 500 * time.Millisecond

// RunFunc performs one full generation.
type RunFunc func(ctx context.Context) error

// Watcher monitors a docs tree and reruns generation after changes settle.
// Runs never overlap: a run happens on the watch loop itself, and events that
// arrive meanwhile are queued by fsnotify and debounced afterwards.
type Watcher struct {
	root     string
	run      RunFunc
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *slog.Logger
	watched  map[string]bool
}

// Option customizes a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a watcher for root.
func New(root string, run RunFunc, opts ...Option) (*Watcher, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, ferrors.ConfigError("cannot resolve docs dir").WithContext("path", root).Build()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "failed to create file watcher").Build()
	}
	w := &Watcher{
		root:     absRoot,
		run:      run,
		watcher:  fw,
		debounce: DefaultDebounce,
		logger:   slog.Default(),
		watched:  make(map[string]bool),
	}
	for _, o := range opts {
		o(w)
	}
	return w, nil
}

// Run generates once, then regenerates after every settled change until ctx
// is done. Failed runs are logged and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			w.logger.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	if err := w.addTree(); err != nil {
		return err
	}
	w.logger.Info("Watching documentation tree", logfields.Path(w.root), logfields.Count(len(w.watched)))
	w.runOnce(ctx)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			w.logger.Info("Stopped watching")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("Change detected", logfields.File(event.Name), slog.String("op", event.Op.String()))
			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
			pending = true

		case <-timer.C:
			pending = false
			w.runOnce(ctx)
			if err := w.addTree(); err != nil {
				w.logger.Warn("Could not watch new folders", logfields.Error(err))
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("File watcher error", logfields.Error(err))
		}
	}
}

// runOnce performs a generation and logs its failure. Cancellation is left to
// the loop.
func (w *Watcher) runOnce(ctx context.Context) {
	err := w.run(ctx)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	w.logger.Error("Generation failed", logfields.Error(err))
}

// relevant filters out events that cannot change the output: permission
// changes and writes of generated files.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	rel, err := paths.FromOS(w.root, event.Name)
	if err != nil || rel.IsRoot() || strings.HasPrefix(string(rel), "../") {
		return false
	}
	if paths.IsGenerated(rel) {
		return false
	}
	for _, seg := range rel.Parent().Segments() {
		if skipDir(seg) {
			return false
		}
	}
	return true
}

// addTree adds every folder under root that is not yet watched.
func (w *Watcher) addTree() error {
	return filepath.WalkDir(w.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == w.root {
				return ferrors.FileSystemError(err, "cannot watch docs dir").WithContext("path", p).Build()
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if p != w.root && skipDir(d.Name()) {
			return fs.SkipDir
		}
		if w.watched[p] {
			return nil
		}
		if err := w.watcher.Add(p); err != nil {
			return ferrors.FileSystemError(err, "cannot watch folder").WithContext("path", p).Build()
		}
		w.watched[p] = true
		return nil
	})
}

// skipDir reports folders never watched: underscored ones are never collected
// and dot folders hold tool state.
func skipDir(name string) bool {
	return strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")
}
