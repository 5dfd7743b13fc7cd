package commands

import (
	"context"
	"time"

	"git.home.luguber.info/inful/autotoc/internal/autotoc"
	"git.home.luguber.info/inful/autotoc/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	DocsFlags `embed:""`
	Debounce  time.Duration `name:"debounce" help:"Quiet period before regenerating" default:"500ms"`
}

func (w *WatchCmd) Run(glob *Global, root *CLI) error {
	// Fail fast on a broken configuration; later runs reload it and only log.
	if _, err := w.LoadConfig(root.Config); err != nil {
		return err
	}

	run := func(ctx context.Context) error {
		cfg, err := w.LoadConfig(root.Config)
		if err != nil {
			return err
		}
		_, err = autotoc.Generate(ctx, w.DocsDir, cfg, autotoc.WithLogger(glob.Logger))
		return err
	}

	watcher, err := watch.New(w.DocsDir, run, watch.WithDebounce(w.Debounce), watch.WithLogger(glob.Logger))
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()
	return watcher.Run(ctx)
}
