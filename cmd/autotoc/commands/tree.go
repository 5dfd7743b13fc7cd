package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/autotoc/internal/autotoc"
	"git.home.luguber.info/inful/autotoc/internal/visual"
)

// TreeCmd implements the 'tree' command.
type TreeCmd struct {
	DocsFlags  `embed:""`
	Navigators bool `name:"navigators" short:"n" help:"Show the navigator each folder receives"`
}

func (t *TreeCmd) Run(_ *Global, root *CLI) error {
	cfg, err := t.LoadConfig(root.Config)
	if err != nil {
		return err
	}
	plan, err := autotoc.Inspect(t.DocsDir, cfg)
	if err != nil {
		return err
	}
	tree := visual.NewRouteTree(filepath.Base(plan.Root), plan.Table, visual.Options{
		TrimFolderNumbers: cfg.TrimFolderNumbers,
		ShowNavigators:    t.Navigators,
		ContentDir:        plan.ContentDir,
	})
	fmt.Print(tree.Render())
	return nil
}
