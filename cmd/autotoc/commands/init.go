package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/autotoc/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" name:"output" help:"Directory to write autotoc.yaml into" default:"."`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	if root.Config != "" {
		return RunInit(root.Config, i.Force)
	}
	return RunInit(filepath.Join(i.Output, config.DefaultFileName), i.Force)
}

func RunInit(configPath string, force bool) error {
	fmt.Printf("Writing configuration to %s\n", configPath)
	if err := config.Init(configPath, force); err != nil {
		fmt.Println("Initialization failed")
		return err
	}
	fmt.Println("initialized successfully")
	return nil
}
