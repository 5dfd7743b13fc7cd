package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/autotoc/cmd/autotoc/commands"
	ferrors "git.home.luguber.info/inful/autotoc/internal/foundation/errors"
	"git.home.luguber.info/inful/autotoc/internal/version"
)

func main() {
	var cli commands.CLI
	parser := kong.Parse(&cli,
		kong.Name("autotoc"),
		kong.Description("Generate Sphinx navigation indexes for a documentation tree."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	err := parser.Run(&commands.Global{Logger: slog.Default()}, &cli)
	ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
