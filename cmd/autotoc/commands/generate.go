package commands

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/autotoc/internal/autotoc"
	"git.home.luguber.info/inful/autotoc/internal/logfields"
	"git.home.luguber.info/inful/autotoc/internal/metrics"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	DocsFlags   `embed:""`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus text-format metrics of the run to this file"`
	Quiet       bool   `short:"q" help:"Do not print the summary"`
}

func (g *GenerateCmd) Run(glob *Global, root *CLI) error {
	cfg, err := g.LoadConfig(root.Config)
	if err != nil {
		return err
	}

	opts := []autotoc.Option{autotoc.WithLogger(glob.Logger)}
	var reg *prometheus.Registry
	if g.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		opts = append(opts, autotoc.WithRecorder(metrics.NewPrometheusRecorder(reg)))
	}

	ctx, cancel := signalContext()
	defer cancel()

	res, runErr := autotoc.Generate(ctx, g.DocsDir, cfg, opts...)
	if reg != nil {
		if err := metrics.WriteTextfile(reg, g.MetricsFile); err != nil {
			glob.Logger.Warn("Failed to write metrics", logfields.File(g.MetricsFile), logfields.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}
	if !g.Quiet {
		printSummary(os.Stdout, cfg, res)
	}
	return nil
}
