package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/autotoc/internal/config"
	"git.home.luguber.info/inful/autotoc/internal/logfields"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: autotoc.yaml in the docs dir)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Write navigators and the entry page"`
	Tree     TreeCmd     `cmd:"" help:"Print the navigation tree without writing anything"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate whenever the docs tree changes"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// DocsFlags selects the docs tree and overrides configuration values.
type DocsFlags struct {
	DocsDir              string   `name:"docs-dir" short:"d" help:"Documentation root" default:"."`
	Project              string   `name:"project" help:"Project title of the entry page"`
	Header               string   `name:"header" help:"Caption of the flat entry-page toctree"`
	TrimFolderNumbers    bool     `name:"trim-folder-numbers" help:"Strip numeric prefixes such as '1. ' from folder titles"`
	HeadersFromSubfolder bool     `name:"headers-from-subfolder" help:"Emit one entry-page toctree per content subfolder"`
	Exclude              []string `name:"exclude" help:"Additional exclusion glob; repeatable"`
	Suffix               []string `name:"suffix" help:"Recognized source suffix; repeatable, replaces the configured list"`
}

// configPath is the explicit --config or the default file inside the docs dir.
func (f DocsFlags) configPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return filepath.Join(f.DocsDir, config.DefaultFileName)
}

// LoadConfig reads the configuration and applies the command-line overrides.
// Without --config a missing default file means built-in defaults.
func (f DocsFlags) LoadConfig(explicit string) (*config.Config, error) {
	file := f.configPath(explicit)

	var cfg *config.Config
	var err error
	if explicit != "" {
		cfg, err = config.Load(file)
	} else {
		var found bool
		cfg, found, err = config.LoadOrDefault(file)
		if err == nil && !found {
			slog.Debug("No configuration file, using defaults", logfields.File(file))
		}
	}
	if err != nil {
		return nil, err
	}

	f.apply(cfg)
	if err := config.Finalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (f DocsFlags) apply(cfg *config.Config) {
	if f.Project != "" {
		cfg.ProjectName = f.Project
	}
	if f.Header != "" {
		cfg.HeaderText = f.Header
	}
	if f.TrimFolderNumbers {
		cfg.TrimFolderNumbers = true
	}
	if f.HeadersFromSubfolder {
		cfg.HeadersFromSubfolder = true
	}
	cfg.ExcludePatterns = append(cfg.ExcludePatterns, f.Exclude...)
	if len(f.Suffix) > 0 {
		cfg.SourceSuffixes = config.SourceSuffixes(f.Suffix)
	}
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
