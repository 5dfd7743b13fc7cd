package config

import "strings"

// Default values used when the file leaves a field empty.
const (
	DefaultProjectName = "Documentation"
	DefaultContentDir  = "src"
	DefaultHeaderText  = "Содержание"
	DefaultSuffix      = ".rst"
	DefaultReadmeName  = "README.md"
)

// DefaultApplier applies defaults for one configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// LayoutDefaultApplier fills in the project title and content layout.
type LayoutDefaultApplier struct{}

func (LayoutDefaultApplier) Domain() string { return "layout" }

func (LayoutDefaultApplier) ApplyDefaults(cfg *Config) error {
	cfg.ProjectName = strings.TrimSpace(cfg.ProjectName)
	if cfg.ProjectName == "" {
		cfg.ProjectName = DefaultProjectName
	}
	cfg.ContentDir = strings.TrimSpace(cfg.ContentDir)
	if cfg.ContentDir == "" {
		cfg.ContentDir = DefaultContentDir
	}
	if cfg.HeaderText == "" {
		cfg.HeaderText = DefaultHeaderText
	}
	if len(cfg.ReadmeNames) == 0 {
		cfg.ReadmeNames = []string{DefaultReadmeName}
	}
	return nil
}

// SourceDefaultApplier normalizes the recognized suffixes and exclusion patterns.
type SourceDefaultApplier struct{}

func (SourceDefaultApplier) Domain() string { return "sources" }

func (SourceDefaultApplier) ApplyDefaults(cfg *Config) error {
	suffixes := make(SourceSuffixes, 0, len(cfg.SourceSuffixes))
	for _, s := range cfg.SourceSuffixes {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if !strings.HasPrefix(s, ".") {
			s = "." + s
		}
		suffixes = append(suffixes, s)
	}
	if len(suffixes) == 0 {
		suffixes = SourceSuffixes{DefaultSuffix}
	}
	cfg.SourceSuffixes = suffixes

	var patterns []string
	for _, p := range cfg.ExcludePatterns {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	cfg.ExcludePatterns = patterns
	return nil
}

// DefaultAppliers lists every applier in application order.
func DefaultAppliers() []DefaultApplier {
	return []DefaultApplier{LayoutDefaultApplier{}, SourceDefaultApplier{}}
}

func applyDefaults(cfg *Config) error {
	for _, a := range DefaultAppliers() {
		if err := a.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}
