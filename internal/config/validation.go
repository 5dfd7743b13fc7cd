package config

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	ferrors "git.home.luguber.info/inful/autotoc/internal/foundation/errors"
)

// ValidateConfig checks a configuration after defaults were applied.
func ValidateConfig(cfg *Config) error {
	v := configurationValidator{config: cfg}
	if err := v.validateContentDir(); err != nil {
		return err
	}
	if err := v.validateExcludePatterns(); err != nil {
		return err
	}
	return v.validateReadmeNames()
}

type configurationValidator struct {
	config *Config
}

// validateContentDir requires a folder inside the docs root.
func (cv configurationValidator) validateContentDir() error {
	dir := filepath.ToSlash(cv.config.ContentDir)
	clean := path.Clean(dir)
	if path.IsAbs(dir) || filepath.IsAbs(cv.config.ContentDir) || clean == ".." || strings.HasPrefix(clean, "../") {
		return ferrors.ConfigError("content_dir must be a folder inside the docs root").
			WithContext("content_dir", cv.config.ContentDir).
			Build()
	}
	return nil
}

func (cv configurationValidator) validateExcludePatterns() error {
	for _, p := range cv.config.ExcludePatterns {
		if !doublestar.ValidatePattern(strings.TrimPrefix(p, "/")) {
			return ferrors.ValidationError("invalid exclude pattern").WithContext("pattern", p).Build()
		}
	}
	return nil
}

func (cv configurationValidator) validateReadmeNames() error {
	for _, name := range cv.config.ReadmeNames {
		if name == "" || strings.ContainsAny(name, `/\`) {
			return ferrors.ValidationError("readme_names must be plain file names").WithContext("name", name).Build()
		}
	}
	return nil
}
