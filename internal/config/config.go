// Package config loads the autotoc configuration file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/autotoc/internal/foundation/errors"
)

// DefaultFileName is looked up in the docs dir when no config path is given.
const DefaultFileName = "autotoc.yaml"

// Config represents the generator configuration.
type Config struct {
	ProjectName          string         `yaml:"project_name"`
	ContentDir           string         `yaml:"content_dir"`                // folder under the docs root holding the sources; "." for the root itself
	HeaderText           string         `yaml:"header_text"`                // caption of the flat-mode toctree
	TrimFolderNumbers    bool           `yaml:"trim_folder_numbers"`        // "1. Intro" is titled "Intro"
	HeadersFromSubfolder bool           `yaml:"get_headers_from_subfolder"` // one entry-page block per content subfolder
	ExcludePatterns      []string       `yaml:"exclude_patterns,omitempty"`
	SourceSuffixes       SourceSuffixes `yaml:"source_suffixes,omitempty"`
	ReadmeNames          []string       `yaml:"readme_names,omitempty"`
	Extensions           []string       `yaml:"extensions,omitempty"`
	AutosummaryGenerate  bool           `yaml:"autosummary_generate"`
	AutosummaryEnabled   bool           `yaml:"autosummary_enabled"`
}

// SourceSuffixes is the set of recognized content-file extensions. It accepts a
// single string, a list, or a mapping of extension to parser name (only the keys
// are kept, in document order).
type SourceSuffixes []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *SourceSuffixes) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var one string
		if err := value.Decode(&one); err != nil {
			return err
		}
		*s = SourceSuffixes{one}
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*s = list
	case yaml.MappingNode:
		keys := make([]string, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			var key string
			if err := value.Content[i].Decode(&key); err != nil {
				return err
			}
			keys = append(keys, key)
		}
		*s = keys
	default:
		return ferrors.ValidationError("source_suffixes must be a string, list or mapping").
			WithContext("line", value.Line).
			Build()
	}
	return nil
}

// AutosummaryActive reports whether placeholder entries get linked to their
// generated summaries.
func (c *Config) AutosummaryActive() bool {
	if c.AutosummaryEnabled {
		return true
	}
	return c.AutosummaryGenerate && slices.Contains(c.Extensions, "sphinx.ext.autosummary")
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = applyDefaults(cfg)
	return cfg
}

// Load reads, expands and validates the configuration at configPath.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ferrors.ConfigError("configuration file not found").WithContext("path", configPath).Build()
	}
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to parse config").
			Fatal().
			WithContext("path", configPath).
			Build()
	}

	if err := Finalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Finalize applies defaults and validates cfg. Callers that change a loaded
// configuration, such as command-line overrides, run it again afterwards.
func Finalize(cfg *Config) error {
	if err := applyDefaults(cfg); err != nil {
		return err
	}
	return ValidateConfig(cfg)
}

// LoadOrDefault loads configPath when it exists and falls back to Default
// otherwise. found reports whether a file was read.
func LoadOrDefault(configPath string) (cfg *Config, found bool, err error) {
	if _, statErr := os.Stat(configPath); errors.Is(statErr, fs.ErrNotExist) {
		return Default(), false, nil
	}
	cfg, err = Load(configPath)
	return cfg, err == nil, err
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	example := Config{
		ProjectName:         "My Project",
		ContentDir:          DefaultContentDir,
		HeaderText:          DefaultHeaderText,
		ExcludePatterns:     []string{"*hidden*", "drafts"},
		SourceSuffixes:      SourceSuffixes{".rst", ".md"},
		ReadmeNames:         []string{DefaultReadmeName},
		Extensions:          []string{"sphinx.ext.autosummary"},
		AutosummaryGenerate: true,
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal config").Build()
	}
	// #nosec G306 -- example config holds no secrets
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return ferrors.FileSystemError(err, "failed to write config file").WithContext("path", configPath).Build()
	}
	return nil
}
