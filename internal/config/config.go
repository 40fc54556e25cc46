// Package config loads pretty-printing options from YAML files and merges
// them with command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcncl/jsonpretty/internal/errors"
)

// Config represents the complete configuration for jsonpretty.
// Object key ordering is not configurable: output is always sorted by key,
// which keeps the serialized form canonical.
type Config struct {
	// Indent is the per-level indent step in spaces.
	Indent int `yaml:"indent"`
	// Color enables the terminal color palette.
	Color bool `yaml:"color"`
	// TrailingNewline terminates the document with a single newline.
	TrailingNewline bool `yaml:"trailing_newline"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Indent:          2,
		Color:           false,
		TrailingNewline: true,
	}
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.Indent < 1 || c.Indent > 16 {
		return errors.NewConfigError(fmt.Sprintf("indent must be between 1 and 16, got %d", c.Indent), nil)
	}
	return nil
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	// Start with defaults; the file only overrides what it sets.
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to parse config file '%s'", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonpretty.yml", ".jsonpretty.yaml", "jsonpretty.yml", "jsonpretty.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// LoadConfigWithCLI resolves the effective configuration: an explicit
// config path wins over a discovered one, and CLI flags win over file
// values. indent <= 0 means the flag was not given.
func LoadConfigWithCLI(configPath string, indent int, useColor bool) (*Config, error) {
	path := configPath
	if path == "" {
		path = FindConfigFile()
	}

	cfg := NewConfig()
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			// A discovered file may be unreadable; only an explicit path is fatal.
			if configPath != "" {
				return nil, err
			}
		} else {
			cfg = loaded
		}
	}

	if indent > 0 {
		cfg.Indent = indent
	}
	if useColor {
		cfg.Color = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
