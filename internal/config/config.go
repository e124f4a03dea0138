// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	DataDir   string `json:"data_dir,omitempty"`  // Directory holding tracker.json, tasks.json, network.json
	RootDir   string `json:"root_dir,omitempty"`  // Root for per-role document folders
	OutDir    string `json:"out_dir,omitempty"`   // Output directory for the built site
	Templates string `json:"templates,omitempty"` // Template directory overriding the embedded set
	Stages    string `json:"stages,omitempty"`    // Stage model YAML overriding the embedded one

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed build information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate directory overrides exist (if specified)
	if c.Templates != "" {
		if _, err := os.Stat(c.Templates); os.IsNotExist(err) {
			return fmt.Errorf("config error: template directory not found: %s", c.Templates)
		}
	}

	if c.Stages != "" {
		if _, err := os.Stat(c.Stages); os.IsNotExist(err) {
			return fmt.Errorf("config error: stages file not found: %s", c.Stages)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.RootDir == "" {
		result.RootDir = defaults.RootDir
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Templates == "" {
		result.Templates = defaults.Templates
	}
	if result.Stages == "" {
		result.Stages = defaults.Stages
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Defaults returns the built-in configuration used when neither a
// config file nor a flag supplies a value.
func Defaults() Config {
	return Config{
		DataDir: "data",
		RootDir: ".",
		OutDir:  "dist",
	}
}
