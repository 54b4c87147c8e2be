// Package config loads folio's configuration from a yaml file, merging
// it over safe defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
type Config struct {
	Directories struct {
		Default string `yaml:"default"` // Directory opened at startup, empty means cwd
	} `yaml:"directories"`
	Search struct {
		Pattern string `yaml:"pattern"` // Default search pattern seeded at startup
	} `yaml:"search"`
	Theme struct {
		Text      string `yaml:"text"`      // Buffer text color
		Cursor    string `yaml:"cursor"`    // Cursor cell color
		Selection string `yaml:"selection"` // Selected span color
		Match     string `yaml:"match"`     // Search match color
		Status    string `yaml:"status"`    // Status line color
		Error     string `yaml:"error"`     // Error message color
	} `yaml:"theme"`
	Log struct {
		File  string `yaml:"file"`  // Log file path, empty disables logging
		Level string `yaml:"level"` // logrus level name
	} `yaml:"log"`
}

// DefaultSearchPattern targets common transcription artifacts: page and
// folio markers plus bare numbers, so likely navigation anchors are
// highlighted before the user ever enters a pattern.
const DefaultSearchPattern = `\d+|f\.|fol|p\.|page|scan`

// LoadConfig loads configuration from the default location
// (~/.config/folio/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(filepath.Join(home, ".config", "folio", "config.yaml"))
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config over defaults, keeping defaults for unset fields
	if tempCfg.Directories.Default != "" {
		cfg.Directories.Default = tempCfg.Directories.Default
	}
	if tempCfg.Search.Pattern != "" {
		cfg.Search.Pattern = tempCfg.Search.Pattern
	}
	if tempCfg.Theme.Text != "" {
		cfg.Theme.Text = tempCfg.Theme.Text
	}
	if tempCfg.Theme.Cursor != "" {
		cfg.Theme.Cursor = tempCfg.Theme.Cursor
	}
	if tempCfg.Theme.Selection != "" {
		cfg.Theme.Selection = tempCfg.Theme.Selection
	}
	if tempCfg.Theme.Match != "" {
		cfg.Theme.Match = tempCfg.Theme.Match
	}
	if tempCfg.Theme.Status != "" {
		cfg.Theme.Status = tempCfg.Theme.Status
	}
	if tempCfg.Theme.Error != "" {
		cfg.Theme.Error = tempCfg.Theme.Error
	}
	if tempCfg.Log.File != "" {
		cfg.Log.File = tempCfg.Log.File
	}
	if tempCfg.Log.Level != "" {
		cfg.Log.Level = tempCfg.Log.Level
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// New returns the default configuration with safe defaults.
func New() *Config {
	cfg := &Config{}
	cfg.Search.Pattern = DefaultSearchPattern
	cfg.Theme.Text = "#7FDBFF"
	cfg.Theme.Cursor = "#FFFFFF"
	cfg.Theme.Selection = "#4F4FB7"
	cfg.Theme.Match = "#FFDC00"
	cfg.Theme.Status = "#959595"
	cfg.Theme.Error = "#FF4136"
	cfg.Log.Level = "info"
	return cfg
}

// Validate checks the configuration for values that cannot work at
// runtime.
func (c *Config) Validate() error {
	if _, err := regexp.Compile(c.Search.Pattern); err != nil {
		return fmt.Errorf("search pattern does not compile: %w", err)
	}
	if c.Directories.Default != "" {
		info, err := os.Stat(c.Directories.Default)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("default directory is not a directory: %s", c.Directories.Default)
		}
	}
	return nil
}
