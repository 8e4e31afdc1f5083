// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"icsc/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Catalog contains service catalog configuration
	Catalog CatalogConfig `json:"catalog"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CatalogConfig contains catalog source settings
type CatalogConfig struct {
	// Path is the service definition file
	Path string `json:"path"`

	// Format is the file format (tabular, hcl). Empty means detect
	// from the file extension.
	Format string `json:"format,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default report format (cli, json)
	DefaultFormat string `json:"default_format"`

	// NoColor disables ANSI colors
	NoColor bool `json:"no_color"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Catalog: CatalogConfig{
			Path: "services.csv",
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
