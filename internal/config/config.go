// Package config provides YAML-based configuration loading for Chronos.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level Chronos configuration, loaded from config.yaml.
type Config struct {
	// DBPath locates the SQLite database file.
	DBPath string `yaml:"db_path"`
	// SkipWeekends makes scheduling count working days by default.
	SkipWeekends bool `yaml:"skip_weekends"`
	// Color controls ANSI styling in CLI output; "auto" (default),
	// "always", or "never".
	Color string `yaml:"color"`
}

// DefaultPath returns the config file location: $CHRONOS_CONFIG if set,
// otherwise ~/.chronos/config.yaml.
func DefaultPath() string {
	if p := os.Getenv("CHRONOS_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".chronos", "config.yaml")
	}
	return filepath.Join(home, ".chronos", "config.yaml")
}

// Load reads the YAML config at path. A missing file is not an error;
// defaults are returned instead. $CHRONOS_DB overrides db_path either way.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills in derived and default values.
func (c *Config) applyDefaults() {
	if p := os.Getenv("CHRONOS_DB"); p != "" {
		c.DBPath = p
	}
	if c.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			c.DBPath = filepath.Join(".chronos", "chronos.db")
		} else {
			c.DBPath = filepath.Join(home, ".chronos", "chronos.db")
		}
	}
	if c.Color == "" {
		c.Color = "auto"
	}
}

// validate checks field values that have a closed set of options.
func (c *Config) validate() error {
	switch c.Color {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("config: color must be auto, always, or never, got %q", c.Color)
	}
}
