// Package config provides the optional avdkit configuration file.
//
// This package reads ~/.config/avdkit/config.yaml (per os.UserConfigDir).
// Every key is optional and a missing file is not an error; flags take
// precedence over file values at the command layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the config.yaml file.
type Config struct {
	// DelaySeconds overrides the pause between delayed launches.
	DelaySeconds int `yaml:"delay_seconds,omitempty"`

	// Terminal overrides the terminal program used on Linux.
	Terminal string `yaml:"terminal,omitempty"`

	// Emulator overrides the emulator binary used for discovery and
	// launching.
	Emulator string `yaml:"emulator,omitempty"`

	// DefaultStrategy preselects a launch strategy in the prompt
	// (parallel, delayed, or sequential).
	DefaultStrategy string `yaml:"default_strategy,omitempty"`
}

// Delay returns the configured inter-launch pause, or zero when unset so
// the scheduler applies its own default.
func (c *Config) Delay() time.Duration {
	if c.DelaySeconds <= 0 {
		return 0
	}
	return time.Duration(c.DelaySeconds) * time.Second
}

// Path returns the expected location of the config file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "avdkit", "config.yaml"), nil
}

// Load reads the config file from its default location. A missing file
// yields a zero config and no error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		// No resolvable config dir on this system; run with defaults.
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom reads and parses the config file at path. A missing file
// yields a zero config and no error; a malformed file is an error.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}
