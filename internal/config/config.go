// Package config manages the gocube configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the persistent CLI configuration.
type Config struct {
	MaxDepth       int           `yaml:"max_depth"`
	Timeout        time.Duration `yaml:"timeout"`
	ScrambleLength int           `yaml:"scramble_length"`
	LogLevel       string        `yaml:"log_level"`
	DBPath         string        `yaml:"db_path"`
	History        bool          `yaml:"history"`
	Color          bool          `yaml:"color"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		MaxDepth:       22,
		Timeout:        time.Minute,
		ScrambleLength: 25,
		LogLevel:       "info",
		History:        true,
		Color:          true,
	}
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.MaxDepth < 1 || c.MaxDepth > 30 {
		return fmt.Errorf("max_depth must be between 1 and 30, got %d", c.MaxDepth)
	}
	if c.ScrambleLength < 1 {
		return fmt.Errorf("scramble_length must be positive, got %d", c.ScrambleLength)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level returns the zerolog level for LogLevel, defaulting to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// File manages the configuration file.
type File struct {
	path   string
	config Config
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".gocube_solver", "config.yaml"), nil
}

// Load reads the configuration at path over the defaults, then applies
// GOCUBE_* environment overrides. A missing file yields the defaults.
func Load(path string) (*File, error) {
	f := &File{path: path, config: Default()}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &f.config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	loadFromEnv(&f.config)

	if err := f.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return f, nil
}

// LoadDefault loads the configuration from the default path.
func LoadDefault() (*File, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

func loadFromEnv(c *Config) {
	if v := os.Getenv("GOCUBE_MAX_DEPTH"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			c.MaxDepth = i
		}
	}
	if v := os.Getenv("GOCUBE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}
	if v := os.Getenv("GOCUBE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("GOCUBE_DB"); v != "" {
		c.DBPath = v
	}
}

// Save writes the configuration to disk.
func (f *File) Save() error {
	data, err := yaml.Marshal(f.config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Config returns the current configuration.
func (f *File) Config() Config {
	return f.config
}

// Path returns the configuration file path.
func (f *File) Path() string {
	return f.path
}

// Set updates a single key by its YAML name and validates the result.
func (f *File) Set(key, value string) error {
	next := f.config
	switch key {
	case "max_depth", "scramble_length":
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if key == "max_depth" {
			next.MaxDepth = i
		} else {
			next.ScrambleLength = i
		}
	case "timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		next.Timeout = d
	case "log_level":
		next.LogLevel = value
	case "db_path":
		next.DBPath = value
	case "history", "color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if key == "history" {
			next.History = b
		} else {
			next.Color = b
		}
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := next.Validate(); err != nil {
		return err
	}
	f.config = next
	return f.Save()
}
