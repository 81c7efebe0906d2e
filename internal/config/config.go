package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoggingConfig configures diagnostic logging.
type LoggingConfig struct {
	// Level controls verbosity: debug, info, warn, error
	Level string `yaml:"level,omitempty"`
	// File is an optional log file path; empty means stderr
	File string `yaml:"file,omitempty"`
}

// Config is the user configuration for chromekit.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	// DefaultScene is used by commands that take --scene when the flag is omitted.
	DefaultScene string `yaml:"default_scene,omitempty"`
	// ThemeVariant is applied as the theme-variant window attribute on attach:
	// "light", "dark" or empty for no preference.
	ThemeVariant string `yaml:"theme_variant,omitempty"`
	// Display overrides $DISPLAY for X11 connections.
	Display string `yaml:"display,omitempty"`

	path string
}

const (
	DefaultLogLevel = "info"
)

// ValidationError ties a problem to the YAML path it was found at.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: DefaultLogLevel},
	}
}

// Path returns the file the config was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

// applyDefaults fills fields left empty by the file.
func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = DefaultLogLevel
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.ThemeVariant = strings.ToLower(strings.TrimSpace(c.ThemeVariant))
	if c.Logging.File != "" {
		c.Logging.File = expandHome(c.Logging.File)
	}
	if c.DefaultScene != "" {
		c.DefaultScene = expandHome(c.DefaultScene)
	}
}

// Validate reports every invalid field in one error.
func (c *Config) Validate() error {
	var errs []error
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, &ValidationError{Path: "logging.level", Err: fmt.Errorf("level must be one of: debug, info, warn, error")})
	}
	switch c.ThemeVariant {
	case "", "light", "dark":
	default:
		errs = append(errs, &ValidationError{Path: "theme_variant", Err: fmt.Errorf("theme_variant must be light, dark or empty")})
	}
	return errors.Join(errs...)
}

// Save writes the config back to the file it was loaded from, or to the
// default location.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	c.path = path
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
