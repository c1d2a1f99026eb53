// Package config provides TOML configuration for the stint application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/solvang/stint/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "stint"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// EODHour is the local hour (0-23) after which the end-of-day summary
	// prompt becomes due
	EODHour int `toml:"eod_hour"`
	// Timezone defines the timezone for day-boundary decisions (IANA
	// timezone name, e.g., "Europe/Oslo", or "Local")
	Timezone string `toml:"timezone"`
	// Theme is the TUI color theme name
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
// - eod_hour: 18 (prompt for the daily summary from 6 PM)
// - timezone: "Local" (use system local timezone)
// - theme: "" (use the TUI's default theme)
func DefaultConfig() Config {
	return Config{
		EODHour:  18,
		Timezone: "Local",
		Theme:    "",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault loads the config from the given path.
// Returns the default config if the file doesn't exist.
// Returns an error only if the file exists but cannot be parsed.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize fills in defaults for fields that are empty or missing.
func (c *Config) Normalize() {
	c.Timezone = strings.TrimSpace(c.Timezone)
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	c.Theme = strings.TrimSpace(c.Theme)
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.EODHour < 0 || c.EODHour > 23 {
		return fmt.Errorf("eod_hour must be between 0 and 23, got %d", c.EODHour)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Location resolves the configured timezone to a *time.Location.
// "Local" and the empty string resolve to the system local timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// GenerateSampleConfig returns a commented sample config file.
func GenerateSampleConfig() string {
	return `# stint configuration file

# Local hour (0-23) after which the end-of-day summary prompt becomes due
eod_hour = 18

# Timezone: IANA timezone name (e.g., "Europe/Oslo") or "Local"
timezone = "Local"

# TUI color theme (see 'stint tui')
theme = ""
`
}
