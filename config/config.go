// Package config provides configuration management for Tab Deck.
// It handles loading, saving, and managing application settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yllada/tabdeck/common"
)

// Config represents the application configuration.
// All settings are persisted to a YAML file in the user's config directory.
type Config struct {
	// Theme sets the color theme: a theme name, or "auto" to follow the system.
	Theme string `yaml:"theme"`
	// PluginsDir overrides the external plugin manifest directory.
	// Empty means the default under the config directory.
	PluginsDir string `yaml:"plugins_dir,omitempty"`
	// ShowNotifications enables desktop notifications for plugin events.
	ShowNotifications bool `yaml:"show_notifications"`
	// ConsoleVisible keeps the console window visible on Windows.
	ConsoleVisible bool `yaml:"console_visible"`
	// RequireAdminByDefault asks for elevation at startup on Windows.
	RequireAdminByDefault bool `yaml:"require_admin_by_default"`
}

// DefaultConfig returns the default configuration.
// These are sensible defaults for most users.
func DefaultConfig() *Config {
	return &Config{
		Theme:                 common.ThemeAuto,
		ShowNotifications:     true,
		ConsoleVisible:        false,
		RequireAdminByDefault: false,
	}
}

// Load loads the configuration from the config file.
// If the file doesn't exist, it creates one with default values.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	// If it doesn't exist, return default configuration
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.Save(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("error opening configuration: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	var config Config
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("error parsing configuration: %w", err)
	}

	config.applyFallbacks()

	return &config, nil
}

// applyFallbacks replaces invalid values with defaults.
func (c *Config) applyFallbacks() {
	if c.Theme == "" {
		c.Theme = common.ThemeAuto
	}
}

// ResolvePluginsDir returns the effective external plugin directory.
func (c *Config) ResolvePluginsDir() (string, error) {
	if c.PluginsDir != "" {
		return c.PluginsDir, nil
	}
	return common.GetPluginsDir()
}

// Save saves the configuration to the file.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error serializing configuration: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("error saving configuration: %w", err)
	}

	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", common.ConfigDirName, common.ConfigFileName), nil
}
