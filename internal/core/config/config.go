// Package config handles configuration loading and validation for zukan.
package config

import (
	"fmt"
	"maps"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/zukan/internal/core/catalog"
	"github.com/colonyops/zukan/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	API         APIConfig         `yaml:"api"`
	TUI         TUIConfig         `yaml:"tui"`
	Images      ImagesConfig      `yaml:"images"`
	Keybindings map[string]string `yaml:"keybindings"` // key -> action, merged over the defaults
}

// APIConfig locates the picture-book service.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// TUIConfig holds presentation settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// ImagesConfig restricts which local files may be uploaded.
type ImagesConfig struct {
	Patterns []string `yaml:"patterns"`
	MaxBytes int64    `yaml:"max_bytes"`
}

// Rules converts the image settings into upload rules.
func (c ImagesConfig) Rules() catalog.FileRules {
	return catalog.FileRules{Patterns: c.Patterns, MaxBytes: c.MaxBytes}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000/api",
			Timeout: 30 * time.Second,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
		Images: ImagesConfig{
			Patterns: []string{"**/*.{png,jpg,jpeg,gif,webp}"},
			MaxBytes: 10 << 20,
		},
		Keybindings: maps.Clone(defaultKeybindings),
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Keybindings = nil

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Merge user keybindings into defaults (user config overrides defaults)
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = defaults.API.Timeout
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.Images.Patterns == nil {
		c.Images.Patterns = defaults.Images.Patterns
	}
	if c.Images.MaxBytes == 0 {
		c.Images.MaxBytes = defaults.Images.MaxBytes
	}
}

// mergeKeybindings merges user keybindings into defaults.
// User keybindings override defaults for the same key.
func mergeKeybindings(defaults, user map[string]string) map[string]string {
	result := make(map[string]string, len(defaults)+len(user))
	maps.Copy(result, defaults)
	maps.Copy(result, user)
	return result
}
