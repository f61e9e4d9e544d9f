package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/zukan/internal/core/styles"
)

// Validate checks the configuration for structural errors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("api.base_url", c.API.BaseURL, isServiceURL),
		c.validateTimeout(),
		criterio.Run("tui.theme", c.TUI.Theme, isKnownTheme),
		c.validateImages(),
		c.validateKeybindings(),
	)
}

// ValidateDeep performs Validate plus checks that touch the filesystem. The
// configPath argument is the config file location (empty skips the check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
	)
}

func isServiceURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("host is required")
	}
	return nil
}

func isKnownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

func (c *Config) validateTimeout() error {
	if c.API.Timeout < 0 {
		return criterio.NewFieldErrors("api.timeout", errors.New("must not be negative"))
	}
	return nil
}

func (c *Config) validateImages() error {
	var errs criterio.FieldErrorsBuilder
	for i, p := range c.Images.Patterns {
		if !doublestar.ValidatePattern(p) {
			errs = errs.Append(fmt.Sprintf("images.patterns[%d]", i), fmt.Errorf("invalid glob %q", p))
		}
	}
	if c.Images.MaxBytes < 0 {
		errs = errs.Append("images.max_bytes", errors.New("must not be negative"))
	}
	return errs.ToError()
}

func (c *Config) validateKeybindings() error {
	keys := make([]string, 0, len(c.Keybindings))
	for k := range c.Keybindings {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var errs criterio.FieldErrorsBuilder
	for _, k := range keys {
		if k == "" {
			errs = errs.Append("keybindings", errors.New("empty key"))
			continue
		}
		if a := c.Keybindings[k]; !isValidAction(a) {
			errs = errs.Append(fmt.Sprintf("keybindings[%q]", k), fmt.Errorf("unknown action %q", a))
		}
	}
	return errs.ToError()
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}
