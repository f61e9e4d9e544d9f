package config

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"defaults", func(*Config) {}, ""},
		{"relative url", func(c *Config) { c.API.BaseURL = "/api" }, "api.base_url"},
		{"ftp url", func(c *Config) { c.API.BaseURL = "ftp://host/api" }, "api.base_url"},
		{"negative timeout", func(c *Config) { c.API.Timeout = -1 }, "api.timeout"},
		{"unknown theme", func(c *Config) { c.TUI.Theme = "neon" }, "tui.theme"},
		{"bad glob", func(c *Config) { c.Images.Patterns = []string{"[a-"} }, "images.patterns[0]"},
		{"negative max bytes", func(c *Config) { c.Images.MaxBytes = -5 }, "images.max_bytes"},
		{"unknown action", func(c *Config) { c.Keybindings["x"] = "explode" }, `keybindings["x"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var fe criterio.FieldErrors
			require.ErrorAs(t, err, &fe)
			fields := make([]string, 0, len(fe))
			for _, e := range fe {
				fields = append(fields, e.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateDeep_ConfigFile(t *testing.T) {
	cfg := DefaultConfig()

	assert.NoError(t, cfg.ValidateDeep(""))
	assert.NoError(t, cfg.ValidateDeep(writeConfig(t, "")))

	dir := t.TempDir()
	err := cfg.ValidateDeep(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config_file")
}
