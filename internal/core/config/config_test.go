package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	want := DefaultConfig()
	assert.Equal(t, want.API, cfg.API)
	assert.Equal(t, want.TUI, cfg.TUI)
	assert.Equal(t, want.Images, cfg.Images)
	assert.Equal(t, ActionNextImage, cfg.Action("l"))
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: https://zukan.example.com/api
  timeout: 5s
tui:
  theme: gruvbox
images:
  max_bytes: 1024
keybindings:
  n: next-entry
  j: none
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://zukan.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, int64(1024), cfg.Images.MaxBytes)
	assert.Equal(t, DefaultConfig().Images.Patterns, cfg.Images.Patterns, "unset patterns fall back")

	assert.Equal(t, ActionNextEntry, cfg.Action("n"))
	assert.Empty(t, cfg.Action("j"), "none unbinds a default")
	assert.Equal(t, ActionNextEntry, cfg.Action("down"), "other defaults survive")
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "api: [")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "tui:\n  theme: solarized\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tui.theme")
}

func TestDefaultConfig_KeybindingsAreCopied(t *testing.T) {
	a := DefaultConfig()
	a.Keybindings["l"] = ActionHelp
	assert.Equal(t, ActionNextImage, DefaultConfig().Keybindings["l"])
}

func TestKeysFor(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []string{"l", "right"}, cfg.KeysFor(ActionNextImage))
	assert.Empty(t, cfg.KeysFor("missing"))
}

func TestImagesConfig_Rules(t *testing.T) {
	r := DefaultConfig().Images.Rules()
	assert.True(t, r.Match("shots/dog.png"))
	assert.False(t, r.Match("notes.txt"))
	assert.Equal(t, int64(10<<20), r.MaxBytes)
}
