package commands

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	assert.Equal(t, filepath.Join("/tmp/cfg", "zukan", "config.yaml"), DefaultConfigPath())
}

func TestDefaultLogFile(t *testing.T) {
	t.Run("state home", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/tmp/state")
		assert.Equal(t, filepath.Join("/tmp/state", "zukan", "zukan.log"), DefaultLogFile())
	})

	t.Run("home fallback", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("HOME is not consulted on windows")
		}
		t.Setenv("XDG_STATE_HOME", "")
		t.Setenv("HOME", "/home/u")

		want := filepath.Join("/home/u", ".local", "state", "zukan", "zukan.log")
		if runtime.GOOS == "darwin" {
			want = filepath.Join("/home/u", "Library", "Logs", "zukan", "zukan.log")
		}
		assert.Equal(t, want, DefaultLogFile())
	})
}
