package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func ptr[T any](v T) *T { return &v }

func TestNormalize(t *testing.T) {
	t.Run("empty entries become one placeholder", func(t *testing.T) {
		c := Normalize(Collection{ID: 3, Name: "Dogs"})

		require.Len(t, c.Entries, 1)
		e := c.Entries[0]
		assert.Equal(t, SentinelID, e.ID)
		assert.True(t, e.IsPlaceholder())
		assert.Equal(t, EmptyName, e.Name)
		require.Len(t, e.Images, 1)
		assert.Equal(t, NoImageRef, e.Images[0].FileRef)
		assert.Equal(t, "Dogs", c.Name)
	})

	t.Run("non-empty collection unchanged", func(t *testing.T) {
		in := Collection{ID: 1, Entries: []Entry{{ID: 7, Name: "Shiba"}}}
		out := Normalize(in)
		assert.Equal(t, in, out)
		assert.False(t, out.Entries[0].IsPlaceholder())
	})

	t.Run("input slice is not modified", func(t *testing.T) {
		in := Collection{ID: 1}
		_ = Normalize(in)
		assert.Empty(t, in.Entries)
	})
}

func TestLoading(t *testing.T) {
	c := Loading(9)
	assert.Equal(t, int64(9), c.ID)
	require.Len(t, c.Entries, 1)
	assert.True(t, c.Entries[0].IsPlaceholder())
	assert.Equal(t, LoadingName, c.Entries[0].Name)
}

func TestCollection_CategoryName(t *testing.T) {
	c := Collection{Categories: []Category{{ID: 1, Name: "Small"}, {ID: 2, Name: "Large"}}}

	assert.Equal(t, "Large", c.CategoryName(ptr(int64(2))))
	assert.Empty(t, c.CategoryName(nil))
	assert.Empty(t, c.CategoryName(ptr(int64(99))))
	assert.True(t, c.HasCategories())
	assert.False(t, Collection{}.HasCategories())
}

func TestFileRules_Match(t *testing.T) {
	rules := FileRules{Patterns: []string{"**/*.{png,jpg}"}}

	tests := []struct {
		path string
		want bool
	}{
		{"dog.png", true},
		{"photos/dog.JPG", true},
		{"/tmp/photos/dog.jpg", true},
		{"notes.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Match(tt.path))
		})
	}

	assert.True(t, FileRules{}.Match("anything.bin"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	rules := FileRules{Patterns: []string{"**/*.png"}, MaxBytes: 1024}

	t.Run("loads png", func(t *testing.T) {
		path := filepath.Join(dir, "dog.png")
		require.NoError(t, os.WriteFile(path, pngHeader, 0o644))

		f, err := LoadFile(path, rules)
		require.NoError(t, err)
		assert.Equal(t, "dog.png", f.Name)
		assert.Equal(t, "image/png", f.ContentType)
		assert.Equal(t, pngHeader, f.Data)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := LoadFile("  ", rules)
		require.ErrorIs(t, err, ErrNoFile)
	})

	t.Run("pattern mismatch", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "dog.gif"), rules)
		require.ErrorIs(t, err, ErrUnsupportedFile)
	})

	t.Run("not an image", func(t *testing.T) {
		path := filepath.Join(dir, "fake.png")
		require.NoError(t, os.WriteFile(path, []byte("hello world, not an image"), 0o644))

		_, err := LoadFile(path, rules)
		require.ErrorIs(t, err, ErrUnsupportedFile)
	})

	t.Run("too large", func(t *testing.T) {
		path := filepath.Join(dir, "big.png")
		data := append(append([]byte{}, pngHeader...), make([]byte, 2048)...)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		_, err := LoadFile(path, rules)
		require.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "missing.png"), rules)
		require.Error(t, err)
	})
}
