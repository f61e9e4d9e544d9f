package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextAreaField(t *testing.T) {
	f := NewTextAreaField("Description", "markdown", "line one\nline two")
	assert.Equal(t, "Description", f.Label())
	assert.Equal(t, "line one\nline two", f.Text())

	f.Focus()
	assert.True(t, f.Focused())
	assert.Contains(t, f.View(), "Description")

	f.Blur()
	assert.False(t, f.Focused())
}
