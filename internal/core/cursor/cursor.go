// Package cursor tracks the browsing position across the entries of a
// collection and the images of the current entry.
//
// The controller stores only two indices. Valid ranges are derived from the
// collection passed to each call, so a list that shrank underneath the cursor
// is safe on the very next read.
package cursor

import (
	"errors"

	"github.com/colonyops/zukan/internal/core/catalog"
)

// ErrOutOfRange is returned by SelectEntry for an index outside the entry list.
var ErrOutOfRange = errors.New("entry index out of range")

// Position is a resolved cursor location.
type Position struct {
	Entry int
	Image int
}

// Controller owns the entry and image indices. It contains pure data logic
// with no Bubble Tea dependencies.
type Controller struct {
	entry         int
	image         int
	onEntryChange func()
}

// New creates a controller at (0, 0). onEntryChange, when non-nil, is called
// every time the entry index is moved or reset.
func New(onEntryChange func()) *Controller {
	return &Controller{onEntryChange: onEntryChange}
}

// Position returns the indices clamped against col. Indices that fall outside
// the current ranges read as 0.
func (c *Controller) Position(col catalog.Collection) Position {
	entry := c.entry
	if entry < 0 || entry >= len(col.Entries) {
		entry = 0
	}

	image := c.image
	if len(col.Entries) == 0 || image < 0 || image >= len(col.Entries[entry].Images) {
		image = 0
	}

	return Position{Entry: entry, Image: image}
}

// Current returns the entry under the cursor. ok is false when col has no entries.
func (c *Controller) Current(col catalog.Collection) (catalog.Entry, bool) {
	if len(col.Entries) == 0 {
		return catalog.Entry{}, false
	}
	return col.Entries[c.Position(col).Entry], true
}

// CurrentImage returns the image under the cursor. ok is false when the
// current entry has no images.
func (c *Controller) CurrentImage(col catalog.Collection) (catalog.Image, bool) {
	entry, ok := c.Current(col)
	if !ok || len(entry.Images) == 0 {
		return catalog.Image{}, false
	}
	return entry.Images[c.Position(col).Image], true
}

// NextImage advances the image index, wrapping past the last image to 0.
func (c *Controller) NextImage(col catalog.Collection) {
	c.stepImage(col, 1)
}

// PrevImage moves the image index back, wrapping before 0 to the last image.
func (c *Controller) PrevImage(col catalog.Collection) {
	c.stepImage(col, -1)
}

// NextEntry advances to the next entry with wraparound and resets the image index.
func (c *Controller) NextEntry(col catalog.Collection) {
	c.stepEntry(col, 1)
}

// PrevEntry moves to the previous entry with wraparound and resets the image index.
func (c *Controller) PrevEntry(col catalog.Collection) {
	c.stepEntry(col, -1)
}

// SelectEntry jumps directly to index and resets the image index.
func (c *Controller) SelectEntry(col catalog.Collection, index int) error {
	if index < 0 || index >= len(col.Entries) {
		return ErrOutOfRange
	}
	c.setEntry(index)
	return nil
}

// Reset moves the cursor to (0, 0) and reports an entry change.
func (c *Controller) Reset() {
	c.setEntry(0)
}

// ResetImage moves the image index to 0 and keeps the entry index.
func (c *Controller) ResetImage() {
	c.image = 0
}

// Clamp stores the healed position for col, so indices left out of range by
// a shrinking list become 0. It reports whether the entry index changed.
func (c *Controller) Clamp(col catalog.Collection) bool {
	p := c.Position(col)
	changed := p.Entry != c.entry
	c.entry, c.image = p.Entry, p.Image
	if changed && c.onEntryChange != nil {
		c.onEntryChange()
	}
	return changed
}

func (c *Controller) stepImage(col catalog.Collection, delta int) {
	entry, ok := c.Current(col)
	if !ok {
		c.image = 0
		return
	}
	c.image = wrap(c.Position(col).Image+delta, len(entry.Images))
}

func (c *Controller) stepEntry(col catalog.Collection, delta int) {
	if len(col.Entries) == 0 {
		c.entry, c.image = 0, 0
		return
	}
	c.setEntry(wrap(c.Position(col).Entry+delta, len(col.Entries)))
}

func (c *Controller) setEntry(index int) {
	c.entry = index
	c.image = 0
	if c.onEntryChange != nil {
		c.onEntryChange()
	}
}

// wrap maps i into [0, n). n <= 0 yields 0.
func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
