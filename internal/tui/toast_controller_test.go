package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/zukan/internal/core/notify"
)

func TestToastController_Push_ttl_by_level(t *testing.T) {
	c := NewToastController()

	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "copied"})
	c.Push(notify.Notification{Level: notify.LevelError, Message: "add entry: boom"})

	assert.True(t, c.HasToasts())
	assert.Equal(t, infoToastTTL, c.Toasts()[0].remaining)
	assert.Equal(t, errorToastTTL, c.Toasts()[1].remaining)
}

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController()

	for i := range defaultMaxToasts + 2 {
		c.Push(notify.Notification{Level: notify.LevelInfo, Message: fmt.Sprint(i)})
	}

	assert.Len(t, c.Toasts(), defaultMaxToasts)
	assert.Equal(t, "2", c.Toasts()[0].notification.Message)
}

func TestToastController_Tick_removes_expired(t *testing.T) {
	c := NewToastController()
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "expires"})
	c.Push(notify.Notification{Level: notify.LevelError, Message: "survives"})

	c.Tick(infoToastTTL)

	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "survives", c.Toasts()[0].notification.Message)
	assert.Equal(t, errorToastTTL-infoToastTTL, c.Toasts()[0].remaining)
}

func TestToastController_Dismiss(t *testing.T) {
	c := NewToastController()
	c.Dismiss()
	assert.False(t, c.HasToasts())

	c.Push(notify.Notification{Message: "first"})
	c.Push(notify.Notification{Message: "second"})
	c.Dismiss()

	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "first", c.Toasts()[0].notification.Message)
}

func TestToastController_Ticking(t *testing.T) {
	c := NewToastController()
	assert.False(t, c.Ticking())

	c.SetTicking(true)
	assert.True(t, c.Ticking())
}
