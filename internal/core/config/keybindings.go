package config

import "slices"

// Detail view actions that keys can be bound to.
const (
	ActionPrevImage   = "prev-image"
	ActionNextImage   = "next-image"
	ActionPrevEntry   = "prev-entry"
	ActionNextEntry   = "next-entry"
	ActionPickEntry   = "pick-entry"
	ActionAddEntry    = "add-entry"
	ActionEditEntry   = "edit-entry"
	ActionDeleteEntry = "delete-entry"
	ActionAddImage    = "add-image"
	ActionEditImage   = "replace-image"
	ActionDeleteImage = "delete-image"
	ActionCopyImage   = "copy-image"
	ActionHint        = "hint"
	ActionReveal      = "reveal"
	ActionRefresh     = "refresh"
	ActionBack        = "back"
	ActionHelp        = "help"
	ActionInfo        = "info"
	ActionNone        = "none" // unbinds a default key
)

var actions = []string{
	ActionPrevImage, ActionNextImage, ActionPrevEntry, ActionNextEntry,
	ActionPickEntry, ActionAddEntry, ActionEditEntry, ActionDeleteEntry,
	ActionAddImage, ActionEditImage, ActionDeleteImage, ActionCopyImage,
	ActionHint, ActionReveal, ActionRefresh, ActionBack, ActionHelp, ActionInfo, ActionNone,
}

// defaultKeybindings provides built-in keybindings that users can override.
var defaultKeybindings = map[string]string{
	"h":         ActionPrevImage,
	"left":      ActionPrevImage,
	"l":         ActionNextImage,
	"right":     ActionNextImage,
	"k":         ActionPrevEntry,
	"up":        ActionPrevEntry,
	"j":         ActionNextEntry,
	"down":      ActionNextEntry,
	"/":         ActionPickEntry,
	"a":         ActionAddEntry,
	"e":         ActionEditEntry,
	"d":         ActionDeleteEntry,
	"A":         ActionAddImage,
	"E":         ActionEditImage,
	"D":         ActionDeleteImage,
	"y":         ActionCopyImage,
	"space":     ActionHint,
	"enter":     ActionReveal,
	"r":         ActionRefresh,
	"esc":       ActionBack,
	"backspace": ActionBack,
	"?":         ActionHelp,
	"i":         ActionInfo,
}

// Action returns the action bound to key, or "" when the key is unbound.
func (c *Config) Action(key string) string {
	a := c.Keybindings[key]
	if a == ActionNone {
		return ""
	}
	return a
}

// KeysFor returns the sorted keys bound to action.
func (c *Config) KeysFor(action string) []string {
	var keys []string
	for k, a := range c.Keybindings {
		if a == action {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

func isValidAction(action string) bool {
	return slices.Contains(actions, action)
}
