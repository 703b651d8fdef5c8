package tui

import (
	"time"

	"github.com/vovakirdan/questcv/internal/core"
)

// heldWindow is how long a movement key counts as held after its last press.
// Terminals report key repeats but never key releases, so a key is treated as
// released once its repeat events stop arriving. The window must exceed the
// typical OS repeat interval or movement stutters between repeats.
const heldWindow = 200 * time.Millisecond

// heldKeys reconstructs held-key state from repeat events.
type heldKeys struct {
	lastSeen map[core.Key]time.Time
}

func newHeldKeys() *heldKeys {
	return &heldKeys{lastSeen: make(map[core.Key]time.Time)}
}

// press records a key event at the given time.
func (h *heldKeys) press(k core.Key, now time.Time) {
	h.lastSeen[k] = now
}

// frame builds the input frame of keys still considered held at now.
func (h *heldKeys) frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for k, seen := range h.lastSeen {
		if now.Sub(seen) <= heldWindow {
			f.Press(k)
		} else {
			delete(h.lastSeen, k)
		}
	}
	return f
}

// clear drops all held state. Called when a modal opens so a key held across
// the boundary cannot produce movement on resume.
func (h *heldKeys) clear() {
	for k := range h.lastSeen {
		delete(h.lastSeen, k)
	}
}

// Action is a discrete, non-movement input.
type Action int

const (
	ActionNone Action = iota
	ActionInteract
	ActionTeleport
	ActionMissions
	ActionInventory
	ActionSkills
	ActionBack
	ActionQuit
)

// MapMovementKey translates a key string to a held movement key.
func MapMovementKey(key string) (core.Key, bool) {
	switch key {
	case "w", "up":
		return core.KeyUp, true
	case "s", "down":
		return core.KeyDown, true
	case "a", "left":
		return core.KeyLeft, true
	case "d", "right":
		return core.KeyRight, true
	}
	return 0, false
}

// MapActionKey translates a key string to a discrete action.
func MapActionKey(key string) Action {
	switch key {
	case "ctrl+c", "q":
		return ActionQuit
	case "e", "enter", " ":
		return ActionInteract
	case "t":
		return ActionTeleport
	case "m":
		return ActionMissions
	case "i":
		return ActionInventory
	case "k":
		return ActionSkills
	case "esc", "b":
		return ActionBack
	}
	return ActionNone
}
