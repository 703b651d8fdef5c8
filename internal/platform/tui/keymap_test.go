package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/questcv/internal/core"
)

func TestMapMovementKey(t *testing.T) {
	tests := []struct {
		key  string
		want core.Key
		ok   bool
	}{
		{"w", core.KeyUp, true},
		{"up", core.KeyUp, true},
		{"s", core.KeyDown, true},
		{"a", core.KeyLeft, true},
		{"d", core.KeyRight, true},
		{"right", core.KeyRight, true},
		{"e", 0, false},
		{"enter", 0, false},
	}
	for _, tt := range tests {
		got, ok := MapMovementKey(tt.key)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("MapMovementKey(%q) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMapActionKey(t *testing.T) {
	tests := []struct {
		key  string
		want Action
	}{
		{"e", ActionInteract},
		{"enter", ActionInteract},
		{" ", ActionInteract},
		{"t", ActionTeleport},
		{"m", ActionMissions},
		{"i", ActionInventory},
		{"k", ActionSkills},
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"esc", ActionBack},
		{"w", ActionNone},
	}
	for _, tt := range tests {
		if got := MapActionKey(tt.key); got != tt.want {
			t.Errorf("MapActionKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestHeldKeysDecay(t *testing.T) {
	h := newHeldKeys()
	start := time.Now()

	h.press(core.KeyRight, start)
	h.press(core.KeyUp, start)

	frame := h.frame(start.Add(heldWindow / 2))
	if !frame.Has(core.KeyRight) || !frame.Has(core.KeyUp) {
		t.Fatal("keys within the hold window should count as held")
	}

	// A repeat event keeps one key alive while the other decays.
	h.press(core.KeyRight, start.Add(heldWindow))
	frame = h.frame(start.Add(heldWindow + heldWindow/2))
	if !frame.Has(core.KeyRight) {
		t.Error("repeated key should still be held")
	}
	if frame.Has(core.KeyUp) {
		t.Error("key without repeats should have decayed")
	}

	h.clear()
	frame = h.frame(start.Add(heldWindow))
	if len(frame.Held) != 0 {
		t.Errorf("clear left %d keys held", len(frame.Held))
	}
}
