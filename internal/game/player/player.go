// Package player models the player: position, leveling, currency and gem
// ledger, inventory, permanent upgrades and the skill tree, and the derived
// stats computed from them.
package player

import "github.com/vovakirdan/questcv/internal/core"

// Item is one inventory stack.
type Item struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Quantity int    `yaml:"quantity" json:"quantity"`
}

// State is the full player state. Pos, Moving and Target are transient: they
// are excluded from persistence and reset on load.
type State struct {
	Pos    core.Vec
	Moving bool
	Target string // current interaction target object id, recomputed every tick

	Level     int
	XP        float64
	Coins     int
	Gems      map[string]int
	Inventory []Item
	Upgrades  []string // owned upgrade ids in purchase order
	Skills    []string // unlocked skill ids in unlock order

	Stats Derived
}

// NewState returns a fresh level-1 player at the given position.
func NewState(pos core.Vec) *State {
	return &State{
		Pos:   pos,
		Level: 1,
		Coins: InitialCoins,
		Gems:  make(map[string]int),
		Stats: BaseStats(),
	}
}

// Bounds returns the player's bounding box at its current position.
func (s *State) Bounds() core.Rect {
	return core.Rect{X: s.Pos.X, Y: s.Pos.Y, W: Width, H: Height}
}

// BoundsAt returns the player's bounding box at a candidate position.
func BoundsAt(pos core.Vec) core.Rect {
	return core.Rect{X: pos.X, Y: pos.Y, W: Width, H: Height}
}

// Center returns the player's center point.
func (s *State) Center() core.Vec {
	return s.Bounds().Center()
}

// HasItem reports whether the inventory holds at least one of the item.
func (s *State) HasItem(id string) bool {
	for _, it := range s.Inventory {
		if it.ID == id {
			return it.Quantity > 0
		}
	}
	return false
}

// AddItem adds quantity of an item, merging with an existing stack.
func (s *State) AddItem(id, name string, quantity int) {
	for i := range s.Inventory {
		if s.Inventory[i].ID == id {
			s.Inventory[i].Quantity += quantity
			return
		}
	}
	s.Inventory = append(s.Inventory, Item{ID: id, Name: name, Quantity: quantity})
}

// RemoveItem removes quantity of an item, dropping the stack when it empties.
func (s *State) RemoveItem(id string, quantity int) {
	for i := range s.Inventory {
		if s.Inventory[i].ID != id {
			continue
		}
		s.Inventory[i].Quantity -= quantity
		if s.Inventory[i].Quantity <= 0 {
			s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
		}
		return
	}
}

// OwnsUpgrade reports whether the upgrade has been purchased.
func (s *State) OwnsUpgrade(id string) bool {
	for _, u := range s.Upgrades {
		if u == id {
			return true
		}
	}
	return false
}

// HasSkill reports whether the skill has been unlocked.
func (s *State) HasSkill(id string) bool {
	for _, sk := range s.Skills {
		if sk == id {
			return true
		}
	}
	return false
}
