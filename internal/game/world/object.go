// Package world holds the static world object registry and its runtime
// lifecycle: collectible removal and timed respawn, permanent removal of
// consumed mission objects, collision queries and nearest-interactable search.
package world

import "github.com/vovakirdan/questcv/internal/core"

// Kind categorizes a world object.
type Kind string

const (
	KindNPC      Kind = "npc"
	KindBuilding Kind = "building"
	KindObstacle Kind = "obstacle"
	KindObject   Kind = "object"
)

// Role marks NPCs that open a dedicated subsystem instead of mission dialogue.
type Role string

const (
	RoleNone      Role = ""
	RoleGuide     Role = "guide"
	RoleVendor    Role = "vendor"
	RoleVisionary Role = "visionary"
)

// CollectibleKind is the pickup family of a collectible object.
type CollectibleKind string

const (
	CollectCoin  CollectibleKind = "coin"
	CollectGem   CollectibleKind = "gem"
	CollectHeart CollectibleKind = "heart"
)

// Collectible describes the pickup behavior of an object. An object carrying
// a collectible is never a collision obstacle.
type Collectible struct {
	Kind  CollectibleKind `yaml:"kind"`
	Value int             `yaml:"value,omitempty"` // coin value
	Color string          `yaml:"color,omitempty"` // gem color
}

// Object is a static world entity: NPC, building, obstacle, mission object or
// collectible spawn. Objects are created once at world initialization; the
// World tracks which are currently active.
type Object struct {
	ID         string       `yaml:"id"`
	Name       string       `yaml:"name,omitempty"`
	X          float64      `yaml:"x"`
	Y          float64      `yaml:"y"`
	W          float64      `yaml:"w"`
	H          float64      `yaml:"h"`
	Kind       Kind         `yaml:"kind"`
	Role       Role         `yaml:"role,omitempty"`
	Color      string       `yaml:"color,omitempty"`
	Door       *core.Rect   `yaml:"door,omitempty"` // offset relative to the building origin
	Collect    *Collectible `yaml:"collectible,omitempty"`
	InteriorID string       `yaml:"interior,omitempty"` // owning interior, empty for the overworld
	MissionID  int          `yaml:"mission,omitempty"`
}

// Bounds returns the object's bounding box.
func (o *Object) Bounds() core.Rect {
	return core.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Center returns the center of the bounding box.
func (o *Object) Center() core.Vec {
	return o.Bounds().Center()
}

// Anchor returns the point interaction distance is measured from: the door
// center for buildings, the object center otherwise.
func (o *Object) Anchor() core.Vec {
	if o.Kind == KindBuilding && o.Door != nil {
		return core.Rect{
			X: o.X + o.Door.X,
			Y: o.Y + o.Door.Y,
			W: o.Door.W,
			H: o.Door.H,
		}.Center()
	}
	return o.Center()
}

// DoorBounds returns the door rectangle in world coordinates, or false if the
// object has no door.
func (o *Object) DoorBounds() (core.Rect, bool) {
	if o.Door == nil {
		return core.Rect{}, false
	}
	return core.Rect{X: o.X + o.Door.X, Y: o.Y + o.Door.Y, W: o.Door.W, H: o.Door.H}, true
}

// BlocksMovement reports whether the object is solid for collision purposes.
func (o *Object) BlocksMovement() bool {
	return (o.Kind == KindObstacle || o.Kind == KindBuilding) && o.Collect == nil
}

// Interactable reports whether the object can become the player's interaction
// target. Collectibles are picked up by proximity, never targeted.
func (o *Object) Interactable() bool {
	if o.Collect != nil {
		return false
	}
	return o.Kind == KindNPC || o.Kind == KindObject || o.Kind == KindBuilding
}
