package world

import "github.com/vovakirdan/questcv/internal/core"

// ExitID is the synthetic target id used for an interior's exit rectangle.
const ExitID = "exit_door"

// Interior is a separate bounded coordinate space entered through a
// building's door. Immutable after load.
type Interior struct {
	ID         string    `yaml:"id"`
	BuildingID string    `yaml:"building"`
	Name       string    `yaml:"name"`
	Width      float64   `yaml:"width"`
	Height     float64   `yaml:"height"`
	Exit       core.Rect `yaml:"exit"`
}

// Bounds returns the interior's coordinate space as a rectangle at the origin.
func (i *Interior) Bounds() core.Rect {
	return core.Rect{W: i.Width, H: i.Height}
}

// SpawnPoint is where the player appears after entering: just below the exit
// rectangle, so walking up leads back out.
func (i *Interior) SpawnPoint() core.Vec {
	return core.Vec{X: i.Exit.X, Y: i.Exit.Y + i.Exit.H}
}

// ExitObject returns a synthetic interactable standing in for the exit
// rectangle, so the nearest-target search can treat it like any other object.
func (i *Interior) ExitObject() *Object {
	return &Object{
		ID:         ExitID,
		Name:       "Exit",
		X:          i.Exit.X,
		Y:          i.Exit.Y,
		W:          i.Exit.W,
		H:          i.Exit.H,
		Kind:       KindObject,
		InteriorID: i.ID,
	}
}
