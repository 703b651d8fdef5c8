package core

// Key identifies a held movement key, abstracted from physical key presses.
// The platform layer translates raw keyboard events into this set; the
// simulation only ever sees which directions are currently held.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// InputFrame is the movement input state for a single simulation tick:
// the set of currently-held direction keys. Discrete triggers (interact,
// teleport, menu toggles) are delivered as explicit calls on the simulation,
// not through the frame.
type InputFrame struct {
	Held map[Key]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Held: make(map[Key]bool)}
}

// Press marks a key as held.
func (f *InputFrame) Press(k Key) {
	if f.Held == nil {
		f.Held = make(map[Key]bool)
	}
	f.Held[k] = true
}

// Release marks a key as no longer held.
func (f *InputFrame) Release(k Key) {
	delete(f.Held, k)
}

// Has reports whether the given key is held this frame.
func (f InputFrame) Has(k Key) bool {
	return f.Held[k]
}

// Clear releases all keys. Called when the game pauses so a key held across
// the pause boundary cannot produce stuck movement on resume.
func (f *InputFrame) Clear() {
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Vector returns the unit movement vector for the held keys. Opposite keys
// cancel; diagonals are normalized so diagonal speed equals axial speed.
func (f InputFrame) Vector() Vec {
	var v Vec
	if f.Has(KeyUp) {
		v.Y--
	}
	if f.Has(KeyDown) {
		v.Y++
	}
	if f.Has(KeyLeft) {
		v.X--
	}
	if f.Has(KeyRight) {
		v.X++
	}
	return v.Norm()
}
