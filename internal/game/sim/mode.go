package sim

// Mode is the single source of truth for whether the simulation advances.
// It replaces a pile of OR'd booleans with one explicit enumeration.
type Mode int

const (
	// ModeRunning advances movement, targeting and pickups every tick.
	ModeRunning Mode = iota
	// ModeSuspendedByModal halts the tick while a modal (dialogue, shop,
	// skill tree, puzzle) is open. Respawn timers keep running.
	ModeSuspendedByModal
	// ModeSuspendedAwaitingIdentity halts the tick until a player identity
	// has been chosen at the welcome screen.
	ModeSuspendedAwaitingIdentity
)

// Running reports whether the tick advances in this mode.
func (m Mode) Running() bool {
	return m == ModeRunning
}

func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModeSuspendedByModal:
		return "suspended-by-modal"
	case ModeSuspendedAwaitingIdentity:
		return "suspended-awaiting-identity"
	default:
		return "unknown"
	}
}
