package core

// RuntimeConfig contains configuration passed to the simulation at startup.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed; 0 means the platform layer picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 30,
		Seed:     0,
	}
}
