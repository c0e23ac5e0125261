package core

// RuntimeConfig contains the settings a host passes to a session.
type RuntimeConfig struct {
	Rows     int   // Board height in cells
	Cols     int   // Board width in cells
	TickRate int   // Moves per second; 0 runs as fast as possible
	Seed     int64 // RNG seed for deterministic gameplay
	MaxTicks int   // Stop after this many ticks; 0 means no limit
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Rows:     15,
		Cols:     15,
		TickRate: 8,
		Seed:     0, // 0 means use current time in the host
		MaxTicks: 0,
	}
}
