package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Rows: 15,
			Cols: 15,
		},
		Session: SessionConfig{
			TickRate: 8,
			Seed:     0,
			MaxTicks: 0,
		},
		Pilot: PilotConfig{
			Name: "greedy",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
