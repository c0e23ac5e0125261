// Package config provides YAML-based configuration loading for the snake
// host: board size, session pacing, pilot selection and logging.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/snake-core/internal/core"
)

// Config contains all settings for a headless snake session.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Session SessionConfig `yaml:"session"`
	Pilot   PilotConfig   `yaml:"pilot"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SessionConfig defines tick pacing and limits.
type SessionConfig struct {
	TickRate int   `yaml:"tick_rate"` // Moves per second, 0 = unpaced
	Seed     int64 `yaml:"seed"`      // 0 = seed from clock
	MaxTicks int   `yaml:"max_ticks"` // 0 = unlimited
}

// PilotConfig selects the input source.
type PilotConfig struct {
	Name   string `yaml:"name"`
	Script string `yaml:"script"` // Path to a script file for the "script" pilot
}

// LogConfig controls the host logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Known log levels and formats.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"auto", "text", "json", "logfmt"}
)

// Validate checks the config for values the engine or host cannot use.
func (c Config) Validate() error {
	var errs []error
	if c.Board.Rows < 1 {
		errs = append(errs, fmt.Errorf("board.rows must be at least 1, got %d", c.Board.Rows))
	}
	if c.Board.Cols < 4 {
		errs = append(errs, fmt.Errorf("board.cols must be at least 4, got %d", c.Board.Cols))
	}
	if c.Session.TickRate < 0 {
		errs = append(errs, fmt.Errorf("session.tick_rate must not be negative, got %d", c.Session.TickRate))
	}
	if c.Session.MaxTicks < 0 {
		errs = append(errs, fmt.Errorf("session.max_ticks must not be negative, got %d", c.Session.MaxTicks))
	}
	if c.Pilot.Name == "" {
		errs = append(errs, errors.New("pilot.name must be set"))
	}
	if !contains(LogLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q is not one of %v", c.Log.Level, LogLevels))
	}
	if !contains(LogFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format %q is not one of %v", c.Log.Format, LogFormats))
	}
	return errors.Join(errs...)
}

// Runtime converts the config into the settings a session runs with.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Rows:     c.Board.Rows,
		Cols:     c.Board.Cols,
		TickRate: c.Session.TickRate,
		Seed:     c.Session.Seed,
		MaxTicks: c.Session.MaxTicks,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
