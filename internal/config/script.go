package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snake-core/internal/snake"
)

// ScriptStep lists the turns entered before a given tick.
type ScriptStep struct {
	Tick  uint64   `yaml:"tick"`
	Turns []string `yaml:"turns"`
}

// Script is a fixed input schedule replayed by the "script" pilot.
//
//	steps:
//	  - tick: 0
//	    turns: [up, left]
//	  - tick: 5
//	    turns: [down]
type Script struct {
	Steps []ScriptStep `yaml:"steps"`

	turns map[uint64][]snake.Direction
}

// ParseScript decodes and checks a script document.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("failed to parse script: %w", err)
	}

	s.turns = make(map[uint64][]snake.Direction, len(s.Steps))
	for i, step := range s.Steps {
		for _, name := range step.Turns {
			d, err := snake.ParseDirection(name)
			if err != nil {
				return Script{}, fmt.Errorf("script step %d (tick %d): %w", i, step.Tick, err)
			}
			s.turns[step.Tick] = append(s.turns[step.Tick], d)
		}
	}
	return s, nil
}

// LoadScript reads a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// TurnsAt returns the turns scheduled before the given tick.
func (s Script) TurnsAt(tick uint64) []snake.Direction {
	return s.turns[tick]
}

// LastTick returns the highest tick with scheduled turns.
func (s Script) LastTick() uint64 {
	var last uint64
	for _, step := range s.Steps {
		last = max(last, step.Tick)
	}
	return last
}
