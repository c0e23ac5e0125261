package pilot

import (
	"github.com/vovakirdan/snake-core/internal/config"
	"github.com/vovakirdan/snake-core/internal/core"
	"github.com/vovakirdan/snake-core/internal/registry"
)

// Script replays the turns of a config.Script at their scheduled ticks.
type Script struct {
	script config.Script
}

func (p *Script) ID() string { return "script" }
func (p *Script) Title() string { return "Script (replays a turn schedule)" }
func (p *Script) Reset(_ core.RuntimeConfig) {}

// LoadScript sets the schedule to replay.
func (p *Script) LoadScript(s config.Script) {
	p.script = s
}

// Decide returns the turns scheduled for the board's current tick.
func (p *Script) Decide(b registry.Board) core.InputFrame {
	frame := core.NewInputFrame()
	for _, d := range p.script.TurnsAt(b.Ticks()) {
		frame.Set(core.ActionFor(d))
	}
	return frame
}
