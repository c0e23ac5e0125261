package pilot

import (
	"github.com/vovakirdan/snake-core/internal/core"
	"github.com/vovakirdan/snake-core/internal/registry"
)

// Idle never turns.
type Idle struct{}

func (p *Idle) ID() string { return "idle" }
func (p *Idle) Title() string { return "Idle (never turns)" }
func (p *Idle) Reset(_ core.RuntimeConfig) {}

// Decide always returns an empty frame.
func (p *Idle) Decide(_ registry.Board) core.InputFrame {
	return core.NewInputFrame()
}
