// Package pilot provides the built-in input sources for headless games.
// Each pilot registers itself with the registry on import.
package pilot

import (
	"github.com/vovakirdan/snake-core/internal/config"
	"github.com/vovakirdan/snake-core/internal/registry"
	"github.com/vovakirdan/snake-core/internal/snake"
)

// Scripted is implemented by pilots that replay a fixed schedule.
type Scripted interface {
	LoadScript(s config.Script)
}

// heading is the direction the next queued turn is compared against.
func heading(b registry.Board) snake.Direction {
	if pending := b.Pending(); len(pending) > 0 {
		return pending[len(pending)-1]
	}
	return b.Dir()
}

// safe reports whether the head can enter p on the next tick.
func safe(b registry.Board, p snake.Position) bool {
	switch b.At(p) {
	case snake.Empty, snake.Food:
		return true
	case snake.Snake:
		return p == b.TailPosition()
	default:
		return false
	}
}

func init() {
	registry.Register("idle", func() registry.Pilot { return &Idle{} })
	registry.Register("random", func() registry.Pilot { return NewRandom() })
	registry.Register("greedy", func() registry.Pilot { return &Greedy{} })
	registry.Register("script", func() registry.Pilot { return &Script{} })
}
