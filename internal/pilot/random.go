package pilot

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/snake-core/internal/core"
	"github.com/vovakirdan/snake-core/internal/registry"
	"github.com/vovakirdan/snake-core/internal/snake"
)

// turnChance is the 1-in-N chance of attempting a turn on a tick.
const turnChance = 4

// Random presses a random direction now and then.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random pilot seeded from the clock until Reset.
func NewRandom() *Random {
	return &Random{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *Random) ID() string { return "random" }
func (p *Random) Title() string { return "Random (turns at random)" }

// Reset reseeds the pilot. The seed is offset so the pilot does not
// mirror the food placement sequence.
func (p *Random) Reset(cfg core.RuntimeConfig) {
	p.rng = rand.New(rand.NewSource(cfg.Seed + 1))
}

// Decide picks a direction on roughly one tick in turnChance.
func (p *Random) Decide(_ registry.Board) core.InputFrame {
	frame := core.NewInputFrame()
	if p.rng.Intn(turnChance) != 0 {
		return frame
	}
	dirs := snake.Directions()
	frame.Set(core.ActionFor(dirs[p.rng.Intn(len(dirs))]))
	return frame
}
