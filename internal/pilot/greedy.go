package pilot

import (
	"github.com/vovakirdan/snake-core/internal/core"
	"github.com/vovakirdan/snake-core/internal/registry"
	"github.com/vovakirdan/snake-core/internal/snake"
)

// Greedy heads for the food along the shortest path, avoiding cells that
// would end the game on the next tick.
type Greedy struct{}

func (p *Greedy) ID() string { return "greedy" }
func (p *Greedy) Title() string { return "Greedy (chases food, avoids crashes)" }
func (p *Greedy) Reset(_ core.RuntimeConfig) {}

// candidate is a possible direction for the next tick.
type candidate struct {
	dir      snake.Direction
	safe     bool
	distance int // Manhattan distance to food, 0 when there is none
	freedom  int // Safe neighbours of the cell entered
	straight bool
}

// better orders candidates: safe first, then closer to food, then more
// room to move, then keep going straight.
func (c candidate) better(o candidate) bool {
	if c.safe != o.safe {
		return c.safe
	}
	if c.distance != o.distance {
		return c.distance < o.distance
	}
	if c.freedom != o.freedom {
		return c.freedom > o.freedom
	}
	return c.straight && !o.straight
}

// Decide picks the best direction and requests it if it is a turn.
func (p *Greedy) Decide(b registry.Board) core.InputFrame {
	frame := core.NewInputFrame()
	ref := heading(b)
	head := b.HeadPosition()
	food, hasFood := b.Food()

	var best candidate
	found := false
	for _, d := range snake.Directions() {
		if d == ref.Opposite() {
			continue
		}
		next := head.Translate(d)
		c := candidate{
			dir:      d,
			safe:     safe(b, next),
			freedom:  freedom(b, next, head),
			straight: d == ref,
		}
		if hasFood {
			c.distance = core.Abs(food.Row-next.Row) + core.Abs(food.Col-next.Col)
		}
		if !found || c.better(best) {
			best = c
			found = true
		}
	}

	if found && best.dir != ref {
		frame.Set(core.ActionFor(best.dir))
	}
	return frame
}

// freedom counts the safe cells around p, excluding the cell the head
// is leaving.
func freedom(b registry.Board, p, from snake.Position) int {
	if b.At(p) == snake.Outside {
		return 0
	}
	n := 0
	for _, d := range snake.Directions() {
		q := p.Translate(d)
		if q != from && safe(b, q) {
			n++
		}
	}
	return n
}
