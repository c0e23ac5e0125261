// Package snake implements the rules of grid-based Snake: board state,
// the snake's body, buffered turns, food placement, movement, collisions
// and scoring. It has no timer, input device or renderer; a host calls
// ChangeDirection on each input event and Move once per tick.
//
// A GameState is not safe for concurrent use. Hosts that receive input
// and ticks on different goroutines must serialize the calls.
package snake

import (
	"fmt"
	"iter"
	"math/rand"
	"strings"
	"time"
)

// InitialLength is the number of cells the snake starts with.
const InitialLength = 4

// Rand is the random source used for food placement.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Outcome describes what a single Move did.
type Outcome int

const (
	// Moved means the snake advanced one cell without growing.
	Moved Outcome = iota
	// Ate means the snake advanced onto food and grew by one.
	Ate
	// Crashed means the snake hit a wall or itself; the game is over.
	Crashed
	// Idle means Move was called after the game had already ended.
	Idle
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case Crashed:
		return "crashed"
	case Idle:
		return "idle"
	default:
		return "unknown"
	}
}

// Option configures a GameState at construction.
type Option func(*GameState)

// WithRand sets the random source for food placement.
func WithRand(r Rand) Option {
	return func(g *GameState) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithSeed seeds a private *rand.Rand for food placement.
func WithSeed(seed int64) Option {
	return func(g *GameState) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// GameState is one game session.
type GameState struct {
	grid  grid
	body  body
	turns turnQueue
	rng   Rand

	dir      Direction
	score    int
	ticks    uint64
	gameOver bool

	food    Position
	hasFood bool
}

// New creates a game on a rows x cols board. The snake starts on the
// middle row in columns 0..3 heading right, and one food cell is placed.
// It panics if rows < 1 or cols < InitialLength.
func New(rows, cols int, opts ...Option) *GameState {
	if rows < 1 || cols < InitialLength {
		panic(fmt.Sprintf("snake: invalid board %dx%d (need rows >= 1, cols >= %d)", rows, cols, InitialLength))
	}

	g := &GameState{
		grid: newGrid(rows, cols),
		body: newBody(rows * cols),
		dir:  Right,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.addSnake()
	g.addFood()
	return g
}

// addSnake lays the initial body left to right so the last cell is the head.
func (g *GameState) addSnake() {
	r := g.grid.rows / 2
	for c := range InitialLength {
		g.addHead(Position{Row: r, Col: c})
	}
}

// addFood places food on a uniformly random empty cell, if any.
func (g *GameState) addFood() {
	empty := g.grid.emptyPositions()
	if len(empty) == 0 {
		g.hasFood = false
		return
	}

	pos := empty[g.rng.Intn(len(empty))]
	g.grid.set(pos, Food)
	g.food = pos
	g.hasFood = true
}

func (g *GameState) addHead(p Position) {
	g.body.pushFront(p)
	g.grid.set(p, Snake)
}

func (g *GameState) removeTail() {
	tail := g.body.popBack()
	g.grid.set(tail, Empty)
}

// lastDirection is the direction the next queued turn is checked against.
func (g *GameState) lastDirection() Direction {
	if g.turns.len() == 0 {
		return g.dir
	}
	return g.turns.last()
}

func (g *GameState) canChangeDirection(d Direction) bool {
	if g.turns.full() {
		return false
	}
	last := g.lastDirection()
	return d != last && d != last.Opposite()
}

// ChangeDirection queues a turn to be applied on a later Move. Turns that
// repeat or reverse the previous one are dropped, as is anything beyond
// two pending turns. It reports whether d was queued.
func (g *GameState) ChangeDirection(d Direction) bool {
	if !g.canChangeDirection(d) {
		return false
	}
	g.turns.push(d)
	return true
}

// willHit classifies the cell the head is about to enter. The current
// tail counts as empty because it leaves on the same tick.
func (g *GameState) willHit(p Position) GridValue {
	if !g.grid.contains(p) {
		return Outside
	}
	if p == g.body.back() {
		return Empty
	}
	return g.grid.at(p)
}

// Move advances the game by one tick. Once the game is over it does
// nothing and returns Idle.
func (g *GameState) Move() Outcome {
	if g.gameOver {
		return Idle
	}

	if g.turns.len() > 0 {
		g.dir = g.turns.pop()
	}

	next := g.body.front().Translate(g.dir)
	switch g.willHit(next) {
	case Outside, Snake:
		g.gameOver = true
		return Crashed
	case Food:
		g.ticks++
		g.hasFood = false
		g.addHead(next)
		g.score++
		g.addFood()
		return Ate
	default:
		g.ticks++
		g.removeTail()
		g.addHead(next)
		return Moved
	}
}

// Rows returns the board height.
func (g *GameState) Rows() int { return g.grid.rows }

// Cols returns the board width.
func (g *GameState) Cols() int { return g.grid.cols }

// At returns the content of cell p, or Outside when p is off the board.
func (g *GameState) At(p Position) GridValue { return g.grid.at(p) }

// Cell is At for a row/column pair.
func (g *GameState) Cell(row, col int) GridValue {
	return g.grid.at(Position{Row: row, Col: col})
}

// Score returns the number of food cells eaten.
func (g *GameState) Score() int { return g.score }

// GameOver reports whether the snake has crashed.
func (g *GameState) GameOver() bool { return g.gameOver }

// Dir returns the direction applied on the most recent Move.
func (g *GameState) Dir() Direction { return g.dir }

// Ticks returns the number of moves the snake has made.
func (g *GameState) Ticks() uint64 { return g.ticks }

// HeadPosition returns the front of the snake.
func (g *GameState) HeadPosition() Position { return g.body.front() }

// TailPosition returns the back of the snake.
func (g *GameState) TailPosition() Position { return g.body.back() }

// SnakeLen returns the number of cells the snake occupies.
func (g *GameState) SnakeLen() int { return g.body.len() }

// SnakePositions yields the body from head to tail.
func (g *GameState) SnakePositions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for i := range g.body.len() {
			if !yield(g.body.at(i)) {
				return
			}
		}
	}
}

// Food returns the food cell, if one is on the board.
func (g *GameState) Food() (Position, bool) {
	return g.food, g.hasFood
}

// Pending returns a copy of the queued turns, oldest first.
func (g *GameState) Pending() []Direction {
	return g.turns.slice()
}

// DebugState returns a multi-line dump of the game for diagnostics.
func (g *GameState) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, GameOver: %v\n", g.ticks, g.score, g.gameOver)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Pending: %v\n", g.body.len(), g.dir, g.turns.slice())
	fmt.Fprintf(&b, "Head: %s, Tail: %s", g.body.front(), g.body.back())
	if g.hasFood {
		fmt.Fprintf(&b, ", Food: %s", g.food)
	}
	b.WriteByte('\n')
	for r := range g.grid.rows {
		for c := range g.grid.cols {
			p := Position{Row: r, Col: c}
			switch {
			case p == g.body.front():
				b.WriteByte('O')
			case g.grid.at(p) == Snake:
				b.WriteByte('o')
			case g.grid.at(p) == Food:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
