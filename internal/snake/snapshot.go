package snake

// Phase is the coarse state of a game.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// Snapshot captures the observable game state for determinism checks and
// host logging.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	Head     Position
	Tail     Position
	Dir      Direction
	Food     Position
	HasFood  bool
	Pending  []Direction
	Phase    Phase
}

// Snapshot returns the current game snapshot.
func (g *GameState) Snapshot() Snapshot {
	phase := PhasePlaying
	if g.gameOver {
		phase = PhaseGameOver
	}

	return Snapshot{
		Tick:     g.ticks,
		Score:    g.score,
		SnakeLen: g.body.len(),
		Head:     g.body.front(),
		Tail:     g.body.back(),
		Dir:      g.dir,
		Food:     g.food,
		HasFood:  g.hasFood,
		Pending:  g.turns.slice(),
		Phase:    phase,
	}
}
