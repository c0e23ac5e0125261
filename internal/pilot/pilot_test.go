package pilot

import (
	"slices"
	"testing"

	"github.com/vovakirdan/snake-core/internal/config"
	"github.com/vovakirdan/snake-core/internal/core"
	"github.com/vovakirdan/snake-core/internal/registry"
	"github.com/vovakirdan/snake-core/internal/snake"
)

// firstRand always places food on the first empty cell.
type firstRand struct{}

func (firstRand) Intn(int) int { return 0 }

func apply(g *snake.GameState, frame core.InputFrame) {
	for _, a := range frame.Actions() {
		if d, ok := a.Direction(); ok {
			g.ChangeDirection(d)
		}
	}
}

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"idle", "random", "greedy", "script"} {
		p, err := registry.Create(id)
		if err != nil {
			t.Errorf("Create(%q) failed: %v", id, err)
			continue
		}
		if p.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, p.ID())
		}
	}
}

func TestIdleNeverTurns(t *testing.T) {
	g := snake.New(9, 10, snake.WithRand(firstRand{}))
	p := &Idle{}
	p.Reset(core.DefaultConfig())

	if f := p.Decide(g); f.Len() != 0 {
		t.Errorf("Decide() = %v, expected no actions", f.Actions())
	}
}

func TestGreedyTurnsTowardFood(t *testing.T) {
	// Food lands on (0, 0), up and to the left of the head at (4, 3).
	g := snake.New(9, 10, snake.WithRand(firstRand{}))
	p := &Greedy{}

	f := p.Decide(g)
	if !slices.Equal(f.Actions(), []core.Action{core.ActionUp}) {
		t.Errorf("Decide() = %v, expected [Up]", f.Actions())
	}
}

func TestGreedyAvoidsWall(t *testing.T) {
	g := snake.New(3, 5, snake.WithRand(firstRand{}))
	g.Move() // head now at (1, 4), against the right wall
	p := &Greedy{}

	f := p.Decide(g)
	if f.Len() != 1 || f.Has(core.ActionRight) {
		t.Fatalf("Decide() = %v, expected a single turn away from the wall", f.Actions())
	}
	apply(g, f)
	if got := g.Move(); got == snake.Crashed {
		t.Error("greedy pilot steered into the wall")
	}
}

func TestGreedyEats(t *testing.T) {
	g := snake.New(10, 10, snake.WithSeed(3))
	p := &Greedy{}
	p.Reset(core.DefaultConfig())

	for i := 0; i < 200 && !g.GameOver(); i++ {
		apply(g, p.Decide(g))
		g.Move()
	}
	if g.Score() == 0 {
		t.Errorf("greedy pilot ate nothing in 200 ticks:\n%s", g.DebugState())
	}
}

func TestRandomIsDeterministic(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 77
	g := snake.New(9, 10, snake.WithRand(firstRand{}))

	a, b := NewRandom(), NewRandom()
	a.Reset(cfg)
	b.Reset(cfg)

	turns := 0
	for range 100 {
		fa, fb := a.Decide(g), b.Decide(g)
		if !slices.Equal(fa.Actions(), fb.Actions()) {
			t.Fatalf("same seed gave %v and %v", fa.Actions(), fb.Actions())
		}
		turns += fa.Len()
	}
	if turns == 0 || turns == 100 {
		t.Errorf("random pilot turned on %d of 100 ticks", turns)
	}
}

func TestScriptReplaysSchedule(t *testing.T) {
	s, err := config.ParseScript([]byte("steps:\n  - tick: 0\n    turns: [up, left]\n  - tick: 2\n    turns: [down]\n"))
	if err != nil {
		t.Fatal(err)
	}
	g := snake.New(9, 10, snake.WithRand(firstRand{}))

	p, err := registry.Create("script")
	if err != nil {
		t.Fatal(err)
	}
	scripted, ok := p.(Scripted)
	if !ok {
		t.Fatal("script pilot does not implement Scripted")
	}
	scripted.LoadScript(s)

	want := map[uint64][]core.Action{
		0: {core.ActionUp, core.ActionLeft},
		1: nil,
		2: {core.ActionDown},
	}
	for tick := range uint64(3) {
		f := p.Decide(g)
		if !slices.Equal(f.Actions(), want[tick]) {
			t.Errorf("tick %d: Decide() = %v, expected %v", tick, f.Actions(), want[tick])
		}
		apply(g, f)
		g.Move()
	}
	if g.Dir() != snake.Down {
		t.Errorf("Dir() = %s, expected down after the script", g.Dir())
	}
}
