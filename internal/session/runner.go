// Package session drives a snake game headlessly: it collects input from a
// pilot and from external callers, ticks the engine at a fixed rate and
// reports the outcome. All engine access goes through one mutex, so
// Input may be called from any goroutine while Run is ticking.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-core/internal/core"
	"github.com/vovakirdan/snake-core/internal/registry"
	"github.com/vovakirdan/snake-core/internal/snake"
)

// maxTickRate caps the pacing so the ticker interval stays positive.
const maxTickRate = 1000

// Reason explains why a run ended.
type Reason string

const (
	ReasonCrashed   Reason = "crashed"
	ReasonQuit      Reason = "quit"
	ReasonTickLimit Reason = "tick_limit"
	ReasonCanceled  Reason = "canceled"
)

// Result summarizes a finished run.
type Result struct {
	Seed     int64
	Ticks    uint64
	Score    int
	Length   int
	GameOver bool
	Reason   Reason
}

// Runner owns one game and the pilot playing it.
type Runner struct {
	mu     sync.Mutex
	game   *snake.GameState
	pilot  registry.Pilot
	cfg    core.RuntimeConfig
	logger *log.Logger
	steps  int
	quit   bool
}

// New creates a runner and starts a fresh game. A zero seed is replaced
// with one taken from the clock. A nil logger discards output.
func New(cfg core.RuntimeConfig, p registry.Pilot, logger *log.Logger) (*Runner, error) {
	if cfg.Rows < 1 || cfg.Cols < snake.InitialLength {
		return nil, fmt.Errorf("session: board %dx%d too small (need at least 1x%d)", cfg.Rows, cfg.Cols, snake.InitialLength)
	}
	if p == nil {
		return nil, errors.New("session: no pilot")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	p.Reset(cfg)
	return &Runner{
		game:   snake.New(cfg.Rows, cfg.Cols, snake.WithSeed(cfg.Seed)),
		pilot:  p,
		cfg:    cfg,
		logger: logger.With("pilot", p.ID()),
	}, nil
}

// Config returns the settings the runner was created with, including the
// resolved seed.
func (r *Runner) Config() core.RuntimeConfig {
	return r.cfg
}

// Input forwards an external action to the game. It reports whether a
// turn was queued; ActionQuit ends the run at the next tick.
func (r *Runner) Input(a core.Action) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.applyLocked(a)
}

func (r *Runner) applyLocked(a core.Action) bool {
	if a == core.ActionQuit {
		r.quit = true
		return false
	}
	d, ok := a.Direction()
	if !ok {
		return false
	}
	if !r.game.ChangeDirection(d) {
		r.logger.Debug("turn ignored", "turn", d, "dir", r.game.Dir(), "pending", r.game.Pending())
		return false
	}
	return true
}

// Step asks the pilot for input, applies it in order and moves once.
func (r *Runner) Step() snake.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.quit || r.game.GameOver() {
		return snake.Idle
	}

	frame := r.pilot.Decide(r.game)
	for _, a := range frame.Actions() {
		r.applyLocked(a)
	}
	if r.quit {
		return snake.Idle
	}

	r.steps++
	outcome := r.game.Move()
	switch outcome {
	case snake.Ate:
		r.logger.Info("food eaten", "tick", r.game.Ticks(), "score", r.game.Score(), "length", r.game.SnakeLen())
	case snake.Crashed:
		r.logger.Warn("snake crashed",
			"tick", r.game.Ticks(),
			"head", r.game.HeadPosition(),
			"dir", r.game.Dir(),
			"score", r.game.Score())
	default:
		r.logger.Debug("moved", "tick", r.game.Ticks(), "head", r.game.HeadPosition())
	}
	return outcome
}

// finished reports whether the run should stop and why.
func (r *Runner) finished() (Reason, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case r.game.GameOver():
		return ReasonCrashed, true
	case r.quit:
		return ReasonQuit, true
	case r.cfg.MaxTicks > 0 && r.steps >= r.cfg.MaxTicks:
		return ReasonTickLimit, true
	}
	return "", false
}

// Run ticks the game until it ends, the pilot or a caller quits, the tick
// limit is reached, or ctx is done. Ticks are paced at TickRate per second
// when it is positive. On cancellation it returns the partial result and
// ctx.Err().
func (r *Runner) Run(ctx context.Context) (Result, error) {
	var tick <-chan time.Time
	if rate := core.Clamp(r.cfg.TickRate, 0, maxTickRate); rate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(rate))
		defer ticker.Stop()
		tick = ticker.C
	}

	r.logger.Info("game started", "rows", r.cfg.Rows, "cols", r.cfg.Cols, "seed", r.cfg.Seed)
	for {
		if reason, done := r.finished(); done {
			res := r.Result(reason)
			r.logger.Info("game finished", "reason", res.Reason, "ticks", res.Ticks, "score", res.Score, "length", res.Length)
			return res, nil
		}

		if err := ctx.Err(); err != nil {
			return r.Result(ReasonCanceled), err
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return r.Result(ReasonCanceled), ctx.Err()
			case <-tick:
			}
		}

		r.Step()
	}
}

// Result captures the current state as a run summary.
func (r *Runner) Result(reason Reason) Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Result{
		Seed:     r.cfg.Seed,
		Ticks:    r.game.Ticks(),
		Score:    r.game.Score(),
		Length:   r.game.SnakeLen(),
		GameOver: r.game.GameOver(),
		Reason:   reason,
	}
}

// Snapshot returns the engine snapshot.
func (r *Runner) Snapshot() snake.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.Snapshot()
}

// DebugState returns the engine's diagnostic dump.
func (r *Runner) DebugState() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.DebugState()
}
