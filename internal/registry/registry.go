// Package registry provides a global registry for pilot factories.
// A pilot is a headless input source standing in for a player: pilots
// register themselves in init() functions, allowing the host to discover
// and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/snake-core/internal/core"
	"github.com/vovakirdan/snake-core/internal/snake"
)

// Board is the read-only view of a game that a pilot may inspect.
// *snake.GameState satisfies it.
type Board interface {
	Rows() int
	Cols() int
	At(p snake.Position) snake.GridValue
	HeadPosition() snake.Position
	TailPosition() snake.Position
	Dir() snake.Direction
	Pending() []snake.Direction
	Food() (snake.Position, bool)
	Ticks() uint64
}

// Pilot is the interface that all input sources must implement.
type Pilot interface {
	// ID returns a unique identifier for this pilot (e.g., "greedy").
	// Used for CLI flags and config files.
	ID() string

	// Title returns a human-readable description for listings.
	Title() string

	// Reset prepares the pilot for a new game.
	// The RuntimeConfig provides board size and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Decide returns the input received before the next tick.
	// Actions are applied in order, then the game moves once.
	Decide(b Board) core.InputFrame
}

// PilotInfo contains metadata about a registered pilot.
type PilotInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a pilot.
type Factory func() Pilot

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a pilot factory to the registry.
// Typically called from a pilot's init() function.
// Panics if a pilot with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pilot %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	p := f()
	titles[id] = p.Title()
}

// List returns information about all registered pilots, sorted by ID.
func List() []PilotInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PilotInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PilotInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new pilot by its ID.
// Returns an error if the pilot ID is not registered.
func Create(id string) (Pilot, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown pilot %q", id)
	}

	return f(), nil
}

// Exists checks if a pilot with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
