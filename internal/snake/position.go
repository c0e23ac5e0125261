package snake

import (
	"fmt"
	"strings"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Position is a cell coordinate on the board.
type Position struct {
	Row, Col int
}

// Translate returns the neighbouring position one step in direction d.
func (p Position) Translate(d Direction) Position {
	switch d {
	case Up:
		return Position{Row: p.Row - 1, Col: p.Col}
	case Down:
		return Position{Row: p.Row + 1, Col: p.Col}
	case Left:
		return Position{Row: p.Row, Col: p.Col - 1}
	case Right:
		return Position{Row: p.Row, Col: p.Col + 1}
	}
	panic(fmt.Sprintf("snake: invalid direction %d", int(d)))
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	panic(fmt.Sprintf("snake: invalid direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name such as "up" or "Left" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("snake: unknown direction %q", s)
}

// Directions lists every direction in declaration order.
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}
