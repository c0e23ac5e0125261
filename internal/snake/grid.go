package snake

import "fmt"

// GridValue is the content of a board cell.
type GridValue int

const (
	Empty GridValue = iota
	Snake
	Food
	// Outside is only reported by lookups beyond the board edge.
	Outside
)

func (v GridValue) String() string {
	switch v {
	case Empty:
		return "empty"
	case Snake:
		return "snake"
	case Food:
		return "food"
	case Outside:
		return "outside"
	default:
		return "unknown"
	}
}

// grid is a row-major cell buffer owned by a GameState.
type grid struct {
	rows  int
	cols  int
	cells []GridValue
}

func newGrid(rows, cols int) grid {
	return grid{
		rows:  rows,
		cols:  cols,
		cells: make([]GridValue, rows*cols),
	}
}

// contains reports whether p lies on the board.
func (g *grid) contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// at returns the value at p, or Outside when p is off the board.
func (g *grid) at(p Position) GridValue {
	if !g.contains(p) {
		return Outside
	}
	return g.cells[p.Row*g.cols+p.Col]
}

func (g *grid) set(p Position, v GridValue) {
	if !g.contains(p) {
		panic(fmt.Sprintf("snake: cell %s out of %dx%d board", p, g.rows, g.cols))
	}
	if v < Empty || v >= Outside {
		panic(fmt.Sprintf("snake: cannot store %s in grid", v))
	}
	g.cells[p.Row*g.cols+p.Col] = v
}

// emptyPositions collects every empty cell in row-major order.
// It is recomputed on each call.
func (g *grid) emptyPositions() []Position {
	var out []Position
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r*g.cols+c] == Empty {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// count returns the number of cells holding v.
func (g *grid) count(v GridValue) int {
	n := 0
	for _, cell := range g.cells {
		if cell == v {
			n++
		}
	}
	return n
}
