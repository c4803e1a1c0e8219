package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MaxSize is the largest supported board side length.
const MaxSize = core.MaxBoardSize

// ErrInvalidSize is returned when a board size is outside [1, MaxSize].
var ErrInvalidSize = errors.New("snake: invalid board size")

// Cell is the content of one board position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellApple
	CellSnake
)

// Glyph returns the character drawn for the cell.
func (c Cell) Glyph(gl core.Glyphs) rune {
	switch c {
	case CellApple:
		return gl.Apple
	case CellSnake:
		return gl.Snake
	default:
		return gl.Empty
	}
}

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellApple:
		return "apple"
	case CellSnake:
		return "snake"
	default:
		return "unknown"
	}
}

// Grid is a square board of cells. The grid only holds markings; the order of
// the snake's segments lives in Body.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid creates an initialized size×size grid.
func NewGrid(size int) (*Grid, error) {
	g := &Grid{}
	if err := g.Initialize(size); err != nil {
		return nil, err
	}
	return g, nil
}

// ValidateSize checks a board size against [1, max].
func ValidateSize(size, max int) error {
	if size < 1 || size > max {
		return fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidSize, size, max)
	}
	return nil
}

// Initialize resizes the grid and marks every cell empty.
func (g *Grid) Initialize(size int) error {
	if err := ValidateSize(size, MaxSize); err != nil {
		return err
	}
	g.size = size
	if cap(g.cells) >= size*size {
		g.cells = g.cells[:size*size]
	} else {
		g.cells = make([]Cell, size*size)
	}
	for i := range g.cells {
		g.cells[i] = CellEmpty
	}
	return nil
}

// Size returns the side length.
func (g *Grid) Size() int {
	return g.size
}

// Contains reports whether c is on the board.
func (g *Grid) Contains(c core.Coord) bool {
	return c.Within(g.size)
}

// Get returns the cell at c. The caller must check Contains first.
func (g *Grid) Get(c core.Coord) Cell {
	return g.cells[c.Row*g.size+c.Col]
}

// Set marks the cell at c. The caller must check Contains first.
func (g *Grid) Set(c core.Coord, cell Cell) {
	g.cells[c.Row*g.size+c.Col] = cell
}

// Count returns how many cells hold the given content.
func (g *Grid) Count(cell Cell) int {
	n := 0
	for _, c := range g.cells {
		if c == cell {
			n++
		}
	}
	return n
}

// Empties returns every empty coordinate in row-major order.
func (g *Grid) Empties() []core.Coord {
	var out []core.Coord
	for i, c := range g.cells {
		if c == CellEmpty {
			out = append(out, core.Coord{Row: i / g.size, Col: i % g.size})
		}
	}
	return out
}
