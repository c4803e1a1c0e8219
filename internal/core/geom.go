// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Coord is a cell position on a square grid, addressed by row then column.
// Row 0 is the top of the board.
type Coord struct {
	Row, Col int
}

// NewCoord creates a coordinate at the given row and column.
func NewCoord(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Within reports whether c lies on a size×size board.
func (c Coord) Within(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
