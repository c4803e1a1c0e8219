package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Render draws the board into dst with its top-left corner at (0, 0).
// The screen should be at least Size()×Size(); extra space is left blank.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.size == 0 {
		return
	}

	for row := range g.size {
		for col := range g.size {
			cell := g.grid.Get(core.Coord{Row: row, Col: col})
			dst.SetCell(col, row, cell.Glyph(g.glyphs), cellColor(cell))
		}
	}

	// Highlight the head unless the losing move put it off the board.
	if g.body.Len() > 0 && !g.phantom {
		head := g.body.Head()
		dst.SetCell(head.Col, head.Row, g.glyphs.Snake, core.ColorBrightGreen)
	}
}

func cellColor(c Cell) core.Color {
	switch c {
	case CellApple:
		return core.ColorRed
	case CellSnake:
		return core.ColorGreen
	default:
		return core.ColorGray
	}
}
