package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Layer is one episode drawn onto a shared board.
type Layer struct {
	Snap Snapshot
	Body core.Color
	Head core.Color
	Food core.Color
}

// BoardRect returns the screen rectangle, border included, that RenderBoard
// uses for a grid drawn at (x, y). Two board rows share one terminal row.
func BoardRect(x, y int, g Grid) core.Rect {
	return core.NewRect(x, y, g.Size+2, (g.Size+1)/2+2)
}

// RenderBoard draws the border and every layer, later layers on top.
// Cells are packed with half blocks so a square board keeps its aspect ratio.
func RenderBoard(dst *core.Screen, x, y int, g Grid, border core.Color, layers ...Layer) {
	dst.DrawBox(BoardRect(x, y, g), border)

	paint := make([]core.Color, g.Area())
	filled := make([]bool, g.Area())
	set := func(c Cell, col core.Color) {
		if !g.Contains(c) {
			return
		}
		i := c.Y*g.Size + c.X
		paint[i] = col
		filled[i] = true
	}

	for _, l := range layers {
		if l.Snap.HasFood {
			set(l.Snap.Food, l.Food)
		}
	}
	for _, l := range layers {
		for i := len(l.Snap.Cells) - 1; i >= 0; i-- {
			col := l.Body
			if i == 0 {
				col = l.Head
			}
			set(l.Snap.Cells[i], col)
		}
	}

	for row := 0; row < (g.Size+1)/2; row++ {
		for col := 0; col < g.Size; col++ {
			top := row*2*g.Size + col
			bottom := top + g.Size
			topOn := filled[top]
			bottomOn := row*2+1 < g.Size && filled[bottom]

			var glyph core.Glyph
			switch {
			case topOn && bottomOn && paint[top] == paint[bottom]:
				glyph = core.Glyph{Rune: '█', Fg: paint[top]}
			case topOn && bottomOn:
				glyph = core.Glyph{Rune: '▀', Fg: paint[top], Bg: paint[bottom]}
			case topOn:
				glyph = core.Glyph{Rune: '▀', Fg: paint[top]}
			case bottomOn:
				glyph = core.Glyph{Rune: '▄', Fg: paint[bottom]}
			default:
				glyph = core.Glyph{Rune: ' '}
			}
			dst.SetGlyph(x+1+col, y+1+row, glyph)
		}
	}
}
