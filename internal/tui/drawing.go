// internal/tui/drawing.go
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/daub/internal/grid"
	"github.com/bethropolis/daub/internal/palette"
	"github.com/bethropolis/daub/internal/types"
)

// CellWidth is the number of screen columns per canvas cell, so cells look square.
const CellWidth = 2

// Border styles, indexed like the border dropdown options.
const (
	BorderThin = iota
	BorderThick
	BorderNone
)

// BorderNames labels the border styles for the dropdown.
var BorderNames = []string{"thin", "thick", "none"}

var borderRunes = [][6]rune{
	BorderThin:  {'┌', '┐', '└', '┘', '─', '│'},
	BorderThick: {'╔', '╗', '╚', '╝', '═', '║'},
}

// Canvas is everything DrawCanvas needs to render the layers.
type Canvas struct {
	Layers    []*grid.Grid[int] // Layer 0 is the bottom layer
	Active    int
	Palette   *palette.Palette
	Cursor    types.Position
	ShowGrid  bool
	GridColor tcell.Color
	Border    int
}

// Layout places the canvas on screen. The canvas starts one cell in from
// the top-left corner to leave room for the border.
type Layout struct {
	OriginX, OriginY int
	Width, Height    int // In cells
}

// NewLayout returns the layout for a canvas of w by h cells.
func NewLayout(w, h int) Layout {
	return Layout{OriginX: 1, OriginY: 1, Width: w, Height: h}
}

// CellAt maps a screen position to a canvas cell.
func (l Layout) CellAt(screen types.Position) (types.Position, bool) {
	dx, dy := screen.X-l.OriginX, screen.Y-l.OriginY
	if dx < 0 || dy < 0 {
		return types.Position{}, false
	}
	pos := types.Pos(dx/CellWidth, dy)
	if pos.X >= l.Width || pos.Y >= l.Height {
		return types.Position{}, false
	}
	return pos, true
}

// ScreenOf returns the screen position of a cell's first column.
func (l Layout) ScreenOf(cell types.Position) types.Position {
	return types.Pos(l.OriginX+cell.X*CellWidth, l.OriginY+cell.Y)
}

// DrawCanvas draws every layer, the grid dots, the border and the cursor.
// The top-most non-empty cell wins; cells from inactive layers are dimmed.
func DrawCanvas(t *TUI, layout Layout, c Canvas) {
	s := t.screen
	emptyStyle := c.Palette.Style(palette.Empty)
	gridStyle := emptyStyle.Foreground(c.GridColor)

	for y := 0; y < layout.Height; y++ {
		for x := 0; x < layout.Width; x++ {
			cell := types.Pos(x, y)
			style, painted := cellStyle(c, cell)
			if !painted {
				style = emptyStyle
			}

			left, right := ' ', ' '
			if !painted && c.ShowGrid {
				left = '·'
				style = gridStyle
			}
			if cell == c.Cursor {
				left, right = '[', ']'
				style = style.Foreground(tcell.ColorWhite).Bold(true)
			}

			sp := layout.ScreenOf(cell)
			s.SetContent(sp.X, sp.Y, left, nil, style)
			s.SetContent(sp.X+1, sp.Y, right, nil, style)
		}
	}

	drawBorder(s, layout, c.Border, gridStyle)
}

func cellStyle(c Canvas, cell types.Position) (tcell.Style, bool) {
	for i := len(c.Layers) - 1; i >= 0; i-- {
		v, err := c.Layers[i].At(cell)
		if err != nil || v == palette.Empty {
			continue
		}
		if i == c.Active {
			return c.Palette.Style(v), true
		}
		return c.Palette.DimStyle(v), true
	}
	return tcell.StyleDefault, false
}

func drawBorder(s tcell.Screen, l Layout, border int, style tcell.Style) {
	if border < 0 || border >= len(borderRunes) {
		return
	}
	r := borderRunes[border]
	left, top := l.OriginX-1, l.OriginY-1
	right, bottom := l.OriginX+l.Width*CellWidth, l.OriginY+l.Height

	s.SetContent(left, top, r[0], nil, style)
	s.SetContent(right, top, r[1], nil, style)
	s.SetContent(left, bottom, r[2], nil, style)
	s.SetContent(right, bottom, r[3], nil, style)
	for x := left + 1; x < right; x++ {
		s.SetContent(x, top, r[4], nil, style)
		s.SetContent(x, bottom, r[4], nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		s.SetContent(left, y, r[5], nil, style)
		s.SetContent(right, y, r[5], nil, style)
	}
}

// DrawText draws text starting at x, y and returns the x after the last
// drawn cluster. Drawing stops at maxX.
func DrawText(t *TUI, x, y, maxX int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if x+w > maxX {
			break
		}
		if runes := gr.Runes(); len(runes) > 0 {
			t.screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += w
	}
	return x
}

// DrawPanel draws the property panel lines to the right of the canvas.
func DrawPanel(t *TUI, layout Layout, lines []string, style tcell.Style) {
	width, _ := t.Size()
	x := layout.OriginX + layout.Width*CellWidth + 3
	for i, line := range lines {
		DrawText(t, x, layout.OriginY+i, width, line, style)
	}
}
