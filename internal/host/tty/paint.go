package tty

import (
	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/fireflies/internal/world"
)

var (
	backgroundStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(
		int32(world.Background.R), int32(world.Background.G), int32(world.Background.B)))
	textStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Paint draws the game area of w and then the overlay lines.
func Paint(s tcell.Screen, w *world.World, overlay []string) {
	if w.Scale() > 0 {
		paintBackground(s, w)
		for _, f := range w.Fireflies() {
			x, y := w.ToScreen(f.X, f.Y)
			b := f.Brightness()
			c := int32(204 * b)
			style := backgroundStyle.Foreground(tcell.NewRGBColor(c, c, 0))
			col, row := cell(x, y)
			s.SetContent(col, row, fireflyRune(b), nil, style)
		}
		for _, h := range w.Heroes() {
			x, y := w.ToScreen(h.X, h.Y)
			style := backgroundStyle.Foreground(tcell.NewRGBColor(int32(h.Color.R), int32(h.Color.G), int32(h.Color.B)))
			if h.Active() {
				style = style.Bold(true)
			}
			col, row := cell(x, y)
			s.SetContent(col, row, '@', nil, style)
		}
	}

	for i, line := range overlay {
		for j, r := range line {
			s.SetContent(j, i, r, nil, textStyle)
		}
	}
}

func paintBackground(s tcell.Screen, w *world.World) {
	x0, y0 := w.ToScreen(0, 0)
	x1, y1 := w.ToScreen(world.Width, world.Height)
	c0, r0 := cell(x0, y0)
	c1, r1 := cell(x1, y1)
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			s.SetContent(c, r, ' ', nil, backgroundStyle)
		}
	}
}

// cell maps a position in cell-width units to a screen cell.
func cell(x, y float64) (int, int) {
	return int(x), int(y / CellAspect)
}

func fireflyRune(brightness float64) rune {
	switch {
	case brightness > 0.8:
		return '*'
	case brightness > 0.55:
		return '+'
	default:
		return '.'
	}
}
