package ui

import "github.com/hajimehoshi/ebiten/v2"

// within reports whether the point (px, py) lands inside the axis-aligned
// rectangle at (x, y) with the given width and height. Edges count as inside.
func within(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}

// cursorIn reports whether the mouse cursor currently hovers the rectangle.
func cursorIn(x, y, w, h float64) bool {
	mx, my := ebiten.CursorPosition()
	return within(float64(mx), float64(my), x, y, w, h)
}
