package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// checkboxSize is the side length of the checkbox square in pixels.
const checkboxSize = 14

// Checkbox toggles a boolean value when its square is clicked.
type Checkbox struct {
	Label string
	Value bool
	X, Y  float64
	Size  float64
	held  bool // left button was down on the box last frame
}

// NewCheckbox creates a checkbox with its top-left corner at (x, y).
func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{
		Label: label,
		Value: value,
		X:     x,
		Y:     y,
		Size:  checkboxSize,
	}
}

// Update toggles the value on the press edge. Holding the button down over
// the box flips it once, not every frame.
func (c *Checkbox) Update() {
	pressed := cursorIn(c.X, c.Y, c.Size, c.Size) &&
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if pressed && !c.held {
		c.Value = !c.Value
	}
	c.held = pressed
}

// Draw renders the outline, filled when the value is on.
func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen,
		float32(c.X), float32(c.Y),
		float32(c.Size), float32(c.Size),
		2,
		color.RGBA{R: 200, G: 200, B: 200, A: 255},
		true)

	if c.Value {
		vector.FillRect(screen,
			float32(c.X+2), float32(c.Y+2),
			float32(c.Size-4), float32(c.Size-4),
			color.RGBA{R: 100, G: 200, B: 100, A: 255},
			true)
	}
}
