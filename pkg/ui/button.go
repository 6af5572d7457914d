package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button fires a callback when clicked and highlights on hover.
type Button struct {
	Label   string
	X, Y    float64
	Width   float64
	Height  float64
	OnClick func()
	held    bool // left button was down on the button last frame
}

// NewButton creates a button covering the given rectangle.
func NewButton(x, y, width, height float64, label string, onClick func()) *Button {
	return &Button{
		Label:   label,
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		OnClick: onClick,
	}
}

// Update fires OnClick on the press edge. Holding the button down fires the
// callback once, not every frame.
func (b *Button) Update() {
	pressed := cursorIn(b.X, b.Y, b.Width, b.Height) &&
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if pressed && !b.held && b.OnClick != nil {
		b.OnClick()
	}
	b.held = pressed
}

// Draw renders the button with a brighter background under the cursor.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := color.RGBA{R: 80, G: 120, B: 180, A: 255}
	if cursorIn(b.X, b.Y, b.Width, b.Height) {
		bg = color.RGBA{R: 100, G: 150, B: 220, A: 255}
	}

	vector.FillRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bg, true)
	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		2, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)

	ebitenutil.DebugPrintAt(screen, b.Label, int(b.X+8), int(b.Y+b.Height/2-7))
}
