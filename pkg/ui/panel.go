// Package ui provides the small immediate-mode widget kit (sliders,
// checkboxes, buttons, a settings panel) drawn directly on the ebiten screen.
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is the common surface of every panel widget.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Panel stacks labeled widgets vertically inside a translucent box.
// Layout is computed when widgets are added; the panel has no scrolling, the
// handful of simulation controls always fits.
type Panel struct {
	X, Y          float64
	Width, Height float64

	widgets []Widget
	labels  []string
	nextY   float64

	BGColor     color.RGBA
	BorderColor color.RGBA
}

// NewPanel creates an empty panel at the given position.
func NewPanel(x, y, width, height float64) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		nextY:       y + 28,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection reserves a highlighted header row.
func (p *Panel) AddSection(title string) {
	p.widgets = append(p.widgets, &sectionHeader{
		title: title,
		x:     p.X + 5,
		y:     p.nextY,
		w:     p.Width - 10,
	})
	p.labels = append(p.labels, "")
	p.nextY += 24
}

// AddSlider appends a labeled slider and returns it for value reads.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, p.nextY+16, p.Width-20, label, min, max, value)
	p.widgets = append(p.widgets, s)
	p.labels = append(p.labels, label)
	p.nextY += 34
	return s
}

// AddCheckbox appends a labeled checkbox and returns it for value reads.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, p.nextY+2, label, value)
	p.widgets = append(p.widgets, c)
	p.labels = append(p.labels, label)
	p.nextY += 22
	return c
}

// AddButton appends a button firing onClick.
func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+10, p.nextY+2, p.Width-20, 22, label, onClick)
	p.widgets = append(p.widgets, b)
	p.labels = append(p.labels, "")
	p.nextY += 30
	return b
}

// Update handles input for all widgets.
func (p *Panel) Update() {
	for _, w := range p.widgets {
		w.Update()
	}
}

// Contains reports whether a screen point falls inside the panel, so the
// caller can keep panel clicks from leaking into the 3D viewport.
func (p *Panel) Contains(x, y float64) bool {
	return within(x, y, p.X, p.Y, p.Width, p.Height)
}

// Draw renders the panel background, labels and widgets.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, "Settings", int(p.X+10), int(p.Y+5))

	for i, w := range p.widgets {
		if s, ok := w.(*Slider); ok {
			label := fmt.Sprintf("%s: %.2f", p.labels[i], s.Value)
			ebitenutil.DebugPrintAt(screen, label, int(s.X), int(s.Y-16))
		}
		if c, ok := w.(*Checkbox); ok {
			ebitenutil.DebugPrintAt(screen, p.labels[i], int(c.X+c.Size+6), int(c.Y-1))
		}
		w.Draw(screen)
	}
}

// sectionHeader is an inert widget rendering a highlighted title row.
type sectionHeader struct {
	title   string
	x, y, w float64
}

func (h *sectionHeader) Update() {}

func (h *sectionHeader) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(h.x), float32(h.y),
		float32(h.w), 18,
		color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
	ebitenutil.DebugPrintAt(screen, h.title, int(h.x+5), int(h.y+2))
}
