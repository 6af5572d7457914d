// Package render turns simulation state into ebiten draw calls: depth-scaled
// agent glyphs, the ground grid, the wind arrow and the repel marker. The
// core packages hand it plain projected data; everything visual lives here.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/camera"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
)

// Pre-rendered 1x1 source for batched triangle drawing.
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

const (
	// headingProbe is how far ahead of an agent we project a second point to
	// recover the on-screen heading angle.
	headingProbe = 10.0

	gridStep = 100.0
)

// Sprite is the projected render data for one agent: screen position, the
// perspective scale for sizing the glyph, the camera-relative depth and the
// on-screen heading angle in radians.
type Sprite struct {
	X, Y    float64
	Scale   float64
	Depth   float64
	Heading float64
}

// Marker is the projected repel point together with the fraction of its
// lifetime remaining, used to fade it out.
type Marker struct {
	X, Y      float64
	Scale     float64
	Remaining float64
}

// Frame is one tick worth of drawable state.
type Frame struct {
	Agents []Sprite
	Repel  *Marker
	Count  int
}

// BuildFrame projects the flock through the camera. The flock is already
// sorted back-to-front by Tick, so the sprite slice preserves the painter's
// order. Clipped agents are dropped.
func BuildFrame(f *flock.Flock, cam *camera.Camera, env *flock.Environment, vw, vh float64) *Frame {
	frame := &Frame{
		Agents: make([]Sprite, 0, len(f.Agents)),
		Count:  len(f.Agents),
	}

	for _, a := range f.Agents {
		p, ok := cam.Project(a.Position, vw, vh)
		if !ok {
			continue
		}

		heading := -math.Pi / 2 // default: pointing up
		ahead := a.Position.Add(a.Heading().Mul(headingProbe))
		if q, ok := cam.Project(ahead, vw, vh); ok {
			dx, dy := q.ScreenX-p.ScreenX, q.ScreenY-p.ScreenY
			if dx != 0 || dy != 0 {
				heading = math.Atan2(dy, dx)
			}
		}

		frame.Agents = append(frame.Agents, Sprite{
			X:       p.ScreenX,
			Y:       p.ScreenY,
			Scale:   p.Scale,
			Depth:   p.Depth,
			Heading: heading,
		})
	}

	if rp, ok := env.RepelPoint(); ok {
		if p, ok := cam.Project(rp, vw, vh); ok {
			frame.Repel = &Marker{
				X:         p.ScreenX,
				Y:         p.ScreenY,
				Scale:     p.Scale,
				Remaining: env.RepelRemaining(),
			}
		}
	}

	return frame
}

// DrawAgents renders every sprite as a triangle pointing along its heading,
// sized by the perspective scale and brightened as it nears the camera.
func DrawAgents(screen *ebiten.Image, frame *Frame) {
	for i := range frame.Agents {
		drawAgent(screen, &frame.Agents[i])
	}
}

func drawAgent(screen *ebiten.Image, s *Sprite) {
	size := 8 * s.Scale
	if size < 1 {
		size = 1
	}

	tipX := s.X + math.Cos(s.Heading)*size*1.4
	tipY := s.Y + math.Sin(s.Heading)*size*1.4
	rightX := s.X + math.Cos(s.Heading+2.5)*size
	rightY := s.Y + math.Sin(s.Heading+2.5)*size
	leftX := s.X + math.Cos(s.Heading-2.5)*size
	leftY := s.Y + math.Sin(s.Heading-2.5)*size

	// Fade distant agents toward the background.
	shade := float32(0.4 + 0.6*math.Min(s.Scale, 1.0))

	vertices := []ebiten.Vertex{
		{
			DstX: float32(tipX),
			DstY: float32(tipY),
			SrcX: 1, SrcY: 1,
			ColorR: shade, ColorG: shade, ColorB: 1, ColorA: 1,
		},
		{
			DstX: float32(rightX),
			DstY: float32(rightY),
			SrcX: 1, SrcY: 1,
			ColorR: shade, ColorG: shade, ColorB: 1, ColorA: 1,
		},
		{
			DstX: float32(leftX),
			DstY: float32(leftY),
			SrcX: 1, SrcY: 1,
			ColorR: shade, ColorG: shade, ColorB: 1, ColorA: 1,
		},
	}

	indices := []uint16{0, 1, 2}

	op := &ebiten.DrawTrianglesOptions{}

	screen.DrawTriangles(vertices, indices, whiteImage, op)
}

// DrawGrid renders the floor grid of the simulated volume. Lines are straight
// in world space so projecting the endpoints is enough; lines with a clipped
// endpoint are skipped.
func DrawGrid(screen *ebiten.Image, cam *camera.Camera, bounds flock.Bounds, vw, vh float64) {
	halfW, halfH, halfD := bounds.Half()
	clr := color.RGBA{R: 50, G: 60, B: 80, A: 255}

	for x := -halfW; x <= halfW; x += gridStep {
		drawWorldLine(screen, cam,
			geometry.Vector3D{X: x, Y: -halfH, Z: -halfD},
			geometry.Vector3D{X: x, Y: -halfH, Z: halfD},
			clr, vw, vh)
	}
	for z := -halfD; z <= halfD; z += gridStep {
		drawWorldLine(screen, cam,
			geometry.Vector3D{X: -halfW, Y: -halfH, Z: z},
			geometry.Vector3D{X: halfW, Y: -halfH, Z: z},
			clr, vw, vh)
	}
}

// DrawWindArrow renders the wind direction as a line from the volume center,
// with a filled circle at the head. wind must be the unit wind vector.
func DrawWindArrow(screen *ebiten.Image, cam *camera.Camera, wind geometry.Vector3D, vw, vh float64) {
	head := wind.Mul(120)
	clr := color.RGBA{R: 120, G: 220, B: 160, A: 255}

	drawWorldLine(screen, cam, geometry.Vector3D{}, head, clr, vw, vh)
	if p, ok := cam.Project(head, vw, vh); ok {
		vector.FillCircle(screen, float32(p.ScreenX), float32(p.ScreenY), float32(4*p.Scale), clr, true)
	}
}

// DrawRepelMarker renders the active repel point as a ring that fades with
// the remaining lifetime.
func DrawRepelMarker(screen *ebiten.Image, m *Marker) {
	if m == nil {
		return
	}
	alpha := uint8(255 * m.Remaining)
	clr := color.RGBA{R: 255, G: 80, B: 80, A: alpha}
	radius := float32(20 * m.Scale)
	vector.StrokeCircle(screen, float32(m.X), float32(m.Y), radius, 2, clr, true)
}

func drawWorldLine(screen *ebiten.Image, cam *camera.Camera, a, b geometry.Vector3D, clr color.Color, vw, vh float64) {
	pa, ok := cam.Project(a, vw, vh)
	if !ok {
		return
	}
	pb, ok := cam.Project(b, vw, vh)
	if !ok {
		return
	}
	vector.StrokeLine(screen,
		float32(pa.ScreenX), float32(pa.ScreenY),
		float32(pb.ScreenX), float32(pb.ScreenY),
		1, clr, true)
}
