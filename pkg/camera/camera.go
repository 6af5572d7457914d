// Package camera provides the perspective camera for the 3D flock viewport.
// It converts world points to screen points, supports orbit/zoom control and
// chase-mode tracking of the flock centroid.
package camera

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
)

const (
	// DefaultDistance is the initial orbit radius.
	DefaultDistance = 700.0
	// DefaultAzimuth is the initial horizontal orbit angle (radians).
	DefaultAzimuth = -math.Pi / 4
	// DefaultElevation is the initial vertical orbit angle (radians).
	DefaultElevation = math.Pi / 6
	// DefaultFocalLength controls the strength of the perspective.
	DefaultFocalLength = 300.0

	// MinDistance and MaxDistance bound the zoom range.
	MinDistance = 200.0
	MaxDistance = 2000.0

	// chaseFactor is the per-tick exponential smoothing applied to the
	// target while chase mode tracks the flock centroid.
	chaseFactor = 0.05
)

// Projection is the screen-space result of projecting a world point.
// Depth is camera-relative and always negative for visible points; Scale is
// the perspective factor to apply to world-sized glyphs at that depth.
type Projection struct {
	ScreenX float64
	ScreenY float64
	Scale   float64
	Depth   float64
}

// Camera holds the view state. Fields are exported so the input layer can
// drive them directly; Orbit and Zoom enforce the clamp invariants.
type Camera struct {
	Target      geometry.Vector3D
	Distance    float64
	Azimuth     float64
	Elevation   float64
	FocalLength float64

	ChaseMode bool

	// Display flags consumed by the renderer only.
	ShowGrid bool
	ShowWind bool
}

// New creates a camera at the default orbit looking at the world origin.
func New() *Camera {
	return &Camera{
		Distance:    DefaultDistance,
		Azimuth:     DefaultAzimuth,
		Elevation:   DefaultElevation,
		FocalLength: DefaultFocalLength,
		ShowGrid:    true,
		ShowWind:    true,
	}
}

// Project converts a world point to screen coordinates for the given
// viewport. The point is translated into target-relative space, rotated by
// -azimuth (yaw) then -elevation (pitch), and pushed distance units along the
// view axis; the scene therefore lives at negative depth. The second return
// value is false when the point is clipped by the near plane
// (depth >= -focalLength), in which case the Projection must be ignored.
func (c *Camera) Project(p geometry.Vector3D, viewportWidth, viewportHeight float64) (Projection, bool) {
	rel := p.Sub(c.Target)

	// Yaw: rotate around the vertical axis by -azimuth.
	cosA, sinA := math.Cos(c.Azimuth), math.Sin(c.Azimuth)
	x1 := rel.X*cosA - rel.Z*sinA
	z1 := rel.X*sinA + rel.Z*cosA

	// Pitch: rotate around the horizontal axis by -elevation.
	cosE, sinE := math.Cos(c.Elevation), math.Sin(c.Elevation)
	y2 := rel.Y*cosE - z1*sinE
	z2 := rel.Y*sinE + z1*cosE

	depth := z2 - c.Distance
	if depth >= -c.FocalLength {
		return Projection{}, false
	}

	scale := c.FocalLength / -depth
	return Projection{
		ScreenX: x1*scale + viewportWidth/2,
		ScreenY: y2*scale + viewportHeight/2,
		Scale:   scale,
		Depth:   depth,
	}, true
}

// Unproject maps a screen point back to the world point that would project
// onto it at the target plane (camera-relative depth -distance). This is the
// inverse of Project restricted to that plane and is how a click becomes a
// world-space repel point.
func (c *Camera) Unproject(sx, sy, viewportWidth, viewportHeight float64) geometry.Vector3D {
	scale := c.FocalLength / c.Distance
	x1 := (sx - viewportWidth/2) / scale
	y2 := (sy - viewportHeight/2) / scale

	// Invert the pitch rotation (z2 = 0 on the target plane).
	cosE, sinE := math.Cos(c.Elevation), math.Sin(c.Elevation)
	relY := y2*cosE + 0*sinE
	z1 := -y2*sinE + 0*cosE

	// Invert the yaw rotation.
	cosA, sinA := math.Cos(c.Azimuth), math.Sin(c.Azimuth)
	relX := x1*cosA + z1*sinA
	relZ := -x1*sinA + z1*cosA

	return c.Target.Add(geometry.Vector3D{X: relX, Y: relY, Z: relZ})
}

// Position reconstructs the camera's world position from the orbit state via
// spherical-to-cartesian conversion. The flock uses it to rank agents by
// distance for back-to-front draw ordering.
func (c *Camera) Position() geometry.Vector3D {
	cosE, sinE := math.Cos(c.Elevation), math.Sin(c.Elevation)
	cosA, sinA := math.Cos(c.Azimuth), math.Sin(c.Azimuth)
	return c.Target.Add(geometry.Vector3D{
		X: c.Distance * cosE * sinA,
		Y: c.Distance * sinE,
		Z: c.Distance * cosE * cosA,
	})
}

// Update advances the chase-mode tracking. When chase mode is enabled and
// there is at least one agent, the target moves 5% of the remaining distance
// toward the flock centroid. This is a first-order low-pass filter: no
// velocity state, no overshoot. It reads positions and never mutates them.
func (c *Camera) Update(positions []geometry.Vector3D) {
	if !c.ChaseMode || len(positions) == 0 {
		return
	}

	centroid := geometry.Vector3D{}
	for _, p := range positions {
		centroid = centroid.Add(p)
	}
	centroid, _ = centroid.Div(float64(len(positions)))

	c.Target = c.Target.Lerp(centroid, chaseFactor)
}

// Orbit applies pointer drag deltas to the orbit angles.
// Elevation is clamped to [-Pi/2, Pi/2]; azimuth wraps freely.
func (c *Camera) Orbit(deltaAzimuth, deltaElevation float64) {
	c.Azimuth += deltaAzimuth
	c.Elevation += deltaElevation
	if c.Elevation > math.Pi/2 {
		c.Elevation = math.Pi / 2
	}
	if c.Elevation < -math.Pi/2 {
		c.Elevation = -math.Pi / 2
	}
}

// Zoom applies a wheel delta to the orbit distance, clamped to
// [MinDistance, MaxDistance].
func (c *Camera) Zoom(deltaDistance float64) {
	c.Distance += deltaDistance
	if c.Distance < MinDistance {
		c.Distance = MinDistance
	}
	if c.Distance > MaxDistance {
		c.Distance = MaxDistance
	}
}
