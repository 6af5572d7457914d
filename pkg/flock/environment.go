package flock

import (
	"time"

	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
)

// RepelLifetime is how long a repel point stays active after it is set.
const RepelLifetime = 2000 * time.Millisecond

// Bounds describes the extents of the simulated volume. Agents live inside
// [-extent/2, +extent/2] on each axis.
type Bounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// Half returns the half-extents of the volume.
func (b Bounds) Half() (halfW, halfH, halfD float64) {
	return b.Width / 2, b.Height / 2, b.Depth / 2
}

// Environment is the shared per-simulation state every agent reads each tick:
// the volume bounds, the wind direction, and an optional transient repel
// point. It is exclusively owned by the simulation driver; nothing mutates it
// mid-tick.
type Environment struct {
	Bounds Bounds

	wind geometry.Vector3D

	repelPoint    *geometry.Vector3D
	repelDeadline time.Time

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewEnvironment creates an environment for the given volume with the wind
// blowing along +X.
func NewEnvironment(bounds Bounds) *Environment {
	return &Environment{
		Bounds: bounds,
		wind:   geometry.Vector3D{X: 1},
		now:    time.Now,
	}
}

// Wind returns the current wind direction. It is always unit length.
func (e *Environment) Wind() geometry.Vector3D {
	return e.wind
}

// SetWind points the wind along v, renormalized to unit length. A zero vector
// carries no direction and is ignored, preserving the unit-length invariant.
func (e *Environment) SetWind(v geometry.Vector3D) {
	if v.LenSqr() == 0 {
		return
	}
	e.wind = v.Normalize()
}

// SetRepelPoint places a transient repel point at p. It replaces any previous
// point and expires RepelLifetime later.
func (e *Environment) SetRepelPoint(p geometry.Vector3D) {
	e.repelPoint = &p
	e.repelDeadline = e.now().Add(RepelLifetime)
}

// ClearRepelPoint removes the repel point immediately.
func (e *Environment) ClearRepelPoint() {
	e.repelPoint = nil
}

// RepelPoint returns the active repel point, expiring it lazily: there is no
// timer, the deadline is checked whenever somebody asks.
func (e *Environment) RepelPoint() (geometry.Vector3D, bool) {
	if e.repelPoint == nil {
		return geometry.Vector3D{}, false
	}
	if e.now().After(e.repelDeadline) {
		e.repelPoint = nil
		return geometry.Vector3D{}, false
	}
	return *e.repelPoint, true
}

// RepelRemaining reports the fraction of the repel point's lifetime still
// left, in [0, 1]. The renderer fades the marker with it.
func (e *Environment) RepelRemaining() float64 {
	if e.repelPoint == nil {
		return 0
	}
	left := e.repelDeadline.Sub(e.now())
	if left <= 0 {
		return 0
	}
	return float64(left) / float64(RepelLifetime)
}
