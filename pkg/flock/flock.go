package flock

import (
	"sort"

	"github.com/lao-tseu-is-alive/go-flock3d/pkg/camera"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
)

// Flock owns the ordered collection of agents and runs one discrete time step
// per Tick call. Order is insertion order except during a tick, when agents
// are re-sorted back-to-front for the painter's algorithm; no other component
// may assume the order is stable across ticks.
type Flock struct {
	Agents []*Agent

	bounds   Bounds
	maxSpeed float64
	maxForce float64
}

// New creates a flock of cfg.NumAgents agents randomized inside cfg.Bounds,
// each stamped with the configured speed and force limits.
func New(cfg *Config) *Flock {
	f := &Flock{
		bounds:   cfg.Bounds,
		maxSpeed: cfg.MaxSpeed,
		maxForce: cfg.MaxForce,
	}
	f.Resize(cfg.NumAgents)
	return f
}

// Bounds returns the volume the flock lives in.
func (f *Flock) Bounds() Bounds {
	return f.bounds
}

// Resize grows the flock by appending freshly randomized agents, or shrinks
// it by removing from the front of the sequence. Oldest agents go first when
// the count is lowered; the survivors keep their relative order.
func (f *Flock) Resize(targetCount int) {
	if targetCount < 0 {
		targetCount = 0
	}
	for len(f.Agents) < targetCount {
		f.Agents = append(f.Agents, NewAgent(f.bounds, f.maxSpeed, f.maxForce))
	}
	if len(f.Agents) > targetCount {
		f.Agents = f.Agents[len(f.Agents)-targetCount:]
	}
}

// Positions returns a snapshot of all agent positions, for the chase camera.
func (f *Flock) Positions() []geometry.Vector3D {
	positions := make([]geometry.Vector3D, len(f.Agents))
	for i, a := range f.Agents {
		positions[i] = a.Position
	}
	return positions
}

// Centroid returns the flock's center of mass, or the origin for an empty
// flock.
func (f *Flock) Centroid() geometry.Vector3D {
	if len(f.Agents) == 0 {
		return geometry.Vector3D{}
	}
	sum := geometry.Vector3D{}
	for _, a := range f.Agents {
		sum = sum.Add(a.Position)
	}
	center, _ := sum.Div(float64(len(f.Agents)))
	return center
}

// Tick advances the simulation by one step:
//
//  1. the camera's world position is recomputed;
//  2. agents are sorted by descending squared distance from it, which is both
//     the painter's draw order and the integration order;
//  3. each agent, in that order, applies boundary correction, the flocking
//     forces against the current (already partially updated) flock state,
//     and one Euler step.
//
// Later agents see earlier agents' new positions. The same initial state with
// the same sort order reproduces the same trajectory.
func (f *Flock) Tick(cam *camera.Camera, env *Environment, factors Factors) {
	camPos := cam.Position()

	sort.SliceStable(f.Agents, func(i, j int) bool {
		return f.Agents[i].Position.DistanceSquaredTo(camPos) >
			f.Agents[j].Position.DistanceSquaredTo(camPos)
	})

	var repel *geometry.Vector3D
	if p, ok := env.RepelPoint(); ok {
		repel = &p
	}
	wind := env.Wind()

	for _, a := range f.Agents {
		a.Boundaries(env.Bounds)
		a.Flock(f.Agents, factors, repel, wind)
		a.Update()
	}
}
