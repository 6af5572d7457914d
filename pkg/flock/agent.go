// Package flock implements the boid simulation: per-agent steering forces,
// Euler integration and the per-tick driver that advances the whole flock.
//
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds and related group motion.
// https://en.wikipedia.org/wiki/Boids
package flock

import (
	"math/rand"

	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
)

const (
	// DefaultMaxForce clamps each individual steering force.
	DefaultMaxForce = 0.2
	// DefaultMaxSpeed clamps the velocity after integration.
	DefaultMaxSpeed = 4.0

	// boundaryMargin is how close to a wall an agent may get before the
	// inward steering kicks in.
	boundaryMargin = 80.0
	// boundaryForceFactor makes wall avoidance stronger than the behavioral
	// forces so agents cannot escape the volume.
	boundaryForceFactor = 1.5

	// repelRadius is the reach of an active repel point.
	repelRadius = 150.0
	// repelForceFactor scales the flee force; fleeing is more urgent than
	// any weighted behavior and ignores the UI factors.
	repelForceFactor = 2.5

	// Spawn velocity magnitude range.
	minSpawnSpeed = 2.0
	maxSpawnSpeed = 4.0
)

// Factors are the externally tunable steering weights, passed explicitly into
// every tick so the simulation stays reentrant and testable without
// process-wide state.
type Factors struct {
	PerceptionRadius float64 `json:"perceptionRadius"`
	Separation       float64 `json:"separation"`
	Alignment        float64 `json:"alignment"`
	Cohesion         float64 `json:"cohesion"`
	WindStrength     float64 `json:"windStrength"`
}

// Agent is a single boid. It exclusively owns its kinematic vectors; steering
// methods read other agents' state and return new force vectors, they never
// mutate a neighbor. Acceleration is a per-tick force accumulator, zeroed at
// the end of every Update.
type Agent struct {
	Position     geometry.Vector3D
	Velocity     geometry.Vector3D
	Acceleration geometry.Vector3D

	MaxForce float64
	MaxSpeed float64

	// PerceptionRadius is rewritten from Factors on every tick; it is a
	// flock-wide tunable, not per-agent state.
	PerceptionRadius float64
}

// NewAgent creates an agent at a uniformly random position inside bounds,
// moving in a uniformly random direction at a speed in [2, 4). The spawn
// velocity is clamped to maxSpeed so a configured limit below the spawn
// range holds from the first tick.
func NewAgent(bounds Bounds, maxSpeed, maxForce float64) *Agent {
	halfW, halfH, halfD := bounds.Half()
	speed := minSpawnSpeed + rand.Float64()*(maxSpawnSpeed-minSpawnSpeed)
	return &Agent{
		Position: geometry.Vector3D{
			X: (rand.Float64()*2 - 1) * halfW,
			Y: (rand.Float64()*2 - 1) * halfH,
			Z: (rand.Float64()*2 - 1) * halfD,
		},
		Velocity: geometry.RandomUnit3D().Mul(speed).Limit(maxSpeed),
		MaxForce: maxForce,
		MaxSpeed: maxSpeed,
	}
}

// ApplyForce accumulates a steering force for the next Update.
// Forces are clamped individually before summation, so the accumulated
// acceleration can exceed MaxForce when several behaviors agree.
func (a *Agent) ApplyForce(force geometry.Vector3D) {
	a.Acceleration = a.Acceleration.Add(force)
}

// Seek returns a steering force toward target: desired velocity at MaxSpeed
// minus the current velocity, clamped to MaxForce.
func (a *Agent) Seek(target geometry.Vector3D) geometry.Vector3D {
	desired := target.Sub(a.Position).Normalize().Mul(a.MaxSpeed)
	return desired.Sub(a.Velocity).Limit(a.MaxForce)
}

// Separation returns the inverse-square repulsion from neighbors inside the
// perception radius: closer neighbors dominate quadratically. Coincident
// agents (distance exactly zero) contribute nothing; dividing by their
// distance would poison the flock with NaN.
func (a *Agent) Separation(neighbors []*Agent, weight float64) geometry.Vector3D {
	sum := geometry.Vector3D{}
	count := 0
	for _, other := range neighbors {
		if other == a {
			continue
		}
		d := a.Position.DistanceTo(other.Position)
		if d == 0 || d >= a.PerceptionRadius {
			continue
		}
		diff, _ := a.Position.Sub(other.Position).Div(d * d)
		sum = sum.Add(diff)
		count++
	}
	if count == 0 {
		return geometry.Vector3D{}
	}

	sum, _ = sum.Div(float64(count))
	steer := sum.Normalize().Mul(a.MaxSpeed).Sub(a.Velocity).Limit(a.MaxForce)
	return steer.Mul(weight)
}

// Alignment steers toward the average velocity of neighbors in range.
func (a *Agent) Alignment(neighbors []*Agent, weight float64) geometry.Vector3D {
	sum := geometry.Vector3D{}
	count := 0
	for _, other := range neighbors {
		if other == a {
			continue
		}
		d := a.Position.DistanceTo(other.Position)
		if d == 0 || d >= a.PerceptionRadius {
			continue
		}
		sum = sum.Add(other.Velocity)
		count++
	}
	if count == 0 {
		return geometry.Vector3D{}
	}

	sum, _ = sum.Div(float64(count))
	steer := sum.Normalize().Mul(a.MaxSpeed).Sub(a.Velocity).Limit(a.MaxForce)
	return steer.Mul(weight)
}

// Cohesion steers toward the average position of neighbors in range by
// delegating to Seek on that average.
func (a *Agent) Cohesion(neighbors []*Agent, weight float64) geometry.Vector3D {
	sum := geometry.Vector3D{}
	count := 0
	for _, other := range neighbors {
		if other == a {
			continue
		}
		d := a.Position.DistanceTo(other.Position)
		if d == 0 || d >= a.PerceptionRadius {
			continue
		}
		sum = sum.Add(other.Position)
		count++
	}
	if count == 0 {
		return geometry.Vector3D{}
	}

	center, _ := sum.Div(float64(count))
	return a.Seek(center).Mul(weight)
}

// Follow steers toward the wind direction. Wind is unit length by the
// Environment invariant, so the desired velocity is simply wind * MaxSpeed.
func (a *Agent) Follow(wind geometry.Vector3D, weight float64) geometry.Vector3D {
	desired := wind.Mul(a.MaxSpeed)
	return desired.Sub(a.Velocity).Limit(a.MaxForce).Mul(weight)
}

// Flee returns the repulsion force away from a repel point: Seek negated and
// scaled up for urgency. Callers only invoke it when the point is within
// repelRadius.
func (a *Agent) Flee(point geometry.Vector3D) geometry.Vector3D {
	return a.Seek(point).Mul(-repelForceFactor)
}

// Boundaries applies the inward steering that keeps agents inside the
// simulated volume. Each axis within boundaryMargin of a wall contributes a
// MaxSpeed-magnitude component pointing back inside; the combined steer is
// clamped to 1.5x MaxForce so walls beat the behavioral forces.
func (a *Agent) Boundaries(bounds Bounds) {
	halfW, halfH, halfD := bounds.Half()

	desired := geometry.Vector3D{}
	if a.Position.X < -halfW+boundaryMargin {
		desired.X = a.MaxSpeed
	} else if a.Position.X > halfW-boundaryMargin {
		desired.X = -a.MaxSpeed
	}
	if a.Position.Y < -halfH+boundaryMargin {
		desired.Y = a.MaxSpeed
	} else if a.Position.Y > halfH-boundaryMargin {
		desired.Y = -a.MaxSpeed
	}
	if a.Position.Z < -halfD+boundaryMargin {
		desired.Z = a.MaxSpeed
	} else if a.Position.Z > halfD-boundaryMargin {
		desired.Z = -a.MaxSpeed
	}

	if desired.LenSqr() == 0 {
		return
	}

	steer := desired.Normalize().Mul(a.MaxSpeed).Sub(a.Velocity).Limit(boundaryForceFactor * a.MaxForce)
	a.ApplyForce(steer)
}

// Flock computes and accumulates one tick worth of behavioral forces:
// separation, alignment, cohesion and wind-following, plus the repulsion from
// an active repel point within range. The perception radius is taken from
// factors (a flock-wide tunable).
func (a *Agent) Flock(neighbors []*Agent, factors Factors, repel *geometry.Vector3D, wind geometry.Vector3D) {
	a.PerceptionRadius = factors.PerceptionRadius

	a.ApplyForce(a.Separation(neighbors, factors.Separation))
	a.ApplyForce(a.Alignment(neighbors, factors.Alignment))
	a.ApplyForce(a.Cohesion(neighbors, factors.Cohesion))
	a.ApplyForce(a.Follow(wind, factors.WindStrength))

	if repel != nil && a.Position.DistanceTo(*repel) < repelRadius {
		a.ApplyForce(a.Flee(*repel))
	}
}

// Update integrates one explicit Euler step at unit timestep: the position
// advances by the old velocity, then the velocity absorbs the accumulated
// acceleration and is clamped to MaxSpeed. The accumulator is reset.
// Callers must invoke this exactly once per simulation tick.
func (a *Agent) Update() {
	a.Position = a.Position.Add(a.Velocity)
	a.Velocity = a.Velocity.Add(a.Acceleration).Limit(a.MaxSpeed)
	a.Acceleration = geometry.Vector3D{}
}

// Heading returns the unit direction of travel, used by the renderer to
// orient the agent glyph. Zero velocity yields a zero heading.
func (a *Agent) Heading() geometry.Vector3D {
	return a.Velocity.Normalize()
}
