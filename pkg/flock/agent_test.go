package flock

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
)

const testEpsilon = 1e-9

func TestAgent_SeparationNoNeighbors(t *testing.T) {
	a := &Agent{MaxForce: DefaultMaxForce, MaxSpeed: DefaultMaxSpeed, PerceptionRadius: 75}

	got := a.Separation([]*Agent{a}, 1.5)

	if got.LenSqr() != 0 {
		t.Errorf("Separation with no neighbors should be zero, got %v", got)
	}
}

func TestAgent_SeparationInverseSquare(t *testing.T) {
	// The steer is normalized, so a single neighbor cannot reveal the
	// distance weighting. The offset vector has length d, so dividing by
	// d*d leaves magnitude 1/d. With neighbors at distances 10 and 20 the
	// component ratio is exactly (1/10)/(1/20) = 2, and normalization
	// preserves it.
	a := &Agent{MaxForce: 1e9, MaxSpeed: DefaultMaxSpeed, PerceptionRadius: 100}
	neighbors := []*Agent{
		a,
		{Position: geometry.Vector3D{X: 10}},
		{Position: geometry.Vector3D{Y: 20}},
	}

	got := a.Separation(neighbors, 1.0)

	if got.X >= 0 || got.Y >= 0 {
		t.Fatalf("separation should push away from both neighbors, got %v", got)
	}
	ratio := got.X / got.Y
	if math.Abs(ratio-2) > testEpsilon {
		t.Errorf("distance weighting: want X/Y ratio 2, got %g (steer %v)", ratio, got)
	}
}

func TestAgent_SeparationIgnoresCoincident(t *testing.T) {
	a := &Agent{MaxForce: DefaultMaxForce, MaxSpeed: DefaultMaxSpeed, PerceptionRadius: 75}
	twin := &Agent{Position: a.Position}

	got := a.Separation([]*Agent{a, twin}, 1.5)

	if math.IsNaN(got.X) || math.IsNaN(got.Y) || math.IsNaN(got.Z) {
		t.Fatalf("coincident neighbor produced NaN: %v", got)
	}
	if got.LenSqr() != 0 {
		t.Errorf("coincident neighbor should contribute nothing, got %v", got)
	}
}

func TestAgent_SeekClampedToMaxForce(t *testing.T) {
	a := &Agent{MaxForce: DefaultMaxForce, MaxSpeed: DefaultMaxSpeed}

	force := a.Seek(geometry.Vector3D{X: 1000})

	if force.Len() > a.MaxForce+testEpsilon {
		t.Errorf("Seek force %g exceeds MaxForce %g", force.Len(), a.MaxForce)
	}
	if force.X <= 0 {
		t.Errorf("Seek should point toward the target, got %v", force)
	}
}

func TestAgent_FollowAlignedWindIsZero(t *testing.T) {
	// Already flying downwind at MaxSpeed: desired minus velocity vanishes.
	a := &Agent{
		Velocity: geometry.Vector3D{X: DefaultMaxSpeed},
		MaxForce: DefaultMaxForce,
		MaxSpeed: DefaultMaxSpeed,
	}

	got := a.Follow(geometry.Vector3D{X: 1}, 0.3)

	if got.Len() > testEpsilon {
		t.Errorf("Follow should be zero when flying downwind at MaxSpeed, got %v", got)
	}
}

func TestAgent_FleePointsAway(t *testing.T) {
	a := &Agent{MaxForce: DefaultMaxForce, MaxSpeed: DefaultMaxSpeed}

	flee := a.Flee(geometry.Vector3D{X: 50})

	if flee.X >= 0 {
		t.Errorf("Flee should point away from the threat, got %v", flee)
	}
	seek := a.Seek(geometry.Vector3D{X: 50})
	wantLen := seek.Len() * repelForceFactor
	if math.Abs(flee.Len()-wantLen) > testEpsilon {
		t.Errorf("Flee magnitude: got %g, want %g (%gx Seek)", flee.Len(), wantLen, repelForceFactor)
	}
}

func TestAgent_BoundariesInterior(t *testing.T) {
	bounds := Bounds{Width: 1000, Height: 600, Depth: 800}
	a := &Agent{MaxForce: DefaultMaxForce, MaxSpeed: DefaultMaxSpeed}

	a.Boundaries(bounds)

	if a.Acceleration.LenSqr() != 0 {
		t.Errorf("no boundary force expected in the interior, got %v", a.Acceleration)
	}
}

func TestAgent_BoundariesSteerInward(t *testing.T) {
	bounds := Bounds{Width: 1000, Height: 600, Depth: 800}
	tests := []struct {
		name string
		pos  geometry.Vector3D
		axis func(v geometry.Vector3D) float64
		sign float64
	}{
		{"near -X wall", geometry.Vector3D{X: -480}, func(v geometry.Vector3D) float64 { return v.X }, +1},
		{"near +X wall", geometry.Vector3D{X: 480}, func(v geometry.Vector3D) float64 { return v.X }, -1},
		{"near -Y wall", geometry.Vector3D{Y: -280}, func(v geometry.Vector3D) float64 { return v.Y }, +1},
		{"near +Z wall", geometry.Vector3D{Z: 380}, func(v geometry.Vector3D) float64 { return v.Z }, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := &Agent{Position: tc.pos, MaxForce: DefaultMaxForce, MaxSpeed: DefaultMaxSpeed}

			a.Boundaries(bounds)

			if got := tc.axis(a.Acceleration); got*tc.sign <= 0 {
				t.Errorf("boundary steer should point back inside, got %v", a.Acceleration)
			}
			limit := boundaryForceFactor*a.MaxForce + testEpsilon
			if a.Acceleration.Len() > limit {
				t.Errorf("boundary steer %g exceeds %g", a.Acceleration.Len(), limit)
			}
		})
	}
}

func TestAgent_UpdateOrder(t *testing.T) {
	// The position must advance by the velocity from before the acceleration
	// is absorbed.
	a := &Agent{
		Velocity: geometry.Vector3D{X: 1},
		MaxForce: DefaultMaxForce,
		MaxSpeed: DefaultMaxSpeed,
	}
	a.ApplyForce(geometry.Vector3D{Y: 0.5})

	a.Update()

	if !a.Position.Eq(geometry.Vector3D{X: 1}) {
		t.Errorf("position should use the pre-update velocity, got %v", a.Position)
	}
	if !a.Velocity.Eq(geometry.Vector3D{X: 1, Y: 0.5}) {
		t.Errorf("velocity should absorb the acceleration, got %v", a.Velocity)
	}
	if a.Acceleration.LenSqr() != 0 {
		t.Errorf("acceleration should be reset after Update, got %v", a.Acceleration)
	}
}

func TestAgent_UpdateClampsSpeed(t *testing.T) {
	a := &Agent{MaxForce: DefaultMaxForce, MaxSpeed: DefaultMaxSpeed}
	a.ApplyForce(geometry.Vector3D{X: 100, Y: 100, Z: 100})

	a.Update()

	if a.Velocity.Len() > a.MaxSpeed+testEpsilon {
		t.Errorf("velocity %g exceeds MaxSpeed %g", a.Velocity.Len(), a.MaxSpeed)
	}
}

func TestAgent_FlockRepelRange(t *testing.T) {
	factors := Factors{PerceptionRadius: 75}
	wind := geometry.Vector3D{X: 1}

	// 1. Repel point out of range: only the (zero weight) wind term remains.
	a := &Agent{MaxForce: DefaultMaxForce, MaxSpeed: DefaultMaxSpeed}
	far := geometry.Vector3D{X: repelRadius + 1}
	a.Flock(nil, factors, &far, wind)
	if a.Acceleration.LenSqr() != 0 {
		t.Errorf("out-of-range repel point should add no force, got %v", a.Acceleration)
	}

	// 2. In range: the flee force shows up, pointing away.
	b := &Agent{MaxForce: DefaultMaxForce, MaxSpeed: DefaultMaxSpeed}
	near := geometry.Vector3D{X: repelRadius - 1}
	b.Flock(nil, factors, &near, wind)
	if b.Acceleration.X >= 0 {
		t.Errorf("in-range repel point should push away, got %v", b.Acceleration)
	}
}

func TestAgent_FreeFlight(t *testing.T) {
	// A lone agent with all factors at zero keeps its velocity and moves in a
	// straight line.
	a := &Agent{
		Velocity: geometry.Vector3D{X: 1},
		MaxForce: DefaultMaxForce,
		MaxSpeed: DefaultMaxSpeed,
	}

	a.Flock(nil, Factors{PerceptionRadius: 75}, nil, geometry.Vector3D{X: 1, Y: 1}.Normalize())
	a.Update()

	if !a.Position.Eq(geometry.Vector3D{X: 1}) {
		t.Errorf("expected straight line to (1, 0, 0), got %v", a.Position)
	}
	if !a.Velocity.Eq(geometry.Vector3D{X: 1}) {
		t.Errorf("expected unchanged velocity, got %v", a.Velocity)
	}
}

func TestNewAgent_SpawnRanges(t *testing.T) {
	bounds := Bounds{Width: 1000, Height: 600, Depth: 800}
	halfW, halfH, halfD := bounds.Half()

	for i := 0; i < 100; i++ {
		a := NewAgent(bounds, DefaultMaxSpeed, DefaultMaxForce)
		p := a.Position
		if math.Abs(p.X) > halfW || math.Abs(p.Y) > halfH || math.Abs(p.Z) > halfD {
			t.Fatalf("spawn position %v outside bounds %+v", p, bounds)
		}
		speed := a.Velocity.Len()
		if speed < minSpawnSpeed-testEpsilon || speed >= maxSpawnSpeed+testEpsilon {
			t.Fatalf("spawn speed %g outside [%g, %g)", speed, minSpawnSpeed, maxSpawnSpeed)
		}
	}
}

func BenchmarkAgent_Flock(b *testing.B) {
	bounds := Bounds{Width: 1000, Height: 600, Depth: 800}
	neighbors := make([]*Agent, 200)
	for i := range neighbors {
		neighbors[i] = NewAgent(bounds, DefaultMaxSpeed, DefaultMaxForce)
	}
	factors := Factors{PerceptionRadius: 75, Separation: 1.5, Alignment: 1, Cohesion: 1, WindStrength: 0.3}
	wind := geometry.Vector3D{X: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		neighbors[i%len(neighbors)].Flock(neighbors, factors, nil, wind)
	}
}
