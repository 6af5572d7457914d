package camera

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-flock3d/pkg/geometry"
)

func TestCamera_Project_OriginFixture(t *testing.T) {
	// Default camera: distance=700, azimuth=-Pi/4, elevation=Pi/6, focal=300.
	// The world origin sits exactly distance units from the camera, so the
	// perspective factor is focal/distance = 3/7 and the point lands at the
	// viewport center.
	c := New()
	p, ok := c.Project(geometry.Vector3D{}, 800, 600)
	if !ok {
		t.Fatal("origin should not be clipped by the default camera")
	}

	wantScale := 300.0 / 700.0
	if p.Scale != wantScale {
		t.Errorf("Scale = %v; want exactly %v", p.Scale, wantScale)
	}
	if p.Depth != -700.0 {
		t.Errorf("Depth = %v; want -700", p.Depth)
	}
	if math.Abs(p.ScreenX-400) > 1e-9 || math.Abs(p.ScreenY-300) > 1e-9 {
		t.Errorf("Screen = (%v, %v); want viewport center (400, 300)", p.ScreenX, p.ScreenY)
	}
}

func TestCamera_Project_NearPlaneClip(t *testing.T) {
	c := New()
	c.Azimuth = 0
	c.Elevation = 0
	// Camera sits at (0, 0, distance) looking down -Z toward the target.

	tests := []struct {
		name    string
		point   geometry.Vector3D
		visible bool
	}{
		{"Target visible", geometry.Vector3D{}, true},
		{"Just beyond near plane", geometry.Vector3D{Z: c.Distance - c.FocalLength - 1}, true},
		{"Exactly on near plane", geometry.Vector3D{Z: c.Distance - c.FocalLength}, false},
		{"In front of near plane", geometry.Vector3D{Z: c.Distance - c.FocalLength + 1}, false},
		{"At camera position", geometry.Vector3D{Z: c.Distance}, false},
		{"Behind camera", geometry.Vector3D{Z: c.Distance + 500}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := c.Project(tt.point, 800, 600); ok != tt.visible {
				t.Errorf("Project(%v) visible = %v; want %v", tt.point, ok, tt.visible)
			}
		})
	}
}

func TestCamera_Position(t *testing.T) {
	c := New()
	c.Target = geometry.Vector3D{X: 10, Y: 20, Z: 30}
	c.Distance = 100
	c.Azimuth = math.Pi / 2
	c.Elevation = 0

	// azimuth Pi/2 with zero elevation places the camera distance units
	// along +X from the target.
	got := c.Position()
	want := geometry.Vector3D{X: 110, Y: 20, Z: 30}
	if !got.Eq(want) {
		t.Errorf("Position() = %v; want %v", got, want)
	}
}

func TestCamera_PositionProjectsToDepthZero(t *testing.T) {
	// The projection convention and the spherical reconstruction must agree:
	// the camera's own world position has camera-relative depth 0.
	c := New()
	c.Target = geometry.Vector3D{X: 5, Y: -3, Z: 12}

	pos := c.Position()
	rel := pos.Sub(c.Target)
	cosA, sinA := math.Cos(c.Azimuth), math.Sin(c.Azimuth)
	x1 := rel.X*cosA - rel.Z*sinA
	z1 := rel.X*sinA + rel.Z*cosA
	cosE, sinE := math.Cos(c.Elevation), math.Sin(c.Elevation)
	y2 := rel.Y*cosE - z1*sinE
	z2 := rel.Y*sinE + z1*cosE

	if math.Abs(x1) > 1e-9 || math.Abs(y2) > 1e-9 {
		t.Errorf("camera position off the view axis: x'=%v y'=%v", x1, y2)
	}
	if math.Abs(z2-c.Distance) > 1e-9 {
		t.Errorf("camera position depth = %v; want %v", z2-c.Distance, 0.0)
	}
}

func TestCamera_Unproject_RoundTrip(t *testing.T) {
	c := New()
	c.Target = geometry.Vector3D{X: 40, Y: -10, Z: 25}

	// A point on the target plane must survive Project -> Unproject.
	world := c.Unproject(520, 180, 800, 600)
	p, ok := c.Project(world, 800, 600)
	if !ok {
		t.Fatal("unprojected point should be visible")
	}
	if math.Abs(p.ScreenX-520) > 1e-6 || math.Abs(p.ScreenY-180) > 1e-6 {
		t.Errorf("round trip = (%v, %v); want (520, 180)", p.ScreenX, p.ScreenY)
	}
	if math.Abs(p.Depth+c.Distance) > 1e-6 {
		t.Errorf("round trip depth = %v; want %v", p.Depth, -c.Distance)
	}
}

func TestCamera_Update_ChaseMode(t *testing.T) {
	centroid := []geometry.Vector3D{{X: 100}}

	t.Run("Disabled leaves target alone", func(t *testing.T) {
		c := New()
		c.Update(centroid)
		if !c.Target.Eq(geometry.Vector3D{}) {
			t.Errorf("target moved with chase mode off: %v", c.Target)
		}
	})

	t.Run("Empty flock leaves target alone", func(t *testing.T) {
		c := New()
		c.ChaseMode = true
		c.Update(nil)
		if !c.Target.Eq(geometry.Vector3D{}) {
			t.Errorf("target moved with no agents: %v", c.Target)
		}
	})

	t.Run("Single step is exactly 5 percent", func(t *testing.T) {
		c := New()
		c.ChaseMode = true
		c.Update(centroid)
		if c.Target.X != 5 || c.Target.Y != 0 || c.Target.Z != 0 {
			t.Errorf("target after one update = %v; want (5, 0, 0)", c.Target)
		}
	})

	t.Run("Sixty-step tracking distance", func(t *testing.T) {
		// The lerp is a geometric approach: after n steps the target has
		// covered 1 - 0.95^n of the distance, so 60 steps still leave
		// about 4.6% outstanding.
		c := New()
		c.ChaseMode = true
		for i := 0; i < 60; i++ {
			c.Update(centroid)
		}
		want := 100 * (1 - math.Pow(0.95, 60))
		if math.Abs(c.Target.X-want) > 1e-9 {
			t.Errorf("target.X after 60 updates = %v; want %v", c.Target.X, want)
		}
	})

	t.Run("Converges on stationary centroid", func(t *testing.T) {
		c := New()
		c.ChaseMode = true
		for i := 0; i < 300; i++ {
			c.Update(centroid)
		}
		if math.Abs(c.Target.X-100) > 0.01 {
			t.Errorf("target.X after 300 updates = %v; want within 0.01 of 100", c.Target.X)
		}
	})

	t.Run("Centroid of several agents", func(t *testing.T) {
		c := New()
		c.ChaseMode = true
		c.Update([]geometry.Vector3D{{X: 50}, {X: 150}, {Y: 30}, {Y: -30}})
		// Centroid is (50, 0, 0), one step moves 5% toward it.
		if math.Abs(c.Target.X-2.5) > 1e-9 || c.Target.Y != 0 {
			t.Errorf("target = %v; want (2.5, 0, 0)", c.Target)
		}
	})
}

func TestCamera_OrbitClamp(t *testing.T) {
	c := New()

	c.Orbit(0, 10)
	if c.Elevation != math.Pi/2 {
		t.Errorf("Elevation = %v; want clamped to Pi/2", c.Elevation)
	}

	c.Orbit(0, -20)
	if c.Elevation != -math.Pi/2 {
		t.Errorf("Elevation = %v; want clamped to -Pi/2", c.Elevation)
	}

	// Azimuth is unclamped.
	c.Orbit(10*math.Pi, 0)
	if math.Abs(c.Azimuth-(DefaultAzimuth+10*math.Pi)) > 1e-9 {
		t.Errorf("Azimuth = %v; want unclamped accumulation", c.Azimuth)
	}
}

func TestCamera_ZoomClamp(t *testing.T) {
	c := New()

	c.Zoom(-10000)
	if c.Distance != MinDistance {
		t.Errorf("Distance = %v; want %v", c.Distance, MinDistance)
	}

	c.Zoom(10000)
	if c.Distance != MaxDistance {
		t.Errorf("Distance = %v; want %v", c.Distance, MaxDistance)
	}
}
