package ui

import "testing"

func TestWithin(t *testing.T) {
	// 1. Setup: a 100x50 rectangle at (10, 20).
	x, y, w, h := 10.0, 20.0, 100.0, 50.0

	cases := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"Interior point", 50, 40, true},
		{"Top-left corner", 10, 20, true},
		{"Bottom-right corner", 110, 70, true},
		{"Left of rectangle", 9, 40, false},
		{"Right of rectangle", 111, 40, false},
		{"Above rectangle", 50, 19, false},
		{"Below rectangle", 50, 71, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// 2. Execute & Verify
			if got := within(tc.px, tc.py, x, y, w, h); got != tc.want {
				t.Errorf("within(%g, %g) = %v; want %v", tc.px, tc.py, got, tc.want)
			}
		})
	}
}

func TestPanel_Contains(t *testing.T) {
	// 1. Setup
	p := NewPanel(10, 10, 240, 570)

	// 2. Execute & Verify: edges count as inside, outside points do not.
	if !p.Contains(10, 10) {
		t.Error("top-left corner should be inside the panel")
	}
	if !p.Contains(250, 580) {
		t.Error("bottom-right corner should be inside the panel")
	}
	if p.Contains(251, 300) {
		t.Error("point right of the panel should be outside")
	}
	if p.Contains(120, 581) {
		t.Error("point below the panel should be outside")
	}
}

func TestPanel_LayoutStacksWidgets(t *testing.T) {
	// 1. Setup: a panel with one widget of each kind.
	p := NewPanel(10, 10, 240, 570)
	p.AddSection("Physics")
	s := p.AddSlider("Speed", 0, 10, 4)
	c := p.AddCheckbox("Grid", true)
	b := p.AddButton("Reset", func() {})

	// 2. Verify: widgets stack downward without overlapping.
	if s.Y <= p.Y {
		t.Errorf("slider Y = %g; want below the panel top %g", s.Y, p.Y)
	}
	if c.Y <= s.Y+s.H {
		t.Errorf("checkbox Y = %g; want below the slider ending at %g", c.Y, s.Y+s.H)
	}
	if b.Y <= c.Y+c.Size {
		t.Errorf("button Y = %g; want below the checkbox ending at %g", b.Y, c.Y+c.Size)
	}

	// 3. Verify: widgets stay within the panel's horizontal span.
	if s.X < p.X || s.X+s.W > p.X+p.Width {
		t.Errorf("slider spans [%g, %g]; want inside [%g, %g]", s.X, s.X+s.W, p.X, p.X+p.Width)
	}
	if b.X < p.X || b.X+b.Width > p.X+p.Width {
		t.Errorf("button spans [%g, %g]; want inside [%g, %g]", b.X, b.X+b.Width, p.X, p.X+p.Width)
	}
}

func TestNewCheckbox_Defaults(t *testing.T) {
	c := NewCheckbox(5, 7, "Wind", false)
	if c.Size != checkboxSize {
		t.Errorf("checkbox size = %g; want %d", c.Size, checkboxSize)
	}
	if c.Value {
		t.Error("checkbox should start with the given value false")
	}
}
