package overlay

import (
	"math"
	"testing"
)

func TestCircleDefaults(t *testing.T) {
	c := NewCircle(Pt(50, 50), 10)
	if c.Detail != 32 || c.Filled || c.Outline == nil {
		t.Errorf("NewCircle defaults = %+v", c)
	}
	if c.Outline.Thickness != 1 || c.Outline.Color != White {
		t.Errorf("default outline = %+v", c.Outline)
	}
}

func TestCircleVertexCounts(t *testing.T) {
	tests := []struct {
		name    string
		filled  bool
		outline *Outline
		detail  int
		want    int
	}{
		{"filled only", true, nil, 16, 16 * 3},
		{"outline only", false, &Outline{Thickness: 1, Color: White}, 16, 16 * 6},
		{"filled and outlined", true, &Outline{Thickness: 2, Color: RGB(1, 0, 0)}, 8, 8 * (3 + 6)},
		{"zero detail", true, &Outline{Thickness: 1, Color: White}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ov, _ := newTestOverlay(t)
			fr := ov.NewFrame()
			c := &Circle{
				Center:  Pt(0, 0),
				Radius:  10,
				Color:   White,
				Detail:  tt.detail,
				Filled:  tt.filled,
				Outline: tt.outline,
			}
			if err := fr.Add(c); err != nil {
				t.Fatalf("Add failed: %v", err)
			}
			if got := fr.VertexCount(); got != tt.want {
				t.Errorf("vertex count = %d, want %d", got, tt.want)
			}
			if tt.want == 0 && len(fr.Runs()) != 0 {
				t.Error("zero-detail circle produced a run")
			}
		})
	}
}

func TestCirclePerimeterOnRadius(t *testing.T) {
	c := &Circle{Center: Pt(100, 200), Radius: 25, Detail: 12}
	for i := 0; i <= c.Detail; i++ {
		p := c.pointAt(2 * math.Pi * float64(i) / float64(c.Detail))
		d := p.Sub(c.Center).Length()
		if !near(d, c.Radius) {
			t.Errorf("perimeter point %v at distance %v, want %v", p, d, c.Radius)
		}
	}
}

func TestCircleFanIncludesCenter(t *testing.T) {
	ov, _ := newTestOverlay(t)
	fr := ov.NewFrame()
	c := &Circle{Center: Pt(5, 5), Radius: 3, Color: White, Detail: 4, Filled: true}
	if err := fr.Add(c); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	vs := fr.Runs()[0].Vertices
	// Every wedge's third vertex is the center.
	for i := 2; i < len(vs); i += 3 {
		if vs[i].Position != c.Center {
			t.Errorf("wedge %d apex at %v, want %v", i/3, vs[i].Position, c.Center)
		}
	}
}
