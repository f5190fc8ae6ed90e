package overlay

import "testing"

func TestPointOps(t *testing.T) {
	p := Pt(3, 4)

	if got := p.Add(Pt(1, -2)); got != Pt(4, 2) {
		t.Errorf("Add = %v, want (4,2)", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("Sub = %v, want (2,3)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v, want (6,8)", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
}

func TestPointNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"axis aligned", Pt(10, 0), Pt(1, 0)},
		{"diagonal", Pt(3, 4), Pt(0.6, 0.8)},
		{"zero vector", Pt(0, 0), Pt(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if !nearPoint(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPointPerp(t *testing.T) {
	if got := Pt(1, 0).Perp(); got != Pt(0, 1) {
		t.Errorf("Perp(1,0) = %v, want (0,1)", got)
	}
	if got := Pt(0, 1).Perp(); got != Pt(-1, 0) {
		t.Errorf("Perp(0,1) = %v, want (-1,0)", got)
	}
}

func nearPoint(a, b Point) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func near(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-5
}
