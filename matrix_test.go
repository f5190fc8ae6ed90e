package overlay

import "testing"

// applyMat transforms a 2D point by the matrix using the row-vector
// convention the shaders apply.
func applyMat(m Mat4, x, y float32) (float32, float32) {
	ox := x*m[0][0] + y*m[1][0] + m[3][0]
	oy := x*m[0][1] + y*m[1][1] + m[3][1]
	return ox, oy
}

func TestIdentity(t *testing.T) {
	m := Identity()
	x, y := applyMat(m, 7, -3)
	if x != 7 || y != -3 {
		t.Errorf("identity transform moved point to (%v,%v)", x, y)
	}
}

func TestOrthographicCorners(t *testing.T) {
	m := Orthographic(0, 800, 600, 0, -1, 1)

	tests := []struct {
		name         string
		x, y         float32
		wantX, wantY float32
	}{
		{"top-left", 0, 0, -1, 1},
		{"bottom-right", 800, 600, 1, -1},
		{"center", 400, 300, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gx, gy := applyMat(m, tt.x, tt.y)
			if !near(gx, tt.wantX) || !near(gy, tt.wantY) {
				t.Errorf("(%v,%v) -> (%v,%v), want (%v,%v)", tt.x, tt.y, gx, gy, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMatMulIdentity(t *testing.T) {
	m := Orthographic(0, 100, 100, 0, -1, 1)
	if got := m.Mul(Identity()); got != m {
		t.Error("m * I != m")
	}
	if got := Identity().Mul(m); got != m {
		t.Error("I * m != m")
	}
}

func TestFloatsLayout(t *testing.T) {
	m := Orthographic(0, 10, 10, 0, -1, 1)
	f := m.Floats()

	// Row 3 carries the translation.
	if !near(f[12], -1) || !near(f[13], 1) {
		t.Errorf("translation row = (%v, %v), want (-1, 1)", f[12], f[13])
	}
	if !near(f[15], 1) {
		t.Errorf("f[15] = %v, want 1", f[15])
	}
}
