package overlay

// Mat4 represents a 4x4 transformation matrix stored as four rows of four
// float32 values. The memory layout matches what the GPU backends expect for
// a mat4x4 uniform: flattening the rows in order yields the 16-float buffer
// uploaded to the shader.
type Mat4 [4][4]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Orthographic returns an orthographic projection matrix mapping the given
// clip planes to normalized device coordinates. For a window of size w x h
// with the origin at the top-left, use Orthographic(0, w, h, 0, -1, 1).
func Orthographic(left, right, bottom, top, near, far float32) Mat4 {
	tx := -(right + left) / (right - left)
	ty := -(top + bottom) / (top - bottom)
	tz := -(far + near) / (far - near)

	return Mat4{
		{2 / (right - left), 0, 0, 0},
		{0, 2 / (top - bottom), 0, 0},
		{0, 0, -2 / (far - near), 0},
		{tx, ty, tz, 1},
	}
}

// Mul multiplies two matrices (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[i][0]*other[0][j] +
				m[i][1]*other[1][j] +
				m[i][2]*other[2][j] +
				m[i][3]*other[3][j]
		}
	}
	return out
}

// Floats flattens the matrix row by row into the 16-float form consumed by
// the render backends.
func (m Mat4) Floats() [16]float32 {
	var out [16]float32
	for i := 0; i < 4; i++ {
		copy(out[i*4:i*4+4], m[i][:])
	}
	return out
}
