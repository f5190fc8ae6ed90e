package overlay

import "math"

// Point represents a 2D point or vector in pixel coordinates.
// Components are float32 because points feed GPU vertex buffers directly.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float32 {
	return float32(math.Sqrt(float64(p.X*p.X + p.Y*p.Y)))
}

// Normalize returns a unit vector in the same direction.
// Normalizing the zero vector returns the zero vector; callers tessellating
// degenerate segments get a zero-area quad rather than NaN positions.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Perp returns the counter-clockwise perpendicular vector (-Y, X).
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}
