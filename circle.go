package overlay

import "math"

// Circle is a regular polygon approximation of a circle with Detail
// segments. A filled circle tessellates to a triangle fan around the
// center; when Outline is set, the perimeter is additionally stroked as
// Detail line segments. Detail 0 produces no geometry.
type Circle struct {
	Center Point
	Radius float32
	Color  Color
	Detail int
	Filled bool

	// Outline strokes the perimeter when non-nil. Fill and outline are
	// independent: a circle may have either or both.
	Outline *Outline
}

// NewCircle returns an outlined (thickness 1, white) circle with 32
// segments.
func NewCircle(center Point, radius float32) *Circle {
	return &Circle{
		Center:  center,
		Radius:  radius,
		Color:   White,
		Detail:  32,
		Outline: &Outline{Thickness: 1, Color: White},
	}
}

func (c *Circle) tessellate(fr *Frame) error {
	var vs []Vertex
	for i := 0; i < c.Detail; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(c.Detail)
		a1 := 2 * math.Pi * float64(i+1) / float64(c.Detail)
		p0 := c.pointAt(a0)
		p1 := c.pointAt(a1)

		if c.Filled {
			vs = append(vs,
				Vertex{Position: p0, Color: c.Color},
				Vertex{Position: p1, Color: c.Color},
				Vertex{Position: c.Center, Color: c.Color},
			)
		}
		if c.Outline != nil {
			vs = append(vs, lineVertices(p0, p1, c.Outline.Thickness, c.Outline.Color)...)
		}
	}
	fr.push(nil, vs)
	return nil
}

func (c *Circle) pointAt(angle float64) Point {
	return Point{
		X: c.Center.X + c.Radius*float32(math.Cos(angle)),
		Y: c.Center.Y + c.Radius*float32(math.Sin(angle)),
	}
}
