package overlay

import "math"

// Rectangle is an axis-aligned rectangle between two corners. Filled
// rectangles tessellate to two triangles, optionally sampling a Texture
// across the full [0,1] range; unfilled rectangles stroke the four edges
// as lines, with the vertical edges extended by half a thickness so the
// corners close.
//
// Corner coordinates are rounded to whole pixels before tessellation so
// edges land on pixel boundaries.
type Rectangle struct {
	TopLeft     Point
	BottomRight Point
	Color       Color
	Filled      bool
	Thickness   float32

	// Texture, when non-nil, is sampled across a filled rectangle.
	// Ignored for unfilled rectangles.
	Texture *Texture
}

// NewRectangle returns an unfilled white rectangle with thickness 1
// between the two corners.
func NewRectangle(topLeft, bottomRight Point) *Rectangle {
	return &Rectangle{TopLeft: topLeft, BottomRight: bottomRight, Color: White, Thickness: 1}
}

func snap(p Point) Point {
	return Point{
		X: float32(math.Round(float64(p.X))),
		Y: float32(math.Round(float64(p.Y))),
	}
}

func (r *Rectangle) tessellate(fr *Frame) error {
	tl := snap(r.TopLeft)
	br := snap(r.BottomRight)

	if r.Filled {
		tr := Point{X: br.X, Y: tl.Y}
		bl := Point{X: tl.X, Y: br.Y}
		vs := []Vertex{
			{Position: tl, TexCoord: Point{0, 0}, Color: r.Color},
			{Position: tr, TexCoord: Point{1, 0}, Color: r.Color},
			{Position: bl, TexCoord: Point{0, 1}, Color: r.Color},
			{Position: tr, TexCoord: Point{1, 0}, Color: r.Color},
			{Position: br, TexCoord: Point{1, 1}, Color: r.Color},
			{Position: bl, TexCoord: Point{0, 1}, Color: r.Color},
		}
		fr.push(r.Texture.handleOrNil(), vs)
		return nil
	}

	half := r.Thickness / 2
	var vs []Vertex
	// Top and bottom edges span the full width; the vertical edges are
	// extended past the corners to meet their outer boundary.
	vs = append(vs, lineVertices(tl, Point{X: br.X, Y: tl.Y}, r.Thickness, r.Color)...)
	vs = append(vs, lineVertices(
		Point{X: br.X, Y: tl.Y - half},
		Point{X: br.X, Y: br.Y + half},
		r.Thickness, r.Color)...)
	vs = append(vs, lineVertices(br, Point{X: tl.X, Y: br.Y}, r.Thickness, r.Color)...)
	vs = append(vs, lineVertices(
		Point{X: tl.X, Y: br.Y + half},
		Point{X: tl.X, Y: tl.Y - half},
		r.Thickness, r.Color)...)
	fr.push(nil, vs)
	return nil
}
