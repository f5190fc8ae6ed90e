package overlay

// Line is a straight segment stroked with a given thickness. It
// tessellates to a single quad (two triangles) centered on the segment:
// a horizontal line of thickness 2 extends one pixel above and one below.
type Line struct {
	Start     Point
	End       Point
	Thickness float32
	Color     Color
}

// NewLine returns a line between the two points with thickness 1 and
// white color.
func NewLine(start, end Point) *Line {
	return &Line{Start: start, End: end, Thickness: 1, Color: White}
}

func (l *Line) tessellate(fr *Frame) error {
	fr.push(nil, lineVertices(l.Start, l.End, l.Thickness, l.Color))
	return nil
}

// lineVertices builds the six vertices of a stroked segment. The quad
// corners sit half a thickness to either side of the endpoints along the
// segment normal. A zero-length segment has no direction and produces a
// degenerate (invisible) quad.
func lineVertices(start, end Point, thickness float32, col Color) []Vertex {
	half := thickness / 2
	normal := end.Sub(start).Normalize().Perp()

	sc1 := start.Add(normal.Mul(half))
	sc2 := start.Sub(normal.Mul(half))
	ec1 := end.Add(normal.Mul(half))
	ec2 := end.Sub(normal.Mul(half))

	return []Vertex{
		{Position: sc1, Color: col},
		{Position: ec2, Color: col},
		{Position: ec1, Color: col},
		{Position: sc2, Color: col},
		{Position: ec2, Color: col},
		{Position: sc1, Color: col},
	}
}
