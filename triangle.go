package overlay

// Triangle is a single flat-colored triangle with explicit vertices.
// The vertices pass through tessellation unchanged.
type Triangle struct {
	Vertices [3]Vertex
}

// NewTriangle returns a triangle with the given vertices.
func NewTriangle(vertices [3]Vertex) *Triangle {
	return &Triangle{Vertices: vertices}
}

func (t *Triangle) tessellate(fr *Frame) error {
	fr.push(nil, []Vertex{t.Vertices[0], t.Vertices[1], t.Vertices[2]})
	return nil
}
