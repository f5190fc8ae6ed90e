package overlay

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/overlay/render"
)

// Vertex is the single vertex layout shared by every primitive: position,
// texture coordinate, and color. Untextured shapes carry a (0,0) texture
// coordinate. Triangles are assembled from sequential vertices; no index
// buffer is used anywhere in the pipeline.
type Vertex struct {
	// Position in pixel coordinates (origin top-left, Y down).
	Position Point

	// TexCoord in normalized [0,1] atlas/texture coordinates.
	// Zero for flat-colored shapes.
	TexCoord Point

	// Color modulates the fragment; for glyph quads it tints the
	// alpha mask sampled from the font atlas.
	Color Color
}

// VertexStride is the byte size of one encoded Vertex.
const VertexStride = render.VertexStride

// encodeVertices packs vertices into the little-endian float32 byte layout
// the render backends bind as a vertex buffer.
func encodeVertices(vs []Vertex) []byte {
	buf := make([]byte, len(vs)*VertexStride)
	off := 0
	put := func(f float32) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(f))
		off += 4
	}
	for _, v := range vs {
		put(v.Position.X)
		put(v.Position.Y)
		put(v.TexCoord.X)
		put(v.TexCoord.Y)
		put(v.Color.R)
		put(v.Color.G)
		put(v.Color.B)
		put(v.Color.A)
	}
	return buf
}
