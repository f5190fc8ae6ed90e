package overlay

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestEncodeVertices(t *testing.T) {
	vs := []Vertex{
		{Position: Pt(1, 2), TexCoord: Pt(0.25, 0.75), Color: RGBA(0.1, 0.2, 0.3, 0.4)},
		{Position: Pt(-5, 0)},
	}

	buf := encodeVertices(vs)
	if len(buf) != 2*VertexStride {
		t.Fatalf("encoded length = %d, want %d", len(buf), 2*VertexStride)
	}

	f32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}

	want := []float32{1, 2, 0.25, 0.75, 0.1, 0.2, 0.3, 0.4}
	for i, w := range want {
		if got := f32(i * 4); got != w {
			t.Errorf("field %d = %v, want %v", i, got, w)
		}
	}
	if got := f32(VertexStride); got != -5 {
		t.Errorf("second vertex x = %v, want -5", got)
	}
}

func TestEncodeVerticesEmpty(t *testing.T) {
	if got := encodeVertices(nil); len(got) != 0 {
		t.Errorf("encoding no vertices produced %d bytes", len(got))
	}
}
