package overlay

import "github.com/gogpu/overlay/render"

// Run is one contiguous vertex run sharing a single texture. Nil
// Texture runs draw through the flat-color pipeline.
type Run struct {
	Texture  render.Texture
	Vertices []Vertex
}

// Frame collects tessellated primitives for one draw. Primitives are
// batched in submission order into texture-keyed runs: a primitive
// sharing the previous run's texture extends that run instead of
// starting a new one, so consecutive runs never share a texture.
//
// Frames are not safe for concurrent use.
type Frame struct {
	ov   *Overlay
	runs []Run
}

// Add tessellates the primitive into the frame.
func (f *Frame) Add(p Primitive) error {
	return p.tessellate(f)
}

// push appends vertices under the given texture, merging with the last
// run when the texture matches. Empty vertex slices are dropped.
func (f *Frame) push(tex render.Texture, vs []Vertex) {
	if len(vs) == 0 {
		return
	}
	if n := len(f.runs); n > 0 && f.runs[n-1].Texture == tex {
		f.runs[n-1].Vertices = append(f.runs[n-1].Vertices, vs...)
		return
	}
	f.runs = append(f.runs, Run{Texture: tex, Vertices: vs})
}

// Runs returns the batched runs in submission order. The returned slice
// is owned by the frame and valid until the next Add or Clear.
func (f *Frame) Runs() []Run {
	return f.runs
}

// VertexCount returns the total number of vertices across all runs.
func (f *Frame) VertexCount() int {
	n := 0
	for _, r := range f.runs {
		n += len(r.Vertices)
	}
	return n
}

// Clear empties the frame for reuse, keeping allocated capacity.
func (f *Frame) Clear() {
	f.runs = f.runs[:0]
}
