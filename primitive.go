package overlay

// Primitive is a drawable shape that tessellates itself into a frame's
// vertex runs. The set of primitives is closed: Line, Rectangle, Circle,
// Triangle, and Text.
//
// Primitives are plain config structs; construct them with their New
// functions (which fill in defaults) or as literals, adjust fields, then
// pass them to Frame.Add. A primitive value may be reused and added to
// any number of frames.
type Primitive interface {
	// tessellate appends the primitive's triangles to the frame.
	tessellate(fr *Frame) error
}

// Outline describes a stroked edge: line thickness and color. It
// configures circle outlines and text shadows.
type Outline struct {
	Thickness float32
	Color     Color
}
