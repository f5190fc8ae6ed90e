package render

import "fmt"

func init() {
	Register(BackendNull, func() (Device, error) {
		return NewNullDevice(), nil
	})
}

// NullDevice is a Device that validates and records submissions without
// touching a GPU. It backs headless runs and tests of the batching
// pipeline: every Draw appends the submitted runs to DrawCalls.
type NullDevice struct {
	// DrawCalls records the run sequences submitted via Draw, one entry
	// per Draw call.
	DrawCalls [][]Run

	closed bool
}

// NewNullDevice creates a no-op device.
func NewNullDevice() *NullDevice {
	return &NullDevice{}
}

// Name implements Device.
func (d *NullDevice) Name() string { return BackendNull }

// nullTexture is a texture handle with no GPU backing.
type nullTexture struct {
	width, height uint32
}

func (t *nullTexture) Width() uint32  { return t.width }
func (t *nullTexture) Height() uint32 { return t.height }
func (t *nullTexture) Destroy()       {}

// CreateTexture implements Device. It validates the pixel buffer size
// against the descriptor and returns a handle with no GPU backing.
func (d *NullDevice) CreateTexture(desc *TextureDescriptor, pixels []byte) (Texture, error) {
	want := int(desc.Width) * int(desc.Height) * 4
	if len(pixels) != want {
		return nil, fmt.Errorf("%w: pixel buffer is %d bytes, want %d", ErrBufferCreation, len(pixels), want)
	}
	return &nullTexture{width: desc.Width, height: desc.Height}, nil
}

// NullTarget is a Target with a fixed size and no surface.
type NullTarget struct {
	W, H uint32
}

// Size implements Target.
func (t NullTarget) Size() (uint32, uint32) { return t.W, t.H }

// Draw implements Device. It validates run shape (vertex data length and
// triangle-list counts) and records the submission.
func (d *NullDevice) Draw(_ Target, _ [16]float32, runs []Run) error {
	if d.closed {
		return &BackendError{Backend: BackendNull, Op: "draw", Err: ErrBackendNotAvailable}
	}
	for i, run := range runs {
		if int(run.VertexCount)*VertexStride != len(run.Data) {
			return fmt.Errorf("%w: run %d: %d vertices but %d data bytes",
				ErrBufferCreation, i, run.VertexCount, len(run.Data))
		}
		if run.VertexCount%3 != 0 {
			return fmt.Errorf("%w: run %d: vertex count %d is not a triangle list",
				ErrBufferCreation, i, run.VertexCount)
		}
	}
	recorded := make([]Run, len(runs))
	copy(recorded, runs)
	d.DrawCalls = append(d.DrawCalls, recorded)
	return nil
}

// Close implements Device.
func (d *NullDevice) Close() { d.closed = true }
