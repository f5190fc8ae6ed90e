package overlay

import (
	"log/slog"

	"github.com/gogpu/overlay/render"
)

// Overlay owns the fonts, textures, and render device used to draw
// immediate-mode 2D overlays. Create one with New, load assets, then
// per frame: NewFrame, Add primitives, Draw.
//
// An Overlay and its frames must be used from a single goroutine,
// conventionally the render thread.
type Overlay struct {
	device    render.Device
	fonts     map[int]*Font
	fontStack []int
	textures  []*Texture
}

// New creates an overlay drawing through the given device. The device
// remains owned by the caller; Close releases the overlay's assets but
// not the device.
func New(device render.Device) (*Overlay, error) {
	if device == nil {
		return nil, ErrNoDevice
	}
	Logger().Info("overlay: initialized", slog.String("backend", device.Name()))
	return &Overlay{
		device: device,
		fonts:  make(map[int]*Font),
	}, nil
}

// Device returns the render device the overlay draws through.
func (o *Overlay) Device() render.Device { return o.device }

// NewFrame returns an empty frame bound to this overlay.
func (o *Overlay) NewFrame() *Frame {
	return &Frame{ov: o}
}

// Draw submits the frame's runs to the device, projected to the
// target's pixel coordinate system (origin top-left, Y down). On
// success the frame is cleared for reuse; on error it is left intact
// and may be resubmitted.
func (o *Overlay) Draw(target render.Target, frame *Frame) error {
	w, h := target.Size()
	projection := Orthographic(0, float32(w), float32(h), 0, -1, 1).Floats()

	runs := make([]render.Run, len(frame.runs))
	for i, r := range frame.runs {
		runs[i] = render.Run{
			Texture:     r.Texture,
			Data:        encodeVertices(r.Vertices),
			VertexCount: uint32(len(r.Vertices)),
		}
	}

	if err := o.device.Draw(target, projection, runs); err != nil {
		return err
	}
	frame.Clear()
	return nil
}

// Close destroys every font atlas and texture the overlay loaded. The
// render device is not closed.
func (o *Overlay) Close() {
	for _, f := range o.fonts {
		f.texture.Destroy()
	}
	o.fonts = make(map[int]*Font)
	o.fontStack = nil

	for _, t := range o.textures {
		t.handle.Destroy()
	}
	o.textures = nil
}
