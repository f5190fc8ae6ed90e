package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// Hosts built on the gogpu ecosystem already hold a device and queue; they
// implement gpucontext.DeviceProvider and hand it to a backend so overlay
// shares the application's GPU resources instead of creating its own.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing an
// overlay-specific name while maintaining full compatibility with the
// gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// Texture is a GPU texture handle owned by a Device. Texture identity (the
// interface value) keys the frame batcher's runs: two runs with the same
// Texture are merged when adjacent.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() uint32

	// Height returns the texture height in pixels.
	Height() uint32

	// Destroy releases the GPU resources backing the texture.
	Destroy()
}

// Target is the surface a frame is drawn onto. Concrete targets are
// backend-specific; the core only needs the pixel size to build a
// projection.
type Target interface {
	// Size returns the target dimensions in pixels.
	Size() (width, height uint32)
}

// VertexStride is the byte size of one encoded vertex:
// position (2 x f32) + tex coord (2 x f32) + color (4 x f32) = 32 bytes.
const VertexStride = 32

// Run is one contiguous vertex run sharing a single texture binding.
// A nil Texture selects the flat-color pipeline; a non-nil Texture selects
// the textured (alpha-modulated) pipeline.
type Run struct {
	// Texture to bind for this run, or nil for flat-colored geometry.
	Texture Texture

	// Data is the encoded vertex stream: interleaved position (2 x f32),
	// tex coord (2 x f32), color (4 x f32), little-endian.
	Data []byte

	// VertexCount is the number of vertices in Data. Always a multiple
	// of three; runs are triangle lists.
	VertexCount uint32
}

// TextureDescriptor describes parameters for creating a texture.
type TextureDescriptor struct {
	// Label is an optional debug label for the texture.
	Label string

	// Width is the texture width in pixels.
	Width uint32

	// Height is the texture height in pixels.
	Height uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat
}

// DefaultTextureDescriptor returns a descriptor for a standard RGBA texture.
func DefaultTextureDescriptor(label string, width, height uint32) *TextureDescriptor {
	return &TextureDescriptor{
		Label:  label,
		Width:  width,
		Height: height,
		Format: gputypes.TextureFormatRGBA8Unorm,
	}
}

// Device is the rendering backend interface. All methods must be called
// from the render thread; Device implementations do not lock around draw
// state.
type Device interface {
	// Name returns the backend identifier (e.g. "wgpu", "null").
	Name() string

	// CreateTexture uploads pixels (tightly packed rows matching
	// desc.Format) and returns a handle. Called at load time, off the
	// per-frame hot path.
	CreateTexture(desc *TextureDescriptor, pixels []byte) (Texture, error)

	// Draw renders the runs onto target in order, binding each run's
	// texture (or the flat pipeline for nil) and issuing one draw call
	// per run, with the projection matrix applied to every vertex.
	// On error the target is left in an unspecified state and the frame
	// is considered un-submitted.
	Draw(target Target, projection [16]float32, runs []Run) error

	// Close releases all backend resources. The device must not be used
	// after Close.
	Close()
}
