package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/overlay/render"
	"github.com/gogpu/wgpu/hal"
)

// Texture is a GPU texture plus its sampled view.
type Texture struct {
	device hal.Device
	tex    hal.Texture
	view   hal.TextureView
	width  uint32
	height uint32
}

var _ render.Texture = (*Texture)(nil)

// Width implements render.Texture.
func (t *Texture) Width() uint32 { return t.width }

// Height implements render.Texture.
func (t *Texture) Height() uint32 { return t.height }

// Destroy implements render.Texture.
func (t *Texture) Destroy() {
	if t.view != nil {
		t.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.tex != nil {
		t.device.DestroyTexture(t.tex)
		t.tex = nil
	}
}

// CreateTexture implements render.Device. Pixels are uploaded through
// the queue as tightly packed rows.
func (d *Device) CreateTexture(desc *render.TextureDescriptor, pixels []byte) (render.Texture, error) {
	tex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label:         desc.Label,
		Size:          hal.Extent3D{Width: desc.Width, Height: desc.Height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        desc.Format,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, &render.BackendError{Backend: render.BackendWGPU, Op: "create texture",
			Err: fmt.Errorf("%w: %w", render.ErrTextureBind, err)}
	}

	view, err := d.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         desc.Label + "_view",
		Format:        desc.Format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		d.device.DestroyTexture(tex)
		return nil, &render.BackendError{Backend: render.BackendWGPU, Op: "create texture view",
			Err: fmt.Errorf("%w: %w", render.ErrTextureBind, err)}
	}

	d.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		pixels,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  desc.Width * 4,
			RowsPerImage: desc.Height,
		},
		&hal.Extent3D{Width: desc.Width, Height: desc.Height, DepthOrArrayLayers: 1},
	)

	return &Texture{
		device: d.device,
		tex:    tex,
		view:   view,
		width:  desc.Width,
		height: desc.Height,
	}, nil
}
