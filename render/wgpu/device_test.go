package wgpu

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/overlay/render"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice creates a noop HAL device and queue for testing.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

func TestDeviceName(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	d := New(device, queue)
	defer d.Close()

	if d.Name() != render.BackendWGPU {
		t.Errorf("Name() = %q, want %q", d.Name(), render.BackendWGPU)
	}
}

func TestCreateTexture(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	d := New(device, queue)
	defer d.Close()

	desc := render.DefaultTextureDescriptor("test", 2, 3)
	tex, err := d.CreateTexture(desc, make([]byte, 2*3*4))
	if err != nil {
		t.Fatalf("CreateTexture failed: %v", err)
	}
	defer tex.Destroy()

	if tex.Width() != 2 || tex.Height() != 3 {
		t.Errorf("texture size = %dx%d, want 2x3", tex.Width(), tex.Height())
	}
}

func TestEncodeUniform(t *testing.T) {
	proj := [16]float32{}
	proj[0] = 1
	proj[15] = 1

	buf := encodeUniform(proj)
	if len(buf) != uniformSize {
		t.Fatalf("uniform length = %d, want %d", len(buf), uniformSize)
	}
	// 1.0 little-endian: 00 00 80 3F
	if buf[0] != 0 || buf[1] != 0 || buf[2] != 0x80 || buf[3] != 0x3F {
		t.Errorf("first word = % X, want 00 00 80 3F", buf[:4])
	}
}

func TestVertexLayoutStride(t *testing.T) {
	layouts := vertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("expected one vertex buffer layout, got %d", len(layouts))
	}
	if layouts[0].ArrayStride != render.VertexStride {
		t.Errorf("stride = %d, want %d", layouts[0].ArrayStride, render.VertexStride)
	}
	if len(layouts[0].Attributes) != 3 {
		t.Errorf("attribute count = %d, want 3", len(layouts[0].Attributes))
	}
}

func TestSurfaceTargetDefaultFormat(t *testing.T) {
	st := &SurfaceTarget{Width: 640, Height: 480}
	if st.format() != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("default format = %v, want BGRA8Unorm", st.format())
	}
	w, h := st.Size()
	if w != 640 || h != 480 {
		t.Errorf("Size() = %dx%d, want 640x480", w, h)
	}
}

func TestFromProviderRejectsPlainValue(t *testing.T) {
	if _, err := FromProvider(struct{}{}); err == nil {
		t.Error("FromProvider accepted a value without HAL accessors")
	}
}

func TestDrawFlatRun(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	d := New(device, queue)
	defer d.Close()

	// Render target view backed by a noop texture.
	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "target",
		Size:          hal.Extent3D{Width: 64, Height: 64, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		t.Fatalf("create target texture: %v", err)
	}
	defer device.DestroyTexture(tex)

	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "target_view",
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		t.Fatalf("create target view: %v", err)
	}
	defer device.DestroyTextureView(view)

	target := &SurfaceTarget{View: view, Width: 64, Height: 64}

	var proj [16]float32
	proj[0], proj[5], proj[10], proj[15] = 1, 1, 1, 1

	runs := []render.Run{{
		Texture:     nil,
		Data:        make([]byte, 3*render.VertexStride),
		VertexCount: 3,
	}}
	if err := d.Draw(target, proj, runs); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
}

func TestDrawRejectsForeignTarget(t *testing.T) {
	device, queue, cleanup := createNoopDevice(t)
	defer cleanup()

	d := New(device, queue)
	defer d.Close()

	err := d.Draw(render.NullTarget{W: 10, H: 10}, [16]float32{}, []render.Run{{VertexCount: 3, Data: make([]byte, 96)}})
	if err == nil {
		t.Error("Draw accepted a target from another backend")
	}
}
