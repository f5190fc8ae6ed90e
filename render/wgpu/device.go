package wgpu

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/overlay/render"
	"github.com/gogpu/wgpu/hal"
)

func init() {
	render.Register(render.BackendWGPU, func() (render.Device, error) {
		return Open()
	})
}

// submitTimeout bounds the fence wait after each frame submission.
const submitTimeout = 5 * time.Second

// Device renders overlay frames through a wgpu HAL device. All methods
// must be called from the render thread.
type Device struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	pipes    pipelines

	// ownsDevice is true when Open created the device; shared devices
	// from New or FromProvider are left alive on Close.
	ownsDevice bool
}

var _ render.Device = (*Device)(nil)

// Open creates a standalone Vulkan device and wraps it. Used when the
// host application does not already own a GPU device.
func Open() (*Device, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, &render.BackendError{Backend: render.BackendWGPU, Op: "open",
			Err: render.ErrBackendNotAvailable}
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, &render.BackendError{Backend: render.BackendWGPU, Op: "create instance", Err: err}
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, &render.BackendError{Backend: render.BackendWGPU, Op: "enumerate adapters",
			Err: render.ErrBackendNotAvailable}
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, &render.BackendError{Backend: render.BackendWGPU, Op: "open device", Err: err}
	}

	render.Logger().Info("wgpu: device opened", slog.String("adapter", selected.Info.Name))
	d := New(openDev.Device, openDev.Queue)
	d.instance = instance
	d.ownsDevice = true
	return d, nil
}

// New wraps an existing HAL device and queue. The caller keeps
// ownership; Close releases only the overlay's pipelines.
func New(device hal.Device, queue hal.Queue) *Device {
	return &Device{
		device: device,
		queue:  queue,
		pipes:  pipelines{device: device},
	}
}

// FromProvider adopts a shared GPU device from a host exposing HAL
// handles through HalDevice() any and HalQueue() any, the convention
// used by gogpu device providers.
func FromProvider(provider any) (*Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, &render.BackendError{Backend: render.BackendWGPU, Op: "from provider",
			Err: fmt.Errorf("provider does not expose HAL types")}
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok {
		return nil, &render.BackendError{Backend: render.BackendWGPU, Op: "from provider",
			Err: fmt.Errorf("HalDevice() is not a hal.Device")}
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok {
		return nil, &render.BackendError{Backend: render.BackendWGPU, Op: "from provider",
			Err: fmt.Errorf("HalQueue() is not a hal.Queue")}
	}
	return New(device, queue), nil
}

// Name implements render.Device.
func (d *Device) Name() string { return render.BackendWGPU }

// SurfaceTarget is a render.Target backed by a HAL texture view,
// typically the swapchain image the host is about to present.
type SurfaceTarget struct {
	// View is drawn onto with LoadOpLoad, preserving existing content.
	View hal.TextureView

	// Width and Height are the view dimensions in pixels.
	Width  uint32
	Height uint32

	// Format is the view's texture format. Zero selects BGRA8Unorm,
	// the common swapchain format.
	Format gputypes.TextureFormat
}

// Size implements render.Target.
func (t *SurfaceTarget) Size() (uint32, uint32) { return t.Width, t.Height }

func (t *SurfaceTarget) format() gputypes.TextureFormat {
	if t.Format == 0 {
		return gputypes.TextureFormatBGRA8Unorm
	}
	return t.Format
}

// frameResources holds the per-draw GPU objects, destroyed after the
// fence signals.
type frameResources struct {
	uniformBuf hal.Buffer
	vertexBufs []hal.Buffer
	bindGroups []hal.BindGroup
}

func (r *frameResources) destroy(device hal.Device) {
	for _, bg := range r.bindGroups {
		device.DestroyBindGroup(bg)
	}
	for _, vb := range r.vertexBufs {
		device.DestroyBuffer(vb)
	}
	if r.uniformBuf != nil {
		device.DestroyBuffer(r.uniformBuf)
	}
}

// Draw implements render.Device. Each run becomes one draw call; the
// render pass loads the target's existing content so the overlay
// composites on top of the host's frame.
func (d *Device) Draw(target render.Target, projection [16]float32, runs []render.Run) error {
	st, ok := target.(*SurfaceTarget)
	if !ok {
		return &render.BackendError{Backend: render.BackendWGPU, Op: "draw",
			Err: fmt.Errorf("target is not a *wgpu.SurfaceTarget")}
	}
	if len(runs) == 0 {
		return nil
	}

	if err := d.ensurePipelines(st.format()); err != nil {
		return &render.BackendError{Backend: render.BackendWGPU, Op: "draw",
			Err: fmt.Errorf("%w: %w", render.ErrShaderCompile, err)}
	}

	res := &frameResources{}
	defer res.destroy(d.device)

	uniformBuf, err := d.createAndUploadBuffer("overlay_projection", encodeUniform(projection),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return &render.BackendError{Backend: render.BackendWGPU, Op: "draw",
			Err: fmt.Errorf("%w: %w", render.ErrBufferCreation, err)}
	}
	res.uniformBuf = uniformBuf

	// One flat bind group is shared by every untextured run; textured
	// runs each bind their own texture view.
	var flatBind hal.BindGroup
	type drawCall struct {
		pipeline hal.RenderPipeline
		bind     hal.BindGroup
		buf      hal.Buffer
		count    uint32
	}
	calls := make([]drawCall, 0, len(runs))

	for i, run := range runs {
		buf, err := d.createAndUploadBuffer(fmt.Sprintf("overlay_verts_%d", i), run.Data,
			gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
		if err != nil {
			return &render.BackendError{Backend: render.BackendWGPU, Op: "draw",
				Err: fmt.Errorf("%w: run %d: %w", render.ErrBufferCreation, i, err)}
		}
		res.vertexBufs = append(res.vertexBufs, buf)

		if run.Texture == nil {
			if flatBind == nil {
				flatBind, err = d.device.CreateBindGroup(&hal.BindGroupDescriptor{
					Label:  "overlay_flat_bind",
					Layout: d.pipes.flatLayout,
					Entries: []gputypes.BindGroupEntry{
						{Binding: 0, Resource: gputypes.BufferBinding{
							Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: uniformSize,
						}},
					},
				})
				if err != nil {
					return &render.BackendError{Backend: render.BackendWGPU, Op: "draw",
						Err: fmt.Errorf("%w: flat bind group: %w", render.ErrBufferCreation, err)}
				}
				res.bindGroups = append(res.bindGroups, flatBind)
			}
			calls = append(calls, drawCall{d.pipes.flat, flatBind, buf, run.VertexCount})
			continue
		}

		tex, ok := run.Texture.(*Texture)
		if !ok {
			return &render.BackendError{Backend: render.BackendWGPU, Op: "draw",
				Err: fmt.Errorf("%w: run %d: texture was not created by this backend",
					render.ErrTextureBind, i)}
		}
		bind, err := d.device.CreateBindGroup(&hal.BindGroupDescriptor{
			Label:  fmt.Sprintf("overlay_textured_bind_%d", i),
			Layout: d.pipes.texturedLayout,
			Entries: []gputypes.BindGroupEntry{
				{Binding: 0, Resource: gputypes.BufferBinding{
					Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: uniformSize,
				}},
				{Binding: 1, Resource: gputypes.TextureViewBinding{
					TextureView: tex.view.NativeHandle(),
				}},
				{Binding: 2, Resource: gputypes.SamplerBinding{
					Sampler: d.pipes.sampler.NativeHandle(),
				}},
			},
		})
		if err != nil {
			return &render.BackendError{Backend: render.BackendWGPU, Op: "draw",
				Err: fmt.Errorf("%w: run %d: %w", render.ErrTextureBind, i, err)}
		}
		res.bindGroups = append(res.bindGroups, bind)
		calls = append(calls, drawCall{d.pipes.textured, bind, buf, run.VertexCount})
	}

	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "overlay_encoder",
	})
	if err != nil {
		return &render.BackendError{Backend: render.BackendWGPU, Op: "draw", Err: err}
	}
	if err := encoder.BeginEncoding("overlay_frame"); err != nil {
		return &render.BackendError{Backend: render.BackendWGPU, Op: "draw", Err: err}
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "overlay_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:    st.View,
			LoadOp:  gputypes.LoadOpLoad,
			StoreOp: gputypes.StoreOpStore,
		}},
	})
	for _, call := range calls {
		rp.SetPipeline(call.pipeline)
		rp.SetBindGroup(0, call.bind, nil)
		rp.SetVertexBuffer(0, call.buf, 0)
		rp.Draw(call.count, 1, 0, 0)
	}
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return &render.BackendError{Backend: render.BackendWGPU, Op: "draw", Err: err}
	}
	defer d.device.FreeCommandBuffer(cmdBuf)

	fence, err := d.device.CreateFence()
	if err != nil {
		return &render.BackendError{Backend: render.BackendWGPU, Op: "draw", Err: err}
	}
	defer d.device.DestroyFence(fence)

	if err := d.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return &render.BackendError{Backend: render.BackendWGPU, Op: "submit", Err: err}
	}
	fenceOK, err := d.device.Wait(fence, 1, submitTimeout)
	if err != nil {
		return &render.BackendError{Backend: render.BackendWGPU, Op: "wait", Err: err}
	}
	if !fenceOK {
		return &render.BackendError{Backend: render.BackendWGPU, Op: "wait",
			Err: fmt.Errorf("fence not signaled after %v", submitTimeout)}
	}
	return nil
}

// ensurePipelines builds the render pipelines for the target format,
// rebuilding if the format changed since the last draw.
func (d *Device) ensurePipelines(format gputypes.TextureFormat) error {
	if d.pipes.flat != nil && d.pipes.format == format {
		return nil
	}
	d.pipes.destroy()
	return d.pipes.create(format)
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (d *Device) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	d.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// encodeUniform packs the projection matrix into the 64-byte uniform
// layout.
func encodeUniform(projection [16]float32) []byte {
	buf := make([]byte, uniformSize)
	for i, v := range projection {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// Close implements render.Device. Pipelines are destroyed always; the
// HAL device and instance only when Open created them.
func (d *Device) Close() {
	d.pipes.destroy()
	if d.ownsDevice {
		if d.device != nil {
			d.device.Destroy()
			d.device = nil
		}
		if d.instance != nil {
			d.instance.Destroy()
			d.instance = nil
		}
	}
}
