package wgpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/overlay_flat.wgsl
var flatShaderSource string

//go:embed shaders/overlay_textured.wgsl
var texturedShaderSource string

// uniformSize is the byte size of the uniform buffer: one mat4x4<f32>
// projection, 64 bytes.
const uniformSize = 64

// compileToSPIRV compiles WGSL source to SPIR-V words for the Vulkan
// HAL path.
func compileToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, err
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// pipelines holds the GPU objects shared by every draw: the flat and
// textured render pipelines, their bind group layouts, and the shared
// sampler. Built lazily at first draw, once the target format is known.
type pipelines struct {
	device hal.Device

	flatShader     hal.ShaderModule
	texturedShader hal.ShaderModule

	flatLayout     hal.BindGroupLayout
	texturedLayout hal.BindGroupLayout

	flatPipeLayout     hal.PipelineLayout
	texturedPipeLayout hal.PipelineLayout

	flat     hal.RenderPipeline
	textured hal.RenderPipeline

	sampler hal.Sampler

	format gputypes.TextureFormat
}

// vertexLayout matches VertexInput in both overlay shaders:
//
//	location 0: position  (vec2<f32>)
//	location 1: tex_coord (vec2<f32>)
//	location 2: color     (vec4<f32>)
func vertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: 32,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
				{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2},
			},
		},
	}
}

// create compiles both shaders and builds the render pipelines for the
// given color target format.
func (p *pipelines) create(format gputypes.TextureFormat) error {
	p.format = format

	flatSPIRV, err := compileToSPIRV(flatShaderSource)
	if err != nil {
		return fmt.Errorf("compile overlay_flat shader: %w", err)
	}
	flatShader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "overlay_flat_shader",
		Source: hal.ShaderSource{SPIRV: flatSPIRV},
	})
	if err != nil {
		return fmt.Errorf("create overlay_flat module: %w", err)
	}
	p.flatShader = flatShader

	texturedSPIRV, err := compileToSPIRV(texturedShaderSource)
	if err != nil {
		return fmt.Errorf("compile overlay_textured shader: %w", err)
	}
	texturedShader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "overlay_textured_shader",
		Source: hal.ShaderSource{SPIRV: texturedSPIRV},
	})
	if err != nil {
		return fmt.Errorf("create overlay_textured module: %w", err)
	}
	p.texturedShader = texturedShader

	// Flat layout: binding 0 is the projection uniform.
	flatLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "overlay_flat_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create overlay_flat layout: %w", err)
	}
	p.flatLayout = flatLayout

	// Textured layout adds the texture and sampler.
	texturedLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "overlay_textured_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create overlay_textured layout: %w", err)
	}
	p.texturedLayout = texturedLayout

	flatPipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "overlay_flat_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.flatLayout},
	})
	if err != nil {
		return fmt.Errorf("create overlay_flat pipeline layout: %w", err)
	}
	p.flatPipeLayout = flatPipeLayout

	texturedPipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "overlay_textured_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.texturedLayout},
	})
	if err != nil {
		return fmt.Errorf("create overlay_textured pipeline layout: %w", err)
	}
	p.texturedPipeLayout = texturedPipeLayout

	sampler, err := p.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "overlay_sampler",
		AddressModeU: gputypes.AddressModeRepeat,
		AddressModeV: gputypes.AddressModeRepeat,
		AddressModeW: gputypes.AddressModeRepeat,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		return fmt.Errorf("create overlay sampler: %w", err)
	}
	p.sampler = sampler

	p.flat, err = p.buildPipeline("overlay_flat_pipeline", p.flatShader, p.flatPipeLayout)
	if err != nil {
		return err
	}
	p.textured, err = p.buildPipeline("overlay_textured_pipeline", p.texturedShader, p.texturedPipeLayout)
	if err != nil {
		return err
	}
	return nil
}

func (p *pipelines) buildPipeline(label string, shader hal.ShaderModule, layout hal.PipelineLayout) (hal.RenderPipeline, error) {
	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label,
		Layout: layout,
		Vertex: hal.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    vertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.format,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	return pipeline, nil
}

// destroy releases all pipeline resources in reverse creation order.
func (p *pipelines) destroy() {
	if p.device == nil {
		return
	}
	if p.textured != nil {
		p.device.DestroyRenderPipeline(p.textured)
		p.textured = nil
	}
	if p.flat != nil {
		p.device.DestroyRenderPipeline(p.flat)
		p.flat = nil
	}
	if p.sampler != nil {
		p.device.DestroySampler(p.sampler)
		p.sampler = nil
	}
	if p.texturedPipeLayout != nil {
		p.device.DestroyPipelineLayout(p.texturedPipeLayout)
		p.texturedPipeLayout = nil
	}
	if p.flatPipeLayout != nil {
		p.device.DestroyPipelineLayout(p.flatPipeLayout)
		p.flatPipeLayout = nil
	}
	if p.texturedLayout != nil {
		p.device.DestroyBindGroupLayout(p.texturedLayout)
		p.texturedLayout = nil
	}
	if p.flatLayout != nil {
		p.device.DestroyBindGroupLayout(p.flatLayout)
		p.flatLayout = nil
	}
	if p.texturedShader != nil {
		p.device.DestroyShaderModule(p.texturedShader)
		p.texturedShader = nil
	}
	if p.flatShader != nil {
		p.device.DestroyShaderModule(p.flatShader)
		p.flatShader = nil
	}
}
