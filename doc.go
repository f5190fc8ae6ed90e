// Package overlay provides an immediate-mode 2D overlay renderer.
//
// # Overview
//
// overlay rasterizes shapes (lines, rectangles, circles, triangles) and text
// on top of an existing GPU surface each frame. Primitives are tessellated
// into triangle lists and batched into contiguous vertex runs keyed by
// texture identity, so the renderer issues one draw call per distinct
// texture per frame.
//
// # Quick Start
//
//	dev, err := wgpu.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ov, err := overlay.New(dev)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := ov.LoadFontFromPath("NotoSansMono-Regular.ttf", 24, 0); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Each render cycle:
//	frame := ov.NewFrame()
//	line := overlay.NewLine(overlay.Pt(0, 0), overlay.Pt(100, 100))
//	line.Thickness = 2
//	frame.Add(line)
//	label := overlay.NewText("hello")
//	label.Position = overlay.Pt(10, 10)
//	frame.Add(label)
//	if err := ov.Draw(target, frame); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: Overlay, Frame, the primitive set, Point, Mat4, Color
//   - font: glyph rasterization and single-texture atlas construction
//   - render: the backend contract (Device, Texture, Target) and registry
//   - render/wgpu: WebGPU backend via gogpu/wgpu
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// # Concurrency
//
// Frame construction is single-threaded: a Frame is owned by the render loop
// that created it. Fonts and textures may be loaded at any time except
// concurrently with frame construction; the registries are read-only while a
// frame is being built.
package overlay

// Version is the current version of the library.
const Version = "0.2.0"
