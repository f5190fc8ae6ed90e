// Package wgpu renders overlay frames through the wgpu HAL.
//
// The backend registers itself with the render registry under "wgpu".
// It compiles two WGSL pipelines at first draw, a flat-color one for
// untextured geometry and a textured one for atlas and image quads,
// both with premultiplied alpha blending so overlays composite over
// whatever the surface already holds.
//
// Devices come from three places: Open creates a standalone Vulkan
// device, New wraps an existing hal.Device and hal.Queue, and
// FromProvider adopts a shared device from a host exposing HAL handles
// (the gogpu convention of HalDevice() any / HalQueue() any).
package wgpu
