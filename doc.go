// Package lively implements a cursor-following live-wallpaper scene for Go.
//
// # Overview
//
// lively renders a small red triangle over a solid clear color and moves it
// with the pointer. The scene is defined once, in WGSL (shaders/cursor.wgsl),
// and this package carries everything needed to drive it: the embedded shader
// source, the mouse uniform layout the host writes each frame, and a CPU
// reference implementation of both shader stages so the visual contract is
// testable without a GPU.
//
// # Quick Start
//
//	import "github.com/gogpu/lively"
//
//	// Evaluate the scene on the CPU
//	img, err := lively.Rasterize(256, 256, lively.MouseUniform{X: 0, Y: 0}, nil)
//
//	// Or feed the GPU renderer (see package render)
//	src := lively.ShaderSource()
//
// # Packages
//
//   - lively: scene model, shader source, uniform layout, CPU reference
//   - render: GPU renderer on gogpu/wgpu (offscreen or to a surface view)
//   - pointer: pointer tracker and Linux evdev input source
//   - host: windowed wallpaper host on gogpu
//   - config: YAML configuration
//   - export: PNG single-frame and sequence export
//
// # Coordinate System
//
// The uniform and all vertex math live in normalized device coordinates:
// X and Y in [-1, 1], Y increasing upward. Pixel-space positions (pointer
// input, images) have the origin at the top-left with Y increasing downward;
// NDCToPixel and PixelToNDC convert between the two.
package lively

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
