// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws the cursor-follow triangle on the GPU via wgpu/hal.
//
// The renderer owns one pipeline (the embedded WGSL shader compiled into a
// module, a single uniform bind group, triangle-list primitive state) and a
// persistent 16-byte uniform buffer that is rewritten with the current mouse
// position before every frame.
//
// # Key Principle
//
// A Renderer RECEIVES its GPU device from the host, it does NOT create one.
// Standalone use goes through the internal device bootstrap; windowed use
// shares the host application's device via NewFromProvider.
//
// # Render Modes
//
//   - Offscreen: Frame renders into an internal resolve texture, copies it
//     to a staging buffer and reads the pixels back as an *image.RGBA.
//     Used for still-frame and sequence export.
//   - Surface: RenderToView resolves directly into a caller-provided surface
//     texture view. No readback occurs. Used when the triangle runs inside
//     a gogpu window.
//
// # Usage
//
// Offscreen:
//
//	ctx, err := gpu.NewContext()
//	r, err := render.New(ctx.Device(), ctx.Queue(), render.DefaultOptions(256, 256))
//	img, err := r.Frame(lively.MouseUniform{X: 0.25, Y: -0.5})
//
// Inside a gogpu window:
//
//	r, err := render.NewFromProvider(app.GPUContextProvider(), opts)
//	app.OnDraw(func(dc *gogpu.Context) {
//	    sw, sh := dc.SurfaceSize()
//	    r.RenderToView(dc.SurfaceView(), sw, sh, mouse)
//	})
//
// # Thread Safety
//
// A Renderer is NOT safe for concurrent use. Drive it from a single
// goroutine, or use external synchronization.
package render
