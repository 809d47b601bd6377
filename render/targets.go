//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// targetSet holds the color textures for one render mode.
//
//   - Offscreen: an optional MSAA color texture plus a single-sample resolve
//     texture (RenderAttachment | CopySrc) that readback copies from.
//   - Surface: only the MSAA color texture; the caller's surface view is the
//     resolve target. With one sample not even that is needed.
type targetSet struct {
	msaaTex     hal.Texture
	msaaView    hal.TextureView
	resolveTex  hal.Texture
	resolveView hal.TextureView
	width       uint32
	height      uint32
	samples     uint32
}

// ensureOffscreen creates or recreates the textures for offscreen readback
// rendering. If dimensions and sample count match existing textures, this is
// a no-op. With samples > 1 both the MSAA and resolve textures are created;
// with a single sample the resolve texture doubles as the color attachment.
func (ts *targetSet) ensureOffscreen(device hal.Device, w, h, samples uint32, format gputypes.TextureFormat) error {
	if ts.width == w && ts.height == h && ts.samples == samples && ts.resolveTex != nil {
		return nil
	}
	ts.destroy(device)

	size := hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1}

	if samples > 1 {
		if err := ts.createMSAA(device, size, samples, format); err != nil {
			return err
		}
	}

	resolveTex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "cursor_resolve",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		ts.destroy(device)
		return fmt.Errorf("create resolve texture: %w", err)
	}
	ts.resolveTex = resolveTex

	resolveView, err := device.CreateTextureView(resolveTex, &hal.TextureViewDescriptor{
		Label: "cursor_resolve_view",
	})
	if err != nil {
		ts.destroy(device)
		return fmt.Errorf("create resolve view: %w", err)
	}
	ts.resolveView = resolveView

	ts.width = w
	ts.height = h
	ts.samples = samples
	return nil
}

// ensureSurface creates or recreates only the MSAA color texture for surface
// rendering. The caller-provided surface view serves as the resolve target,
// so no resolve texture is created. With a single sample no textures are
// needed at all.
func (ts *targetSet) ensureSurface(device hal.Device, w, h, samples uint32, format gputypes.TextureFormat) error {
	if samples <= 1 {
		ts.destroy(device)
		ts.width = w
		ts.height = h
		ts.samples = samples
		return nil
	}
	if ts.width == w && ts.height == h && ts.samples == samples && ts.msaaTex != nil {
		return nil
	}
	ts.destroy(device)

	size := hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1}
	if err := ts.createMSAA(device, size, samples, format); err != nil {
		return err
	}

	ts.width = w
	ts.height = h
	ts.samples = samples
	return nil
}

func (ts *targetSet) createMSAA(device hal.Device, size hal.Extent3D, samples uint32, format gputypes.TextureFormat) error {
	msaaTex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "cursor_msaa_color",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   samples,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("create MSAA color texture: %w", err)
	}
	ts.msaaTex = msaaTex

	msaaView, err := device.CreateTextureView(msaaTex, &hal.TextureViewDescriptor{
		Label: "cursor_msaa_color_view",
	})
	if err != nil {
		ts.destroy(device)
		return fmt.Errorf("create MSAA color view: %w", err)
	}
	ts.msaaView = msaaView
	return nil
}

// destroy releases all texture resources and resets dimensions. Views are
// destroyed before their textures.
func (ts *targetSet) destroy(device hal.Device) {
	if ts.resolveView != nil {
		device.DestroyTextureView(ts.resolveView)
		ts.resolveView = nil
	}
	if ts.resolveTex != nil {
		device.DestroyTexture(ts.resolveTex)
		ts.resolveTex = nil
	}
	if ts.msaaView != nil {
		device.DestroyTextureView(ts.msaaView)
		ts.msaaView = nil
	}
	if ts.msaaTex != nil {
		device.DestroyTexture(ts.msaaTex)
		ts.msaaTex = nil
	}
	ts.width = 0
	ts.height = 0
	ts.samples = 0
}
