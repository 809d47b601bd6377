//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/lively"
	"github.com/gogpu/lively/internal/gpu"
)

// Common errors returned by Renderer operations.
var (
	// ErrRendererClosed is returned when operations are attempted on a
	// closed renderer.
	ErrRendererClosed = errors.New("render: renderer is closed")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("render: invalid dimensions")

	// ErrInvalidSampleCount is returned when the sample count is not 1 or 4.
	ErrInvalidSampleCount = errors.New("render: sample count must be 1 or 4")

	// ErrNoDevice is returned when no GPU device or queue is available.
	ErrNoDevice = errors.New("render: no GPU device")

	// ErrNotSurfaceView is returned when the value passed to RenderToView is
	// not a hal texture view.
	ErrNotSurfaceView = errors.New("render: target is not a hal.TextureView")
)

// DefaultSampleCount is the MSAA sample count used when Options leaves it
// unset.
const DefaultSampleCount = 4

// gpuWaitTimeout bounds the fence wait after each submit.
const gpuWaitTimeout = 5 * time.Second

// Options configures a Renderer.
type Options struct {
	// Width, Height are the offscreen frame dimensions in pixels.
	Width  int
	Height int

	// SampleCount is the MSAA sample count, 1 or 4. Zero means
	// DefaultSampleCount.
	SampleCount int

	// ClearColor fills the background before the triangle is drawn.
	// The zero value is transparent black; DefaultOptions seeds green.
	ClearColor lively.Color

	// Format is the color target format. Undefined means BGRA8Unorm,
	// or the provider's surface format when constructed via
	// NewFromProvider.
	Format gputypes.TextureFormat
}

// DefaultOptions returns Options with the conventional defaults: 4x MSAA and
// a green clear color.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:       width,
		Height:      height,
		SampleCount: DefaultSampleCount,
		ClearColor:  lively.DefaultClearColor,
	}
}

// Renderer draws the cursor-follow triangle with a wgpu/hal device.
//
// It owns one pipeline, one persistent uniform buffer that is rewritten with
// the mouse position before every frame, and the color textures for the
// current render mode. Offscreen and surface rendering may be mixed on the
// same renderer; textures are recreated when the mode or size changes.
//
// Renderer is NOT safe for concurrent use.
type Renderer struct {
	device hal.Device
	queue  hal.Queue

	opts     Options
	pipeline *cursorPipeline
	targets  targetSet

	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup
	scratch    [lively.UniformSize]byte

	closed bool
}

// New creates a Renderer on the given device and queue.
//
// The device and queue are borrowed from the caller and are not destroyed by
// Close. Returns ErrNoDevice, ErrInvalidDimensions, or ErrInvalidSampleCount
// for bad arguments.
func New(device hal.Device, queue hal.Queue, opts Options) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, opts.Width, opts.Height)
	}
	if opts.SampleCount == 0 {
		opts.SampleCount = DefaultSampleCount
	}
	if opts.SampleCount != 1 && opts.SampleCount != 4 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleCount, opts.SampleCount)
	}
	if device == nil || queue == nil {
		return nil, ErrNoDevice
	}
	if opts.Format == gputypes.TextureFormatUndefined {
		opts.Format = gputypes.TextureFormatBGRA8Unorm
	}

	// Route the GPU internals' log records to the engine logger.
	gpu.SetLogger(lively.Logger())

	pipeline, err := newCursorPipeline(device, opts.Format, uint32(opts.SampleCount))
	if err != nil {
		return nil, err
	}

	uniformBuf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "cursor_uniform",
		Size:  lively.UniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		pipeline.destroy()
		return nil, fmt.Errorf("create uniform buffer: %w", err)
	}

	bindGroup, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "cursor_bind",
		Layout: pipeline.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: lively.UniformSize,
			}},
		},
	})
	if err != nil {
		device.DestroyBuffer(uniformBuf)
		pipeline.destroy()
		return nil, fmt.Errorf("create bind group: %w", err)
	}

	r := &Renderer{
		device:     device,
		queue:      queue,
		opts:       opts,
		pipeline:   pipeline,
		uniformBuf: uniformBuf,
		bindGroup:  bindGroup,
	}

	// Seed the uniform so the buffer is never read uninitialized.
	r.writeMouse(lively.MouseUniform{})

	lively.Logger().Debug("renderer created",
		"width", opts.Width, "height", opts.Height,
		"samples", opts.SampleCount)
	return r, nil
}

// NewFromProvider creates a Renderer sharing the host application's GPU
// device. The provider should come from gogpu.App.GPUContextProvider() and
// must expose the underlying hal device via HalProvider.
//
// When opts.Format is undefined, the provider's surface format is used.
func NewFromProvider(provider DeviceHandle, opts Options) (*Renderer, error) {
	if provider == nil {
		return nil, ErrNoDevice
	}
	device, queue, err := resolveHal(provider)
	if err != nil {
		return nil, err
	}
	if opts.Format == gputypes.TextureFormatUndefined {
		opts.Format = provider.SurfaceFormat()
	}
	return New(device, queue, opts)
}

// Size returns the offscreen frame dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.opts.Width, r.opts.Height
}

// Frame renders one frame at the given mouse position and reads the pixels
// back into an *image.RGBA of the configured dimensions.
func (r *Renderer) Frame(mouse lively.MouseUniform) (*image.RGBA, error) {
	if r.closed {
		return nil, ErrRendererClosed
	}

	r.writeMouse(mouse)

	w, h := uint32(r.opts.Width), uint32(r.opts.Height)
	samples := uint32(r.opts.SampleCount)
	if err := r.targets.ensureOffscreen(r.device, w, h, samples, r.opts.Format); err != nil {
		return nil, err
	}

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "cursor_encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("cursor_frame"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	// With MSAA the pass resolves into the single-sample texture; without
	// it the resolve texture is the color attachment itself.
	attachment := hal.RenderPassColorAttachment{
		View:       r.targets.resolveView,
		LoadOp:     gputypes.LoadOpClear,
		StoreOp:    gputypes.StoreOpStore,
		ClearValue: clearValue(r.opts.ClearColor),
	}
	if samples > 1 {
		attachment.View = r.targets.msaaView
		attachment.ResolveTarget = r.targets.resolveView
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label:            "cursor_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{attachment},
	})
	rp.SetPipeline(r.pipeline.pipeline)
	rp.SetBindGroup(0, r.bindGroup, nil)
	rp.Draw(lively.VertexCount, 1, 0, 0)
	rp.End()

	// After the pass the resolve texture is in render-attachment layout;
	// copying requires transfer-src. Transition, copy, transition back so
	// the next frame's pass sees the layout it expects.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.targets.resolveTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	bytesPerRow := w * 4
	alignedBytesPerRow := gpu.AlignBytesPerRow(bytesPerRow)
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)

	stagingBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "cursor_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer r.device.DestroyBuffer(stagingBuf)

	encoder.CopyTextureToBuffer(r.targets.resolveTex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: r.targets.resolveTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.targets.resolveTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	if err := r.submitAndWait(cmdBuf); err != nil {
		return nil, err
	}

	readback := make([]byte, stagingSize)
	if err := r.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return nil, fmt.Errorf("readback: %w", err)
	}

	tight := gpu.CompactRows(readback, bytesPerRow, alignedBytesPerRow, h)
	img := image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))
	if r.opts.Format == gputypes.TextureFormatBGRA8Unorm {
		gpu.ConvertBGRAToRGBA(tight, img.Pix, r.opts.Width*r.opts.Height)
	} else {
		copy(img.Pix, tight)
	}
	return img, nil
}

// RenderToView renders one frame directly into a surface texture view, the
// zero-copy path for windowed rendering. The view must be a hal.TextureView
// (gogpu's Context.SurfaceView() provides one); width and height are the
// surface dimensions in pixels.
//
// The caller retains ownership of the view; the renderer never destroys it.
func (r *Renderer) RenderToView(view any, width, height int, mouse lively.MouseUniform) error {
	if r.closed {
		return ErrRendererClosed
	}
	sv, ok := view.(hal.TextureView)
	if !ok || sv == nil {
		return ErrNotSurfaceView
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	r.writeMouse(mouse)

	w, h := uint32(width), uint32(height)
	samples := uint32(r.opts.SampleCount)
	if err := r.targets.ensureSurface(r.device, w, h, samples, r.opts.Format); err != nil {
		return err
	}

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "cursor_surface_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("cursor_surface_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	// MSAA resolves straight into the surface view; single-sample draws
	// into it directly.
	attachment := hal.RenderPassColorAttachment{
		View:       sv,
		LoadOp:     gputypes.LoadOpClear,
		StoreOp:    gputypes.StoreOpStore,
		ClearValue: clearValue(r.opts.ClearColor),
	}
	if samples > 1 {
		attachment.View = r.targets.msaaView
		attachment.ResolveTarget = sv
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label:            "cursor_surface_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{attachment},
	})
	rp.SetPipeline(r.pipeline.pipeline)
	rp.SetBindGroup(0, r.bindGroup, nil)
	rp.Draw(lively.VertexCount, 1, 0, 0)
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	// Wait for the GPU before the caller presents the surface.
	return r.submitAndWait(cmdBuf)
}

// Close releases all GPU resources held by the renderer. The device and
// queue are left untouched. Close is idempotent.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true

	if r.bindGroup != nil {
		r.device.DestroyBindGroup(r.bindGroup)
		r.bindGroup = nil
	}
	if r.uniformBuf != nil {
		r.device.DestroyBuffer(r.uniformBuf)
		r.uniformBuf = nil
	}
	r.targets.destroy(r.device)
	if r.pipeline != nil {
		r.pipeline.destroy()
		r.pipeline = nil
	}
}

// writeMouse encodes the mouse position into the persistent uniform buffer.
func (r *Renderer) writeMouse(mouse lively.MouseUniform) {
	mouse.PutBytes(r.scratch[:])
	r.queue.WriteBuffer(r.uniformBuf, 0, r.scratch[:])
}

// submitAndWait submits one command buffer and blocks until the fence
// signals or the wait times out.
func (r *Renderer) submitAndWait(cmdBuf hal.CommandBuffer) error {
	fence, err := r.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer r.device.DestroyFence(fence)

	if err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := r.device.Wait(fence, 1, gpuWaitTimeout)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}
	return nil
}

// clearValue converts an engine color to the hal clear value.
func clearValue(c lively.Color) gputypes.Color {
	return gputypes.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}
