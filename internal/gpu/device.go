//go:build !nogpu

// Package gpu bootstraps the wgpu/hal device stack for the lively renderer
// and carries the pixel-format helpers its readback path shares.
package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

var (
	// ErrNoBackend indicates no hal backend registered itself; the binary
	// was probably built without a backend import.
	ErrNoBackend = errors.New("gpu: vulkan backend not available")

	// ErrNoAdapter indicates the backend enumerated zero GPU adapters.
	ErrNoAdapter = errors.New("gpu: no GPU adapters found")
)

// Context owns a self-created hal instance, device and queue. Renderers
// that receive a shared device from a windowing host do not use Context;
// it exists for headless rendering.
type Context struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	name     string
}

// NewContext creates a hal instance, picks an adapter (a discrete or
// integrated GPU when present, otherwise whatever enumerates first) and
// opens a device on it.
func NewContext() (*Context, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, ErrNoBackend
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoAdapter
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
		return nil, fmt.Errorf("open device: %w", err)
	}

	slogger().Info("GPU adapter selected", "name", selected.Info.Name)

	return &Context{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
		name:     selected.Info.Name,
	}, nil
}

// Device returns the opened hal device.
func (c *Context) Device() hal.Device { return c.device }

// Queue returns the device's queue.
func (c *Context) Queue() hal.Queue { return c.queue }

// AdapterName returns the name of the selected adapter.
func (c *Context) AdapterName() string { return c.name }

// Close destroys the device and instance. Safe to call more than once.
func (c *Context) Close() {
	if c.device != nil {
		c.device.Destroy()
		c.device = nil
	}
	if c.instance != nil {
		c.instance.Destroy()
		c.instance = nil
	}
	c.queue = nil
}
