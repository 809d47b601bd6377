//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"
)

// resolveHal extracts the hal device and queue from a provider. The provider
// must implement HalProvider and the returned values must be the concrete
// hal types.
func resolveHal(provider DeviceHandle) (hal.Device, hal.Queue, error) {
	hp, ok := provider.(HalProvider)
	if !ok {
		return nil, nil, fmt.Errorf("render: provider %T does not implement HalProvider", provider)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("render: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("render: provider HalQueue is not hal.Queue")
	}
	return device, queue, nil
}
