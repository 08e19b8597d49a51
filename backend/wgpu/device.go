// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package wgpu

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/glshare"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// DeviceHandle provides GPU device access from a host application.
//
// Hosts that already own a GPU device (e.g., a gogpu.App) implement
// gpucontext.DeviceProvider and pass it to SetDeviceProvider, so the name
// backend shares the host's device instead of bringing up its own.
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// glshare-specific name while staying compatible with the gpucontext
// ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// initGPU brings up a HAL instance, picks an adapter and opens a device.
// Called with b.mu held.
func (b *Backend) initGPU() error {
	halBackend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("wgpu: vulkan backend not available")
	}
	instance, err := halBackend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("wgpu: create instance: %w", err)
	}
	b.instance = instance

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		b.instance = nil
		return fmt.Errorf("wgpu: no GPU adapters found")
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
		b.instance = nil
		return fmt.Errorf("wgpu: open device: %w", err)
	}
	b.device = openDev.Device
	b.queue = openDev.Queue

	glshare.Logger().Info("wgpu name backend initialized",
		slog.String("adapter", selected.Info.Name))
	return nil
}

// SetDeviceProvider switches the backend to a shared GPU device from an
// external provider. The provider must expose HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue (gogpu's device
// providers do).
func (b *Backend) SetDeviceProvider(provider any) error {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return fmt.Errorf("wgpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return fmt.Errorf("wgpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("wgpu: provider HalQueue is not hal.Queue")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// Drop our own device if we created one.
	b.destroyResourcesLocked()
	if !b.externalDevice && b.device != nil {
		b.device.Destroy()
	}
	if b.instance != nil {
		b.instance.Destroy()
		b.instance = nil
	}

	b.device = device
	b.queue = queue
	b.externalDevice = true
	b.ready = true

	glshare.Logger().Info("wgpu name backend switched to shared GPU device")
	return nil
}
