// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package wgpu

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/glshare"
	"github.com/gogpu/glshare/backend"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Placeholder resource parameters. A generated name reserves an identity,
// not storage; the translator retargets the name onto a sized resource
// once the guest specifies one.
const (
	placeholderBufferSize = 256
	placeholderTexSize    = 1
)

// Backend allocates host-side object names backed by real GPU resources
// via gogpu/wgpu's HAL.
//
// Thread Safety: Backend is safe for concurrent use. All resource
// operations are protected by a mutex (in practice a GlobalAllocator
// additionally serializes Gen and Delete).
type Backend struct {
	mu       sync.Mutex
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	ready          bool
	externalDevice bool // true when using shared device (don't destroy on Close)

	// nextName drives global-name generation. Starts at 0 so the first
	// name is 1; 0 stays the failure sentinel.
	nextName atomic.Uint32

	// Resource tracking maps global names to hal resources.
	buffers      map[glshare.GlobalName]hal.Buffer
	textures     map[glshare.GlobalName]hal.Texture
	framebuffers map[glshare.GlobalName]struct{}
}

var _ glshare.NameBackend = (*Backend)(nil)

// init registers the wgpu backend on package import.
func init() {
	backend.Register(backend.BackendWGPU, func() glshare.NameBackend {
		return New()
	})
}

// New creates a wgpu name backend. Call Init (or SetDeviceProvider)
// before generating names.
func New() *Backend {
	return &Backend{
		buffers:      make(map[glshare.GlobalName]hal.Buffer),
		textures:     make(map[glshare.GlobalName]hal.Texture),
		framebuffers: make(map[glshare.GlobalName]struct{}),
	}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendWGPU
}

// Init brings up the GPU device. Returns an error when no usable adapter
// exists; the backend stays unready and every Gen yields 0.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ready {
		return nil
	}
	if err := b.initGPU(); err != nil {
		return err
	}
	b.ready = true
	return nil
}

// Close destroys every resource still alive and drops the device (unless
// it is shared with the host application).
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.destroyResourcesLocked()
	if !b.externalDevice && b.device != nil {
		b.device.Destroy()
	}
	b.device = nil
	b.queue = nil
	if b.instance != nil {
		b.instance.Destroy()
		b.instance = nil
	}
	b.ready = false
	b.externalDevice = false
}

// destroyResourcesLocked frees all tracked HAL resources. Requires b.mu.
func (b *Backend) destroyResourcesLocked() {
	if b.device != nil {
		for _, buf := range b.buffers {
			b.device.DestroyBuffer(buf)
		}
		for _, tex := range b.textures {
			b.device.DestroyTexture(tex)
		}
	}
	b.buffers = make(map[glshare.GlobalName]hal.Buffer)
	b.textures = make(map[glshare.GlobalName]hal.Texture)
	b.framebuffers = make(map[glshare.GlobalName]struct{})
}

// Gen allocates one fresh global name of the given type, backed by a
// placeholder resource. Shader and out-of-range types, and any HAL
// failure, yield 0.
func (b *Backend) Gen(t glshare.ObjectType) glshare.GlobalName {
	if !t.Valid() || t == glshare.ObjectShader {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.ready {
		return 0
	}

	switch t {
	case glshare.ObjectVertexBuffer:
		return b.newBufferLocked(placeholderBufferSize)
	case glshare.ObjectTexture:
		return b.newTextureLocked(placeholderTexSize, placeholderTexSize,
			gputypes.TextureFormatRGBA8Unorm,
			gputypes.TextureUsageCopySrc|gputypes.TextureUsageCopyDst|gputypes.TextureUsageTextureBinding)
	case glshare.ObjectRenderbuffer:
		return b.newTextureLocked(placeholderTexSize, placeholderTexSize,
			gputypes.TextureFormatRGBA8Unorm,
			gputypes.TextureUsageCopyDst|gputypes.TextureUsageRenderAttachment)
	case glshare.ObjectFramebuffer:
		name := glshare.GlobalName(b.nextName.Add(1))
		b.framebuffers[name] = struct{}{}
		return name
	default:
		return 0
	}
}

// Delete retires a global name and destroys its HAL resource.
// Unknown names are a no-op.
func (b *Backend) Delete(t glshare.ObjectType, name glshare.GlobalName) {
	if !t.Valid() || t == glshare.ObjectShader || name == 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	switch t {
	case glshare.ObjectVertexBuffer:
		if buf, ok := b.buffers[name]; ok {
			delete(b.buffers, name)
			if b.device != nil {
				b.device.DestroyBuffer(buf)
			}
		}
	case glshare.ObjectTexture, glshare.ObjectRenderbuffer:
		if tex, ok := b.textures[name]; ok {
			delete(b.textures, name)
			if b.device != nil {
				b.device.DestroyTexture(tex)
			}
		}
	case glshare.ObjectFramebuffer:
		delete(b.framebuffers, name)
	}
}

// CreateBuffer allocates a sized vertex buffer and returns its global
// name. The translator pairs this with ShareGroup.ReplaceGlobalName when
// the guest specifies buffer storage. Returns 0 on failure.
func (b *Backend) CreateBuffer(size uint64) glshare.GlobalName {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.ready {
		return 0
	}
	return b.newBufferLocked(size)
}

// CreateTexture allocates a sized texture and returns its global name.
// Returns 0 on failure.
func (b *Backend) CreateTexture(width, height uint32, format gputypes.TextureFormat) glshare.GlobalName {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.ready {
		return 0
	}
	return b.newTextureLocked(width, height, format,
		gputypes.TextureUsageCopySrc|gputypes.TextureUsageCopyDst|gputypes.TextureUsageTextureBinding)
}

// newBufferLocked creates a HAL buffer and records it under a fresh name.
// Requires b.mu.
func (b *Backend) newBufferLocked(size uint64) glshare.GlobalName {
	desc := &hal.BufferDescriptor{
		Label: "glshare-vbo",
		Size:  size,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	}

	buf, err := b.device.CreateBuffer(desc)
	if err != nil {
		return 0
	}

	name := glshare.GlobalName(b.nextName.Add(1))
	b.buffers[name] = buf
	return name
}

// newTextureLocked creates a HAL texture and records it under a fresh
// name. Requires b.mu.
func (b *Backend) newTextureLocked(width, height uint32, format gputypes.TextureFormat, usage gputypes.TextureUsage) glshare.GlobalName {
	desc := &hal.TextureDescriptor{
		Label: "glshare-tex",
		Size: hal.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         usage,
	}

	tex, err := b.device.CreateTexture(desc)
	if err != nil {
		return 0
	}

	name := glshare.GlobalName(b.nextName.Add(1))
	b.textures[name] = tex
	return name
}
