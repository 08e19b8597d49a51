// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu provides a name backend that allocates real GPU objects
// through gogpu/wgpu's hardware abstraction layer.
//
// Vertex buffer names are backed by hal.Buffer, texture and renderbuffer
// names by hal.Texture. Framebuffer names are container identifiers with no
// HAL resource of their own (attachment resolution happens at render time,
// outside this package). Shader names are never allocated here.
//
// A freshly generated name is backed by a placeholder resource; when the
// guest specifies real storage, the translator creates a sized resource
// with CreateBuffer or CreateTexture and retargets the local name via
// ShareGroup.ReplaceGlobalName.
//
// Import the package to register the backend:
//
//	import _ "github.com/gogpu/glshare/backend/wgpu"
//
// If no Vulkan/Metal/DX12 device is available, Init returns an error and
// callers fall back to the software backend.
package wgpu
