// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package wgpu

import (
	"testing"

	"github.com/gogpu/glshare"
	"github.com/gogpu/glshare/backend"
)

func TestBackendName(t *testing.T) {
	b := New()
	if b.Name() != backend.BackendWGPU {
		t.Errorf("Name() = %q, want %q", b.Name(), backend.BackendWGPU)
	}
}

func TestBackendRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.BackendWGPU) {
		t.Error("wgpu backend not registered on import")
	}
}

func TestGenBeforeInit(t *testing.T) {
	b := New()
	if got := b.Gen(glshare.ObjectTexture); got != 0 {
		t.Errorf("Gen before Init = %d, want 0", got)
	}
	if got := b.CreateBuffer(1024); got != 0 {
		t.Errorf("CreateBuffer before Init = %d, want 0", got)
	}
}

func TestGenShaderAlwaysZero(t *testing.T) {
	b := New()
	if got := b.Gen(glshare.ObjectShader); got != 0 {
		t.Errorf("Gen(Shader) = %d, want 0", got)
	}
}

func TestSetDeviceProviderRejectsBadProvider(t *testing.T) {
	b := New()
	if err := b.SetDeviceProvider(struct{}{}); err == nil {
		t.Error("SetDeviceProvider accepted a provider without HAL accessors")
	}
}

func TestInitAndGen(t *testing.T) {
	b := New()
	if err := b.Init(); err != nil {
		t.Skipf("no usable GPU: %v", err)
	}
	defer b.Close()

	name := b.Gen(glshare.ObjectTexture)
	if name == 0 {
		t.Fatal("Gen(Texture) = 0 on an initialized backend")
	}
	b.Delete(glshare.ObjectTexture, name)

	buf := b.Gen(glshare.ObjectVertexBuffer)
	if buf == 0 {
		t.Fatal("Gen(VertexBuffer) = 0 on an initialized backend")
	}
	b.Delete(glshare.ObjectVertexBuffer, buf)

	fb := b.Gen(glshare.ObjectFramebuffer)
	if fb == 0 {
		t.Fatal("Gen(Framebuffer) = 0 on an initialized backend")
	}
	b.Delete(glshare.ObjectFramebuffer, fb)
}
