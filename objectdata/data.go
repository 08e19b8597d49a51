// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package objectdata

import (
	"github.com/gogpu/glshare"
	"github.com/gogpu/gputypes"
)

// BufferData is the payload stored for a vertex buffer name: the storage
// parameters the guest last specified, so the translator can recreate the
// host buffer on rebind.
type BufferData struct {
	// Size is the buffer storage size in bytes, 0 before first definition.
	Size uint64

	// Usage is the host-side usage the translator allocates with.
	Usage gputypes.BufferUsage

	// Dirty marks storage as specified by the guest but not yet realized
	// on the host object.
	Dirty bool
}

// TextureData is the payload stored for a texture name.
type TextureData struct {
	// Width and Height are the level-0 dimensions in pixels.
	Width  uint32
	Height uint32

	// MipLevels is the number of defined mip levels (1+ once specified).
	MipLevels uint32

	// Format is the host-side pixel format.
	Format gputypes.TextureFormat

	// Target is the guest's texture target enum, kept verbatim.
	Target uint32

	// WasBound reports whether the guest ever bound the name. GL creates
	// texture state on first bind, not on name generation.
	WasBound bool
}

// RenderbufferData is the payload stored for a renderbuffer name.
type RenderbufferData struct {
	// Width and Height are the storage dimensions in pixels.
	Width  uint32
	Height uint32

	// Format is the host-side pixel format.
	Format gputypes.TextureFormat

	// Samples is the multisample count (1 for single-sampled storage).
	Samples uint32
}

// Attachment identifies one framebuffer attachment: which named object is
// attached and at which attachment point.
type Attachment struct {
	// Point is the guest's attachment point enum, kept verbatim.
	Point uint32

	// Type is the attached object's type (texture or renderbuffer).
	Type glshare.ObjectType

	// Name is the attached object's local name within the share group.
	Name glshare.LocalName
}

// FramebufferData is the payload stored for a framebuffer name. The
// framebuffer itself owns no host storage; it is resolved through its
// attachments at render time.
type FramebufferData struct {
	// Attachments holds the current attachment bindings.
	Attachments []Attachment
}

// Attach records an attachment binding, replacing any previous binding at
// the same point.
func (f *FramebufferData) Attach(point uint32, t glshare.ObjectType, name glshare.LocalName) {
	for i := range f.Attachments {
		if f.Attachments[i].Point == point {
			f.Attachments[i].Type = t
			f.Attachments[i].Name = name
			return
		}
	}
	f.Attachments = append(f.Attachments, Attachment{Point: point, Type: t, Name: name})
}

// Detach removes the binding at the given attachment point, if any.
func (f *FramebufferData) Detach(point uint32) {
	for i := range f.Attachments {
		if f.Attachments[i].Point == point {
			f.Attachments = append(f.Attachments[:i], f.Attachments[i+1:]...)
			return
		}
	}
}

// AttachmentAt returns the binding at the given point and whether one
// exists.
func (f *FramebufferData) AttachmentAt(point uint32) (Attachment, bool) {
	for _, a := range f.Attachments {
		if a.Point == point {
			return a, true
		}
	}
	return Attachment{}, false
}
