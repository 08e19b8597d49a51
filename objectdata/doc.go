// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package objectdata provides the per-object payloads a GL-style
// translation layer stores in a share group's data store.
//
// glshare treats object data as opaque; these types are what a translator
// actually keeps per name: buffer storage parameters, texture and
// renderbuffer dimensions and formats, framebuffer attachment bindings,
// and shader sources with their compiled form.
//
//	grp.SetObjectData(glshare.ObjectTexture, local, &objectdata.TextureData{
//	    Width:  256,
//	    Height: 256,
//	    Format: gputypes.TextureFormatRGBA8Unorm,
//	})
package objectdata
