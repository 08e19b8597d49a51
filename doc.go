// Package glshare manages object name translation for GL-style command
// translation layers in the GoGPU ecosystem.
//
// # Overview
//
// A guest graphics client names its buffers, textures, renderbuffers,
// framebuffers and shaders with its own private identifiers. glshare maps
// those local names to the global names of real host-side objects, so that
// several contexts can share one set of host objects (a "share group")
// while unrelated contexts stay isolated.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glshare"
//	    "github.com/gogpu/glshare/backend"
//	)
//
//	mgr := glshare.NewManager(backend.MustDefault())
//
//	// Each guest context resolves its share group by an opaque key.
//	grp := mgr.CreateShareGroup(1)
//
//	// Generate a texture name: local is what the guest sees,
//	// the global name identifies the real host object.
//	local := grp.GenName(glshare.ObjectTexture, 0, true)
//	global := grp.Global(glshare.ObjectTexture, local)
//	_ = global
//
//	// A second context joins the same namespace.
//	mgr.AttachShareGroup(2, 1)
//
// # Architecture
//
// The library is organized into four layers:
//   - NameSpace: per-type local<->global bijection (no lock of its own)
//   - GlobalAllocator: locked front end to the name backend
//   - ShareGroup: per-group aggregate of namespaces, object data and
//     texture reference counts under one lock
//   - Manager: opaque key -> share group registry with attach aliasing
//
// Host-side allocation is pluggable through the backend package: the
// software backend hands out names from counters (tests, dry runs), the
// wgpu backend creates real GPU resources via gogpu/wgpu.
//
// # Error Model
//
// Lookup misses, out-of-range object types and backend allocation failures
// all surface as zero/nil/false sentinels, never as panics. Callers branch
// on the sentinel; nothing in this package retries.
package glshare

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
