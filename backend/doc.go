// Package backend provides a pluggable host-name backend abstraction.
//
// The backend package lets glshare allocate its host-side object names from
// different implementations: counter-based software names for tests and dry
// runs, or real GPU resources via gogpu/wgpu.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The software backend is automatically registered on import:
//
//	import _ "github.com/gogpu/glshare/backend"
//
// The wgpu backend registers itself when its package is imported:
//
//	import _ "github.com/gogpu/glshare/backend/wgpu"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	// Get the default (best available) backend
//	b := backend.Default()
//
//	// Or request a specific backend
//	b := backend.Get("software")
//
// # Usage with Manager
//
//	b, err := backend.InitDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	mgr := glshare.NewManager(b)
//
// # Available Backends
//
// - "software": per-type counters, no real resources (always available)
// - "wgpu": real GPU objects via gogpu/wgpu (needs a Vulkan/Metal/DX12 GPU)
package backend
