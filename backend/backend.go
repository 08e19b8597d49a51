package backend

import (
	"errors"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend name constants.
const (
	// BackendSoftware is the name of the counter-based software backend.
	BackendSoftware = "software"
	// BackendWGPU is the name of the GPU backend (gogpu/wgpu).
	BackendWGPU = "wgpu"
)
