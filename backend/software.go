package backend

import (
	"sync/atomic"

	"github.com/gogpu/glshare"
)

// SoftwareBackend hands out host names from per-type counters without
// creating any real resources. It is the fallback backend and the one
// tests run against: allocation never fails, deletion only counts.
type SoftwareBackend struct {
	initialized atomic.Bool

	// next[t] is the last name handed out for type t. Counters start at
	// 0 so the first allocated name is 1; 0 stays the failure sentinel.
	next [glshare.ObjectTypeCount]atomic.Uint32

	allocated atomic.Uint64
	released  atomic.Uint64
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() glshare.NameBackend {
		return NewSoftwareBackend()
	})
}

// NewSoftwareBackend creates a new counter-based name backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	b.initialized.Store(true)
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	b.initialized.Store(false)
}

// Gen allocates one fresh name for the given type by advancing its
// counter. Shader and out-of-range types yield 0.
func (b *SoftwareBackend) Gen(t glshare.ObjectType) glshare.GlobalName {
	if !t.Valid() || t == glshare.ObjectShader {
		return 0
	}

	b.allocated.Add(1)
	return glshare.GlobalName(b.next[t].Add(1))
}

// Delete retires a name. Nothing real backs the name, so this only counts
// the release.
func (b *SoftwareBackend) Delete(t glshare.ObjectType, name glshare.GlobalName) {
	if !t.Valid() || t == glshare.ObjectShader || name == 0 {
		return
	}
	b.released.Add(1)
}

// Allocated returns the number of names handed out since creation.
func (b *SoftwareBackend) Allocated() uint64 {
	return b.allocated.Load()
}

// Released returns the number of names retired since creation.
func (b *SoftwareBackend) Released() uint64 {
	return b.released.Load()
}
