package glshare

import (
	"log/slog"
	"sync"
)

// GlobalAllocator is the process-wide, thread-safe front end to a
// NameBackend. Share groups call it to mint and retire global names; it is
// the lower half of the permitted lock nesting (group lock -> allocator
// lock) and never calls back up.
//
// The per-type delete dispatch table is captured from the backend exactly
// once, on the first Allocate or Release, under the allocator lock. Binding
// from both paths means a release that arrives before any allocation still
// finds a bound table.
type GlobalAllocator struct {
	mu      sync.Mutex
	backend NameBackend

	// bindOnce guards the one-time capture of the delete table.
	bindOnce sync.Once
	deletes  [ObjectTypeCount]func(GlobalName)
}

// NewGlobalAllocator creates an allocator over the given backend.
func NewGlobalAllocator(backend NameBackend) *GlobalAllocator {
	return &GlobalAllocator{backend: backend}
}

// bindDeletes captures the backend's per-type delete operations.
// Callers must hold a.mu; the shared lock makes concurrent first use
// race-free.
func (a *GlobalAllocator) bindDeletes() {
	a.bindOnce.Do(func() {
		for t := ObjectVertexBuffer; t < ObjectTypeCount; t++ {
			if t == ObjectShader {
				continue // shader names are not backend-managed
			}
			typ := t
			a.deletes[typ] = func(name GlobalName) {
				a.backend.Delete(typ, name)
			}
		}
	})
}

// Allocate asks the backend for one fresh global name of the given type.
// Out-of-range types and ObjectShader yield 0, as does a backend failure.
func (a *GlobalAllocator) Allocate(t ObjectType) GlobalName {
	if !t.Valid() {
		return 0
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.bindDeletes()

	if t == ObjectShader {
		return 0
	}
	name := a.backend.Gen(t)
	if name == 0 {
		Logger().Warn("backend allocation failed",
			slog.String("type", t.String()))
	}
	return name
}

// Release retires a global name through the bound delete operation.
// No-op for shaders, out-of-range types and the zero name.
func (a *GlobalAllocator) Release(t ObjectType, name GlobalName) {
	if !t.Valid() || t == ObjectShader || name == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.bindDeletes()

	if del := a.deletes[t]; del != nil {
		del(name)
	}
}
