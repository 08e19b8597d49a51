package glshare

import (
	"log/slog"
	"sync"
)

// GroupKey is the opaque identity a caller uses to resolve its share
// group, typically a guest context id. Several keys may alias one group
// (see AttachShareGroup). Zero is an ordinary key with no special meaning.
type GroupKey uint64

// Manager is the top-level registry mapping group keys to share groups.
//
// The manager lock is independent of every share group lock: key
// resolution completes and the manager lock is released before any group
// operation runs, so the two domains never nest.
type Manager struct {
	mu     sync.Mutex
	groups map[GroupKey]*ShareGroup

	global *GlobalAllocator
}

// NewManager creates a manager whose share groups allocate host names
// through the given backend.
//
//	mgr := glshare.NewManager(backend.MustDefault())
//	mgr := glshare.NewManager(b, glshare.WithEagerBind())
func NewManager(b NameBackend, opts ...Option) *Manager {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	global := NewGlobalAllocator(b)
	if o.eagerBind {
		global.mu.Lock()
		global.bindDeletes()
		global.mu.Unlock()
	}

	return &Manager{
		groups: make(map[GroupKey]*ShareGroup),
		global: global,
	}
}

// CreateShareGroup returns the share group registered under key, creating
// and registering a brand-new group if the key is unknown.
func (m *Manager) CreateShareGroup(key GroupKey) *ShareGroup {
	m.mu.Lock()
	defer m.mu.Unlock()

	if g, ok := m.groups[key]; ok {
		return g
	}

	g := newShareGroup(m.global)
	g.Retain() // registry reference
	m.groups[key] = g
	Logger().Debug("share group created", slog.Uint64("key", uint64(key)))
	return g
}

// ShareGroup returns the group registered under key, or nil. It never
// creates.
func (m *Manager) ShareGroup(key GroupKey) *ShareGroup {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.groups[key]
}

// AttachShareGroup binds key to the group already registered under
// existing, so both keys observe and mutate identical state. Returns nil
// if existing is unknown. If key is already bound, its binding is left
// untouched and the group for existing is still returned.
func (m *Manager) AttachShareGroup(key, existing GroupKey) *ShareGroup {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.groups[existing]
	if !ok {
		return nil
	}
	if _, bound := m.groups[key]; !bound {
		g.Retain()
		m.groups[key] = g
		Logger().Debug("share group attached",
			slog.Uint64("key", uint64(key)),
			slog.Uint64("existing", uint64(existing)))
	}
	return g
}

// DeleteShareGroup removes the registry entry for key. Other keys aliasing
// the same group, and external holders, are unaffected: the group itself
// is torn down only when its last reference drops.
func (m *Manager) DeleteShareGroup(key GroupKey) {
	m.mu.Lock()
	g, ok := m.groups[key]
	if ok {
		delete(m.groups, key)
	}
	m.mu.Unlock()

	// Dropped outside the manager lock: the final reference runs group
	// teardown, and group work must not nest under the registry.
	if ok {
		g.Release()
		Logger().Debug("share group key removed", slog.Uint64("key", uint64(key)))
	}
}

// AnyGroupKey returns an arbitrary registered key, for callers that need
// "some" valid context. The second result is false when the registry is
// empty.
func (m *Manager) AnyGroupKey() (GroupKey, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.groups {
		return key, true
	}
	return 0, false
}
