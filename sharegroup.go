package glshare

import (
	"sync"
	"sync/atomic"
)

// ShareGroup is the namespace shared by one or more guest contexts. It owns
// one NameSpace per object type, the opaque per-object data store, and the
// reference counts of shared texture global names.
//
// A single mutex serializes every operation, so compound mutations (such as
// generate-name-then-bump-refcount) are atomic as observed by other
// goroutines. A ShareGroup may call into the GlobalAllocator while holding
// its lock; nothing ever calls back into a ShareGroup from below.
//
// Share groups are reference counted: the manager holds one reference per
// registered key, and external holders that keep a group past its registry
// lifetime pair Retain with Release. The last Release tears the group down
// and frees every remaining global name.
type ShareGroup struct {
	mu   sync.Mutex
	refs atomic.Int32

	namespaces  [ObjectTypeCount]*NameSpace
	objects     map[TypedName]ObjectData
	textureRefs map[GlobalName]int

	global *GlobalAllocator
}

// newShareGroup creates a share group with a fresh name space per type.
// The caller (the manager) takes the first reference.
func newShareGroup(global *GlobalAllocator) *ShareGroup {
	g := &ShareGroup{
		objects:     make(map[TypedName]ObjectData),
		textureRefs: make(map[GlobalName]int),
		global:      global,
	}
	for t := ObjectVertexBuffer; t < ObjectTypeCount; t++ {
		g.namespaces[t] = newNameSpace(t, global)
	}
	return g
}

// Retain takes an additional reference to the group. External holders that
// keep a group beyond its registry entry must pair this with Release.
func (g *ShareGroup) Retain() {
	g.refs.Add(1)
}

// Release drops one reference. The last drop tears the group down:
// every name space frees its remaining global names through the allocator.
func (g *ShareGroup) Release() {
	if g.refs.Add(-1) != 0 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, ns := range g.namespaces {
		ns.release()
	}
	g.objects = nil
	g.textureRefs = nil
}

// GenName establishes a local name of the given type, allocating its global
// name from the backend. With genLocal set a fresh local name is chosen;
// otherwise requested is used verbatim. For textures the new global name's
// reference count starts at 1. Returns 0 for out-of-range types.
func (g *ShareGroup) GenName(t ObjectType, requested LocalName, genLocal bool) LocalName {
	if !t.Valid() {
		return 0
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	local := g.namespaces[t].Gen(requested, true, genLocal)
	if t == ObjectTexture {
		g.incTextureRefLocked(g.namespaces[t].Global(local))
	}
	return local
}

// GenGlobalName allocates a bare global name with no local bookkeeping.
// Returns 0 for out-of-range types.
func (g *ShareGroup) GenGlobalName(t ObjectType) GlobalName {
	if !t.Valid() {
		return 0
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.namespaces[t].GenGlobal()
}

// Global returns the global name bound to local, or 0 if absent or the
// type is out of range.
func (g *ShareGroup) Global(t ObjectType, local LocalName) GlobalName {
	if !t.Valid() {
		return 0
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.namespaces[t].Global(local)
}

// Local returns the local name bound to global, or 0 if absent or the
// type is out of range.
func (g *ShareGroup) Local(t ObjectType, global GlobalName) LocalName {
	if !t.Valid() {
		return 0
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.namespaces[t].Local(global)
}

// IsObject reports whether local is present in the type's name table.
func (g *ShareGroup) IsObject(t ObjectType, local LocalName) bool {
	if !t.Valid() {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.namespaces[t].IsObject(local)
}

// DeleteName removes local from the type's name table and erases any
// object data stored for it. Texture global names are NOT released here;
// their release is driven solely by DecTextureRef reaching zero.
// No-op for absent names and out-of-range types.
func (g *ShareGroup) DeleteName(t ObjectType, local LocalName) {
	if !t.Valid() {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.namespaces[t].Delete(local)
	delete(g.objects, TypedName{Type: t, Name: local})
}

// ReplaceGlobalName retargets an existing local name onto a different
// global name. No-op for absent names and out-of-range types.
func (g *ShareGroup) ReplaceGlobalName(t ObjectType, local LocalName, newGlobal GlobalName) {
	if !t.Valid() {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.namespaces[t].ReplaceGlobal(local, newGlobal)
}

// SetObjectData stores the opaque payload for (type, local), overwriting
// any previous entry. No-op for out-of-range types.
func (g *ShareGroup) SetObjectData(t ObjectType, local LocalName, data ObjectData) {
	if !t.Valid() {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.objects == nil {
		return
	}
	g.objects[TypedName{Type: t, Name: local}] = data
}

// GetObjectData returns the payload stored for (type, local), or nil if
// none is present or the type is out of range.
func (g *ShareGroup) GetObjectData(t ObjectType, local LocalName) ObjectData {
	if !t.Valid() {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.objects[TypedName{Type: t, Name: local}]
}

// IncTextureRef adds one reference to a shared texture global name,
// creating the entry at 1 if absent, and returns the new count.
func (g *ShareGroup) IncTextureRef(global GlobalName) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.incTextureRefLocked(global)
}

// incTextureRefLocked requires g.mu held.
func (g *ShareGroup) incTextureRefLocked(global GlobalName) int {
	n := g.textureRefs[global] + 1
	g.textureRefs[global] = n
	return n
}

// DecTextureRef drops one reference to a shared texture global name and
// returns the remaining count. On the last drop the entry is erased and
// the global name is released through the backend; this is the only path
// that ever actually frees a texture. Returns 0 if the entry was never
// present (a caller bug upstream, tolerated as a no-op).
func (g *ShareGroup) DecTextureRef(global GlobalName) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.textureRefs[global]
	if !ok {
		return 0
	}
	n--
	if n > 0 {
		g.textureRefs[global] = n
		return n
	}
	delete(g.textureRefs, global)
	g.global.Release(ObjectTexture, global)
	return 0
}
