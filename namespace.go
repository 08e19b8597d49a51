package glshare

// NameSpace maintains the bijection between guest-local names and
// host-global names for one object type within one share group.
//
// NameSpace has no lock of its own: the owning ShareGroup serializes all
// access. The two maps are exact inverses at every observation point; every
// insert and erase touches both directions.
type NameSpace struct {
	typ    ObjectType
	global *GlobalAllocator

	localToGlobal map[LocalName]GlobalName
	globalToLocal map[GlobalName]LocalName

	// nextName drives local-name allocation. It only ever advances;
	// the 64-bit space makes wraparound a non-issue in practice.
	nextName LocalName
}

// newNameSpace creates an empty name space for one object type.
func newNameSpace(t ObjectType, global *GlobalAllocator) *NameSpace {
	return &NameSpace{
		typ:           t,
		global:        global,
		localToGlobal: make(map[LocalName]GlobalName),
		globalToLocal: make(map[GlobalName]LocalName),
	}
}

// Gen establishes a name table entry.
//
// With genLocal set, the requested name is ignored and a fresh local name
// is drawn from the counter, skipping 0 and any name already in use.
// With genGlobal set, a global name is allocated from the backend and the
// bijective pair is inserted. The local name is returned either way; a
// returned 0 means no entry was created and the caller must treat the call
// as failed.
func (ns *NameSpace) Gen(requested LocalName, genGlobal, genLocal bool) LocalName {
	local := requested
	if genLocal {
		for {
			ns.nextName++
			local = ns.nextName
			if local == 0 {
				continue
			}
			if _, taken := ns.localToGlobal[local]; !taken {
				break
			}
		}
	}

	if genGlobal {
		global := ns.global.Allocate(ns.typ)
		ns.localToGlobal[local] = global
		ns.globalToLocal[global] = local
	}

	return local
}

// GenGlobal allocates a bare global name without recording it in the
// table. Used when the guest does not track the object by a local name.
func (ns *NameSpace) GenGlobal() GlobalName {
	return ns.global.Allocate(ns.typ)
}

// Global returns the global name bound to local, or 0 if absent.
func (ns *NameSpace) Global(local LocalName) GlobalName {
	return ns.localToGlobal[local]
}

// Local returns the local name bound to global, or 0 if absent.
func (ns *NameSpace) Local(global GlobalName) LocalName {
	return ns.globalToLocal[global]
}

// IsObject reports whether local is present in the table.
func (ns *NameSpace) IsObject(local LocalName) bool {
	_, ok := ns.localToGlobal[local]
	return ok
}

// Delete removes local from both directions of the bijection. The global
// name is released through the allocator, except for textures, whose real
// release is deferred to the share group's reference counting. No-op if
// local is absent.
func (ns *NameSpace) Delete(local LocalName) {
	global, ok := ns.localToGlobal[local]
	if !ok {
		return
	}
	if ns.typ != ObjectTexture {
		ns.global.Release(ns.typ, global)
	}
	delete(ns.globalToLocal, global)
	delete(ns.localToGlobal, local)
}

// ReplaceGlobal retargets local onto a different host object without
// changing the guest-visible name. The old global name is released (again
// deferred for textures) and newGlobal is installed in both directions.
// No-op if local is absent.
func (ns *NameSpace) ReplaceGlobal(local LocalName, newGlobal GlobalName) {
	old, ok := ns.localToGlobal[local]
	if !ok {
		return
	}
	if ns.typ != ObjectTexture {
		ns.global.Release(ns.typ, old)
	}
	delete(ns.globalToLocal, old)
	ns.localToGlobal[local] = newGlobal
	ns.globalToLocal[newGlobal] = local
}

// release frees every global name still in the table. Teardown is
// unconditional: the texture deferred-release rule does not apply once the
// whole share group is going away.
func (ns *NameSpace) release() {
	for _, global := range ns.localToGlobal {
		ns.global.Release(ns.typ, global)
	}
	ns.localToGlobal = nil
	ns.globalToLocal = nil
}
