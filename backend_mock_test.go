package glshare

import (
	"sync"
)

// recordBackend is a NameBackend that hands out names from per-type
// counters and records every call, so tests can assert on exactly which
// host objects were allocated and released.
type recordBackend struct {
	mu        sync.Mutex
	next      [ObjectTypeCount]GlobalName
	gens      []ObjectType
	deletions map[ObjectType][]GlobalName
	failTypes map[ObjectType]bool
	initCalls int
	closed    bool
}

func newRecordBackend() *recordBackend {
	return &recordBackend{
		deletions: make(map[ObjectType][]GlobalName),
		failTypes: make(map[ObjectType]bool),
	}
}

func (b *recordBackend) Name() string { return "record" }

func (b *recordBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initCalls++
	return nil
}

func (b *recordBackend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
}

func (b *recordBackend) Gen(t ObjectType) GlobalName {
	if !t.Valid() || t == ObjectShader {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failTypes[t] {
		return 0
	}
	b.gens = append(b.gens, t)
	b.next[t]++
	return b.next[t]
}

func (b *recordBackend) Delete(t ObjectType, name GlobalName) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deletions[t] = append(b.deletions[t], name)
}

// deleteCount returns how many times name was deleted for type t.
func (b *recordBackend) deleteCount(t ObjectType, name GlobalName) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, d := range b.deletions[t] {
		if d == name {
			n++
		}
	}
	return n
}

// deletedTotal returns the total number of Delete calls for type t.
func (b *recordBackend) deletedTotal(t ObjectType) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.deletions[t])
}

// genTotal returns the total number of successful Gen calls.
func (b *recordBackend) genTotal() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.gens)
}
