package glshare

import (
	"sync"
	"testing"
)

func TestManagerCreateShareGroup(t *testing.T) {
	mgr := NewManager(newRecordBackend())

	g := mgr.CreateShareGroup(1)
	if g == nil {
		t.Fatal("CreateShareGroup returned nil")
	}
	if again := mgr.CreateShareGroup(1); again != g {
		t.Error("CreateShareGroup for a known key returned a different group")
	}
	if other := mgr.CreateShareGroup(2); other == g {
		t.Error("distinct keys share a group without attach")
	}
}

func TestManagerShareGroupLookupOnly(t *testing.T) {
	mgr := NewManager(newRecordBackend())

	if got := mgr.ShareGroup(7); got != nil {
		t.Errorf("ShareGroup(unknown) = %v, want nil", got)
	}
	g := mgr.CreateShareGroup(7)
	if got := mgr.ShareGroup(7); got != g {
		t.Error("ShareGroup returned a different group than CreateShareGroup")
	}
}

func TestManagerAttachShareGroup(t *testing.T) {
	mgr := NewManager(newRecordBackend())

	g := mgr.CreateShareGroup(1)
	attached := mgr.AttachShareGroup(2, 1)
	if attached != g {
		t.Fatal("AttachShareGroup did not return the existing group")
	}
	if got := mgr.ShareGroup(2); got != g {
		t.Error("attached key resolves to a different group")
	}
}

func TestManagerAttachUnknownExisting(t *testing.T) {
	mgr := NewManager(newRecordBackend())

	if got := mgr.AttachShareGroup(2, 99); got != nil {
		t.Errorf("AttachShareGroup(unknown existing) = %v, want nil", got)
	}
	if got := mgr.ShareGroup(2); got != nil {
		t.Error("failed attach still registered the key")
	}
}

func TestManagerAttachBoundKeyUntouched(t *testing.T) {
	mgr := NewManager(newRecordBackend())

	g1 := mgr.CreateShareGroup(1)
	g2 := mgr.CreateShareGroup(2)

	got := mgr.AttachShareGroup(2, 1)
	if got != g1 {
		t.Error("AttachShareGroup did not return the group for existing")
	}
	if mgr.ShareGroup(2) != g2 {
		t.Error("attach rebound an already-bound key")
	}
}

func TestManagerAliasSeesSharedState(t *testing.T) {
	mgr := NewManager(newRecordBackend())

	mgr.CreateShareGroup(1)
	mgr.AttachShareGroup(2, 1)

	g1 := mgr.ShareGroup(1)
	g2 := mgr.ShareGroup(2)

	local := g1.GenName(ObjectFramebuffer, 0, true)
	global := g1.Global(ObjectFramebuffer, local)

	if got := g2.Local(ObjectFramebuffer, global); got != local {
		t.Errorf("aliased key Local = %d, want %d", got, local)
	}
	if !g2.IsObject(ObjectFramebuffer, local) {
		t.Error("aliased key does not see the generated name")
	}
}

func TestManagerDeleteShareGroup(t *testing.T) {
	rb := newRecordBackend()
	mgr := NewManager(rb)

	g := mgr.CreateShareGroup(1)
	local := g.GenName(ObjectVertexBuffer, 0, true)
	global := g.Global(ObjectVertexBuffer, local)

	mgr.DeleteShareGroup(1)

	if mgr.ShareGroup(1) != nil {
		t.Error("key still registered after DeleteShareGroup")
	}
	if got := rb.deleteCount(ObjectVertexBuffer, global); got != 1 {
		t.Errorf("deleteCount = %d, want 1 (last reference dropped)", got)
	}
}

func TestManagerDeleteKeepsAliasAlive(t *testing.T) {
	rb := newRecordBackend()
	mgr := NewManager(rb)

	g := mgr.CreateShareGroup(1)
	mgr.AttachShareGroup(2, 1)

	local := g.GenName(ObjectVertexBuffer, 0, true)
	global := g.Global(ObjectVertexBuffer, local)

	mgr.DeleteShareGroup(1)

	g2 := mgr.ShareGroup(2)
	if g2 != g {
		t.Fatal("surviving alias resolves to a different group")
	}
	if !g2.IsObject(ObjectVertexBuffer, local) {
		t.Error("group state lost while an alias remains")
	}
	if got := rb.deleteCount(ObjectVertexBuffer, global); got != 0 {
		t.Errorf("teardown ran with an alias outstanding: %d deletes", got)
	}

	mgr.DeleteShareGroup(2)
	if got := rb.deleteCount(ObjectVertexBuffer, global); got != 1 {
		t.Errorf("deleteCount = %d, want 1 after last alias removed", got)
	}
}

func TestManagerDeleteUnknownKeyNoop(t *testing.T) {
	mgr := NewManager(newRecordBackend())

	mgr.DeleteShareGroup(42)

	if _, ok := mgr.AnyGroupKey(); ok {
		t.Error("registry not empty after deleting an unknown key")
	}
}

func TestManagerExternalRetainOutlivesRegistry(t *testing.T) {
	rb := newRecordBackend()
	mgr := NewManager(rb)

	g := mgr.CreateShareGroup(1)
	g.Retain()

	local := g.GenName(ObjectTexture, 0, true)
	global := g.Global(ObjectTexture, local)

	mgr.DeleteShareGroup(1)
	if got := rb.deleteCount(ObjectTexture, global); got != 0 {
		t.Errorf("teardown ran with an external reference held: %d deletes", got)
	}

	g.Release()
	if got := rb.deleteCount(ObjectTexture, global); got != 1 {
		t.Errorf("deleteCount = %d, want 1 after external release", got)
	}
}

func TestManagerAnyGroupKey(t *testing.T) {
	mgr := NewManager(newRecordBackend())

	if _, ok := mgr.AnyGroupKey(); ok {
		t.Error("AnyGroupKey reported a key on an empty registry")
	}

	mgr.CreateShareGroup(11)
	key, ok := mgr.AnyGroupKey()
	if !ok {
		t.Fatal("AnyGroupKey found nothing after CreateShareGroup")
	}
	if key != 11 {
		t.Errorf("AnyGroupKey = %d, want 11", key)
	}
}

func TestManagerSharedTextureAcrossGroups(t *testing.T) {
	rb := newRecordBackend()
	mgr := NewManager(rb)

	producer := mgr.CreateShareGroup(1)
	consumer := mgr.CreateShareGroup(2)

	local := producer.GenName(ObjectTexture, 0, true)
	global := producer.Global(ObjectTexture, local)

	// The consumer imports the host texture under its own local name and
	// takes its own reference.
	imported := consumer.GenName(ObjectTexture, 7, false)
	consumer.ReplaceGlobalName(ObjectTexture, imported, global)
	if got := consumer.IncTextureRef(global); got != 1 {
		t.Errorf("consumer IncTextureRef = %d, want 1 (per-group counts)", got)
	}

	// Each group drops its reference independently; refcounts are
	// group-scoped, so each group's last drop releases through the backend.
	producer.DecTextureRef(global)
	consumer.DecTextureRef(global)
	if got := rb.deleteCount(ObjectTexture, global); got != 2 {
		t.Errorf("deleteCount = %d, want 2 (one per group)", got)
	}
}

func TestManagerWithEagerBind(t *testing.T) {
	rb := newRecordBackend()
	mgr := NewManager(rb, WithEagerBind())

	g := mgr.CreateShareGroup(1)
	g.GenName(ObjectVertexBuffer, 0, true)
	if rb.genTotal() != 1 {
		t.Errorf("genTotal = %d, want 1", rb.genTotal())
	}
}

func TestManagerConcurrentAccess(t *testing.T) {
	mgr := NewManager(newRecordBackend())

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := GroupKey(i % 4)
			g := mgr.CreateShareGroup(key)
			for j := 0; j < 50; j++ {
				local := g.GenName(ObjectVertexBuffer, 0, true)
				if local == 0 {
					t.Errorf("worker %d: GenName = 0", i)
					return
				}
				g.DeleteName(ObjectVertexBuffer, local)
			}
		}(i)
	}
	wg.Wait()

	for key := GroupKey(0); key < 4; key++ {
		mgr.DeleteShareGroup(key)
	}
	if _, ok := mgr.AnyGroupKey(); ok {
		t.Error("registry not empty after deleting every key")
	}
}
