package glshare

// NameBackend produces and retires host-side object names. It is the only
// point where glshare touches real graphics resources; everything above it
// deals in names alone.
//
// Implementations live in the backend package ("software" counters for
// tests, "wgpu" for real GPU objects) and are selected through its
// registry. A backend must be safe to call from multiple goroutines only
// through a GlobalAllocator, which serializes access with its own lock.
type NameBackend interface {
	// Name returns the backend identifier (e.g., "software", "wgpu").
	Name() string

	// Init prepares the backend for allocation.
	// It must be called before Gen or Delete.
	Init() error

	// Close releases everything the backend still holds.
	// The backend must not be used after Close.
	Close()

	// Gen allocates one fresh global name for the given type.
	// It returns 0 for unsupported types and on allocation failure.
	Gen(t ObjectType) GlobalName

	// Delete releases a previously allocated global name. Under this
	// package's usage a name is deleted at most once.
	Delete(t ObjectType, name GlobalName)
}
