package glshare

// ObjectType identifies one class of named guest objects. Each share group
// keeps an independent name space per type.
type ObjectType int

const (
	// ObjectVertexBuffer names vertex buffer objects.
	ObjectVertexBuffer ObjectType = iota

	// ObjectTexture names texture objects. Texture global names are
	// reference counted inside a share group and released lazily.
	ObjectTexture

	// ObjectRenderbuffer names renderbuffer objects.
	ObjectRenderbuffer

	// ObjectFramebuffer names framebuffer objects.
	ObjectFramebuffer

	// ObjectShader names shader objects. Shaders live in a namespace the
	// host manages elsewhere, so the backend never allocates global names
	// for them; local-name bookkeeping still goes through the same tables.
	ObjectShader

	// ObjectTypeCount is the closed upper bound of the enumeration,
	// used for bounds checks and fixed-size per-type tables.
	ObjectTypeCount
)

// String returns the object type name.
func (t ObjectType) String() string {
	switch t {
	case ObjectVertexBuffer:
		return "VertexBuffer"
	case ObjectTexture:
		return "Texture"
	case ObjectRenderbuffer:
		return "Renderbuffer"
	case ObjectFramebuffer:
		return "Framebuffer"
	case ObjectShader:
		return "Shader"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is inside the closed enumeration.
// Every exported operation treats an invalid type as a safe no-op.
func (t ObjectType) Valid() bool {
	return t >= 0 && t < ObjectTypeCount
}

// LocalName is a guest-chosen object identifier, unique within one
// (share group, object type) pair. Zero is reserved: it means "absent"
// and is never handed out as a generated name.
type LocalName uint64

// GlobalName identifies a real host-side object. It is meaningful only to
// the backend that allocated it. Zero is what a failed or unsupported
// allocation returns; a correctly behaving backend never allocates it.
type GlobalName uint32

// TypedName keys the per-group object data store: one entry per
// (object type, local name) pair.
type TypedName struct {
	Type ObjectType
	Name LocalName
}
