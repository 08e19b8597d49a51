package glshare

// ObjectData is the opaque per-object payload a translation layer stores
// alongside a name table entry: parameter state, dimensions, compiled
// source, whatever the translator needs to re-emit the object. The store
// holds one logical reference; the payload may be shared elsewhere
// concurrently.
//
// glshare never inspects the payload. The objectdata package provides the
// concrete types a GL-style translator typically stores here.
type ObjectData any
