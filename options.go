package glshare

// Option configures a Manager during creation.
//
// Example:
//
//	// Default: delete dispatch binds lazily on first use.
//	mgr := glshare.NewManager(b)
//
//	// Bind the delete table at construction instead.
//	mgr := glshare.NewManager(b, glshare.WithEagerBind())
type Option func(*managerOptions)

// managerOptions holds optional configuration for Manager creation.
type managerOptions struct {
	eagerBind bool
}

// defaultOptions returns the default manager options.
func defaultOptions() managerOptions {
	return managerOptions{}
}

// WithEagerBind makes the allocator capture the backend's per-type delete
// operations at construction rather than on first use. Hosts that want
// backend wiring validated at startup use this; the observable allocation
// behavior is identical either way.
func WithEagerBind() Option {
	return func(o *managerOptions) {
		o.eagerBind = true
	}
}
