// Package browser implements catalog navigation and resolution against a
// host media-production application: name lookup, loadability resolution,
// bounded search, load/preview orchestration, and the hotswap session.
//
// The catalog tree itself is owned by the host. The browser only traverses
// it through the read-only Item view and invokes the host's effectful
// operations on resolved nodes; it never constructs or mutates the tree, and
// it never caches catalog contents between calls.
package browser

// Item is a read-only view over a single host-owned catalog node. Names are
// not guaranteed unique within a level or across the tree; identity is the
// object reference.
type Item interface {
	// Name returns the display name of the node.
	Name() string

	// Children returns the node's children in host order, empty for leaves.
	Children() []Item

	// IsLoadable reports whether the node can be inserted into the host
	// project directly. A node can be both a container and loadable.
	IsLoadable() bool

	// IsDevice reports whether the node represents a device.
	IsDevice() bool
}

// Device is a device already placed in the host project.
type Device interface {
	Name() string
}

// Track is an index-addressable device container in the host project.
type Track interface {
	Name() string
	Devices() []Device
}

// Host is the surface the browser consumes from the host application. All
// calls are synchronous and in-process; the effectful ones may fail.
type Host interface {
	// CategoryRoot returns the catalog root bound to the given category.
	// The mapping is total and immutable for the process lifetime, but a
	// host may legitimately expose no tree for a category (e.g. no user
	// library), reported as ok=false.
	CategoryRoot(category Category) (Item, bool)

	// Load inserts the item into the active project.
	Load(item Item) error

	// Preview auditions the item without touching track or device state.
	Preview(item Item) error

	// StopPreview stops any running preview.
	StopPreview() error

	// Tracks returns the project's tracks in order.
	Tracks() []Track

	// SetHotswapTarget arms the host's hotswap target property so the next
	// Load replaces the given device in place.
	SetHotswapTarget(device Device) error
}
