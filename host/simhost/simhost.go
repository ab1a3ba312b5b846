// Package simhost provides a simulated host backed by a YAML catalog
// snapshot. It stands in for a real media-production application during
// development and integration testing; the daemon binary runs against it
// when catalog.snapshot is configured.
package simhost

import (
	"os"
	"sync"

	"github.com/stagecraft/catalogd/browser"
	"github.com/stagecraft/catalogd/errors"
	"gopkg.in/yaml.v3"
)

// nodeSpec is one catalog node in the snapshot file.
type nodeSpec struct {
	Name     string     `yaml:"name"`
	Loadable bool       `yaml:"loadable"`
	Device   bool       `yaml:"device"`
	Children []nodeSpec `yaml:"children"`
}

// trackSpec is one project track in the snapshot file.
type trackSpec struct {
	Name    string   `yaml:"name"`
	Devices []string `yaml:"devices"`
}

// snapshot is the root of the snapshot file.
type snapshot struct {
	Categories map[string][]nodeSpec `yaml:"categories"`
	Tracks     []trackSpec           `yaml:"tracks"`
}

type item struct {
	name     string
	loadable bool
	device   bool
	children []browser.Item
}

func (i *item) Name() string             { return i.name }
func (i *item) Children() []browser.Item { return i.children }
func (i *item) IsLoadable() bool         { return i.loadable }
func (i *item) IsDevice() bool           { return i.device }

type device struct {
	name string
}

func (d *device) Name() string { return d.name }

type track struct {
	name    string
	devices []browser.Device
}

func (t *track) Name() string              { return t.name }
func (t *track) Devices() []browser.Device { return t.devices }

// Host is a simulated catalog host. Effectful operations record their
// arguments instead of touching a real project.
type Host struct {
	roots  map[browser.Category]browser.Item
	tracks []browser.Track

	mu            sync.Mutex
	loaded        []string
	previewing    string
	hotswapTarget browser.Device
}

// Load reads a snapshot file and builds a Host from it.
func Load(path string) (*Host, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read catalog snapshot").
			WithDetail("path", path)
	}
	return Parse(data)
}

// Parse builds a Host from snapshot YAML.
func Parse(data []byte) (*Host, error) {
	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse catalog snapshot")
	}

	h := &Host{roots: make(map[browser.Category]browser.Item)}

	for token, children := range snap.Categories {
		category, ok := browser.CategoryFor(token)
		if !ok {
			return nil, errors.UnknownCategory(token).
				WithDetail("reason", "snapshot names a category the catalog does not have")
		}
		h.roots[category] = &item{name: token, children: buildItems(children)}
	}

	for _, t := range snap.Tracks {
		devices := make([]browser.Device, 0, len(t.Devices))
		for _, name := range t.Devices {
			devices = append(devices, &device{name: name})
		}
		h.tracks = append(h.tracks, &track{name: t.Name, devices: devices})
	}

	return h, nil
}

func buildItems(specs []nodeSpec) []browser.Item {
	items := make([]browser.Item, 0, len(specs))
	for _, spec := range specs {
		items = append(items, &item{
			name:     spec.Name,
			loadable: spec.Loadable,
			device:   spec.Device,
			children: buildItems(spec.Children),
		})
	}
	return items
}

// CategoryRoot implements browser.Host.
func (h *Host) CategoryRoot(category browser.Category) (browser.Item, bool) {
	root, ok := h.roots[category]
	return root, ok
}

// Load implements browser.Host.
func (h *Host) Load(it browser.Item) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loaded = append(h.loaded, it.Name())
	return nil
}

// Preview implements browser.Host.
func (h *Host) Preview(it browser.Item) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.previewing = it.Name()
	return nil
}

// StopPreview implements browser.Host.
func (h *Host) StopPreview() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.previewing = ""
	return nil
}

// Tracks implements browser.Host.
func (h *Host) Tracks() []browser.Track {
	return h.tracks
}

// SetHotswapTarget implements browser.Host.
func (h *Host) SetHotswapTarget(d browser.Device) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hotswapTarget = d
	return nil
}

// Loaded returns the names passed to Load, in order.
func (h *Host) Loaded() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.loaded))
	copy(out, h.loaded)
	return out
}

// Previewing returns the name of the item currently being previewed, or "".
func (h *Host) Previewing() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.previewing
}

// HotswapTarget returns the armed device, or nil.
func (h *Host) HotswapTarget() browser.Device {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hotswapTarget
}
