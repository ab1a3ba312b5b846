package browser

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// testLogger returns a silenced component logger.
func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("component", "test")
}

// newTestBrowser builds a Browser over the host with stock limits.
func newTestBrowser(host Host) *Browser {
	return New(host, testLogger(), DefaultLimits())
}

// fakeItem is an in-memory catalog node for tests.
type fakeItem struct {
	name     string
	loadable bool
	device   bool
	children []Item
}

func (f *fakeItem) Name() string     { return f.name }
func (f *fakeItem) Children() []Item { return f.children }
func (f *fakeItem) IsLoadable() bool { return f.loadable }
func (f *fakeItem) IsDevice() bool   { return f.device }

// folder builds a non-loadable container node.
func folder(name string, children ...Item) *fakeItem {
	return &fakeItem{name: name, children: children}
}

// preset builds a loadable leaf node.
func preset(name string) *fakeItem {
	return &fakeItem{name: name, loadable: true}
}

// loadableFolder builds a node that is both a container and loadable.
func loadableFolder(name string, children ...Item) *fakeItem {
	return &fakeItem{name: name, loadable: true, children: children}
}

type fakeDevice struct {
	name string
}

func (d *fakeDevice) Name() string { return d.name }

type fakeTrack struct {
	name    string
	devices []Device
}

func (t *fakeTrack) Name() string      { return t.name }
func (t *fakeTrack) Devices() []Device { return t.devices }

// fakeHost implements Host over fixture trees, recording effectful calls and
// optionally failing them.
type fakeHost struct {
	roots  map[Category]Item
	tracks []Track

	loaded        []string
	previewed     []string
	stopCalls     int
	hotswapTarget Device

	failLoad    bool
	failPreview bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{roots: make(map[Category]Item)}
}

func (h *fakeHost) setRoot(category Category, children ...Item) {
	h.roots[category] = folder(string(category), children...)
}

func (h *fakeHost) CategoryRoot(category Category) (Item, bool) {
	root, ok := h.roots[category]
	return root, ok
}

func (h *fakeHost) Load(item Item) error {
	if h.failLoad {
		return fmt.Errorf("load rejected by host")
	}
	h.loaded = append(h.loaded, item.Name())
	return nil
}

func (h *fakeHost) Preview(item Item) error {
	if h.failPreview {
		return fmt.Errorf("preview rejected by host")
	}
	h.previewed = append(h.previewed, item.Name())
	return nil
}

func (h *fakeHost) StopPreview() error {
	h.stopCalls++
	return nil
}

func (h *fakeHost) Tracks() []Track { return h.tracks }

func (h *fakeHost) SetHotswapTarget(device Device) error {
	h.hotswapTarget = device
	return nil
}
