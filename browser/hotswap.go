package browser

import (
	"github.com/stagecraft/catalogd/errors"
)

// hotswapSession is the single armed-replacement target. It is process-wide
// read-modify-write state spanning two separate commands, so all access goes
// through the Browser mutex.
type hotswapSession struct {
	target         Device // nil while idle
	clearAfterLoad bool
}

// HotswapStart arms the session on the device at the given track and device
// indices and sets the host's hotswap target, so the next load replaces that
// device in place. Bounds failures are surfaced as errors, not silently
// ignored.
func (b *Browser) HotswapStart(trackIndex, deviceIndex int) (string, error) {
	tracks := b.host.Tracks()
	if trackIndex < 0 || trackIndex >= len(tracks) {
		return "", errors.IndexOutOfRange("track", trackIndex, len(tracks))
	}

	devices := tracks[trackIndex].Devices()
	if deviceIndex < 0 || deviceIndex >= len(devices) {
		return "", errors.IndexOutOfRange("device", deviceIndex, len(devices))
	}

	device := devices[deviceIndex]
	if err := b.host.SetHotswapTarget(device); err != nil {
		return "", errors.HostOperation("set_hotswap_target", err).WithDetail("device", device.Name())
	}

	b.mu.Lock()
	b.hotswap.target = device
	b.mu.Unlock()

	b.logger.WithField("device", device.Name()).Info("Hotswap armed")
	return device.Name(), nil
}

// HotswapLoad resolves name across the fixed hotswap category order
// (first category whose tree contains the name wins, categories are not
// merged) and loads the result, replacing the armed device. Requires an
// armed session.
func (b *Browser) HotswapLoad(name string) (string, error) {
	b.mu.Lock()
	target := b.hotswap.target
	limits := b.limits
	b.mu.Unlock()

	if target == nil {
		return "", errors.New(errors.ErrCodeHotswapIdle,
			"hotswap_load called with no armed target; call hotswap_start first")
	}

	var found Item
	var category Category
	for _, c := range hotswapCategories {
		root, ok := b.host.CategoryRoot(c)
		if !ok {
			continue
		}
		if item, ok := FindByName(root, name, limits.ResolveDepth); ok {
			found = item
			category = c
			break
		}
	}
	if found == nil {
		return "", errors.ItemNotFound(name)
	}

	loadable, ok := FirstLoadable(found, limits.ResolveDepth)
	if !ok {
		return "", errors.NotLoadable(name).WithDetail("category", string(category))
	}

	if err := b.host.Load(loadable); err != nil {
		return "", errors.HostOperation("load", err).WithDetail("name", loadable.Name())
	}

	b.mu.Lock()
	if b.hotswap.clearAfterLoad {
		b.hotswap.target = nil
	}
	b.mu.Unlock()

	b.logger.WithField("name", loadable.Name()).
		WithField("device", target.Name()).
		Info("Hotswap loaded")
	return loadable.Name(), nil
}

// HotswapArmed reports whether the session currently holds a target.
func (b *Browser) HotswapArmed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hotswap.target != nil
}
