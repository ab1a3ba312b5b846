package browser

import (
	"github.com/stagecraft/catalogd/errors"
)

// resolveLoadable composes exact name lookup with loadability resolution.
func (b *Browser) resolveLoadable(root Item, name string) (Item, error) {
	limits := b.Limits()

	found, ok := FindByName(root, name, limits.ResolveDepth)
	if !ok {
		return nil, errors.ItemNotFound(name)
	}
	loadable, ok := FirstLoadable(found, limits.ResolveDepth)
	if !ok {
		return nil, errors.NotLoadable(name)
	}
	return loadable, nil
}

// Load resolves an item by exact name under the given category and loads it
// into the active project. The returned name is the concrete item the host
// loaded, which may be a descendant of the named node.
func (b *Browser) Load(categoryToken, name string) (string, error) {
	root, _, err := b.categoryRoot(categoryToken)
	if err != nil {
		return "", err
	}

	loadable, err := b.resolveLoadable(root, name)
	if err != nil {
		return "", err
	}

	if err := b.host.Load(loadable); err != nil {
		return "", errors.HostOperation("load", err).WithDetail("name", loadable.Name())
	}

	b.logger.WithField("name", loadable.Name()).Info("Loaded catalog item")
	return loadable.Name(), nil
}

// LoadInstrument loads an instrument by name onto the selected track. The
// lookup first tries a substring match against the direct children of the
// instruments root, then falls back to the exact recursive search.
func (b *Browser) LoadInstrument(name string) (string, error) {
	root, ok := b.host.CategoryRoot(CategoryInstruments)
	if !ok {
		return "", errors.UnknownCategory(string(CategoryInstruments))
	}

	limits := b.Limits()

	found, ok := FindChildContains(root, name)
	if !ok {
		found, ok = FindByName(root, name, limits.ResolveDepth)
	}
	if !ok {
		return "", errors.ItemNotFound(name)
	}

	loadable, ok := FirstLoadable(found, limits.ResolveDepth)
	if !ok {
		return "", errors.NotLoadable(name)
	}

	if err := b.host.Load(loadable); err != nil {
		return "", errors.HostOperation("load", err).WithDetail("name", loadable.Name())
	}

	b.logger.WithField("name", loadable.Name()).Info("Loaded instrument")
	return loadable.Name(), nil
}

// LoadDrumKit loads a drum kit onto the selected track. With an empty name
// the first loadable kit in the drums tree is taken. Either way the resolved
// item must itself be loadable.
func (b *Browser) LoadDrumKit(name string) (string, error) {
	root, ok := b.host.CategoryRoot(CategoryDrums)
	if !ok {
		return "", errors.UnknownCategory(string(CategoryDrums))
	}

	limits := b.Limits()

	var item Item
	if name != "" {
		item, ok = FindByName(root, name, limits.ResolveDepth)
		if !ok {
			return "", errors.ItemNotFound(name).WithDetail("category", string(CategoryDrums))
		}
	} else {
		item, ok = FirstLoadable(root, limits.ResolveDepth)
		if !ok {
			return "", errors.NotLoadable(name).WithDetail("category", string(CategoryDrums))
		}
	}
	if !item.IsLoadable() {
		return "", errors.NotLoadable(name).WithDetail("category", string(CategoryDrums))
	}

	if err := b.host.Load(item); err != nil {
		return "", errors.HostOperation("load", err).WithDetail("name", item.Name())
	}

	b.logger.WithField("name", item.Name()).Info("Loaded drum kit")
	return item.Name(), nil
}

// LoadDefault tries each preferred name in order against the given category,
// loading the first that resolves; if none do, it falls back to the first
// loadable item in the whole category. The curated list puts items that
// produce output without further configuration first, so the command
// succeeds usefully whenever the category is non-empty.
func (b *Browser) LoadDefault(categoryToken string, preferred []string) (string, error) {
	root, _, err := b.categoryRoot(categoryToken)
	if err != nil {
		return "", err
	}

	limits := b.Limits()

	for _, name := range preferred {
		found, ok := FindByName(root, name, limits.ResolveDepth)
		if !ok {
			continue
		}
		loadable, ok := FirstLoadable(found, limits.ResolveDepth)
		if !ok {
			continue
		}
		if err := b.host.Load(loadable); err != nil {
			return "", errors.HostOperation("load", err).WithDetail("name", loadable.Name())
		}
		b.logger.WithField("name", loadable.Name()).Info("Loaded default item")
		return loadable.Name(), nil
	}

	// Nothing from the curated list exists; take anything loadable at all.
	loadable, ok := FirstLoadable(root, limits.ResolveDepth)
	if !ok {
		return "", errors.NotLoadable(categoryToken).WithDetail("category", categoryToken)
	}
	if err := b.host.Load(loadable); err != nil {
		return "", errors.HostOperation("load", err).WithDetail("name", loadable.Name())
	}
	b.logger.WithField("name", loadable.Name()).Info("Loaded fallback item")
	return loadable.Name(), nil
}

// Preview resolves exactly like Load but auditions the item instead of
// inserting it; no track or device state is touched.
func (b *Browser) Preview(categoryToken, name string) (string, error) {
	root, _, err := b.categoryRoot(categoryToken)
	if err != nil {
		return "", err
	}

	loadable, err := b.resolveLoadable(root, name)
	if err != nil {
		return "", err
	}

	if err := b.host.Preview(loadable); err != nil {
		return "", errors.HostOperation("preview", err).WithDetail("name", loadable.Name())
	}

	b.logger.WithField("name", loadable.Name()).Info("Previewing catalog item")
	return loadable.Name(), nil
}

// StopPreview unconditionally stops any running preview.
func (b *Browser) StopPreview() error {
	if err := b.host.StopPreview(); err != nil {
		return errors.HostOperation("stop_preview", err)
	}
	return nil
}
