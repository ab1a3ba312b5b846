package dispatch

import (
	"github.com/stagecraft/catalogd/browser"
)

func (t *Table) load(args []interface{}) ([]interface{}, error) {
	category, err := stringArg("browser/load", args, 0, "category")
	if err != nil {
		return nil, err
	}
	name, err := stringArg("browser/load", args, 1, "name")
	if err != nil {
		return nil, err
	}

	loaded, err := t.browser.Load(category, name)
	if err != nil {
		return nil, err
	}
	return []interface{}{loaded}, nil
}

func (t *Table) loadInstrument(args []interface{}) ([]interface{}, error) {
	name, err := stringArg("browser/load_instrument", args, 0, "name")
	if err != nil {
		return nil, err
	}

	loaded, err := t.browser.LoadInstrument(name)
	if err != nil {
		return nil, err
	}
	return []interface{}{loaded}, nil
}

func (t *Table) loadDrumKit(args []interface{}) ([]interface{}, error) {
	name, err := optionalStringArg("browser/load_drum_kit", args, 0, "name")
	if err != nil {
		return nil, err
	}

	loaded, err := t.browser.LoadDrumKit(name)
	if err != nil {
		return nil, err
	}
	return []interface{}{loaded}, nil
}

func (t *Table) loadAudioEffect(args []interface{}) ([]interface{}, error) {
	name, err := stringArg("browser/load_audio_effect", args, 0, "name")
	if err != nil {
		return nil, err
	}

	loaded, err := t.browser.Load(string(browser.CategoryAudioEffects), name)
	if err != nil {
		return nil, err
	}
	return []interface{}{loaded}, nil
}

func (t *Table) loadMidiEffect(args []interface{}) ([]interface{}, error) {
	name, err := stringArg("browser/load_midi_effect", args, 0, "name")
	if err != nil {
		return nil, err
	}

	loaded, err := t.browser.Load(string(browser.CategoryMidiEffects), name)
	if err != nil {
		return nil, err
	}
	return []interface{}{loaded}, nil
}

func (t *Table) loadDefaultInstrument(args []interface{}) ([]interface{}, error) {
	loaded, err := t.browser.LoadDefault(string(browser.CategoryInstruments), t.getDefaults().Instruments)
	if err != nil {
		return nil, err
	}
	return []interface{}{loaded}, nil
}

func (t *Table) loadDefaultDrumKit(args []interface{}) ([]interface{}, error) {
	loaded, err := t.browser.LoadDefault(string(browser.CategoryDrums), t.getDefaults().DrumKits)
	if err != nil {
		return nil, err
	}
	return []interface{}{loaded}, nil
}

func (t *Table) preview(args []interface{}) ([]interface{}, error) {
	category, err := stringArg("browser/preview", args, 0, "category")
	if err != nil {
		return nil, err
	}
	name, err := stringArg("browser/preview", args, 1, "name")
	if err != nil {
		return nil, err
	}

	previewed, err := t.browser.Preview(category, name)
	if err != nil {
		return nil, err
	}
	return []interface{}{previewed}, nil
}

func (t *Table) stopPreview(args []interface{}) ([]interface{}, error) {
	if err := t.browser.StopPreview(); err != nil {
		return nil, err
	}
	// Always reports success.
	return []interface{}{"ok"}, nil
}

func (t *Table) search(args []interface{}) ([]interface{}, error) {
	query, err := stringArg("browser/search", args, 0, "query")
	if err != nil {
		return nil, err
	}

	// Optional per-call shaping: per-category cap, total cap, depth. Each can
	// only tighten the configured limits.
	var limits browser.Limits
	if limits.PerCategoryCap, err = optionalIntArg("browser/search", args, 1, "per_category_cap"); err != nil {
		return nil, err
	}
	if limits.TotalCap, err = optionalIntArg("browser/search", args, 2, "total_cap"); err != nil {
		return nil, err
	}
	if limits.SearchDepth, err = optionalIntArg("browser/search", args, 3, "depth"); err != nil {
		return nil, err
	}

	results := t.browser.SearchWithLimits(query, limits)

	// Zero results is still a sequence, never void, so callers can tell
	// "nothing matched" from "command not applicable".
	flat := browser.FlattenResults(results)
	out := make([]interface{}, 0, len(flat))
	for _, v := range flat {
		out = append(out, v)
	}
	return out, nil
}

func (t *Table) listCategories(args []interface{}) ([]interface{}, error) {
	tokens := t.browser.ListCategories()
	out := make([]interface{}, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, token)
	}
	return out, nil
}

func (t *Table) listChildren(args []interface{}) ([]interface{}, error) {
	category, err := stringArg("browser/list_children", args, 0, "category")
	if err != nil {
		return nil, err
	}
	path, err := restStringArgs("browser/list_children", args, 1, "path")
	if err != nil {
		return nil, err
	}

	names, err := t.browser.ListChildren(category, path)
	if err != nil {
		return nil, err
	}

	out := make([]interface{}, 0, len(names))
	for _, name := range names {
		out = append(out, name)
	}
	return out, nil
}

func (t *Table) hotswapStart(args []interface{}) ([]interface{}, error) {
	trackIndex, err := intArg("browser/hotswap_start", args, 0, "track_index")
	if err != nil {
		return nil, err
	}
	deviceIndex, err := intArg("browser/hotswap_start", args, 1, "device_index")
	if err != nil {
		return nil, err
	}

	device, err := t.browser.HotswapStart(trackIndex, deviceIndex)
	if err != nil {
		return nil, err
	}
	return []interface{}{device}, nil
}

func (t *Table) hotswapLoad(args []interface{}) ([]interface{}, error) {
	name, err := stringArg("browser/hotswap_load", args, 0, "name")
	if err != nil {
		return nil, err
	}

	loaded, err := t.browser.HotswapLoad(name)
	if err != nil {
		return nil, err
	}
	return []interface{}{loaded}, nil
}
