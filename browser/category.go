package browser

import "strings"

// Category identifies one of the host's fixed top-level catalog roots.
type Category string

const (
	CategoryInstruments    Category = "instruments"
	CategoryDrums          Category = "drums"
	CategorySounds         Category = "sounds"
	CategoryAudioEffects   Category = "audio_effects"
	CategoryMidiEffects    Category = "midi_effects"
	CategoryMaxForLive     Category = "max_for_live"
	CategoryPlugins        Category = "plugins"
	CategoryClips          Category = "clips"
	CategorySamples        Category = "samples"
	CategoryPacks          Category = "packs"
	CategoryUserLibrary    Category = "user_library"
	CategoryCurrentProject Category = "current_project"
)

// Categories lists every category in its fixed, stable order.
var Categories = []Category{
	CategoryInstruments,
	CategoryDrums,
	CategorySounds,
	CategoryAudioEffects,
	CategoryMidiEffects,
	CategoryMaxForLive,
	CategoryPlugins,
	CategoryClips,
	CategorySamples,
	CategoryPacks,
	CategoryUserLibrary,
	CategoryCurrentProject,
}

// searchCategories is the fixed order blanket search walks. current_project,
// packs, user_library and max_for_live are excluded: their trees are large,
// slow, or duplicate content reachable through the other roots.
var searchCategories = []Category{
	CategoryInstruments,
	CategoryDrums,
	CategorySounds,
	CategoryAudioEffects,
	CategoryMidiEffects,
	CategoryPlugins,
	CategoryClips,
	CategorySamples,
}

// hotswapCategories is the fixed order hotswap_load searches,
// first-category-wins.
var hotswapCategories = []Category{
	CategoryInstruments,
	CategoryAudioEffects,
	CategoryMidiEffects,
	CategorySounds,
}

// CategoryFor maps a category name token to its Category, case-insensitively.
// Unknown tokens yield ok=false; callers report this as a warning, not a
// fatal error.
func CategoryFor(token string) (Category, bool) {
	lower := strings.ToLower(token)
	for _, c := range Categories {
		if string(c) == lower {
			return c, true
		}
	}
	return "", false
}
