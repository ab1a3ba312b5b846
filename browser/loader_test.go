package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagecraft/catalogd/errors"
)

func TestLoadResolvesFolderToFirstLoadable(t *testing.T) {
	host := newFakeHost()
	host.setRoot(CategoryAudioEffects,
		folder("Reverb",
			folder("Halls", preset("Large Hall")),
			preset("Small Room"),
		),
	)

	b := newTestBrowser(host)

	loaded, err := b.Load("audio_effects", "reverb")
	require.NoError(t, err)
	assert.Equal(t, "Small Room", loaded, "loadable direct child beats deeper match")
	assert.Equal(t, []string{"Small Room"}, host.loaded)
}

func TestLoadUnknownCategory(t *testing.T) {
	host := newFakeHost()
	b := newTestBrowser(host)

	_, err := b.Load("bogus", "anything")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnknownCategory, errors.GetCode(err))
	assert.Empty(t, host.loaded)
}

func TestLoadNameMissIsNotFound(t *testing.T) {
	host := newFakeHost()
	host.setRoot(CategoryInstruments, preset("Drift"))

	b := newTestBrowser(host)

	_, err := b.Load("instruments", "Operator")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, errors.GetCode(err))
	assert.Empty(t, host.loaded, "no fuzzy fallback within Load")
}

func TestLoadHostFailureIsWrapped(t *testing.T) {
	host := newFakeHost()
	host.setRoot(CategoryInstruments, preset("Drift"))
	host.failLoad = true

	b := newTestBrowser(host)

	_, err := b.Load("instruments", "Drift")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeHostOperation, errors.GetCode(err))
}

func TestLoadInstrumentSubstringAgainstDirectChildren(t *testing.T) {
	host := newFakeHost()
	host.setRoot(CategoryInstruments,
		folder("Simpler", preset("Simpler Default")),
		preset("Wavetable"),
	)

	b := newTestBrowser(host)

	loaded, err := b.LoadInstrument("simp")
	require.NoError(t, err)
	assert.Equal(t, "Simpler Default", loaded)
}

func TestLoadInstrumentFallsBackToExactRecursive(t *testing.T) {
	host := newFakeHost()
	host.setRoot(CategoryInstruments,
		folder("Synths", preset("Operator")),
	)

	b := newTestBrowser(host)

	// "Operator" is no substring of any direct child, but the recursive
	// exact search finds it.
	loaded, err := b.LoadInstrument("Operator")
	require.NoError(t, err)
	assert.Equal(t, "Operator", loaded)
}

func TestLoadDrumKitByName(t *testing.T) {
	host := newFakeHost()
	host.setRoot(CategoryDrums,
		folder("Kits", preset("808 Core Kit")),
	)

	b := newTestBrowser(host)

	loaded, err := b.LoadDrumKit("808 core kit")
	require.NoError(t, err)
	assert.Equal(t, "808 Core Kit", loaded)
}

func TestLoadDrumKitWithoutNameTakesFirstLoadable(t *testing.T) {
	host := newFakeHost()
	host.setRoot(CategoryDrums,
		folder("Kits", preset("606 Core Kit")),
		preset("909 Core Kit"),
	)

	b := newTestBrowser(host)

	loaded, err := b.LoadDrumKit("")
	require.NoError(t, err)
	assert.Equal(t, "909 Core Kit", loaded)
}

func TestLoadDrumKitResolvedItemMustBeLoadable(t *testing.T) {
	host := newFakeHost()
	// "Acoustic" is a folder: find_by_name resolves it, but a kit that is
	// not itself loadable must be rejected.
	host.setRoot(CategoryDrums,
		folder("Acoustic", preset("Brush Kit")),
	)

	b := newTestBrowser(host)

	_, err := b.LoadDrumKit("Acoustic")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotLoadable, errors.GetCode(err))
	assert.Empty(t, host.loaded)
}

func TestLoadDrumKitUnknownNameIsNotFound(t *testing.T) {
	host := newFakeHost()
	host.setRoot(CategoryDrums,
		folder("Kits", preset("808 Core Kit")),
	)

	b := newTestBrowser(host)

	// A lookup miss is a different failure than a kit with no loadable form.
	_, err := b.LoadDrumKit("No Such Kit")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, errors.GetCode(err))
	assert.Empty(t, host.loaded)
}

func TestLoadDrumKitEmptyCategoryIsNotLoadable(t *testing.T) {
	host := newFakeHost()
	host.setRoot(CategoryDrums, folder("Empty Folder"))

	b := newTestBrowser(host)

	_, err := b.LoadDrumKit("")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotLoadable, errors.GetCode(err))
}

func TestLoadDefaultPrefersCuratedOrder(t *testing.T) {
	// Simpler not loadable directly but has a loadable descendant;
	// Wavetable loadable. Preference list resolves Wavetable first.
	host := newFakeHost()
	host.setRoot(CategoryInstruments,
		folder("Simpler", preset("Simpler Default")),
		preset("Wavetable"),
	)

	b := newTestBrowser(host)

	loaded, err := b.LoadDefault("instruments", []string{"Drift", "Analog", "Wavetable"})
	require.NoError(t, err)
	assert.Equal(t, "Wavetable", loaded, "first preferred name present wins; Simpler is never reached")
	assert.Equal(t, []string{"Wavetable"}, host.loaded)
}

func TestLoadDefaultFallsBackToAnythingLoadable(t *testing.T) {
	host := newFakeHost()
	host.setRoot(CategoryInstruments,
		folder("Samplers", preset("Simpler Default")),
	)

	b := newTestBrowser(host)

	loaded, err := b.LoadDefault("instruments", []string{"Drift", "Analog"})
	require.NoError(t, err)
	assert.Equal(t, "Simpler Default", loaded)
}

func TestLoadDefaultEmptyCategory(t *testing.T) {
	host := newFakeHost()
	host.setRoot(CategoryInstruments, folder("Empty"))

	b := newTestBrowser(host)

	_, err := b.LoadDefault("instruments", []string{"Drift"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotLoadable, errors.GetCode(err))
}

func TestPreviewDoesNotLoad(t *testing.T) {
	host := newFakeHost()
	host.setRoot(CategorySounds, preset("Warm Pad"))

	b := newTestBrowser(host)

	previewed, err := b.Preview("sounds", "Warm Pad")
	require.NoError(t, err)
	assert.Equal(t, "Warm Pad", previewed)
	assert.Equal(t, []string{"Warm Pad"}, host.previewed)
	assert.Empty(t, host.loaded)
}

func TestStopPreviewAlwaysSucceeds(t *testing.T) {
	host := newFakeHost()
	b := newTestBrowser(host)

	require.NoError(t, b.StopPreview())
	require.NoError(t, b.StopPreview())
	assert.Equal(t, 2, host.stopCalls)
}
