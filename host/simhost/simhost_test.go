package simhost

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagecraft/catalogd/browser"
	"github.com/stagecraft/catalogd/errors"
)

const snapshotYAML = `
categories:
  instruments:
    - name: Simpler
      children:
        - name: Simpler Default
          loadable: true
    - name: Wavetable
      loadable: true
  plugins:
    - name: VST3
      children:
        - name: Surge XT
          loadable: true
          device: true
tracks:
  - name: 1-Bass
    devices: [Operator, Echo]
  - name: 2-Drums
    devices: [Drum Rack]
`

func TestParseBuildsCategoryRoots(t *testing.T) {
	h, err := Parse([]byte(snapshotYAML))
	require.NoError(t, err)

	root, ok := h.CategoryRoot(browser.CategoryInstruments)
	require.True(t, ok)
	require.Len(t, root.Children(), 2)
	assert.Equal(t, "Simpler", root.Children()[0].Name())
	assert.False(t, root.Children()[0].IsLoadable())
	assert.True(t, root.Children()[1].IsLoadable())

	// Nesting and the device flag survive the round trip.
	plugins, ok := h.CategoryRoot(browser.CategoryPlugins)
	require.True(t, ok)
	surge := plugins.Children()[0].Children()[0]
	assert.Equal(t, "Surge XT", surge.Name())
	assert.True(t, surge.IsDevice())

	_, ok = h.CategoryRoot(browser.CategorySamples)
	assert.False(t, ok)
}

func TestParseBuildsTracks(t *testing.T) {
	h, err := Parse([]byte(snapshotYAML))
	require.NoError(t, err)

	tracks := h.Tracks()
	require.Len(t, tracks, 2)
	assert.Equal(t, "1-Bass", tracks[0].Name())
	require.Len(t, tracks[0].Devices(), 2)
	assert.Equal(t, "Echo", tracks[0].Devices()[1].Name())
}

func TestParseRejectsUnknownCategory(t *testing.T) {
	_, err := Parse([]byte(`
categories:
  basslines:
    - name: Anything
`))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnknownCategory, errors.GetCode(err))
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("categories: [broken"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestLoadReadsSnapshotFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte(snapshotYAML), 0644))

	h, err := Load(path)
	require.NoError(t, err)
	_, ok := h.CategoryRoot(browser.CategoryInstruments)
	assert.True(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestHostRecordsOperations(t *testing.T) {
	h, err := Parse([]byte(snapshotYAML))
	require.NoError(t, err)

	root, _ := h.CategoryRoot(browser.CategoryInstruments)
	wavetable := root.Children()[1]

	require.NoError(t, h.Load(wavetable))
	require.NoError(t, h.Load(wavetable))
	assert.Equal(t, []string{"Wavetable", "Wavetable"}, h.Loaded())

	require.NoError(t, h.Preview(wavetable))
	assert.Equal(t, "Wavetable", h.Previewing())
	require.NoError(t, h.StopPreview())
	assert.Empty(t, h.Previewing())

	target := h.Tracks()[0].Devices()[0]
	require.NoError(t, h.SetHotswapTarget(target))
	assert.Equal(t, "Operator", h.HotswapTarget().Name())
}
