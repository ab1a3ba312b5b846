package browser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchSubstringCaseInsensitive(t *testing.T) {
	host := newFakeHost()
	host.setRoot(CategoryInstruments,
		folder("Synths", preset("Analog Bass"), preset("Digital Keys")),
		preset("Grand Piano"),
	)

	b := newTestBrowser(host)

	results := b.Search("aNaLoG")
	require.Len(t, results, 1)
	assert.Equal(t, CategoryInstruments, results[0].Category)
	assert.Equal(t, "Analog Bass", results[0].Name)
}

func TestSearchEmptyIsSequenceNotNil(t *testing.T) {
	host := newFakeHost()
	host.setRoot(CategoryInstruments, preset("Drift"))

	b := newTestBrowser(host)

	results := b.Search("zzz-no-such-item")
	require.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchDepthCutoff(t *testing.T) {
	// Match at depth 4 with search depth 3: the node must not be visited.
	host := newFakeHost()
	host.setRoot(CategorySounds,
		folder("L1", folder("L2", folder("L3", preset("target deep")))),
		preset("target shallow"),
	)

	b := newTestBrowser(host)

	results := b.Search("target")
	require.Len(t, results, 1)
	assert.Equal(t, "target shallow", results[0].Name)
}

func TestSearchPerCategoryCap(t *testing.T) {
	children := make([]Item, 0, 20)
	for i := 0; i < 20; i++ {
		children = append(children, preset(fmt.Sprintf("Kick %02d", i)))
	}

	host := newFakeHost()
	host.setRoot(CategoryDrums, children...)

	b := newTestBrowser(host)

	results := b.Search("Kick")
	require.Len(t, results, 10)
	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("Kick %02d", i), r.Name, "first 10 in DFS order")
	}
}

func TestSearchTotalCapAndCategoryOrder(t *testing.T) {
	host := newFakeHost()
	for _, category := range searchCategories {
		children := make([]Item, 0, 12)
		for i := 0; i < 12; i++ {
			children = append(children, preset(fmt.Sprintf("%s pad %02d", category, i)))
		}
		host.setRoot(category, children...)
	}

	b := newTestBrowser(host)

	results := b.Search("pad")
	require.Len(t, results, 50)

	// 10 per category: all 50 come from the first five categories in fixed
	// order, none from the sixth onward.
	for i, r := range results {
		assert.Equal(t, searchCategories[i/10], r.Category)
	}
}

func TestSearchSkipsMissingCategoryRoots(t *testing.T) {
	host := newFakeHost()
	host.setRoot(CategorySamples, preset("Vinyl Crackle"))

	b := newTestBrowser(host)

	results := b.Search("vinyl")
	require.Len(t, results, 1)
	assert.Equal(t, CategorySamples, results[0].Category)
}

func TestFlattenResults(t *testing.T) {
	results := []SearchResult{
		{Category: CategoryInstruments, Name: "Drift"},
		{Category: CategoryDrums, Name: "808 Kick"},
	}

	flat := FlattenResults(results)
	assert.Equal(t, []string{"instruments", "Drift", "drums", "808 Kick"}, flat)

	assert.NotNil(t, FlattenResults(nil))
}

func TestSearchWithLimitsTightens(t *testing.T) {
	children := make([]Item, 0, 8)
	for i := 0; i < 8; i++ {
		children = append(children, preset(fmt.Sprintf("Snare %02d", i)))
	}

	host := newFakeHost()
	host.setRoot(CategoryDrums, children...)

	b := newTestBrowser(host)

	results := b.SearchWithLimits("Snare", Limits{PerCategoryCap: 3})
	require.Len(t, results, 3)
	assert.Equal(t, "Snare 00", results[0].Name)
}

func TestSearchWithLimitsCannotExceedActive(t *testing.T) {
	children := make([]Item, 0, 30)
	for i := 0; i < 30; i++ {
		children = append(children, preset(fmt.Sprintf("Hat %02d", i)))
	}

	host := newFakeHost()
	host.setRoot(CategoryDrums, children...)

	b := newTestBrowser(host)

	// Active per-category cap is 10; a larger per-call cap is clamped to it.
	results := b.SearchWithLimits("Hat", Limits{PerCategoryCap: 100})
	assert.Len(t, results, 10)
}

func TestSearchWithLimitsDepthOverride(t *testing.T) {
	host := newFakeHost()
	host.setRoot(CategorySounds,
		folder("L1", folder("L2", preset("target deep"))),
		preset("target shallow"),
	)

	b := newTestBrowser(host)

	results := b.SearchWithLimits("target", Limits{SearchDepth: 1})
	require.Len(t, results, 1)
	assert.Equal(t, "target shallow", results[0].Name)
}
