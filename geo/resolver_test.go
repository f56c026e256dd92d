package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// RESOLVER TESTS
// ============================================================================

func TestOverrideRoundTrip(t *testing.T) {
	// For every override entry, dataset → feature → dataset is the identity.
	require.NotEmpty(t, overrides)
	for datasetName := range overrides {
		feature, ok := ToFeatureName(datasetName)
		require.True(t, ok, "override entry %q must be mappable", datasetName)

		back, ok := ToDatasetName(feature)
		require.True(t, ok)
		assert.Equal(t, datasetName, back, "round trip for %q", datasetName)
	}
}

func TestNonOverriddenNamesPassThrough(t *testing.T) {
	feature, ok := ToFeatureName("Japan")
	require.True(t, ok)
	assert.Equal(t, "Japan", feature)

	dataset, ok := ToDatasetName("Japan")
	require.True(t, ok)
	assert.Equal(t, "Japan", dataset)
}

func TestSentinelsNeverResolve(t *testing.T) {
	for _, name := range []string{"All", "Multiple"} {
		_, ok := ToFeatureName(name)
		assert.False(t, ok, "%q is not a country", name)
		assert.False(t, IsMappable(name))
	}
}

func TestUnmappableCountries(t *testing.T) {
	require.NotEmpty(t, unmappable)
	for name := range unmappable {
		_, ok := ToFeatureName(name)
		assert.False(t, ok, "%q has no boundary geometry", name)
		assert.False(t, IsMappable(name))
	}
}

func TestEmptyInput(t *testing.T) {
	_, ok := ToFeatureName("")
	assert.False(t, ok)

	_, ok = ToDatasetName("")
	assert.False(t, ok)

	assert.False(t, IsMappable(""))
}

func TestIsMappable(t *testing.T) {
	assert.True(t, IsMappable("China"))
	assert.True(t, IsMappable("United States"))
	assert.False(t, IsMappable("Singapore"))
	assert.False(t, IsMappable("All"))
}

// No override may target a feature name that is itself a sentinel or an
// unmappable entry, and no name may sit in both tables.
func TestTableConsistency(t *testing.T) {
	for datasetName, feature := range overrides {
		assert.False(t, sentinels[datasetName], "override key %q is a sentinel", datasetName)
		assert.False(t, unmappable[datasetName], "override key %q is also unmappable", datasetName)
		assert.NotEmpty(t, feature, "override for %q has an empty feature name", datasetName)
	}
	for name := range unmappable {
		assert.False(t, sentinels[name], "%q is both unmappable and a sentinel", name)
	}
}
