package sector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradelens-org/tradelens/action"
)

// ============================================================================
// CLASSIFIER TESTS
// ============================================================================

func TestCuratedTableWins(t *testing.T) {
	// ta-0003 is curated to agriculture; the steel keyword must not override it.
	a := action.TradeAction{
		ID:    "ta-0003",
		Title: "Steel packaging surcharge for produce importers",
	}
	assert.Equal(t, []string{"agriculture"}, Classify(a))
}

func TestCuratedMultiSector(t *testing.T) {
	a := action.TradeAction{ID: "ta-0002", Title: "unrelated"}
	assert.Equal(t, []string{"metals", "automotive"}, Classify(a))
}

func TestKeywordFallbackFirstMatchWins(t *testing.T) {
	// Mentions both steel (metals rule) and vehicles (automotive rule);
	// metals sits higher in the rule table.
	a := action.TradeAction{
		ID:      "ta-9999",
		Title:   "Duty on steel used in vehicle frames",
		Summary: "Applies to automotive suppliers.",
	}
	assert.Equal(t, []string{"metals"}, Classify(a))
}

func TestKeywordFallbackUsesAuthorityText(t *testing.T) {
	a := action.TradeAction{
		ID:               "ta-9998",
		Title:            "Rate adjustment",
		Summary:          "See authority.",
		FederalAuthority: "Softwood Lumber Agreement",
	}
	assert.Equal(t, []string{"forestry"}, Classify(a))
}

func TestDefaultSectorWhenNothingMatches(t *testing.T) {
	a := action.TradeAction{ID: "ta-9997", Title: "General filing requirement update"}
	got := Classify(a)
	require.NotEmpty(t, got, "classification always returns at least one sector")
	assert.Equal(t, []string{DefaultSectorID}, got)
}

func TestClassifyReturnsCopy(t *testing.T) {
	a := action.TradeAction{ID: "ta-0001"}
	first := Classify(a)
	first[0] = "mutated"
	assert.Equal(t, []string{"metals"}, Classify(a), "callers cannot mutate the curated table")
}

func TestByID(t *testing.T) {
	s, ok := ByID("metals")
	require.True(t, ok)
	assert.Equal(t, "Steel & Aluminum", s.Name)

	_, ok = ByID("no-such-sector")
	assert.False(t, ok)
}

// ============================================================================
// TABLE INTEGRITY — defects here are data bugs, not runtime conditions
// ============================================================================

func TestNoOrphanSectorIDsInCuratedTable(t *testing.T) {
	for recordID, sectorIDs := range CuratedIDs() {
		require.NotEmpty(t, sectorIDs, "curated entry %q maps to no sectors", recordID)
		for _, id := range sectorIDs {
			_, ok := ByID(id)
			assert.True(t, ok, "curated entry %q references undefined sector %q", recordID, id)
		}
	}
}

func TestEveryKeywordRuleTargetsDefinedSector(t *testing.T) {
	for _, rule := range KeywordRules() {
		_, ok := ByID(rule.Sector)
		assert.True(t, ok, "keyword rule targets undefined sector %q", rule.Sector)
		assert.NotEmpty(t, rule.Terms, "keyword rule for %q has no terms", rule.Sector)
	}
}

func TestDefaultSectorIsDefined(t *testing.T) {
	_, ok := ByID(DefaultSectorID)
	assert.True(t, ok)
}

func TestEverySectorReachableFromRepresentativeFixture(t *testing.T) {
	reached := make(map[string]bool)
	for _, a := range representativeFixture() {
		for _, id := range Classify(a) {
			reached[id] = true
		}
	}
	for _, s := range Sectors() {
		assert.True(t, reached[s.ID], "sector %q has no mapped record in the representative fixture", s.ID)
	}
}
