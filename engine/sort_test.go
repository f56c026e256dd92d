package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tradelens-org/tradelens/action"
)

// ============================================================================
// SORT TESTS
// ============================================================================

func sortFixture() []action.TradeAction {
	return []action.TradeAction{
		{ID: "ta-0001", Title: "Gamma", EffectiveDate: "2025-03-12"},
		{ID: "ta-0002", Title: "Alpha", EffectiveDate: ""},
		{ID: "ta-0003", Title: "Beta", EffectiveDate: "2025-01-10"},
		{ID: "ta-0004", Title: "Delta", EffectiveDate: ""},
	}
}

func TestSortByDateDescending(t *testing.T) {
	got := SortActions(sortFixture(), SortState{Field: SortByDate, Descending: true})
	assert.Equal(t, []string{"ta-0001", "ta-0003", "ta-0002", "ta-0004"}, ids(got))
}

func TestMissingDatesGroupTogetherAsEarliest(t *testing.T) {
	got := SortActions(sortFixture(), SortState{Field: SortByDate, Descending: false})
	// The two undated records sort first, keeping their original relative order.
	assert.Equal(t, []string{"ta-0002", "ta-0004", "ta-0003", "ta-0001"}, ids(got))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	fixture := sortFixture()
	SortActions(fixture, SortState{Field: SortByTitle, Descending: true})
	assert.Equal(t, sortFixture(), fixture)
}

func TestSortByTitle(t *testing.T) {
	got := SortActions(sortFixture(), SortState{Field: SortByTitle, Descending: false})
	assert.Equal(t, []string{"ta-0002", "ta-0003", "ta-0004", "ta-0001"}, ids(got))
}

// --- Toggle semantics ---

func TestReselectingActiveFieldTogglesDirection(t *testing.T) {
	s := DefaultSortState()
	toggled := s.Next(SortByDate)
	assert.Equal(t, SortState{Field: SortByDate, Descending: false}, toggled)

	// Toggling twice restores the original order.
	again := toggled.Next(SortByDate)
	assert.Equal(t, s, again)

	first := SortActions(sortFixture(), s)
	second := SortActions(sortFixture(), again)
	assert.Equal(t, ids(first), ids(second))
}

func TestSelectingNewFieldResetsToDescending(t *testing.T) {
	s := SortState{Field: SortByDate, Descending: false}
	next := s.Next(SortByTitle)
	assert.Equal(t, SortState{Field: SortByTitle, Descending: true}, next)
}
