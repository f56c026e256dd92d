package engine

import (
	"sort"
	"strings"

	"github.com/tradelens-org/tradelens/action"
)

// ============================================================================
// SORTING — Stable ordering by a selected field and direction
// ============================================================================

// Sortable fields.
const (
	SortByDate   = "date"
	SortByTitle  = "title"
	SortByType   = "type"
	SortByStatus = "status"
)

// SortState holds the caller's current sort selection.
// The zero value (date, descending=false) is not special; consumers
// typically start from DefaultSortState.
type SortState struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// DefaultSortState is newest-first by effective date.
func DefaultSortState() SortState {
	return SortState{Field: SortByDate, Descending: true}
}

// Next returns the sort state after the user selects a field: re-selecting
// the active field toggles direction, a new field resets to descending.
func (s SortState) Next(field string) SortState {
	if field == s.Field {
		return SortState{Field: s.Field, Descending: !s.Descending}
	}
	return SortState{Field: field, Descending: true}
}

// SortActions returns a new slice ordered by the sort state. The input is
// never reordered in place. Sorting is stable, so records equal under the
// sort key keep their relative order.
//
// Records without an effective date sort as earliest: the empty string is
// lexicographically smallest, which groups them together instead of
// interleaving arbitrarily.
func SortActions(actions []action.TradeAction, s SortState) []action.TradeAction {
	out := make([]action.TradeAction, len(actions))
	copy(out, actions)

	key := sortKey(s.Field)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := key(out[i]), key(out[j])
		if s.Descending {
			return a > b
		}
		return a < b
	})
	return out
}

func sortKey(field string) func(action.TradeAction) string {
	switch field {
	case SortByTitle:
		return func(a action.TradeAction) string { return strings.ToLower(a.Title) }
	case SortByType:
		return func(a action.TradeAction) string { return a.ActionType }
	case SortByStatus:
		return func(a action.TradeAction) string { return a.Status }
	default:
		return func(a action.TradeAction) string { return a.EffectiveDate }
	}
}
