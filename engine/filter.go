package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tradelens-org/tradelens/action"
)

// ============================================================================
// FILTERS — Composable predicates over the record set
// ============================================================================
// Single-pass filter: checks every active dimension per record in one loop.
// AND across dimensions, OR within a multi-select dimension. The caller owns
// the FilterState; ApplyFilters never mutates it or the input slice.
// ============================================================================

// FilterState holds the caller's current filter selections.
// Empty fields mean "no restriction" in that dimension.
type FilterState struct {
	Countries   []string `json:"countries"`
	ActionTypes []string `json:"actionTypes"`
	Statuses    []string `json:"statuses"`
	DateStart   string   `json:"dateStart"` // inclusive ISO date, "" = unbounded
	DateEnd     string   `json:"dateEnd"`   // inclusive ISO date, "" = unbounded
	SearchText  string   `json:"searchText"`
}

// IsEmpty returns true if no filters are set.
func (f FilterState) IsEmpty() bool {
	return len(f.Countries) == 0 &&
		len(f.ActionTypes) == 0 &&
		len(f.Statuses) == 0 &&
		f.DateStart == "" &&
		f.DateEnd == "" &&
		strings.TrimSpace(f.SearchText) == ""
}

// ApplyFilters returns the records matching every active dimension of f.
//
// Semantics:
//   - countries, action types, statuses: OR within the dimension. A record
//     containing the "All" sentinel matches any country selection.
//   - date bounds are inclusive and apply to effective_date; a record with
//     no effective date is never excluded by a date filter.
//   - search text is a substring match against a folded concatenation of
//     title, summary, excerpt, source id, countries, and HS codes.
//
// An empty FilterState is the identity: the input slice is returned as-is.
func ApplyFilters(actions []action.TradeAction, f FilterState) []action.TradeAction {
	if f.IsEmpty() {
		return actions
	}

	countrySet := toLowerSet(f.Countries)
	typeSet := toLowerSet(f.ActionTypes)
	statusSet := toLowerSet(f.Statuses)
	query := foldText(f.SearchText)

	out := make([]action.TradeAction, 0, len(actions))
	for _, a := range actions {
		if len(countrySet) > 0 && !matchesCountry(a, countrySet) {
			continue
		}
		if len(typeSet) > 0 && !typeSet[strings.ToLower(a.ActionType)] {
			continue
		}
		if len(statusSet) > 0 && !statusSet[strings.ToLower(a.Status)] {
			continue
		}
		if !matchesDates(a, f.DateStart, f.DateEnd) {
			continue
		}
		if query != "" && !strings.Contains(searchHaystack(a), query) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matchesCountry(a action.TradeAction, selected map[string]bool) bool {
	for _, c := range a.CountriesAffected {
		// "All" applies uniformly, so it satisfies any country selection.
		if c == action.SentinelAll {
			return true
		}
		if selected[strings.ToLower(c)] {
			return true
		}
	}
	return false
}

func matchesDates(a action.TradeAction, start, end string) bool {
	if a.EffectiveDate == "" {
		return true
	}
	if start != "" && a.EffectiveDate < start {
		return false
	}
	if end != "" && a.EffectiveDate > end {
		return false
	}
	return true
}

// searchHaystack concatenates the searchable fields of a record, folded.
func searchHaystack(a action.TradeAction) string {
	parts := []string{
		a.Title,
		a.Summary,
		a.RawExcerpt,
		a.SourceCSMSID,
		strings.Join(a.CountriesAffected, " "),
		strings.Join(a.HSCodes, " "),
	}
	return foldText(strings.Join(parts, " "))
}

// toLowerSet converts a string slice to a lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}

// accentFolder strips combining marks so "Côte d'Ivoire" matches "cote".
var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldText lowercases and accent-folds a string for search comparison.
func foldText(s string) string {
	folded, _, err := transform.String(accentFolder, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
