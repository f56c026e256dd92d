package engine

import (
	"github.com/tradelens-org/tradelens/action"
)

// ============================================================================
// STATISTICS — Summary numbers over the filtered set
// ============================================================================
// Frequency maps are full (chart consumers iterate them); the top entries
// break ties by first encounter in record order so results are stable.
// ============================================================================

// Stats summarizes a (filtered) record set.
type Stats struct {
	Total  int `json:"total"`
	Active int `json:"active"`

	TopCountry      string `json:"topCountry"`
	TopCountryCount int    `json:"topCountryCount"`

	TopActionType      string `json:"topActionType"`
	TopActionTypeCount int    `json:"topActionTypeCount"`

	CountryCounts    map[string]int `json:"countryCounts"`
	ActionTypeCounts map[string]int `json:"actionTypeCounts"`
}

// ComputeStats derives summary statistics from a record set. Sentinel
// values ("All", "Multiple") are not countries and are excluded from the
// country frequencies.
func ComputeStats(actions []action.TradeAction) Stats {
	stats := Stats{
		CountryCounts:    make(map[string]int),
		ActionTypeCounts: make(map[string]int),
	}

	// Insertion order drives the first-encountered tie-break.
	var countryOrder []string
	var typeOrder []string

	for _, a := range actions {
		stats.Total++
		if a.Status == action.StatusActive {
			stats.Active++
		}

		for _, c := range a.RealCountries() {
			if stats.CountryCounts[c] == 0 {
				countryOrder = append(countryOrder, c)
			}
			stats.CountryCounts[c]++
		}

		if a.ActionType != "" {
			if stats.ActionTypeCounts[a.ActionType] == 0 {
				typeOrder = append(typeOrder, a.ActionType)
			}
			stats.ActionTypeCounts[a.ActionType]++
		}
	}

	stats.TopCountry, stats.TopCountryCount = topEntry(countryOrder, stats.CountryCounts)
	stats.TopActionType, stats.TopActionTypeCount = topEntry(typeOrder, stats.ActionTypeCounts)
	return stats
}

// topEntry picks the highest-count key; order carries first-seen precedence,
// so only a strictly greater count displaces the current leader.
func topEntry(order []string, counts map[string]int) (string, int) {
	var top string
	var max int
	for _, k := range order {
		if counts[k] > max {
			top = k
			max = counts[k]
		}
	}
	return top, max
}
