package geo

import (
	"sort"

	"github.com/tradelens-org/tradelens/action"
)

// ============================================================================
// GEOSPATIAL AGGREGATOR — Per-country counts for the map
// ============================================================================
// Two-tier counting model, kept strictly separate:
//
//   specific — records that name a country explicitly, counted under that
//              country's feature name
//   global   — records containing the "All" sentinel, tracked once as an
//              applies-to-all aggregate and never folded into any country's
//              specific count
//
// CountForFeature returns the specific count only. A presentation layer that
// wants total visual intensity combines it with AllCountryCount explicitly;
// pre-merging here would double-count a record that lists both "All" and a
// named country.
// ============================================================================

// CountryCounts holds per-feature specific counts and the global aggregate.
type CountryCounts struct {
	specific map[string]int // keyed by boundary feature name
	global   []action.TradeAction
	maxCount int
}

// Aggregate builds country counts from a (filtered) record set.
//
// Unresolvable names — sentinels, unmappable countries — are skipped
// silently: resolution failure is expected for them, not an error. Each
// record contributes at most once per country and at most once to the
// global aggregate, regardless of duplicates in countries_affected.
func Aggregate(actions []action.TradeAction) *CountryCounts {
	c := &CountryCounts{specific: make(map[string]int)}

	for _, a := range actions {
		if a.AppliesToAll() {
			c.global = append(c.global, a)
		}
		for _, name := range a.RealCountries() {
			feature, ok := ToFeatureName(name)
			if !ok {
				continue
			}
			c.specific[feature]++
		}
	}

	for _, n := range c.specific {
		if n > c.maxCount {
			c.maxCount = n
		}
	}
	// Floor of 1 so color-scale normalization never divides by zero.
	if c.maxCount < 1 {
		c.maxCount = 1
	}
	return c
}

// CountForFeature returns the specific-action count for a boundary feature
// name. Records that apply to all countries are not included.
func (c *CountryCounts) CountForFeature(featureName string) int {
	return c.specific[featureName]
}

// AllCountryCount returns how many records apply uniformly to all countries.
func (c *CountryCounts) AllCountryCount() int {
	return len(c.global)
}

// GlobalActions returns the records that apply to all countries.
func (c *CountryCounts) GlobalActions() []action.TradeAction {
	return c.global
}

// MaxCount returns the normalization ceiling: the largest specific count
// across all features, never below 1.
func (c *CountryCounts) MaxCount() int {
	return c.maxCount
}

// FeatureNames returns the counted feature names in sorted order.
func (c *CountryCounts) FeatureNames() []string {
	names := make([]string, 0, len(c.specific))
	for name := range c.specific {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TargetedActions returns the records that explicitly name the given dataset
// country. Records whose only targeting is "All" are excluded — they belong
// to the global aggregate, and listing them here would double-count them
// against the country's specific count.
func TargetedActions(actions []action.TradeAction, datasetName string) []action.TradeAction {
	var out []action.TradeAction
	for _, a := range actions {
		if a.Targets(datasetName) {
			out = append(out, a)
		}
	}
	return out
}
