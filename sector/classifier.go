package sector

import (
	"strings"

	"github.com/tradelens-org/tradelens/action"
)

// ============================================================================
// CLASSIFIER — Two-tier sector assignment
// ============================================================================
// Tier 1: the curated table maps specific record ids to sectors and is
// authoritative whenever present.
// Tier 2: ordered keyword rules over the record's title, summary, and
// federal authority text, first match wins.
// Records matching neither fall back to the cross-sector default, so every
// record always lands in at least one bucket.
// ============================================================================

// DefaultSectorID is assigned when no curated entry or keyword rule applies.
const DefaultSectorID = "cross-sector"

// Classify returns the sector ids for a record. The result is never empty.
func Classify(a action.TradeAction) []string {
	if ids, ok := curated[a.ID]; ok && len(ids) > 0 {
		return append([]string(nil), ids...)
	}

	haystack := strings.ToLower(a.Title + " " + a.Summary + " " + a.FederalAuthority)
	for _, rule := range rules {
		for _, term := range rule.Terms {
			if strings.Contains(haystack, term) {
				return []string{rule.Sector}
			}
		}
	}

	return []string{DefaultSectorID}
}
