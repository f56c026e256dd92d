package view

import (
	"fmt"

	"github.com/tradelens-org/tradelens/engine"
	"github.com/tradelens-org/tradelens/geo"
	"github.com/tradelens-org/tradelens/sector"
)

// ============================================================================
// TEXT BUILDER — One-paragraph digest of the current view
// ============================================================================

// BuildTextSummary produces a human-readable digest from the derived
// aggregates of a filtered record set.
func BuildTextSummary(stats engine.Stats, buckets []sector.Bucket, counts *geo.CountryCounts) *TextSummary {
	s := &TextSummary{
		Total:         stats.Total,
		Active:        stats.Active,
		TopCountry:    stats.TopCountry,
		TopActionType: stats.TopActionType,
		SectorCount:   len(buckets),
		GlobalActions: counts.AllCountryCount(),
	}

	if stats.Total == 0 {
		s.Reply = "No actions match the current filters."
		return s
	}

	s.Reply = fmt.Sprintf("%d actions (%d active) across %d sectors", stats.Total, stats.Active, s.SectorCount)
	if stats.TopCountry != "" {
		s.Reply += fmt.Sprintf("; most targeted: %s (%d)", stats.TopCountry, stats.TopCountryCount)
	}
	if stats.TopActionType != "" {
		s.Reply += fmt.Sprintf("; most common type: %s (%d)", stats.TopActionType, stats.TopActionTypeCount)
	}
	if s.GlobalActions > 0 {
		s.Reply += fmt.Sprintf("; %d apply to all countries", s.GlobalActions)
	}
	s.Reply += "."
	return s
}
