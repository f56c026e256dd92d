package view

import (
	"fmt"
	"strings"

	"github.com/tradelens-org/tradelens/action"
	"github.com/tradelens-org/tradelens/geo"
	"github.com/tradelens-org/tradelens/sector"
)

// ============================================================================
// TABLE BUILDER — Produces TableData from aggregates
// ============================================================================

// BuildSectorTable renders sector buckets as a summary table, one row per
// non-empty sector.
func BuildSectorTable(buckets []sector.Bucket, totalMapped int) *TableData {
	columns := []Column{
		{Key: "sector", Label: "Sector", Type: "text", Align: "left"},
		{Key: "actions", Label: "Actions", Type: "number", Align: "right"},
		{Key: "active", Label: "Active", Type: "number", Align: "right"},
		{Key: "countries", Label: "Countries", Type: "number", Align: "right"},
		{Key: "hs_codes", Label: "HS Codes", Type: "number", Align: "right"},
		{Key: "duty_range", Label: "Duty Range", Type: "text", Align: "right"},
	}

	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{
			b.Sector.Name,
			fmt.Sprintf("%d", b.ActionCount),
			fmt.Sprintf("%d", b.ActiveCount),
			fmt.Sprintf("%d", len(b.Countries)),
			fmt.Sprintf("%d", b.HSCodeCount),
			b.DutyRateRange,
		})
	}

	return &TableData{
		Title:   "Actions by Sector",
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: fmt.Sprintf("Total (%d sector mappings)", totalMapped),
			Values: map[string]string{
				"actions": fmt.Sprintf("%d", totalMapped),
			},
		},
	}
}

// BuildCountryTable renders geospatial counts as a table, one row per
// counted boundary feature, plus the applies-to-all aggregate in the summary.
func BuildCountryTable(counts *geo.CountryCounts) *TableData {
	columns := []Column{
		{Key: "feature", Label: "Country", Type: "text", Align: "left"},
		{Key: "actions", Label: "Actions", Type: "number", Align: "right"},
	}

	features := counts.FeatureNames()
	rows := make([][]string, 0, len(features))
	for _, f := range features {
		rows = append(rows, []string{f, fmt.Sprintf("%d", counts.CountForFeature(f))})
	}

	return &TableData{
		Title:   "Actions by Country",
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: "Applies to all countries",
			Values: map[string]string{
				"actions": fmt.Sprintf("%d", counts.AllCountryCount()),
			},
		},
	}
}

// BuildActionTable renders records as a list table, one row per record.
func BuildActionTable(actions []action.TradeAction) *TableData {
	columns := []Column{
		{Key: "id", Label: "ID", Type: "text", Align: "left"},
		{Key: "title", Label: "Title", Type: "text", Align: "left"},
		{Key: "type", Label: "Type", Type: "text", Align: "left"},
		{Key: "status", Label: "Status", Type: "text", Align: "left"},
		{Key: "effective", Label: "Effective", Type: "text", Align: "left"},
		{Key: "countries", Label: "Countries", Type: "text", Align: "left"},
		{Key: "duty_rate", Label: "Duty Rate", Type: "text", Align: "right"},
	}

	rows := make([][]string, 0, len(actions))
	for _, a := range actions {
		rows = append(rows, []string{
			a.ID,
			a.Title,
			a.ActionType,
			a.Status,
			a.EffectiveDate,
			strings.Join(a.CountriesAffected, "; "),
			a.DutyRate,
		})
	}

	return &TableData{
		Title:   "Trade Actions",
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: fmt.Sprintf("%d actions", len(actions)),
		},
	}
}
