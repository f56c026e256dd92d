package view

import (
	"sort"

	"github.com/tradelens-org/tradelens/engine"
	"github.com/tradelens-org/tradelens/sector"
)

// ============================================================================
// CHART BUILDER — Produces ChartConfig from aggregates
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// BuildCountryChart produces a bar chart of actions per country, highest
// first. limit caps the number of bars; 0 means all.
func BuildCountryChart(stats engine.Stats, limit int) *ChartConfig {
	return frequencyChart("Actions by Country", "Country", stats.CountryCounts, limit)
}

// BuildActionTypeChart produces a bar chart of actions per action type.
func BuildActionTypeChart(stats engine.Stats, limit int) *ChartConfig {
	return frequencyChart("Actions by Type", "Action Type", stats.ActionTypeCounts, limit)
}

// BuildSectorRateChart produces a bar chart of the highest duty rate per
// sector. Buckets without any numeric rate are excluded — there is nothing
// to rank them by.
func BuildSectorRateChart(buckets []sector.Bucket) *ChartConfig {
	var points []ChartPoint
	for _, b := range buckets {
		if !b.HasMaxRate {
			continue
		}
		points = append(points, ChartPoint{Label: b.Sector.Name, Value: b.MaxRate})
	}
	if len(points) == 0 {
		return nil
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Value > points[j].Value })

	return &ChartConfig{
		ChartType:  "bar",
		Title:      "Max Duty Rate by Sector",
		XAxis:      "Sector",
		YAxis:      "Max Rate (%)",
		Series:     []ChartSeries{{Name: "Max Rate", Data: points}},
		Colors:     assignColors(1),
		ShowLegend: false,
		ShowGrid:   true,
	}
}

func frequencyChart(title, xAxis string, counts map[string]int, limit int) *ChartConfig {
	if len(counts) == 0 {
		return nil
	}

	points := make([]ChartPoint, 0, len(counts))
	for label, n := range counts {
		points = append(points, ChartPoint{Label: label, Value: float64(n)})
	}
	// Highest first; ties alphabetical so output is deterministic.
	sort.SliceStable(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Label < points[j].Label
	})
	if limit > 0 && len(points) > limit {
		points = points[:limit]
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      title,
		XAxis:      xAxis,
		YAxis:      "Actions",
		Series:     []ChartSeries{{Name: "Actions", Data: points}},
		Colors:     assignColors(1),
		ShowLegend: false,
		ShowGrid:   true,
	}
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
