package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tradelens-org/tradelens/action"
	"github.com/tradelens-org/tradelens/engine"
	"github.com/tradelens-org/tradelens/geo"
	"github.com/tradelens-org/tradelens/helpers"
	"github.com/tradelens-org/tradelens/sector"
	"github.com/tradelens-org/tradelens/view"
)

// ============================================================================
// TRADELENS CLI — Inspect a trade-action snapshot from the terminal
// ============================================================================

const version = "0.3.0"

func main() {
	filePath := flag.String("file", "", "Path to snapshot JSON artifact (required)")
	viewName := flag.String("view", "stats", "View to compute: stats, sectors, map, actions")
	countries := flag.String("country", "", "Comma-separated country filter")
	actionTypes := flag.String("type", "", "Comma-separated action type filter")
	statuses := flag.String("status", "", "Comma-separated status filter")
	dateStart := flag.String("from", "", "Inclusive effective-date lower bound (YYYY-MM-DD)")
	dateEnd := flag.String("to", "", "Inclusive effective-date upper bound (YYYY-MM-DD)")
	search := flag.String("search", "", "Free-text search")
	sortField := flag.String("sort", engine.SortByDate, "Sort field: date, title, type, status")
	ascending := flag.Bool("asc", false, "Sort ascending (default: descending)")
	format := flag.String("format", "json", "Output format: json, pretty, text, csv")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `tradelens — trade-action snapshot analytics

Usage:
  tradelens --file trade_actions.json --view sectors --format csv
  tradelens --file trade_actions.json --view map --country China
  tradelens --file trade_actions.json --view actions --type tariff --from 2025-01-01
  tradelens --file trade_actions.json --search "section 232" --format text

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Views:
  stats     Summary statistics plus country/type charts
  sectors   Industry sector buckets
  map       Per-country geospatial counts
  actions   The filtered, sorted record list

Formats:
  json      Compact JSON (default)
  pretty    Pretty-printed JSON
  text      Human-readable summary only
  csv       Chart/table data as CSV (ready for Sheets/Excel)
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("tradelens %s\n", version)
		os.Exit(0)
	}
	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		flag.Usage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	snap, err := action.LoadSnapshot(*filePath)
	if err != nil {
		fatalf("load snapshot: %v", err)
	}
	logger.Info("snapshot loaded",
		"actions", len(snap.Actions),
		"generated_at", snap.Meta.GeneratedAt,
		"pipeline_errors", len(snap.Meta.Errors))

	state := engine.FilterState{
		Countries:   splitList(*countries),
		ActionTypes: splitList(*actionTypes),
		Statuses:    splitList(*statuses),
		DateStart:   *dateStart,
		DateEnd:     *dateEnd,
		SearchText:  *search,
	}
	filtered := engine.ApplyFilters(snap.Actions, state)
	filtered = engine.SortActions(filtered, engine.SortState{Field: *sortField, Descending: !*ascending})
	logger.Info("filters applied", "matched", len(filtered), "total", len(snap.Actions))

	switch *viewName {
	case "stats":
		renderStats(writer, filtered, *format)
	case "sectors":
		renderSectors(writer, filtered, *format)
	case "map":
		renderMap(writer, filtered, *format)
	case "actions":
		renderActions(writer, filtered, *format)
	default:
		fatalf("unknown view %q", *viewName)
	}
}

// ============================================================================
// VIEW RENDERING
// ============================================================================

func renderStats(w *os.File, filtered []action.TradeAction, format string) {
	stats := engine.ComputeStats(filtered)

	switch format {
	case "csv":
		chart := view.BuildCountryChart(stats, 0)
		if chart == nil {
			fatalf("no country data to export")
		}
		if err := helpers.WriteChartCSV(w, chart); err != nil {
			fatalf("%v", err)
		}
	case "text":
		buckets, _ := sector.BuildBuckets(filtered)
		counts := geo.Aggregate(filtered)
		fmt.Fprintln(w, view.BuildTextSummary(stats, buckets, counts).Reply)
	default:
		out := struct {
			Stats        engine.Stats      `json:"stats"`
			CountryChart *view.ChartConfig `json:"countryChart,omitempty"`
			TypeChart    *view.ChartConfig `json:"typeChart,omitempty"`
		}{stats, view.BuildCountryChart(stats, 0), view.BuildActionTypeChart(stats, 0)}
		writeJSON(w, out, format)
	}
}

func renderSectors(w *os.File, filtered []action.TradeAction, format string) {
	buckets, totalMapped := sector.BuildBuckets(filtered)

	switch format {
	case "csv":
		if err := helpers.WriteTableCSV(w, view.BuildSectorTable(buckets, totalMapped)); err != nil {
			fatalf("%v", err)
		}
	case "text":
		for _, b := range buckets {
			fmt.Fprintf(w, "%-32s %4d actions (%d active), duty %s\n",
				b.Sector.Name, b.ActionCount, b.ActiveCount, b.DutyRateRange)
		}
	default:
		out := struct {
			Buckets      []sector.Bucket   `json:"buckets"`
			TotalMapped  int               `json:"totalMappedActions"`
			MaxRateChart *view.ChartConfig `json:"maxRateChart,omitempty"`
		}{buckets, totalMapped, view.BuildSectorRateChart(buckets)}
		writeJSON(w, out, format)
	}
}

func renderMap(w *os.File, filtered []action.TradeAction, format string) {
	counts := geo.Aggregate(filtered)

	switch format {
	case "csv":
		if err := helpers.WriteTableCSV(w, view.BuildCountryTable(counts)); err != nil {
			fatalf("%v", err)
		}
	case "text":
		for _, f := range counts.FeatureNames() {
			fmt.Fprintf(w, "%-32s %d\n", f, counts.CountForFeature(f))
		}
		fmt.Fprintf(w, "%-32s %d\n", "(applies to all)", counts.AllCountryCount())
	default:
		features := counts.FeatureNames()
		specific := make(map[string]int, len(features))
		for _, f := range features {
			specific[f] = counts.CountForFeature(f)
		}
		out := struct {
			Counts          map[string]int `json:"counts"`
			AllCountryCount int            `json:"allCountryCount"`
			MaxCount        int            `json:"maxCount"`
		}{specific, counts.AllCountryCount(), counts.MaxCount()}
		writeJSON(w, out, format)
	}
}

func renderActions(w *os.File, filtered []action.TradeAction, format string) {
	switch format {
	case "csv":
		if err := helpers.WriteTableCSV(w, view.BuildActionTable(filtered)); err != nil {
			fatalf("%v", err)
		}
	case "text":
		for _, a := range filtered {
			fmt.Fprintf(w, "%s  %-14s %-10s %s\n", a.EffectiveDate, a.ActionType, a.Status, a.Title)
		}
	default:
		writeJSON(w, filtered, format)
	}
}

// ============================================================================
// HELPERS
// ============================================================================

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func writeJSON(w *os.File, v interface{}, format string) {
	var out []byte
	var err error
	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		fatalf("marshal output: %v", err)
	}
	fmt.Fprintln(w, string(out))
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
