package helpers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tradelens-org/tradelens/view"
)

// ============================================================================
// CSV EXPORT — view output → Sheets-ready CSV
// ============================================================================

// WriteChartCSV writes a chart's series as CSV: a label column plus one
// column per series.
func WriteChartCSV(w io.Writer, chart *view.ChartConfig) error {
	if chart == nil || len(chart.Series) == 0 {
		return fmt.Errorf("export chart: no series")
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	xLabel := chart.XAxis
	if xLabel == "" {
		xLabel = "Label"
	}

	headers := []string{xLabel}
	for _, s := range chart.Series {
		headers = append(headers, s.Name)
	}
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("export chart: %w", err)
	}

	for i, point := range chart.Series[0].Data {
		row := []string{point.Label}
		for _, s := range chart.Series {
			if i < len(s.Data) {
				row = append(row, fmtNum(s.Data[i].Value))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export chart: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteTableCSV writes table data as CSV, headers first.
func WriteTableCSV(w io.Writer, table *view.TableData) error {
	if table == nil || len(table.Columns) == 0 {
		return fmt.Errorf("export table: no columns")
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	headers := make([]string, 0, len(table.Columns))
	for _, c := range table.Columns {
		headers = append(headers, c.Label)
	}
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("export table: %w", err)
	}

	for _, row := range table.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export table: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// fmtNum renders whole numbers without decimals, fractional with two.
func fmtNum(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
