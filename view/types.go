package view

// ============================================================================
// VIEW TYPES — Render-ready output structures
// ============================================================================
// The core computes; a frontend draws. These shapes are the contract at that
// boundary: chart configs, table data, and text summaries with no rendering
// logic attached.
// ============================================================================

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

// TextSummary is a human-readable digest of the current filtered view.
type TextSummary struct {
	Total         int    `json:"total"`
	Active        int    `json:"active"`
	TopCountry    string `json:"topCountry"`
	TopActionType string `json:"topActionType"`
	SectorCount   int    `json:"sectorCount"`
	GlobalActions int    `json:"globalActions"`
	Reply         string `json:"reply"`
}
