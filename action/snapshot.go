package action

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ============================================================================
// SNAPSHOT — The upstream pipeline's output artifact
// ============================================================================
// The scraper emits a single JSON object: a meta block describing the run and
// an actions array. This module treats the artifact as opaque beyond the
// defensive defaults applied in DecodeSnapshot — repairing bad upstream data
// is the pipeline's job, not ours.
// ============================================================================

// Snapshot is the top-level structure of the input artifact.
type Snapshot struct {
	Meta    Meta          `json:"meta"`
	Actions []TradeAction `json:"actions"`
}

// Meta describes the pipeline run that produced the snapshot.
type Meta struct {
	GeneratedAt        string           `json:"generated_at"`
	CSMSEntriesScanned int              `json:"csms_entries_scanned"`
	EntriesAfterFilter int              `json:"entries_after_filter"`
	BulletinsFetched   int              `json:"bulletins_fetched"`
	MaxPDFsCap         int              `json:"max_pdfs_cap"`
	DateRangeStart     string           `json:"date_range_start"`
	DateRangeEnd       string           `json:"date_range_end"`
	ScraperVersion     string           `json:"scraper_version"`
	DataSources        []string         `json:"data_sources"`
	CostOptimization   CostOptimization `json:"cost_optimization"`
	Errors             []PipelineError  `json:"errors"`
}

// CostOptimization carries the pipeline's cost accounting. Opaque to the
// aggregation core; surfaced as-is for an "about this data" panel.
type CostOptimization struct {
	PrefilterEnabled  bool    `json:"prefilter_enabled"`
	PrefilterSkipped  int     `json:"prefilter_skipped"`
	TruncationEnabled bool    `json:"truncation_enabled"`
	ModelUsed         string  `json:"model_used"`
	CacheHits         int     `json:"cache_hits"`
	NewAPICalls       int     `json:"new_api_calls"`
	BatchMode         bool    `json:"batch_mode"`
	EstimatedCostUSD  float64 `json:"estimated_cost_usd"`
	TotalInputTokens  int     `json:"total_input_tokens"`
	TotalOutputTokens int     `json:"total_output_tokens"`
}

// PipelineError is a recorded failure from the extraction run.
type PipelineError struct {
	CSMSID string `json:"csms_id"`
	URL    string `json:"url"`
	Error  string `json:"error"`
}

// DecodeSnapshot reads a snapshot artifact from r.
//
// Defensive defaults mirror the upstream schema: a null or absent
// countries_affected or hs_codes becomes an empty slice, and a missing
// status defaults to "active". Records lacking optional fields never cause
// an error here or in any downstream aggregation.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	for i := range snap.Actions {
		a := &snap.Actions[i]
		if a.CountriesAffected == nil {
			a.CountriesAffected = []string{}
		}
		if a.HSCodes == nil {
			a.HSCodes = []string{}
		}
		if a.Status == "" {
			a.Status = StatusActive
		}
	}

	return &snap, nil
}

// LoadSnapshot reads a snapshot artifact from a file.
func LoadSnapshot(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	return DecodeSnapshot(f)
}
