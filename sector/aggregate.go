package sector

import (
	"sort"

	"github.com/tradelens-org/tradelens/action"
)

// ============================================================================
// SECTOR AGGREGATOR — Per-sector buckets
// ============================================================================
// A record with N sectors lands in N buckets, so the sum of bucket sizes may
// exceed the record count. That is the intended reading of "multi-sector
// actions", not double-counting.
// ============================================================================

// DateRange is the earliest/latest effective date across a bucket.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Bucket aggregates the records classified into one sector.
type Bucket struct {
	Sector  Sector               `json:"sector"`
	Actions []action.TradeAction `json:"actions"`

	ActionCount     int            `json:"actionCount"`
	ActiveCount     int            `json:"activeCount"`
	Countries       []string       `json:"countries"`
	DutyRateRange   string         `json:"dutyRateRange"`
	MaxRate         float64        `json:"maxRate"`
	HasMaxRate      bool           `json:"hasMaxRate"`
	DateRange       DateRange      `json:"dateRange"`
	StatusBreakdown map[string]int `json:"statusBreakdown"`
	HSCodeCount     int            `json:"hsCodeCount"`
}

// BuildBuckets classifies a (filtered) record set into sector buckets and
// computes per-bucket aggregates. Buckets are returned in sector definition
// order; empty buckets are dropped. The second return value is the sum of
// all bucket sizes, which exceeds len(actions) when records map to more
// than one sector.
func BuildBuckets(actions []action.TradeAction) ([]Bucket, int) {
	grouped := make(map[string][]action.TradeAction)
	for _, a := range actions {
		for _, id := range Classify(a) {
			grouped[id] = append(grouped[id], a)
		}
	}

	var buckets []Bucket
	var totalMapped int
	for _, def := range definitions {
		members := grouped[def.ID]
		if len(members) == 0 {
			continue
		}
		buckets = append(buckets, buildBucket(def, members))
		totalMapped += len(members)
	}
	return buckets, totalMapped
}

func buildBucket(def Sector, members []action.TradeAction) Bucket {
	b := Bucket{
		Sector:          def,
		Actions:         members,
		ActionCount:     len(members),
		StatusBreakdown: make(map[string]int),
	}

	countrySet := make(map[string]bool)
	hsSet := make(map[string]bool)
	var rates []string

	for _, a := range members {
		if a.Status == action.StatusActive {
			b.ActiveCount++
		}
		b.StatusBreakdown[a.Status]++

		for _, c := range a.RealCountries() {
			countrySet[c] = true
		}
		for _, code := range a.HSCodes {
			if code != "" {
				hsSet[code] = true
			}
		}
		if a.DutyRate != "" {
			rates = append(rates, a.DutyRate)
		}
		if a.EffectiveDate != "" {
			if b.DateRange.Start == "" || a.EffectiveDate < b.DateRange.Start {
				b.DateRange.Start = a.EffectiveDate
			}
			if a.EffectiveDate > b.DateRange.End {
				b.DateRange.End = a.EffectiveDate
			}
		}
	}

	b.Countries = make([]string, 0, len(countrySet))
	for c := range countrySet {
		b.Countries = append(b.Countries, c)
	}
	sort.Strings(b.Countries)

	b.HSCodeCount = len(hsSet)
	b.DutyRateRange = DutyRateRange(rates)
	b.MaxRate, b.HasMaxRate = MaxRate(rates)
	return b
}
