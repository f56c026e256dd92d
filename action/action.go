package action

// ============================================================================
// TRADE ACTION — Input record schema
// ============================================================================
// Records are produced by the upstream extraction pipeline and are read-only
// inside this module. Every derivation works on copies or sub-slices; nothing
// here mutates a TradeAction after load.
// ============================================================================

// Action type values. Records with a value outside this set are still
// counted in aggregates; the unknown value simply becomes its own bucket key.
const (
	TypeTariff        = "tariff"
	TypeQuota         = "quota"
	TypeEmbargo       = "embargo"
	TypeSanction      = "sanction"
	TypeDuty          = "duty"
	TypeExclusion     = "exclusion"
	TypeSuspension    = "suspension"
	TypeModification  = "modification"
	TypeInvestigation = "investigation"
	TypeOther         = "other"
)

// Status values.
const (
	StatusActive     = "active"
	StatusExpired    = "expired"
	StatusPending    = "pending"
	StatusSuperseded = "superseded"
)

// Sentinel values that appear in CountriesAffected instead of, or alongside,
// real country names. They denote non-specific targeting and must never
// resolve to a geography.
const (
	SentinelAll      = "All"
	SentinelMultiple = "Multiple"
)

// TradeAction is a structured trade action extracted from a CSMS bulletin.
//
// EffectiveDate and ExpirationDate are ISO calendar dates ("2025-04-02") or
// empty when unknown. ISO dates compare correctly as strings, which the
// engine relies on for date filtering and sorting.
type TradeAction struct {
	ID                string   `json:"id"`
	SourceCSMSID      string   `json:"source_csms_id"`
	SourceURL         string   `json:"source_url"`
	Title             string   `json:"title"`
	Summary           string   `json:"summary"`
	ActionType        string   `json:"action_type"`
	CountriesAffected []string `json:"countries_affected"`
	HSCodes           []string `json:"hs_codes"`
	EffectiveDate     string   `json:"effective_date"`
	ExpirationDate    string   `json:"expiration_date"`
	Status            string   `json:"status"`
	FederalAuthority  string   `json:"federal_authority"`
	DutyRate          string   `json:"duty_rate"`
	RawExcerpt        string   `json:"raw_excerpt"`
}

// IsSentinel reports whether name is a non-country placeholder.
func IsSentinel(name string) bool {
	return name == SentinelAll || name == SentinelMultiple
}

// AppliesToAll reports whether the record targets all countries uniformly.
func (a TradeAction) AppliesToAll() bool {
	for _, c := range a.CountriesAffected {
		if c == SentinelAll {
			return true
		}
	}
	return false
}

// Targets reports whether the record explicitly names the given dataset
// country name. A record whose only targeting is "All" does not Target
// any specific country.
func (a TradeAction) Targets(datasetName string) bool {
	for _, c := range a.CountriesAffected {
		if c == datasetName {
			return true
		}
	}
	return false
}

// RealCountries returns the record's country names with sentinel values
// removed, preserving order and deduplicating.
func (a TradeAction) RealCountries() []string {
	if len(a.CountriesAffected) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(a.CountriesAffected))
	var out []string
	for _, c := range a.CountriesAffected {
		if c == "" || IsSentinel(c) || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
