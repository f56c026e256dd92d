package action

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// SNAPSHOT DECODING TESTS
// ============================================================================

const sampleArtifact = `{
  "meta": {
    "generated_at": "2026-08-20T04:15:00Z",
    "csms_entries_scanned": 412,
    "entries_after_filter": 118,
    "bulletins_fetched": 96,
    "max_pdfs_cap": 120,
    "date_range_start": "2025-01-01",
    "date_range_end": "2026-08-01",
    "scraper_version": "1.4.2",
    "data_sources": ["CSMS bulletin archive"],
    "cost_optimization": {
      "prefilter_enabled": true,
      "prefilter_skipped": 294,
      "model_used": "gpt-4o-mini",
      "cache_hits": 61,
      "new_api_calls": 35,
      "estimated_cost_usd": 0.42
    },
    "errors": [
      {"csms_id": "65123001", "url": "https://example.gov/b/65123001", "error": "fetch timeout"}
    ]
  },
  "actions": [
    {
      "id": "ta-0001",
      "source_csms_id": "65123456",
      "source_url": "https://example.gov/b/65123456",
      "title": "Section 232 Steel Duty Increase",
      "summary": "Duty on steel articles raised.",
      "action_type": "tariff",
      "countries_affected": ["China", "All"],
      "hs_codes": ["7208.10.15"],
      "effective_date": "2025-03-12",
      "expiration_date": null,
      "status": "active",
      "federal_authority": "Section 232",
      "duty_rate": "25%",
      "raw_excerpt": "effective immediately"
    },
    {
      "id": "ta-0002",
      "source_csms_id": "65123999",
      "source_url": "https://example.gov/b/65123999",
      "title": "Quota Modification",
      "summary": "Quota adjusted.",
      "action_type": "quota",
      "countries_affected": null,
      "hs_codes": null,
      "effective_date": null,
      "duty_rate": null
    }
  ]
}`

func TestDecodeSnapshot(t *testing.T) {
	snap, err := DecodeSnapshot(strings.NewReader(sampleArtifact))
	require.NoError(t, err)

	assert.Equal(t, "2026-08-20T04:15:00Z", snap.Meta.GeneratedAt)
	assert.Equal(t, 412, snap.Meta.CSMSEntriesScanned)
	assert.Equal(t, 61, snap.Meta.CostOptimization.CacheHits)
	require.Len(t, snap.Meta.Errors, 1)
	assert.Equal(t, "fetch timeout", snap.Meta.Errors[0].Error)

	require.Len(t, snap.Actions, 2)
	first := snap.Actions[0]
	assert.Equal(t, "ta-0001", first.ID)
	assert.Equal(t, TypeTariff, first.ActionType)
	assert.Equal(t, []string{"China", "All"}, first.CountriesAffected)
	assert.Equal(t, "25%", first.DutyRate)
}

func TestDecodeSnapshotDefensiveDefaults(t *testing.T) {
	snap, err := DecodeSnapshot(strings.NewReader(sampleArtifact))
	require.NoError(t, err)

	second := snap.Actions[1]
	assert.NotNil(t, second.CountriesAffected, "null countries_affected becomes empty slice")
	assert.Empty(t, second.CountriesAffected)
	assert.NotNil(t, second.HSCodes)
	assert.Empty(t, second.HSCodes)
	assert.Equal(t, StatusActive, second.Status, "missing status defaults to active")
	assert.Empty(t, second.EffectiveDate)
	assert.Empty(t, second.DutyRate)
}

func TestDecodeSnapshotRejectsMalformedJSON(t *testing.T) {
	_, err := DecodeSnapshot(strings.NewReader(`{"actions": [`))
	require.Error(t, err)
}

// ============================================================================
// RECORD HELPER TESTS
// ============================================================================

func TestRealCountriesExcludesSentinelsAndDuplicates(t *testing.T) {
	a := TradeAction{CountriesAffected: []string{"All", "China", "Multiple", "China", "", "Vietnam"}}
	assert.Equal(t, []string{"China", "Vietnam"}, a.RealCountries())

	empty := TradeAction{}
	assert.Nil(t, empty.RealCountries())
}

func TestAppliesToAllAndTargets(t *testing.T) {
	a := TradeAction{CountriesAffected: []string{"All", "China"}}
	assert.True(t, a.AppliesToAll())
	assert.True(t, a.Targets("China"))
	assert.False(t, a.Targets("Vietnam"))

	globalOnly := TradeAction{CountriesAffected: []string{"All"}}
	assert.True(t, globalOnly.AppliesToAll())
	assert.False(t, globalOnly.Targets("China"))
}

func TestIsSentinel(t *testing.T) {
	assert.True(t, IsSentinel("All"))
	assert.True(t, IsSentinel("Multiple"))
	assert.False(t, IsSentinel("China"))
	assert.False(t, IsSentinel(""))
}
