package geo

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// CURATED TABLES — Embedded country-name reconciliation data
// ============================================================================
// The tables are hand-maintained YAML compiled into the binary. They are
// static for the life of a build, so decode failures are programmer errors
// and fail fast at package init.
// ============================================================================

//go:embed data/countries.yaml
var tableFS embed.FS

type countryTables struct {
	// Overrides maps dataset country names to boundary feature names.
	Overrides map[string]string `yaml:"overrides"`
	// Unmappable lists dataset names with no renderable geography.
	Unmappable []string `yaml:"unmappable"`
	// Sentinels lists non-country placeholder values.
	Sentinels []string `yaml:"sentinels"`
}

var (
	overrides  map[string]string // dataset name → feature name
	reverse    map[string]string // feature name → dataset name
	unmappable map[string]bool
	sentinels  map[string]bool
)

func init() {
	raw, err := tableFS.ReadFile("data/countries.yaml")
	if err != nil {
		panic(fmt.Sprintf("geo: read embedded country tables: %v", err))
	}

	var t countryTables
	if err := yaml.Unmarshal(raw, &t); err != nil {
		panic(fmt.Sprintf("geo: decode embedded country tables: %v", err))
	}

	overrides = t.Overrides
	reverse = make(map[string]string, len(t.Overrides))
	for dataset, feature := range t.Overrides {
		reverse[feature] = dataset
	}

	unmappable = make(map[string]bool, len(t.Unmappable))
	for _, name := range t.Unmappable {
		unmappable[name] = true
	}

	sentinels = make(map[string]bool, len(t.Sentinels))
	for _, name := range t.Sentinels {
		sentinels[name] = true
	}
}
