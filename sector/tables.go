package sector

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ============================================================================
// CURATED TABLES — Embedded sector data
// ============================================================================
// Hand-maintained YAML compiled into the binary. Static for the life of a
// build, so decode failures fail fast at package init. Referential integrity
// (every curated or keyword sector id exists in the definitions) is enforced
// by tests, not at runtime.
// ============================================================================

//go:embed data/sectors.yaml
var tableFS embed.FS

// Sector is one industry sector definition.
type Sector struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// KeywordRule is one fallback classification rule. Rules are evaluated in
// table order; the first rule with any matching term wins.
type KeywordRule struct {
	Sector string   `yaml:"sector"`
	Terms  []string `yaml:"terms"`
}

type sectorTables struct {
	Sectors  []Sector            `yaml:"sectors"`
	Keywords []KeywordRule       `yaml:"keywords"`
	Curated  map[string][]string `yaml:"curated"`
}

var (
	definitions []Sector
	byID        map[string]Sector
	rules       []KeywordRule
	curated     map[string][]string
)

func init() {
	raw, err := tableFS.ReadFile("data/sectors.yaml")
	if err != nil {
		panic(fmt.Sprintf("sector: read embedded tables: %v", err))
	}

	var t sectorTables
	if err := yaml.Unmarshal(raw, &t); err != nil {
		panic(fmt.Sprintf("sector: decode embedded tables: %v", err))
	}

	definitions = t.Sectors
	rules = t.Keywords
	curated = t.Curated

	byID = make(map[string]Sector, len(t.Sectors))
	for _, s := range t.Sectors {
		byID[s.ID] = s
	}
}

// Sectors returns all sector definitions in display order.
func Sectors() []Sector {
	out := make([]Sector, len(definitions))
	copy(out, definitions)
	return out
}

// ByID looks up a sector definition. ok is false for unknown ids.
func ByID(id string) (Sector, bool) {
	s, ok := byID[id]
	return s, ok
}

// KeywordRules returns the fallback rules in evaluation order.
// Exposed for integrity tests and audit tooling.
func KeywordRules() []KeywordRule {
	out := make([]KeywordRule, len(rules))
	copy(out, rules)
	return out
}

// CuratedIDs returns the sector ids assigned to each curated record id.
// Exposed for integrity tests and audit tooling.
func CuratedIDs() map[string][]string {
	out := make(map[string][]string, len(curated))
	for id, sectors := range curated {
		out[id] = append([]string(nil), sectors...)
	}
	return out
}
