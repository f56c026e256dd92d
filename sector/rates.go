package sector

import (
	"regexp"
	"strconv"
	"strings"
)

// ============================================================================
// DUTY RATE HEURISTICS
// ============================================================================
// duty_rate is free text: "25%", "10-25%", "25% (general); 10% (energy)",
// "Prohibited", "TRQ". Extraction is best-effort over unstructured strings,
// not a guaranteed-correct parser — a string the pattern misses contributes
// nothing rather than failing.
// ============================================================================

// rateToken matches "25%", "12.5%", and range forms like "10-25%".
// A range contributes both endpoints.
var rateToken = regexp.MustCompile(`(\d+(?:\.\d+)?)(?:\s*-\s*(\d+(?:\.\d+)?))?\s*%`)

// ExtractRates returns every numeric percentage found in a duty-rate string.
func ExtractRates(s string) []float64 {
	var out []float64
	for _, m := range rateToken.FindAllStringSubmatch(s, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			out = append(out, v)
		}
		if m[2] != "" {
			if v, err := strconv.ParseFloat(m[2], 64); err == nil {
				out = append(out, v)
			}
		}
	}
	return out
}

// DutyRateRange summarizes a set of duty-rate strings:
//
//	no non-empty strings        → "N/A"
//	only non-numeric strings    → "Varies"   (e.g. "Prohibited", "TRQ")
//	single numeric value        → "25%"
//	spread of numeric values    → "10%-25%"
func DutyRateRange(rates []string) string {
	var present int
	var values []float64
	for _, r := range rates {
		if strings.TrimSpace(r) == "" {
			continue
		}
		present++
		values = append(values, ExtractRates(r)...)
	}

	if present == 0 {
		return "N/A"
	}
	if len(values) == 0 {
		return "Varies"
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return formatRate(min)
	}
	return formatRate(min) + "-" + formatRate(max)
}

// MaxRate returns the highest numeric percentage across a set of duty-rate
// strings. ok is false when no numeric rate exists.
func MaxRate(rates []string) (float64, bool) {
	var max float64
	var found bool
	for _, r := range rates {
		for _, v := range ExtractRates(r) {
			if !found || v > max {
				max = v
				found = true
			}
		}
	}
	return max, found
}

// formatRate renders a rate without insignificant zeros: 25 → "25%",
// 12.5 → "12.5%".
func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
