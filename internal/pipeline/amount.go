package pipeline

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeAmount converts a raw currency cell to a numeric amount:
//
//	"$12,207,474,172.00" → 12207474172
//	"-$75.00"            → -75
//	""                   → 0
//
// Dollar signs and thousands separators are stripped and surrounding
// whitespace trimmed before parsing. An absent or empty cell is 0. A
// residual string that still fails to parse normalizes to 0 and records a
// warning with the original raw value; a bad cell never aborts the run.
// No rounding is applied.
func NormalizeAmount(raw string, diags *Diagnostics) float64 {
	cleaned := strings.ReplaceAll(raw, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		diags.Warnf("could not convert amount %q to a number, using 0.0", raw)
		return 0
	}
	return value.InexactFloat64()
}
