package insights

import (
	"math"
	"strconv"
	"strings"
)

// The field normalizer turns a single raw feed value into a definite number.
// The feed is weakly typed: fields are usually decimal-digit strings but may
// be absent, empty, or non-numeric. A wrong-but-present zero is preferred
// over aborting a whole aggregation for one bad field, so both functions are
// total: they never return an error and never produce NaN or Inf.

// NormalizeInt parses raw as a base-10 integer. Absent or unparseable
// input yields 0.
func NormalizeInt(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// NormalizeFloat parses raw as a decimal number. Absent or unparseable
// input yields 0. ParseFloat accepts "NaN" and "Inf" spellings, so those
// are rejected explicitly.
func NormalizeFloat(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
