package models

// DimensionBreakdown holds the aggregated counts for one dimension value
// (one device type, one OS, one country) within one metric family.
//
// Sessions and Users are populated only for families that carry session
// fields (Traffic); Sums carries every other summed numeric field keyed by
// its feed field name; Derived carries the per-entry ratios named by the
// family's FieldSpec, each in [0,100].
type DimensionBreakdown struct {
	DimensionValue string             `json:"dimensionValue"`
	Sessions       int64              `json:"sessions"`
	Users          int64              `json:"users"`
	Sums           map[string]float64 `json:"sums,omitempty"`
	Derived        map[string]float64 `json:"derived,omitempty"`
}
