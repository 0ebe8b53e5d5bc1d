package models

// Metric family names supplied by the behavioral-analytics provider.
// The set is closed: consumers only read these families, but unknown
// names coming from the feed are retained on the snapshot (names only)
// so operators can spot provider-side additions.
const (
	FamilyTraffic          = "Traffic"
	FamilyEngagementTime   = "EngagementTime"
	FamilyScrollDepth      = "ScrollDepth"
	FamilyDeadClickCount   = "DeadClickCount"
	FamilyRageClickCount   = "RageClickCount"
	FamilyErrorClickCount  = "ErrorClickCount"
	FamilyQuickbackClick   = "QuickbackClick"
	FamilyScriptErrorCount = "ScriptErrorCount"
	FamilyExcessiveScroll  = "ExcessiveScroll"
)

// IssueFamilies lists the families whose records carry a per-dimension
// "subTotal" issue count, in the order the snapshot reports them.
var IssueFamilies = []string{
	FamilyDeadClickCount,
	FamilyRageClickCount,
	FamilyErrorClickCount,
	FamilyQuickbackClick,
	FamilyScriptErrorCount,
	FamilyExcessiveScroll,
}

// Dimension selectors accepted by the feed. The provider uses these both
// as request parameters and as record field names holding the dimension value.
const (
	DimensionDevice  = "Device"
	DimensionOS      = "OS"
	DimensionCountry = "Country/Region"
)

// Record field names used by the known families.
const (
	FieldTotalSessionCount     = "totalSessionCount"
	FieldTotalBotSessionCount  = "totalBotSessionCount"
	FieldDistinctUserCount     = "distinctUserCount"
	FieldPagesPerSessionPct    = "pagesPerSessionPercentage"
	FieldTotalTime             = "totalTime"
	FieldActiveTime            = "activeTime"
	FieldAverageScrollDepth    = "averageScrollDepth"
	FieldSubTotal              = "subTotal"
	FieldSessionsWithMetricPct = "sessionsWithMetricPercentage"
)

// MetricRecord is one flat record from the feed: field name to raw value.
// Values are whatever the provider sent, typically decimal-digit strings,
// occasionally absent or non-numeric. One record conventionally corresponds
// to one dimension value, but duplicates are possible and must be summed.
type MetricRecord map[string]string

// Field returns the raw value for name, or the empty string when absent.
func (r MetricRecord) Field(name string) string {
	return r[name]
}

// MetricGroup is one named metric family with its ordered records.
type MetricGroup struct {
	Name    string         `json:"metricName"`
	Records []MetricRecord `json:"information"`
}

// IsKnownFamily reports whether name is one of the families current
// consumers read.
func IsKnownFamily(name string) bool {
	switch name {
	case FamilyTraffic, FamilyEngagementTime, FamilyScrollDepth,
		FamilyDeadClickCount, FamilyRageClickCount, FamilyErrorClickCount,
		FamilyQuickbackClick, FamilyScriptErrorCount, FamilyExcessiveScroll:
		return true
	}
	return false
}
