package models

// Derived ratio names produced by the dimension aggregator.
const (
	RatioBotPercentage   = "botPercentage"
	RatioEngagement      = "engagementRatio"
	RatioSessionsWithPct = "sessionsWithMetricPercentage"
)

// RatioSpec defines one derived per-entry ratio: round(Numerator/Denominator*100),
// clamped to [0,100], and 0 whenever the denominator sums to 0.
type RatioSpec struct {
	Name        string
	Numerator   string
	Denominator string
}

// FieldSpec tells the dimension aggregator how to read one metric family:
// which field carries the dimension value, which fields are summed per
// dimension value, and which ratios are derived per entry. It replaces the
// hand-rolled per-view reduction chains with a single table-driven pass.
type FieldSpec struct {
	Family         string
	DimensionField string

	// SessionsField and UsersField feed the breakdown's Sessions/Users
	// counters. Either may be empty for families without session counts.
	SessionsField string
	UsersField    string

	// SumFields are additional numeric fields accumulated into the
	// breakdown's Sums map, keyed by field name.
	SumFields []string

	Ratios []RatioSpec
}

// TrafficFieldSpec reads the Traffic family grouped by the given dimension.
func TrafficFieldSpec(dimension string) FieldSpec {
	return FieldSpec{
		Family:         FamilyTraffic,
		DimensionField: dimension,
		SessionsField:  FieldTotalSessionCount,
		UsersField:     FieldDistinctUserCount,
		SumFields:      []string{FieldTotalBotSessionCount, FieldPagesPerSessionPct},
		Ratios: []RatioSpec{
			{
				Name:        RatioBotPercentage,
				Numerator:   FieldTotalBotSessionCount,
				Denominator: FieldTotalSessionCount,
			},
		},
	}
}

// EngagementFieldSpec reads the EngagementTime family grouped by the given dimension.
func EngagementFieldSpec(dimension string) FieldSpec {
	return FieldSpec{
		Family:         FamilyEngagementTime,
		DimensionField: dimension,
		SumFields:      []string{FieldTotalTime, FieldActiveTime},
		Ratios: []RatioSpec{
			{
				Name:        RatioEngagement,
				Numerator:   FieldActiveTime,
				Denominator: FieldTotalTime,
			},
		},
	}
}

// IssueFieldSpec reads one of the issue-count families (dead clicks, rage
// clicks, ...) grouped by the given dimension.
func IssueFieldSpec(family, dimension string) FieldSpec {
	return FieldSpec{
		Family:         family,
		DimensionField: dimension,
		SumFields:      []string{FieldSubTotal, FieldSessionsWithMetricPct},
	}
}
