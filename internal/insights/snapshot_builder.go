package insights

import (
	"time"

	"behavior-insights/internal/models"
)

//go:generate mockgen -source=snapshot_builder.go -destination=./mocks/snapshot_builder_mock.go -package=mocks
type SnapshotBuilder interface {
	// Build turns one complete feed response into one immutable analytics
	// snapshot. It is a pure transformation over already-retrieved data:
	// a single response feeds the whole build, and no partial snapshot is
	// ever produced for a failed fetch (the builder is simply not invoked).
	Build(groups []models.MetricGroup, windowDays int) *models.AnalyticsSnapshot
}

type snapshotBuilder struct {
	aggregator DimensionAggregator
	reducer    SummaryReducer
	trend      *TrendGenerator

	topN         int
	trendBuckets int
	now          func() time.Time
}

func NewSnapshotBuilder(aggregator DimensionAggregator, reducer SummaryReducer, trend *TrendGenerator, topN, trendBuckets int) SnapshotBuilder {
	return newSnapshotBuilder(aggregator, reducer, trend, topN, trendBuckets, time.Now)
}

func newSnapshotBuilder(aggregator DimensionAggregator, reducer SummaryReducer, trend *TrendGenerator, topN, trendBuckets int, now func() time.Time) SnapshotBuilder {
	return &snapshotBuilder{
		aggregator:   aggregator,
		reducer:      reducer,
		trend:        trend,
		topN:         topN,
		trendBuckets: trendBuckets,
		now:          now,
	}
}

func (b *snapshotBuilder) Build(groups []models.MetricGroup, windowDays int) *models.AnalyticsSnapshot {
	start := time.Now()
	byName := groupsByName(groups)

	traffic := byName[models.FamilyTraffic]
	engagement := byName[models.FamilyEngagementTime]

	snapshot := &models.AnalyticsSnapshot{
		GeneratedAt: b.now().UTC(),
		WindowDays:  windowDays,

		Totals: b.reducer.Reduce(groups),

		DeviceBreakdowns:     b.aggregator.Aggregate(traffic, models.TrafficFieldSpec(models.DimensionDevice)),
		OSBreakdowns:         b.aggregator.Aggregate(traffic, models.TrafficFieldSpec(models.DimensionOS)),
		CountryBreakdowns:    b.aggregator.Aggregate(traffic, models.TrafficFieldSpec(models.DimensionCountry)),
		EngagementBreakdowns: b.aggregator.Aggregate(engagement, models.EngagementFieldSpec(models.DimensionDevice)),

		UnusedFamilies: unknownFamilyNames(groups),
	}

	snapshot.TopCountries = TopN(sessionsRanking(snapshot.CountryBreakdowns), b.topN)
	snapshot.Trend = b.trend.Generate(float64(snapshot.Totals.TotalSessions), b.trendBuckets)

	metricSnapshotBuiltTotal.Inc()
	metricSnapshotBuildDuration.Observe(time.Since(start).Seconds())
	return snapshot
}

// sessionsRanking projects breakdowns into labeled session counts for the
// top-N views.
func sessionsRanking(breakdowns []models.DimensionBreakdown) []models.RankedEntry {
	entries := make([]models.RankedEntry, 0, len(breakdowns))
	for _, breakdown := range breakdowns {
		entries = append(entries, models.RankedEntry{
			Label: breakdown.DimensionValue,
			Value: float64(breakdown.Sessions),
		})
	}
	return entries
}

// unknownFamilyNames returns feed family names no consumer reads, deduped,
// in first-seen order.
func unknownFamilyNames(groups []models.MetricGroup) []string {
	var names []string
	seen := make(map[string]bool)
	for _, group := range groups {
		if models.IsKnownFamily(group.Name) || seen[group.Name] {
			continue
		}
		seen[group.Name] = true
		names = append(names, group.Name)
	}
	return names
}
