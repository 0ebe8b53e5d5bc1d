package insights

import (
	"behavior-insights/internal/models"
)

//go:generate mockgen -source=summary_reducer.go -destination=./mocks/summary_reducer_mock.go -package=mocks
type SummaryReducer interface {
	// Reduce folds the per-record fields of the Traffic family and its
	// companion families into snapshot-level totals. Every division is
	// guarded: a zero denominator yields 0.
	Reduce(groups []models.MetricGroup) models.SnapshotTotals
}

type summaryReducer struct{}

func NewSummaryReducer() SummaryReducer {
	return &summaryReducer{}
}

func (r *summaryReducer) Reduce(groups []models.MetricGroup) models.SnapshotTotals {
	byName := groupsByName(groups)

	totals := models.SnapshotTotals{}

	traffic := byName[models.FamilyTraffic]
	var pagesPerSessionSum float64
	for _, record := range traffic.Records {
		totals.TotalSessions += NormalizeInt(record.Field(models.FieldTotalSessionCount))
		totals.TotalUsers += NormalizeInt(record.Field(models.FieldDistinctUserCount))
		totals.TotalBotSessions += NormalizeInt(record.Field(models.FieldTotalBotSessionCount))
		pagesPerSessionSum += NormalizeFloat(record.Field(models.FieldPagesPerSessionPct))
	}
	// Unweighted mean across traffic records, not a session-weighted mean.
	totals.PagesPerSession = meanOf(pagesPerSessionSum, len(traffic.Records))

	scrollDepth := byName[models.FamilyScrollDepth]
	var scrollDepthSum float64
	for _, record := range scrollDepth.Records {
		scrollDepthSum += NormalizeFloat(record.Field(models.FieldAverageScrollDepth))
	}
	totals.AvgScrollDepth = meanOf(scrollDepthSum, len(scrollDepth.Records))

	// Mean of EngagementTime totalTime, divided again by the traffic record
	// count. A mean of a sum rather than a true per-session average;
	// preserved exactly from the observed dashboards.
	engagement := byName[models.FamilyEngagementTime]
	var totalTimeSum float64
	for _, record := range engagement.Records {
		totalTimeSum += NormalizeFloat(record.Field(models.FieldTotalTime))
	}
	totals.AvgEngagementTime = meanOf(meanOf(totalTimeSum, len(engagement.Records)), len(traffic.Records))

	totals.TotalDeadClicks = sumSubTotals(byName[models.FamilyDeadClickCount])
	totals.TotalRageClicks = sumSubTotals(byName[models.FamilyRageClickCount])
	totals.TotalErrorClicks = sumSubTotals(byName[models.FamilyErrorClickCount])
	totals.TotalQuickBackClicks = sumSubTotals(byName[models.FamilyQuickbackClick])
	totals.TotalScriptErrors = sumSubTotals(byName[models.FamilyScriptErrorCount])
	totals.TotalExcessiveScroll = sumSubTotals(byName[models.FamilyExcessiveScroll])

	return totals
}

// groupsByName indexes groups by family name, keeping the first occurrence
// of a duplicated name.
func groupsByName(groups []models.MetricGroup) map[string]models.MetricGroup {
	byName := make(map[string]models.MetricGroup, len(groups))
	for _, group := range groups {
		if _, exists := byName[group.Name]; !exists {
			byName[group.Name] = group
		}
	}
	return byName
}

func sumSubTotals(group models.MetricGroup) int64 {
	var total int64
	for _, record := range group.Records {
		total += NormalizeInt(record.Field(models.FieldSubTotal))
	}
	return total
}

func meanOf(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
