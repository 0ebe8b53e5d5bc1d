package http

import (
	"time"

	"behavior-insights/internal/models"
)

// The dashboard responses are thin projections of one shared snapshot.
// Until the next refresh every view renders the same underlying data, so
// the three responses can never mix stale and fresh fields.

// OverviewResponse backs the overview dashboard: headline totals, the
// top-N country ranking and the trend chart.
type OverviewResponse struct {
	GeneratedAt  time.Time             `json:"generatedAt"`
	WindowDays   int                   `json:"windowDays"`
	Totals       models.SnapshotTotals `json:"totals"`
	TopCountries []models.RankedEntry  `json:"topCountries"`
	Trend        models.TrendSeries    `json:"trend"`
}

// TrafficResponse backs the traffic dashboard: per-dimension breakdowns.
type TrafficResponse struct {
	GeneratedAt       time.Time                   `json:"generatedAt"`
	WindowDays        int                         `json:"windowDays"`
	DeviceBreakdowns  []models.DimensionBreakdown `json:"deviceBreakdowns"`
	OSBreakdowns      []models.DimensionBreakdown `json:"osBreakdowns"`
	CountryBreakdowns []models.DimensionBreakdown `json:"countryBreakdowns"`
}

// IssuesResponse backs the issues dashboard: friction-event totals and
// engagement breakdowns.
type IssuesResponse struct {
	GeneratedAt          time.Time                   `json:"generatedAt"`
	WindowDays           int                         `json:"windowDays"`
	TotalDeadClicks      int64                       `json:"totalDeadClicks"`
	TotalRageClicks      int64                       `json:"totalRageClicks"`
	TotalErrorClicks     int64                       `json:"totalErrorClicks"`
	TotalQuickBackClicks int64                       `json:"totalQuickBackClicks"`
	TotalScriptErrors    int64                       `json:"totalScriptErrors"`
	TotalExcessiveScroll int64                       `json:"totalExcessiveScroll"`
	EngagementBreakdowns []models.DimensionBreakdown `json:"engagementBreakdowns"`
	UnusedFamilies       []string                    `json:"unusedFamilies,omitempty"`
}

func newOverviewResponse(snapshot *models.AnalyticsSnapshot) OverviewResponse {
	return OverviewResponse{
		GeneratedAt:  snapshot.GeneratedAt,
		WindowDays:   snapshot.WindowDays,
		Totals:       snapshot.Totals,
		TopCountries: snapshot.TopCountries,
		Trend:        snapshot.Trend,
	}
}

func newTrafficResponse(snapshot *models.AnalyticsSnapshot) TrafficResponse {
	return TrafficResponse{
		GeneratedAt:       snapshot.GeneratedAt,
		WindowDays:        snapshot.WindowDays,
		DeviceBreakdowns:  snapshot.DeviceBreakdowns,
		OSBreakdowns:      snapshot.OSBreakdowns,
		CountryBreakdowns: snapshot.CountryBreakdowns,
	}
}

func newIssuesResponse(snapshot *models.AnalyticsSnapshot) IssuesResponse {
	return IssuesResponse{
		GeneratedAt:          snapshot.GeneratedAt,
		WindowDays:           snapshot.WindowDays,
		TotalDeadClicks:      snapshot.Totals.TotalDeadClicks,
		TotalRageClicks:      snapshot.Totals.TotalRageClicks,
		TotalErrorClicks:     snapshot.Totals.TotalErrorClicks,
		TotalQuickBackClicks: snapshot.Totals.TotalQuickBackClicks,
		TotalScriptErrors:    snapshot.Totals.TotalScriptErrors,
		TotalExcessiveScroll: snapshot.Totals.TotalExcessiveScroll,
		EngagementBreakdowns: snapshot.EngagementBreakdowns,
		UnusedFamilies:       snapshot.UnusedFamilies,
	}
}
