package models

import "time"

// SnapshotTotals are the snapshot-level totals folded out of one feed
// response. Per-dimension breakdown sums are not required to match these
// totals: the provider's data is not guaranteed additive, so both are kept
// independently rather than reconciled.
type SnapshotTotals struct {
	TotalSessions    int64 `json:"totalSessions"`
	TotalUsers       int64 `json:"totalUsers"`
	TotalBotSessions int64 `json:"totalBotSessions"`

	// PagesPerSession, AvgScrollDepth and AvgEngagementTime are unweighted
	// means across per-dimension records, not session-weighted means.
	// Statistically questionable but preserved exactly as the provider's
	// dashboards computed them.
	PagesPerSession   float64 `json:"pagesPerSession"`
	AvgScrollDepth    float64 `json:"avgScrollDepth"`
	AvgEngagementTime float64 `json:"avgEngagementTime"`

	TotalDeadClicks      int64 `json:"totalDeadClicks"`
	TotalRageClicks      int64 `json:"totalRageClicks"`
	TotalErrorClicks     int64 `json:"totalErrorClicks"`
	TotalQuickBackClicks int64 `json:"totalQuickBackClicks"`
	TotalScriptErrors    int64 `json:"totalScriptErrors"`
	TotalExcessiveScroll int64 `json:"totalExcessiveScroll"`
}

// RankedEntry is one labeled value in a ranked or charted list.
type RankedEntry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TrendSeries is a fixed-length day-bucketed series for charting.
// Synthetic is true when the points were fabricated from a baseline rather
// than queried from historical data; consumers must not present synthetic
// points as real trend history.
type TrendSeries struct {
	Synthetic bool          `json:"synthetic"`
	Points    []RankedEntry `json:"points"`
}

// AnalyticsSnapshot is the complete aggregated result for one refresh cycle.
// It is built fresh from one feed response, treated as immutable, and
// replaced wholesale on the next refresh. Consumers only read it.
type AnalyticsSnapshot struct {
	GeneratedAt time.Time `json:"generatedAt"`
	WindowDays  int       `json:"windowDays"`

	Totals SnapshotTotals `json:"totals"`

	DeviceBreakdowns     []DimensionBreakdown `json:"deviceBreakdowns"`
	OSBreakdowns         []DimensionBreakdown `json:"osBreakdowns"`
	CountryBreakdowns    []DimensionBreakdown `json:"countryBreakdowns"`
	EngagementBreakdowns []DimensionBreakdown `json:"engagementBreakdowns"`

	// TopCountries is bounded to the configured N and never empty: when the
	// feed has no country data it holds the single "No data" fallback entry
	// so dashboards always have something to render.
	TopCountries []RankedEntry `json:"topCountries"`

	Trend TrendSeries `json:"trend"`

	// UnusedFamilies lists family names seen in the feed that no current
	// consumer reads, in first-seen order.
	UnusedFamilies []string `json:"unusedFamilies,omitempty"`
}
