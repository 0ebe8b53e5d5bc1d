package refresher

import (
	"behavior-insights/internal/shared/metrics"
)

var (
	metricSnapshotRefreshTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRefresher,
			Name:      "snapshot_refresh_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricSnapshotServedStaleTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRefresher,
			Name:      "snapshot_served_stale_total",
		},
	)
)
