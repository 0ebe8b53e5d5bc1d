package insights

import (
	"behavior-insights/internal/shared/metrics"
)

var (
	metricSnapshotBuiltTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubInsights,
			Name:      "snapshot_built_total",
		},
	)

	metricSnapshotBuildDuration = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubInsights,
			Name:      "snapshot_build_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
	)
)
