package feed

import (
	"behavior-insights/internal/shared/metrics"
)

var (
	metricFeedFetchTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubFeed,
			Name:      "fetch_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricFeedFetchDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubFeed,
			Name:      "fetch_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldErrorCode},
	)
)
