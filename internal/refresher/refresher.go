package refresher

import (
	"context"
	"sync"
	"time"

	"behavior-insights/internal/feed"
	"behavior-insights/internal/insights"
	"behavior-insights/internal/models"
	"behavior-insights/internal/shared/loggers"
	"behavior-insights/internal/shared/metrics"
	"behavior-insights/internal/shared/svcerrors"
)

// Options shape the refresh policy around the pure aggregation pipeline.
type Options struct {
	WindowDays int
	Dimensions []string

	// Staleness is how long a built snapshot keeps being served before the
	// next caller triggers a refetch.
	Staleness time.Duration

	// RetryMax bounds transport retries per refresh; RetryMax=2 means one
	// initial attempt plus at most two retries.
	RetryMax int
}

//go:generate mockgen -source=refresher.go -destination=./mocks/snapshot_provider_mock.go -package=mocks
type SnapshotProvider interface {
	// Snapshot returns the current analytics snapshot, refreshing it from
	// the feed when the cached one has gone stale. The returned snapshot is
	// shared and immutable: callers only read it. When a refresh fails and
	// a previous snapshot exists, that previous snapshot is returned whole;
	// a mix of stale and fresh fields is never produced.
	Snapshot(ctx context.Context) (*models.AnalyticsSnapshot, error)
}

type snapshotRefresher struct {
	feedClient feed.Client
	builder    insights.SnapshotBuilder
	opts       Options
	now        func() time.Time

	mu        sync.Mutex
	current   *models.AnalyticsSnapshot
	fetchedAt time.Time
}

func NewSnapshotRefresher(feedClient feed.Client, builder insights.SnapshotBuilder, opts Options) SnapshotProvider {
	return newSnapshotRefresher(feedClient, builder, opts, time.Now)
}

func newSnapshotRefresher(feedClient feed.Client, builder insights.SnapshotBuilder, opts Options, now func() time.Time) SnapshotProvider {
	return &snapshotRefresher{
		feedClient: feedClient,
		builder:    builder,
		opts:       opts,
		now:        now,
	}
}

func (r *snapshotRefresher) Snapshot(ctx context.Context) (*models.AnalyticsSnapshot, error) {
	// The mutex also serializes concurrent refreshes of the same slot, so
	// at most one fetch is in flight per process.
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != nil && r.now().Sub(r.fetchedAt) < r.opts.Staleness {
		return r.current, nil
	}

	snapshot, err := r.refresh(ctx)
	if err == nil {
		// Replace wholesale; the previous snapshot is never mutated.
		r.current = snapshot
		r.fetchedAt = r.now()
		metricSnapshotRefreshTotal.WithLabelValues(metrics.ValueNoError).Inc()
		return r.current, nil
	}

	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		svcErr = svcerrors.NewInternalErrorUndefined(err)
	}
	metricSnapshotRefreshTotal.WithLabelValues(svcErr.Code).Inc()

	// A failed refresh keeps the previous snapshot rather than surfacing a
	// partial or empty one.
	if r.current != nil {
		loggers.Ctx(ctx).Warn().
			Err(svcErr.Cause).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("snapshot refresh failed, serving previous snapshot")
		metricSnapshotServedStaleTotal.Inc()
		return r.current, nil
	}

	return nil, svcErr
}

// refresh fetches the feed with bounded retry and builds a fresh snapshot.
// Invalid-argument failures (bad configuration) are not retried.
func (r *snapshotRefresher) refresh(ctx context.Context) (*models.AnalyticsSnapshot, error) {
	logger := loggers.Ctx(ctx)

	var lastErr error
	for attempt := 0; attempt <= r.opts.RetryMax; attempt++ {
		if ctx.Err() != nil {
			return nil, errInternalRefreshFailed(ctx.Err())
		}

		groups, err := r.feedClient.Fetch(ctx, r.opts.WindowDays, r.opts.Dimensions)
		if err == nil {
			return r.builder.Build(groups, r.opts.WindowDays), nil
		}
		lastErr = err

		if svcErr, ok := svcerrors.AsServiceError(err); ok && !svcErr.IsUnavailableError() {
			break
		}

		logger.Warn().
			Err(err).
			Int(loggers.FieldAttempt, attempt+1).
			Msg("feed fetch failed")
	}

	return nil, lastErr
}
