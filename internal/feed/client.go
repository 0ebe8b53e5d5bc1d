package feed

import (
	"context"

	"behavior-insights/internal/models"
)

//go:generate mockgen -source=client.go -destination=./mocks/client_mock.go -package=mocks
type Client interface {
	// Fetch requests the behavioral metrics for the trailing windowDays,
	// broken down by up to three dimension selectors, and returns the
	// provider's metric groups in response order. A failed fetch returns no
	// groups at all: the caller never aggregates a partial response.
	Fetch(ctx context.Context, windowDays int, dimensions []string) ([]models.MetricGroup, error)
}
