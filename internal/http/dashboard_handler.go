package http

import (
	"net/http"

	"behavior-insights/internal/models"
	"behavior-insights/internal/refresher"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// dashboardHandler serves one dashboard view as a projection of the shared
// snapshot. The three formerly separate dashboard implementations differ
// only in which snapshot fields they render, so they collapse into one
// handler parameterized by a projection function.
type dashboardHandler struct {
	provider refresher.SnapshotProvider
	project  func(snapshot *models.AnalyticsSnapshot) any
}

func NewOverviewHandler(provider refresher.SnapshotProvider) AppHttpHandler {
	return &dashboardHandler{
		provider: provider,
		project:  func(snapshot *models.AnalyticsSnapshot) any { return newOverviewResponse(snapshot) },
	}
}

func NewTrafficHandler(provider refresher.SnapshotProvider) AppHttpHandler {
	return &dashboardHandler{
		provider: provider,
		project:  func(snapshot *models.AnalyticsSnapshot) any { return newTrafficResponse(snapshot) },
	}
}

func NewIssuesHandler(provider refresher.SnapshotProvider) AppHttpHandler {
	return &dashboardHandler{
		provider: provider,
		project:  func(snapshot *models.AnalyticsSnapshot) any { return newIssuesResponse(snapshot) },
	}
}

func (h *dashboardHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	snapshot, err := h.provider.Snapshot(r.Context())
	if err != nil {
		return err
	}
	return writeJSONResponse(w, h.project(snapshot))
}
