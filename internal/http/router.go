package http

import (
	"net/http"

	"behavior-insights/internal/refresher"
	"behavior-insights/internal/shared/loggers"
	"behavior-insights/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(provider refresher.SnapshotProvider, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Routes: the three dashboard views, all served from the same snapshot
	router.Get("/dashboard/overview", errorHandlingAdapter(NewOverviewHandler(provider)))
	router.Get("/dashboard/traffic", errorHandlingAdapter(NewTrafficHandler(provider)))
	router.Get("/dashboard/issues", errorHandlingAdapter(NewIssuesHandler(provider)))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
