package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"behavior-insights/internal/feed"
	internalhttp "behavior-insights/internal/http"
	"behavior-insights/internal/insights"
	"behavior-insights/internal/models"
	"behavior-insights/internal/refresher"
	"behavior-insights/internal/shared/configs"
	"behavior-insights/internal/shared/loggers"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "behavior-insights").
		Logger()

	// Initialize the metric feed client. Configuration errors surface here,
	// before any fetch is attempted.
	feedClient, err := feed.NewHTTPClient(
		config.Feed.BaseURL,
		config.Feed.Token,
		time.Duration(config.Feed.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize feed client: %w", err)
	}

	// Initialize the aggregation engine
	aggregator := insights.NewDimensionAggregator()
	reducer := insights.NewSummaryReducer()
	trendGenerator := insights.NewTrendGenerator()
	builder := insights.NewSnapshotBuilder(aggregator, reducer, trendGenerator, config.Snapshot.TopN, config.Snapshot.TrendBuckets)

	// Initialize the snapshot refresher (staleness + bounded retry)
	provider := refresher.NewSnapshotRefresher(feedClient, builder, refresher.Options{
		WindowDays: config.Snapshot.WindowDays,
		Dimensions: []string{models.DimensionDevice, models.DimensionOS, models.DimensionCountry},
		Staleness:  time.Duration(config.Snapshot.StalenessSeconds) * time.Second,
		RetryMax:   config.Snapshot.RetryMax,
	})

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(provider, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting behavior-insights service on port %d (log_level=%s, window_days=%d, staleness=%ds)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Snapshot.WindowDays,
			app.config.Snapshot.StalenessSeconds)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
