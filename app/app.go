// Package app wires the scorecard service: config, storage, the event
// bus, the module services, and the HTTP surface.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"golang.org/x/time/rate"

	"github.com/strideclub/scorecard/config"
	"github.com/strideclub/scorecard/internal/db/bundb"
	"github.com/strideclub/scorecard/internal/eventbus"
	"github.com/strideclub/scorecard/internal/observability"
	"github.com/strideclub/scorecard/internal/observability/metrics/scorecardmetrics"

	courseservice "github.com/strideclub/scorecard/app/modules/course/application"
	coursehandlers "github.com/strideclub/scorecard/app/modules/course/infrastructure/handlers"
	coursedb "github.com/strideclub/scorecard/app/modules/course/infrastructure/repositories"
	scorecardservice "github.com/strideclub/scorecard/app/modules/scorecard/application"
	scorecardhandlers "github.com/strideclub/scorecard/app/modules/scorecard/infrastructure/handlers"
)

// courseLookupRate bounds catalog searches from typing clients.
const courseLookupRate = 20

// App holds the wired service.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	DB       *bun.DB
	EventBus eventbus.EventBus
	Registry *prometheus.Registry

	Scorecard *scorecardservice.ScorecardService
	Courses   *courseservice.CourseService

	httpServer *http.Server
}

// NewApp initializes the application.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := observability.NewLogger(cfg.Observability.Environment, cfg.Observability.LogLevel)

	db, err := bundb.New(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	bus, err := eventbus.New(ctx, cfg.NATS.URL, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	registry := prometheus.NewRegistry()
	metrics := scorecardmetrics.NewPrometheusMetrics(registry)
	tracer := otel.Tracer("scorecard")

	scorecardSvc := scorecardservice.NewScorecardService(bus, logger, metrics, tracer, nil)
	courseSvc := courseservice.NewCourseService(
		&coursedb.CourseDBImpl{DB: db},
		logger,
		metrics,
		tracer,
		rate.NewLimiter(rate.Limit(courseLookupRate), courseLookupRate),
	)

	a := &App{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		EventBus:  bus,
		Registry:  registry,
		Scorecard: scorecardSvc,
		Courses:   courseSvc,
	}

	router := a.newRouter(
		scorecardhandlers.NewHandlers(scorecardSvc, courseSvc, logger),
		coursehandlers.NewHandlers(courseSvc, logger),
	)
	a.httpServer = &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return a, nil
}

// Run serves HTTP until the context is canceled, then shuts down
// gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("HTTP server listening", slog.String("address", a.Config.HTTP.Address))
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown failed: %w", err)
	}
	return nil
}

// Close releases the app's connections.
func (a *App) Close() {
	if err := a.EventBus.Close(); err != nil {
		a.Logger.Error("Failed to close event bus", slog.Any("error", err))
	}
	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Failed to close database", slog.Any("error", err))
	}
}
