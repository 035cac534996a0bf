package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"steadyday.app/internal/adapters/api"
	"steadyday.app/internal/adapters/infrastructure"
	"steadyday.app/internal/config"
	"steadyday.app/internal/core/environment"
	"steadyday.app/internal/core/historical"
	"steadyday.app/internal/core/report"
	"steadyday.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	environmentUseCase *environment.UseCase
	reportUseCase      *report.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(DependencyConfig{App: cfg})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps)
}

// NewApplicationWithDependencies creates an application with provided dependencies
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	environmentUseCase, err := environment.NewUseCase(environment.UseCaseDependencies{
		Provider: a.ports.EnvironmentProvider,
		Resolver: a.deps.Resolver(),
		Dengue:   a.ports.DengueSource,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.Metrics,
		Clock:    a.ports.Clock,
	})
	if err != nil {
		return fmt.Errorf("create environment use case: %w", err)
	}
	a.environmentUseCase = environmentUseCase

	reportUseCase, err := report.NewUseCase(report.UseCaseDependencies{
		Environment: environmentUseCase,
		Regions:     a.deps.Resolver(),
		Historical:  historical.NewSummarizer(a.deps.HistoricalData()),
		Logger:      a.ports.Logger,
		Clock:       a.ports.Clock,
	})
	if err != nil {
		return fmt.Errorf("create report use case: %w", err)
	}
	a.reportUseCase = reportUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	if err := api.RegisterValidators(); err != nil {
		slog.Warn("Failed to register request validators", "error", err)
	}

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		UpstreamChecker: infrastructure.NewUpstreamHealthChecker(a.ports.ConfigProvider.GetUpstreamConfig()),
		RegionChecker:   infrastructure.NewRegionTableHealthChecker(a.deps.Resolver()),
		ConfigProvider:  a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		EnvironmentUseCase:  a.environmentUseCase,
		RegionResolver:      a.deps.Resolver(),
		ReportUseCase:       a.reportUseCase,
		MetricsReporter:     a.ports.MetricsReporter,
		SystemHealthChecker: systemHealthChecker,
		Location:            a.ports.ConfigProvider.GetLocaleConfig().Location,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// EnvironmentUseCase returns the fetch operations
func (a *Application) EnvironmentUseCase() *environment.UseCase {
	return a.environmentUseCase
}

// ReportUseCase returns the report planner
func (a *Application) ReportUseCase() *report.UseCase {
	return a.reportUseCase
}
