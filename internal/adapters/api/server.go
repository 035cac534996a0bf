// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"steadyday.app/internal/core/environment"
	"steadyday.app/internal/core/report"
	"steadyday.app/internal/ports"
	"steadyday.app/pkg/errors"
)

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router          *gin.Engine
	environment     EnvironmentUseCase
	resolver        RegionResolver
	reports         ReportUseCase
	metricsReporter ports.MetricsReporter
	healthChecker   ports.SystemHealthChecker
	location        *time.Location
}

// Use case interfaces that the HTTP adapter depends on
type EnvironmentUseCase interface {
	TwoHourForecast(ctx context.Context, req environment.TwoHourRequest) environment.FetchResult
	TwentyFourHourForecast(ctx context.Context) environment.FetchResult
	FourDayOutlook(ctx context.Context) environment.FetchResult
	PSI(ctx context.Context, regionName string) environment.FetchResult
	UVIndex(ctx context.Context) environment.FetchResult
	DengueClusters(ctx context.Context, query string) environment.FetchResult
}

type RegionResolver interface {
	Resolve(location string) (string, bool)
}

type ReportUseCase interface {
	Build(ctx context.Context, query string) *report.Report
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	EnvironmentUseCase  EnvironmentUseCase
	RegionResolver      RegionResolver
	ReportUseCase       ReportUseCase
	MetricsReporter     ports.MetricsReporter
	SystemHealthChecker ports.SystemHealthChecker
	// Location is the zone naive date_time parameters are read in.
	Location *time.Location
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	location := opts.Location
	if location == nil {
		location = time.Local
	}

	router := gin.Default()
	router.Use(requestID())

	server := &HTTPServerAdapter{
		router:          router,
		environment:     opts.EnvironmentUseCase,
		resolver:        opts.RegionResolver,
		reports:         opts.ReportUseCase,
		metricsReporter: opts.MetricsReporter,
		healthChecker:   opts.SystemHealthChecker,
		location:        location,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.EnvironmentUseCase == nil {
		return errors.NewValidationError("environment use case is required")
	}
	if opts.RegionResolver == nil {
		return errors.NewValidationError("region resolver is required")
	}
	if opts.ReportUseCase == nil {
		return errors.NewValidationError("report use case is required")
	}
	if opts.MetricsReporter == nil {
		return errors.NewValidationError("metrics reporter is required")
	}
	if opts.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		weather := api.Group("/weather")
		weather.GET("/two-hour", s.getTwoHourForecast)
		weather.GET("/twenty-four-hour", s.getTwentyFourHourForecast)
		weather.GET("/four-day", s.getFourDayOutlook)

		api.GET("/air-quality/psi", s.getPSI)
		api.GET("/uv-index", s.getUVIndex)
		api.GET("/dengue", s.getDengueClusters)
		api.GET("/regions/resolve", s.resolveRegion)
		api.GET("/report", s.getReport)

		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// GetRouter returns the router for serving and testing
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
