package app

import (
	"fmt"
	"log/slog"
	"time"

	"steadyday.app/internal/adapters/external"
	"steadyday.app/internal/adapters/infrastructure"
	"steadyday.app/internal/adapters/static"
	"steadyday.app/internal/config"
	"steadyday.app/internal/core/historical"
	"steadyday.app/internal/core/region"
	"steadyday.app/internal/ports"
	"steadyday.app/pkg/logger"
)

type DependencyContainer struct {
	config     DependencyConfig
	fileLogger *infrastructure.FileLoggerAdapter
	metrics    *infrastructure.MetricsCollectorAdapter
	resolver   *region.Resolver
	historical historical.Data
	ports      *ports.ApplicationPorts
}

type DependencyConfig struct {
	App *config.Config
	// HTTPClient overrides the upstream client, mainly for tests.
	HTTPClient external.HTTPClient
	// Clock overrides the wall clock, mainly for tests.
	Clock ports.Clock
}

func NewDependencyContainer(depConfig DependencyConfig) (*DependencyContainer, error) {
	if depConfig.App == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	container := &DependencyContainer{
		config: depConfig,
	}

	if err := container.initializeStaticData(); err != nil {
		return nil, fmt.Errorf("initialize static data: %w", err)
	}

	if err := container.initializePorts(); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeStaticData() error {
	slog.Info("Loading bundled reference data...")

	resolver, err := static.LoadResolver()
	if err != nil {
		return fmt.Errorf("load region table: %w", err)
	}

	data, err := static.LoadHistoricalData()
	if err != nil {
		return fmt.Errorf("load historical averages: %w", err)
	}

	c.resolver = resolver
	c.historical = data
	slog.Info("Reference data loaded", "areas", resolver.Len(), "regions", resolver.Regions())
	return nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	configProvider := infrastructure.NewConfigProviderAdapter(c.config.App)
	loggingConfig := configProvider.GetLoggingConfig()
	upstreamConfig := configProvider.GetUpstreamConfig()
	location := configProvider.GetLocaleConfig().Location

	appLogger := logger.NewWithLevel(logger.ParseLevel(loggingConfig.Level)).WithField("service", "steadyday")
	var log ports.Logger = infrastructure.NewSlogLoggerAdapter(appLogger.Logger)

	// Upstream traffic goes to the file logger when one is configured
	upstreamLogger := log
	if loggingConfig.ToFile && loggingConfig.FilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(loggingConfig.FilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			c.fileLogger = fileLogger
			upstreamLogger = fileLogger
			slog.Info("File logging enabled", "path", loggingConfig.FilePath)
		}
	}

	c.metrics = infrastructure.NewMetricsCollectorAdapter()

	var provider ports.EnvironmentProvider = external.NewNEAProviderAdapter(external.NEAProviderParams{
		Endpoints: external.Endpoints{
			TwoHourForecast:        upstreamConfig.TwoHourForecastURL,
			TwentyFourHourForecast: upstreamConfig.TwentyFourHourForecastURL,
			FourDayOutlook:         upstreamConfig.FourDayOutlookURL,
			PSI:                    upstreamConfig.PSIURL,
			UVIndex:                upstreamConfig.UVIndexURL,
		},
		Headers: upstreamConfig.Headers,
		Timeout: upstreamConfig.Timeout,
		Client:  c.config.HTTPClient,
		Logger:  log,
	})

	if upstreamConfig.EnableMetrics {
		provider = external.NewEnvironmentProviderMetricsDecorator(provider, c.metrics)
		slog.Info("Upstream metrics enabled")
	}

	if upstreamConfig.EnableLogging {
		provider = external.NewEnvironmentProviderLoggingDecorator(provider, upstreamLogger)
		slog.Info("Upstream logging enabled")
	}

	clock := c.config.Clock
	if clock == nil {
		clock = func() time.Time { return time.Now().In(location) }
	}

	c.ports = &ports.ApplicationPorts{
		// Environment data
		EnvironmentProvider: provider,
		DengueSource:        static.NewDengueSource(),

		// Observability
		Metrics:         c.metrics,
		MetricsReporter: c.metrics,

		// Infrastructure
		ConfigProvider: configProvider,
		Logger:         log,
		Clock:          clock,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Resolver returns the bundled area-to-region table
func (c *DependencyContainer) Resolver() *region.Resolver {
	return c.resolver
}

// HistoricalData returns the bundled monthly averages
func (c *DependencyContainer) HistoricalData() historical.Data {
	return c.historical
}

// Cleanup releases resources held by the container
func (c *DependencyContainer) Cleanup() error {
	if c.fileLogger != nil {
		return c.fileLogger.Close()
	}
	return nil
}
