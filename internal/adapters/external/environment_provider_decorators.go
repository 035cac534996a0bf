package external

import (
	"context"
	"time"

	"steadyday.app/internal/ports"
)

// EnvironmentProviderLoggingDecorator decorates the provider with structured logging
type EnvironmentProviderLoggingDecorator struct {
	provider ports.EnvironmentProvider
	logger   ports.Logger
}

// NewEnvironmentProviderLoggingDecorator creates a new logging decorator
func NewEnvironmentProviderLoggingDecorator(provider ports.EnvironmentProvider, logger ports.Logger) *EnvironmentProviderLoggingDecorator {
	return &EnvironmentProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

func (d *EnvironmentProviderLoggingDecorator) FetchTwoHourForecast(ctx context.Context, at time.Time) (*ports.TwoHourForecastResponse, error) {
	return logged(d.logger, EndpointTwoHourForecast, func() (*ports.TwoHourForecastResponse, error) {
		return d.provider.FetchTwoHourForecast(ctx, at)
	})
}

func (d *EnvironmentProviderLoggingDecorator) FetchTwentyFourHourForecast(ctx context.Context) (*ports.TwentyFourHourForecastResponse, error) {
	return logged(d.logger, EndpointTwentyFourHourForecast, func() (*ports.TwentyFourHourForecastResponse, error) {
		return d.provider.FetchTwentyFourHourForecast(ctx)
	})
}

func (d *EnvironmentProviderLoggingDecorator) FetchFourDayOutlook(ctx context.Context) (*ports.FourDayOutlookResponse, error) {
	return logged(d.logger, EndpointFourDayOutlook, func() (*ports.FourDayOutlookResponse, error) {
		return d.provider.FetchFourDayOutlook(ctx)
	})
}

func (d *EnvironmentProviderLoggingDecorator) FetchPSI(ctx context.Context) (*ports.PSIResponse, error) {
	return logged(d.logger, EndpointPSI, func() (*ports.PSIResponse, error) {
		return d.provider.FetchPSI(ctx)
	})
}

func (d *EnvironmentProviderLoggingDecorator) FetchUVIndex(ctx context.Context) (*ports.UVIndexResponse, error) {
	return logged(d.logger, EndpointUVIndex, func() (*ports.UVIndexResponse, error) {
		return d.provider.FetchUVIndex(ctx)
	})
}

func logged[T any](logger ports.Logger, endpoint string, call func() (*T, error)) (*T, error) {
	logger.Info("Upstream request started",
		ports.F("endpoint", endpoint),
		ports.F("event", "request"))

	startTime := time.Now()
	out, err := call()
	duration := time.Since(startTime)

	if err != nil {
		logger.Error("Upstream request failed",
			ports.F("endpoint", endpoint),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	logger.Info("Upstream request completed",
		ports.F("endpoint", endpoint),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()))
	return out, nil
}

// EnvironmentProviderMetricsDecorator records call counts, failures and latency
type EnvironmentProviderMetricsDecorator struct {
	provider ports.EnvironmentProvider
	metrics  ports.MetricsRecorder
}

// NewEnvironmentProviderMetricsDecorator creates a new metrics decorator
func NewEnvironmentProviderMetricsDecorator(provider ports.EnvironmentProvider, metrics ports.MetricsRecorder) *EnvironmentProviderMetricsDecorator {
	return &EnvironmentProviderMetricsDecorator{
		provider: provider,
		metrics:  metrics,
	}
}

func (d *EnvironmentProviderMetricsDecorator) FetchTwoHourForecast(ctx context.Context, at time.Time) (*ports.TwoHourForecastResponse, error) {
	return measured(d.metrics, EndpointTwoHourForecast, func() (*ports.TwoHourForecastResponse, error) {
		return d.provider.FetchTwoHourForecast(ctx, at)
	})
}

func (d *EnvironmentProviderMetricsDecorator) FetchTwentyFourHourForecast(ctx context.Context) (*ports.TwentyFourHourForecastResponse, error) {
	return measured(d.metrics, EndpointTwentyFourHourForecast, func() (*ports.TwentyFourHourForecastResponse, error) {
		return d.provider.FetchTwentyFourHourForecast(ctx)
	})
}

func (d *EnvironmentProviderMetricsDecorator) FetchFourDayOutlook(ctx context.Context) (*ports.FourDayOutlookResponse, error) {
	return measured(d.metrics, EndpointFourDayOutlook, func() (*ports.FourDayOutlookResponse, error) {
		return d.provider.FetchFourDayOutlook(ctx)
	})
}

func (d *EnvironmentProviderMetricsDecorator) FetchPSI(ctx context.Context) (*ports.PSIResponse, error) {
	return measured(d.metrics, EndpointPSI, func() (*ports.PSIResponse, error) {
		return d.provider.FetchPSI(ctx)
	})
}

func (d *EnvironmentProviderMetricsDecorator) FetchUVIndex(ctx context.Context) (*ports.UVIndexResponse, error) {
	return measured(d.metrics, EndpointUVIndex, func() (*ports.UVIndexResponse, error) {
		return d.provider.FetchUVIndex(ctx)
	})
}

func measured[T any](metrics ports.MetricsRecorder, endpoint string, call func() (*T, error)) (*T, error) {
	startTime := time.Now()
	out, err := call()
	metrics.RecordUpstreamCall(endpoint, err == nil, time.Since(startTime))
	return out, err
}
