package infrastructure

import (
	"steadyday.app/internal/config"
	"steadyday.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetUpstreamConfig returns the data.gov.sg endpoint configuration along
// with the static header set sent on every request.
func (c *ConfigProviderAdapter) GetUpstreamConfig() ports.UpstreamConfig {
	upstream := c.config.Upstream
	return ports.UpstreamConfig{
		TwoHourForecastURL:        upstream.TwoHourForecastURL,
		TwentyFourHourForecastURL: upstream.TwentyFourHourForecastURL,
		FourDayOutlookURL:         upstream.FourDayOutlookURL,
		PSIURL:                    upstream.PSIURL,
		UVIndexURL:                upstream.UVIndexURL,
		Timeout:                   upstream.Timeout(),
		Headers: map[string]string{
			"User-Agent": upstream.UserAgent,
			"Accept":     "application/json",
		},
		EnableLogging: upstream.EnableLogging,
		EnableMetrics: upstream.EnableMetrics,
	}
}

// GetLocaleConfig returns the locale configuration
func (c *ConfigProviderAdapter) GetLocaleConfig() ports.LocaleConfig {
	return ports.LocaleConfig{
		Location: c.config.Locale.Location(),
	}
}

// GetLoggingConfig returns logging configuration
func (c *ConfigProviderAdapter) GetLoggingConfig() ports.LoggingConfig {
	return ports.LoggingConfig{
		Level:    c.config.Logging.Level,
		ToFile:   c.config.Logging.ToFile,
		FilePath: c.config.Logging.FilePath,
	}
}
