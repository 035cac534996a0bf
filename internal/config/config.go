package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"steadyday.app/pkg/errors"
)

const (
	maxPortNumber         = 65535
	maxRequestTimeoutSecs = 120
	minUTCOffsetHours     = -12
	maxUTCOffsetHours     = 14
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Upstream UpstreamConfig `split_words:"true"`
	Locale   LocaleConfig   `split_words:"true"`
	Logging  LoggingConfig  `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// UpstreamConfig holds the data.gov.sg environment endpoints and the static
// request header set.
type UpstreamConfig struct {
	TwoHourForecastURL        string `envconfig:"NEA_TWO_HOUR_FORECAST_URL" default:"https://api.data.gov.sg/v1/environment/2-hour-weather-forecast"`
	TwentyFourHourForecastURL string `envconfig:"NEA_TWENTY_FOUR_HOUR_FORECAST_URL" default:"https://api.data.gov.sg/v1/environment/24-hour-weather-forecast"`
	FourDayOutlookURL         string `envconfig:"NEA_FOUR_DAY_OUTLOOK_URL" default:"https://api.data.gov.sg/v1/environment/4-day-weather-forecast"`
	PSIURL                    string `envconfig:"NEA_PSI_URL" default:"https://api.data.gov.sg/v1/environment/psi"`
	UVIndexURL                string `envconfig:"NEA_UV_INDEX_URL" default:"https://api.data.gov.sg/v1/environment/uv-index"`
	RequestTimeoutSeconds     int    `envconfig:"NEA_REQUEST_TIMEOUT_SECONDS" default:"10"`
	UserAgent                 string `envconfig:"NEA_USER_AGENT" default:"Mozilla/5.0"`
	EnableLogging             bool   `envconfig:"NEA_ENABLE_LOGGING" default:"true"`
	EnableMetrics             bool   `envconfig:"NEA_ENABLE_METRICS" default:"true"`
}

// Timeout returns the per-request upstream timeout.
func (u UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.RequestTimeoutSeconds) * time.Second
}

type LocaleConfig struct {
	UTCOffsetHours int `envconfig:"LOCALE_UTC_OFFSET_HOURS" default:"8"`
}

// Location returns the fixed zone all "now" values are taken in.
func (l LocaleConfig) Location() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", l.UTCOffsetHours), l.UTCOffsetHours*int(time.Hour/time.Second))
}

type LoggingConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	ToFile   bool   `envconfig:"LOG_TO_FILE" default:"false"`
	FilePath string `envconfig:"LOG_FILE_PATH" default:"logs/upstream.log"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Upstream.Validate(); err != nil {
		return err
	}
	if err := c.Locale.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (u *UpstreamConfig) Validate() error {
	endpoints := []struct {
		name  string
		value string
	}{
		{"NEA_TWO_HOUR_FORECAST_URL", u.TwoHourForecastURL},
		{"NEA_TWENTY_FOUR_HOUR_FORECAST_URL", u.TwentyFourHourForecastURL},
		{"NEA_FOUR_DAY_OUTLOOK_URL", u.FourDayOutlookURL},
		{"NEA_PSI_URL", u.PSIURL},
		{"NEA_UV_INDEX_URL", u.UVIndexURL},
	}
	for _, e := range endpoints {
		if err := validateEndpoint(e.name, e.value); err != nil {
			return err
		}
	}

	if u.RequestTimeoutSeconds < 1 || u.RequestTimeoutSeconds > maxRequestTimeoutSecs {
		return errors.NewConfigurationError("NEA_REQUEST_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	if strings.TrimSpace(u.UserAgent) == "" {
		return errors.NewConfigurationError("NEA_USER_AGENT cannot be empty", nil)
	}
	return nil
}

func validateEndpoint(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(fmt.Sprintf("%s cannot be empty", name), nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(fmt.Sprintf("%s must start with http:// or https://", name), nil)
	}
	if _, err := url.Parse(value); err != nil {
		return errors.NewConfigurationError(fmt.Sprintf("%s is not a valid URL", name), err)
	}
	return nil
}

func (l *LocaleConfig) Validate() error {
	if l.UTCOffsetHours < minUTCOffsetHours || l.UTCOffsetHours > maxUTCOffsetHours {
		return errors.NewConfigurationError("LOCALE_UTC_OFFSET_HOURS must be between -12 and 14", nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	validLevels := []string{"debug", "info", "warn", "error"}
	level := strings.ToLower(l.Level)
	valid := false
	for _, v := range validLevels {
		if level == v {
			valid = true
			break
		}
	}
	if !valid {
		return errors.NewConfigurationError(
			fmt.Sprintf("LOG_LEVEL must be one of: %s", strings.Join(validLevels, ", ")), nil)
	}
	if l.ToFile && l.FilePath == "" {
		return errors.NewConfigurationError("LOG_FILE_PATH cannot be empty when LOG_TO_FILE is set", nil)
	}
	return nil
}
