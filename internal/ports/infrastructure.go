package ports

import (
	"time"
)

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// UpstreamConfig represents the upstream provider configuration
type UpstreamConfig struct {
	TwoHourForecastURL        string
	TwentyFourHourForecastURL string
	FourDayOutlookURL         string
	PSIURL                    string
	UVIndexURL                string
	Timeout                   time.Duration
	Headers                   map[string]string
	EnableLogging             bool
	EnableMetrics             bool
}

// LocaleConfig represents the time zone the application reasons in
type LocaleConfig struct {
	Location *time.Location
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level    string
	ToFile   bool
	FilePath string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetServerConfig() ServerConfig
	GetUpstreamConfig() UpstreamConfig
	GetLocaleConfig() LocaleConfig
	GetLoggingConfig() LoggingConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsRecorder defines the contract for upstream and operation metrics
type MetricsRecorder interface {
	RecordUpstreamCall(endpoint string, success bool, duration time.Duration)
	RecordOperationResult(operation string, outcome string)
}

// MetricsSnapshot is a point-in-time view of the recorded counters
type MetricsSnapshot struct {
	UpstreamCalls    map[string]int64 `json:"upstream_calls"`
	UpstreamFailures map[string]int64 `json:"upstream_failures"`
	Outcomes         map[string]int64 `json:"operation_outcomes"`
	LastUpdated      time.Time        `json:"last_updated"`
}

// MetricsReporter exposes recorded metrics for the API
type MetricsReporter interface {
	Snapshot() MetricsSnapshot
}
