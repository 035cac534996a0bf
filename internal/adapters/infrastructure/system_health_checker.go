package infrastructure

import (
	"context"

	"steadyday.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	upstreamChecker ports.HealthChecker
	regionChecker   ports.HealthChecker
	configProvider  ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	UpstreamChecker ports.HealthChecker
	RegionChecker   ports.HealthChecker
	ConfigProvider  ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		upstreamChecker: config.UpstreamChecker,
		regionChecker:   config.RegionChecker,
		configProvider:  config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.upstreamChecker != nil {
		results["upstream"] = s.upstreamChecker.Check(ctx)
	}

	if s.regionChecker != nil {
		results["regions"] = s.regionChecker.Check(ctx)
	}

	if s.configProvider != nil {
		locale := s.configProvider.GetLocaleConfig()
		logging := s.configProvider.GetLoggingConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    "healthy",
			Details: map[string]interface{}{
				"timezone": locale.Location.String(),
				"logLevel": logging.Level,
			},
		}
	}

	return results
}
