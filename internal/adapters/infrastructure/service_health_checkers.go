package infrastructure

import (
	"context"

	"steadyday.app/internal/ports"
)

// UpstreamHealthChecker reports the configured data.gov.sg endpoints.
// It does not call upstream; a failing upstream degrades responses, not health.
type UpstreamHealthChecker struct {
	config ports.UpstreamConfig
}

// NewUpstreamHealthChecker creates a new upstream health checker
func NewUpstreamHealthChecker(config ports.UpstreamConfig) *UpstreamHealthChecker {
	return &UpstreamHealthChecker{config: config}
}

// Check verifies every upstream endpoint is configured
func (u *UpstreamHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	endpoints := map[string]string{
		"twoHourForecast":        u.config.TwoHourForecastURL,
		"twentyFourHourForecast": u.config.TwentyFourHourForecastURL,
		"fourDayOutlook":         u.config.FourDayOutlookURL,
		"psi":                    u.config.PSIURL,
		"uvIndex":                u.config.UVIndexURL,
	}

	status := ports.HealthStatus{
		Component: "upstream",
		Status:    "healthy",
		Details: map[string]interface{}{
			"timeout": u.config.Timeout.String(),
		},
	}

	for name, url := range endpoints {
		status.Details[name] = url
		if url == "" {
			status.Status = "unhealthy"
			status.Error = name + " endpoint is not configured"
		}
	}

	return status
}

// RegionTable is the part of the region resolver the health check needs
type RegionTable interface {
	Len() int
	Regions() []string
}

// RegionTableHealthChecker reports whether the area-to-region table is loaded
type RegionTableHealthChecker struct {
	table RegionTable
}

// NewRegionTableHealthChecker creates a new region table health checker
func NewRegionTableHealthChecker(table RegionTable) *RegionTableHealthChecker {
	return &RegionTableHealthChecker{table: table}
}

// Check verifies the region table holds at least one area
func (r *RegionTableHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "regions",
		Status:    "healthy",
		Details:   map[string]interface{}{},
	}

	if r.table == nil || r.table.Len() == 0 {
		status.Status = "unhealthy"
		status.Error = "region table is empty"
		status.Details["areas"] = 0
		return status
	}

	status.Details["areas"] = r.table.Len()
	status.Details["regions"] = r.table.Regions()
	return status
}
