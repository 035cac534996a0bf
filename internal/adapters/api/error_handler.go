package api

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"steadyday.app/internal/ports"
	errorspkg "steadyday.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents the aggregated health of the service
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	var statusCode int
	var message string

	if !errors.As(err, &appErr) {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
		c.JSON(statusCode, ErrorResponse{Error: message})
		return
	}

	switch appErr.Type {
	case errorspkg.ErrorTypeValidation:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.ErrorTypeNotFound:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.ErrorTypeExternalAPI, errorspkg.ErrorTypeMalformedResponse:
		statusCode = http.StatusServiceUnavailable
		message = "External service unavailable"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	slog.Debug("Metrics endpoint called")
	c.JSON(http.StatusOK, s.metricsReporter.Snapshot())
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	status := "healthy"
	statusCode := http.StatusOK
	for name, component := range components {
		if component.Status != "healthy" {
			slog.Warn("Component unhealthy", "component", name, "error", component.Error)
			status = "unhealthy"
			statusCode = http.StatusServiceUnavailable
		}
	}

	c.JSON(statusCode, HealthResponse{Status: status, Components: components})
}
