package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReportQuery struct {
	Query string `form:"query" binding:"required,max=500"`
}

// getReport handles GET /api/report requests
func (s *HTTPServerAdapter) getReport(c *gin.Context) {
	var query ReportQuery
	if err := bindQuery(c, &query); err != nil {
		s.handleError(c, err)
		return
	}

	result := s.reports.Build(c.Request.Context(), query.Query)
	slog.Debug("Report built",
		"report_id", result.ID,
		"region", result.Region,
		"weather_source", result.WeatherSource,
		"request_id", c.GetString(requestIDKey))

	c.JSON(http.StatusOK, result)
}
