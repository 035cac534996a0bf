package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"steadyday.app/internal/core/environment"
	"steadyday.app/pkg/errors"
	"steadyday.app/pkg/validation"
)

// TwoHourQuery holds the parameters of GET /api/weather/two-hour
type TwoHourQuery struct {
	Region   string `form:"region" binding:"omitempty,location"`
	DateTime string `form:"date_time"`
}

type PSIQuery struct {
	Region string `form:"region" binding:"required,location"`
}

type DengueQuery struct {
	Query string `form:"query" binding:"max=500"`
}

// getTwoHourForecast handles GET /api/weather/two-hour requests
func (s *HTTPServerAdapter) getTwoHourForecast(c *gin.Context) {
	var query TwoHourQuery
	if err := bindQuery(c, &query); err != nil {
		s.handleError(c, err)
		return
	}

	request := environment.TwoHourRequest{Region: query.Region}
	if query.DateTime != "" {
		at, ok := validation.ParseDateTime(query.DateTime, s.location)
		if !ok {
			s.handleError(c, errors.NewValidationError("date_time parameter must use the format YYYY-MM-DDTHH:MM:SS"))
			return
		}
		request.At = &at
	}

	slog.Debug("Getting 2-hour forecast", "region", request.TargetRegion(), "request_id", c.GetString(requestIDKey))
	c.JSON(http.StatusOK, s.environment.TwoHourForecast(c.Request.Context(), request))
}

// getTwentyFourHourForecast handles GET /api/weather/twenty-four-hour requests
func (s *HTTPServerAdapter) getTwentyFourHourForecast(c *gin.Context) {
	c.JSON(http.StatusOK, s.environment.TwentyFourHourForecast(c.Request.Context()))
}

// getFourDayOutlook handles GET /api/weather/four-day requests
func (s *HTTPServerAdapter) getFourDayOutlook(c *gin.Context) {
	c.JSON(http.StatusOK, s.environment.FourDayOutlook(c.Request.Context()))
}

// getPSI handles GET /api/air-quality/psi requests
func (s *HTTPServerAdapter) getPSI(c *gin.Context) {
	var query PSIQuery
	if err := bindQuery(c, &query); err != nil {
		s.handleError(c, err)
		return
	}

	slog.Debug("Getting PSI", "region", query.Region, "request_id", c.GetString(requestIDKey))
	c.JSON(http.StatusOK, s.environment.PSI(c.Request.Context(), query.Region))
}

// getUVIndex handles GET /api/uv-index requests
func (s *HTTPServerAdapter) getUVIndex(c *gin.Context) {
	c.JSON(http.StatusOK, s.environment.UVIndex(c.Request.Context()))
}

// getDengueClusters handles GET /api/dengue requests
func (s *HTTPServerAdapter) getDengueClusters(c *gin.Context) {
	var query DengueQuery
	if err := bindQuery(c, &query); err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.environment.DengueClusters(c.Request.Context(), query.Query))
}
