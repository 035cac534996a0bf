package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"steadyday.app/internal/core/region"
)

type ResolveQuery struct {
	Location string `form:"location" binding:"required,location"`
}

// ResolveResponse represents the HTTP response for a region lookup
type ResolveResponse struct {
	Location   string `json:"location"`
	Normalized string `json:"normalized"`
	Region     string `json:"region"`
	Found      bool   `json:"found"`
}

// resolveRegion handles GET /api/regions/resolve requests
func (s *HTTPServerAdapter) resolveRegion(c *gin.Context) {
	var query ResolveQuery
	if err := bindQuery(c, &query); err != nil {
		s.handleError(c, err)
		return
	}

	name, found := s.resolver.Resolve(query.Location)
	c.JSON(http.StatusOK, ResolveResponse{
		Location:   query.Location,
		Normalized: region.Normalize(query.Location),
		Region:     name,
		Found:      found,
	})
}
