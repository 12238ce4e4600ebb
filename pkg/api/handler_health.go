package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/exegete-ai/exegete/pkg/database"
)

// Health handles GET /health. The overall status is degraded rather than
// failing whenever the database answers but the pool reports trouble, so
// load balancers keep routing read traffic.
func (s *Server) Health(c *gin.Context) {
	dbHealth, dbErr := database.Health(c.Request.Context(), s.db.DB())

	doc := gin.H{
		"database": dbHealth,
	}

	status := http.StatusOK
	overall := "healthy"
	if dbErr != nil {
		overall = "unhealthy"
		status = http.StatusServiceUnavailable
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		doc["queue"] = poolHealth
		if dbErr == nil && !poolHealth.IsHealthy {
			overall = "degraded"
		}
	}

	doc["status"] = overall
	doc["llm_configured"] = s.planner != nil
	c.JSON(status, doc)
}
