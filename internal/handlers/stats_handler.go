package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/horizontrails/agency-backoffice/internal/services"
)

// StatsHandler serves the admin dashboard
type StatsHandler struct {
	stats *services.StatsService
	errorResponder
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats *services.StatsService, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		stats:          stats,
		errorResponder: errorResponder{logger: logger, entity: "Stats"},
	}
}

// Dashboard handles GET /api/v1/admin/stats
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respond(c, http.StatusOK, stats, "")
}
