package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is anything whose liveness can be probed
type Pinger interface {
	PingContext(ctx context.Context) error
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

// HealthHandler reports database and cache liveness
type HealthHandler struct {
	db      Pinger
	cache   Pinger
	version string
}

// NewHealthHandler creates a new health handler. cachePing may be nil when no cache is configured.
func NewHealthHandler(db Pinger, cachePing func(ctx context.Context) error, version string) *HealthHandler {
	h := &HealthHandler{db: db, version: version}
	if cachePing != nil {
		h.cache = pingFunc(cachePing)
	}
	return h
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success":  false,
			"status":   "unhealthy",
			"database": "unhealthy",
			"message":  err.Error(),
		})
		return
	}

	body := gin.H{
		"success":   true,
		"status":    "healthy",
		"database":  "healthy",
		"version":   h.version,
		"timestamp": time.Now().Unix(),
	}

	if h.cache != nil {
		// the cache is optional; a failing cache degrades but does not fail the check
		if err := h.cache.PingContext(ctx); err != nil {
			body["cache"] = "unhealthy"
			body["status"] = "degraded"
		} else {
			body["cache"] = "healthy"
		}
	}

	c.JSON(http.StatusOK, body)
}
