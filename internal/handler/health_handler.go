package handler

import (
	"context"

	"github.com/AnnaAaBrekke/PE2-holidaze/pkg/response"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	appName string
	version string
	checks  map[string]func(context.Context) error
}

// NewHealthHandler builds the liveness/readiness endpoints. Each named check
// is probed by Ready; Health never probes anything.
func NewHealthHandler(appName, version string, checks map[string]func(context.Context) error) *HealthHandler {
	return &HealthHandler{appName: appName, version: version, checks: checks}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "ok",
		"service": h.appName,
		"version": h.version,
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	results := gin.H{}
	healthy := true
	for name, check := range h.checks {
		if err := check(c.Request.Context()); err != nil {
			results[name] = err.Error()
			healthy = false
		} else {
			results[name] = "ok"
		}
	}

	if !healthy {
		response.Error(c, 503, "NOT_READY", "One or more dependencies are unavailable", "")
		return
	}
	response.Success(c, gin.H{"status": "ready", "checks": results})
}
