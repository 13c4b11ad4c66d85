package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	modelConfigured bool
}

// NewHealthHandler creates a new HealthHandler. modelConfigured reports
// whether a model API key is present.
func NewHealthHandler(modelConfigured bool) *HealthHandler {
	return &HealthHandler{modelConfigured: modelConfigured}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if !h.modelConfigured {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Error: "model api key not configured"})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
