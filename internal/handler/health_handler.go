package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jurisflow/internal/domain"
	"jurisflow/internal/service"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	healthService service.HealthService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(healthService service.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if !h.healthService.Ready(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Health handles GET /health. Status is degraded unless the cache answers
// and a text generator is configured.
func (h *HealthHandler) Health(c *gin.Context) {
	services := h.healthService.Check(c.Request.Context())
	status := service.StatusHealthy
	if !services["cache"] || !services["text_generation"] {
		status = service.StatusDegraded
	}
	RespondOK(c, domain.HealthStatus{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Services:  services,
	})
}
