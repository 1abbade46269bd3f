package api

import (
	"net/http"

	"github.com/devsecops-demo/api/internal/service"
)

// HealthHandler serves the health check endpoint.
type HealthHandler struct {
	healthService service.HealthService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(healthService service.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// GetHealth handles GET /api/health requests.
func (h *HealthHandler) GetHealth(r *http.Request) (int, any, error) {
	return http.StatusOK, h.healthService.GetHealth(), nil
}
