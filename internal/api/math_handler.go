package api

import (
	"fmt"
	"net/http"

	"github.com/devsecops-demo/api/internal/api/shared"
	"github.com/devsecops-demo/api/internal/domain"
	"github.com/devsecops-demo/api/internal/platform/logger"
	"github.com/devsecops-demo/api/internal/service"
)

// MathHandler serves the arithmetic endpoints.
type MathHandler struct {
	mathService service.MathService
}

// NewMathHandler creates a new MathHandler.
func NewMathHandler(mathService service.MathService) *MathHandler {
	return &MathHandler{mathService: mathService}
}

// Sum handles POST /api/suma requests.
func (h *MathHandler) Sum(r *http.Request) (int, any, error) {
	var req domain.SumaRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return 0, nil, err
	}

	resp, err := h.mathService.Sum(&req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to sum %d and %d: %w", req.A, req.B, err)
	}

	logger.FromContextOrDefault(r.Context(), nil).Debug("sum computed",
		"a", resp.A,
		"b", resp.B,
		"resultado", resp.Resultado)

	return http.StatusOK, resp, nil
}
