package service

import (
	"time"

	"github.com/devsecops-demo/api/internal/domain"
)

// HealthService reports the liveness of the API.
type HealthService interface {
	GetHealth() *domain.HealthResponse
}

// HealthOption customizes a HealthService.
type HealthOption func(*healthServiceImpl)

// WithClock overrides the time source used for the health timestamp.
func WithClock(now func() time.Time) HealthOption {
	return func(s *healthServiceImpl) {
		s.now = now
	}
}

type healthServiceImpl struct {
	message string
	now     func() time.Time
}

// NewHealthService creates a HealthService that reports serviceName as running.
func NewHealthService(serviceName string, opts ...HealthOption) HealthService {
	s := &healthServiceImpl{
		message: serviceName + " is running successfully",
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetHealth implements HealthService.
func (s *healthServiceImpl) GetHealth() *domain.HealthResponse {
	return &domain.HealthResponse{
		Status:    domain.HealthStatusOK,
		Timestamp: s.now().UTC(),
		Message:   s.message,
	}
}
