package service

import (
	"fmt"
	"math"

	"github.com/devsecops-demo/api/internal/domain"
)

// Messages carried by the validation errors returned from Sum.
const (
	msgNilRequest = "request cannot be null"
	msgOverflow   = "sum of %d + %d produces an overflow"
)

// MathService defines the arithmetic operations available to the API.
type MathService interface {
	// Sum adds A and B. It returns a *domain.ValidationError when req is nil
	// or the result does not fit in an int32.
	Sum(req *domain.SumaRequest) (*domain.SumaResponse, error)
}

type mathServiceImpl struct{}

// NewMathService creates a new MathService.
func NewMathService() MathService {
	return &mathServiceImpl{}
}

// Sum implements MathService.
func (s *mathServiceImpl) Sum(req *domain.SumaRequest) (*domain.SumaResponse, error) {
	if req == nil {
		return nil, domain.NewValidationError(msgNilRequest)
	}

	result, ok := addInt32(req.A, req.B)
	if !ok {
		return nil, domain.NewValidationError(fmt.Sprintf(msgOverflow, req.A, req.B))
	}

	return &domain.SumaResponse{
		A:         req.A,
		B:         req.B,
		Resultado: result,
		Operacion: domain.OperationSum,
	}, nil
}

// addInt32 returns a+b and false if the sum falls outside the int32 range.
func addInt32(a, b int32) (int32, bool) {
	sum := int64(a) + int64(b)
	if sum > math.MaxInt32 || sum < math.MinInt32 {
		return 0, false
	}
	return int32(sum), true
}
