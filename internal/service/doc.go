// Package service contains the application use cases exposed by the API.
//
// Both services are stateless and safe for concurrent use:
//
//   - MathService performs checked 32-bit addition and reports overflow as a
//     domain.ValidationError.
//   - HealthService reports liveness with the current UTC time.
//
// Services return explicit errors; the API layer maps them to HTTP status
// codes with errors.Is/errors.As.
package service
