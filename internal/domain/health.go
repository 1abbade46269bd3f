package domain

import "time"

// HealthStatusOK is the only status reported by the health endpoint.
const HealthStatusOK = "ok"

// HealthResponse reports that the service is up.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}
