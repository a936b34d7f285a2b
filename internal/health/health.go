// Package health provides the node connectivity probe and the backend
// health endpoint that reports it.
package health

// StatusOK is the constant process status reported by the health endpoint.
const StatusOK = "ok"

// HealthResponse is the JSON body of GET /api/health.
type HealthResponse struct {
	Status          string `json:"status"`
	AptosConnection bool   `json:"aptosConnection"`
}
