// ABOUTME: Health check response DTO
// ABOUTME: Reports service liveness to callers

package responses

// HealthResponse is the response for the health check endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
