package dto

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a bare success envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service availability.
type HealthResponse struct {
	Status string `json:"status"`
}
