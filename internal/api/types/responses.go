package types

import "github.com/google/uuid"

// Status values used by every response envelope.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the uniform {status, data|message} response wrapper.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// UserSummary is the minimal public projection returned by register/login.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// AuthResponse is the register/login success shape: token at the top level
// next to the user projection.
type AuthResponse struct {
	Status string      `json:"status"`
	Token  string      `json:"token"`
	User   UserSummary `json:"user"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}
