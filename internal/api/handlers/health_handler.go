package handlers

import (
	"net/http"
	"time"

	"github.com/accessihire/backend/internal/api/types"
)

type HealthHandler struct {
	env string
}

func NewHealthHandler(env string) *HealthHandler {
	return &HealthHandler{env: env}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.HealthResponse{
		Status:      types.StatusSuccess,
		Message:     "AI Job Accessibility API is running",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.env,
	})
}
