package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/accessihire/backend/internal/api/types"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error, env string) {
	status, envelope := types.ErrorEnvelope(err, env)
	writeJSON(w, status, envelope)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, types.Envelope{Status: types.StatusError, Message: message})
}
