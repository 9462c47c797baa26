package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/accessihire/backend/internal/api/middleware"
	"github.com/accessihire/backend/internal/api/types"
	"github.com/accessihire/backend/internal/models"
	"github.com/accessihire/backend/internal/services"
)

type AuthHandler struct {
	auth     services.AuthService
	validate interface{ Struct(any) error }
	env      string
}

func NewAuthHandler(auth services.AuthService, v interface{ Struct(any) error }, env string) *AuthHandler {
	return &AuthHandler{auth: auth, validate: v, env: env}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	token, user, err := h.auth.Register(r.Context(), &services.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		DisabilityType: req.DisabilityType,
		Phone:          req.Phone,
		Role:           req.Role,
	})
	if err != nil {
		writeError(w, err, h.env)
		return
	}

	writeJSON(w, http.StatusOK, authResponse(token, user))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err, h.env)
		return
	}

	writeJSON(w, http.StatusOK, authResponse(token, user))
}

// Me returns the full profile of the authenticated user. The password hash
// is excluded by the model's json tag.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	user, err := h.auth.CurrentUser(r.Context(), userID)
	if err != nil {
		writeError(w, err, h.env)
		return
	}
	writeJSON(w, http.StatusOK, types.Envelope{Status: types.StatusSuccess, Data: user})
}

func authResponse(token string, user *models.User) types.AuthResponse {
	return types.AuthResponse{
		Status: types.StatusSuccess,
		Token:  token,
		User:   types.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email},
	}
}
