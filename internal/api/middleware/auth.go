package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/accessihire/backend/internal/api/types"
	"github.com/accessihire/backend/internal/auth"
	"github.com/accessihire/backend/internal/models"
	"github.com/accessihire/backend/internal/repository"
	"github.com/google/uuid"
)

type userKeyType string

const UserIDKey userKeyType = "user_id"

// Auth validates a Bearer token, loads the account behind it, and puts the
// user id in the request context. Requests with missing, invalid, or expired
// tokens are rejected, as are tokens for deleted or deactivated accounts.
func Auth(tokens *auth.TokenManager, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := r.Header.Get("Authorization")
			if !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				unauthorized(w, "Access denied. No token provided.")
				return
			}
			tokenStr := strings.TrimSpace(ah[len("Bearer "):])
			userID, err := tokens.Verify(tokenStr)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					unauthorized(w, "Token expired. Please login again.")
					return
				}
				unauthorized(w, "Invalid token.")
				return
			}

			var user models.User
			if err := users.GetByID(r.Context(), userID, &user); err != nil {
				unauthorized(w, "Invalid token. User not found.")
				return
			}
			if !user.IsActive {
				unauthorized(w, "User account is inactive.")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID returns the authenticated user's id from context, or uuid.Nil
// when the request did not pass through Auth.
func GetUserID(ctx context.Context) uuid.UUID {
	if v := ctx.Value(UserIDKey); v != nil {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(types.Envelope{
		Status:  types.StatusError,
		Message: message,
	})
}
