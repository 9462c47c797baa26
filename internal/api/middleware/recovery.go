package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/accessihire/backend/internal/api/types"
	"github.com/accessihire/backend/pkg/logger"
	"go.uber.org/zap"
)

// Recovery logs panics and returns 500 with a generic message.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.L().Error("panic recovered",
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
					zap.String("request_id", GetRequestID(r.Context())),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(types.Envelope{
					Status:  types.StatusError,
					Message: "Something went wrong!",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
