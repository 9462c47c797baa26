package types

import (
	"errors"
	"net/http"

	appErr "github.com/accessihire/backend/pkg/errors"
)

// StatusForCode maps an error code to the HTTP status the boundary returns.
// Conflict maps to 400 rather than 409: the original API contract promised
// 400 for the duplicate-email case and clients depend on it.
func StatusForCode(code appErr.Code) int {
	switch code {
	case appErr.CodeInvalid, appErr.CodeConflict:
		return http.StatusBadRequest
	case appErr.CodeUnauthorized:
		return http.StatusUnauthorized
	case appErr.CodeForbidden:
		return http.StatusForbidden
	case appErr.CodeNotFound:
		return http.StatusNotFound
	case appErr.CodeUnavailable:
		return http.StatusServiceUnavailable
	case appErr.CodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorEnvelope translates a failure into the status code and error envelope
// for the client. In production, upstream and internal detail is replaced
// with a generic message so nothing internal leaks.
func ErrorEnvelope(err error, env string) (int, Envelope) {
	code := appErr.CodeOf(err)
	status := StatusForCode(code)

	message := err.Error()
	var ae *appErr.AppError
	if errors.As(err, &ae) {
		message = ae.Message
	}

	if env == "production" {
		switch code {
		case appErr.CodeUpstream:
			message = "Upstream request failed"
		case appErr.CodeInternal, appErr.CodeUnknown:
			message = "Internal server error"
		}
	}

	return status, Envelope{Status: StatusError, Message: message}
}
