package types

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	appErr "github.com/accessihire/backend/pkg/errors"
)

func TestStatusForCode(t *testing.T) {
	cases := []struct {
		code appErr.Code
		want int
	}{
		{appErr.CodeInvalid, http.StatusBadRequest},
		{appErr.CodeConflict, http.StatusBadRequest},
		{appErr.CodeUnauthorized, http.StatusUnauthorized},
		{appErr.CodeForbidden, http.StatusForbidden},
		{appErr.CodeNotFound, http.StatusNotFound},
		{appErr.CodeUnavailable, http.StatusServiceUnavailable},
		{appErr.CodeUpstream, http.StatusBadGateway},
		{appErr.CodeInternal, http.StatusInternalServerError},
		{appErr.CodeUnknown, http.StatusInternalServerError},
	}
	for _, c := range cases {
		require.Equal(t, c.want, StatusForCode(c.code), "code %s", c.code)
	}
}

func TestErrorEnvelopeKeepsDetailOutsideProduction(t *testing.T) {
	err := appErr.New(appErr.CodeUpstream, "upstream said: quota exceeded")
	status, env := ErrorEnvelope(err, "development")
	require.Equal(t, http.StatusBadGateway, status)
	require.Equal(t, StatusError, env.Status)
	require.Equal(t, "upstream said: quota exceeded", env.Message)
}

func TestErrorEnvelopeRedactsInProduction(t *testing.T) {
	status, env := ErrorEnvelope(appErr.New(appErr.CodeUpstream, "upstream said: quota exceeded"), "production")
	require.Equal(t, http.StatusBadGateway, status)
	require.Equal(t, "Upstream request failed", env.Message)

	status, env = ErrorEnvelope(appErr.New(appErr.CodeInternal, "pq: connection refused"), "production")
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "Internal server error", env.Message)
}

func TestErrorEnvelopeDomainMessagesSurviveProduction(t *testing.T) {
	_, env := ErrorEnvelope(appErr.New(appErr.CodeNotFound, "Resume not found"), "production")
	require.Equal(t, "Resume not found", env.Message)
}
