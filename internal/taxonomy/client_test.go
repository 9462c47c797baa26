package taxonomy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	appErr "github.com/accessihire/backend/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestForwardPassesQueryAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/skills/autocomplete", r.URL.Path)
		require.Equal(t, "react", r.URL.Query().Get("contains"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"uuid":"abc","suggestion":"react"}]`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 2*time.Second)
	body, err := c.Forward(context.Background(), "/skills/autocomplete", url.Values{"contains": {"react"}})
	require.NoError(t, err)

	list, ok := body.([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
}

func TestForwardNon2xxIsUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no such skill"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 2*time.Second)
	_, err := c.Forward(context.Background(), "/skills/nope", nil)
	require.True(t, appErr.IsCode(err, appErr.CodeUpstream))
	require.Contains(t, err.Error(), "no such skill")
}

func TestForwardTransportErrorIsUpstreamError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", time.Second)
	_, err := c.Forward(context.Background(), "/skills", nil)
	require.True(t, appErr.IsCode(err, appErr.CodeUpstream))
}
