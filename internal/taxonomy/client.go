package taxonomy

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	appErr "github.com/accessihire/backend/pkg/errors"
)

// Client forwards skill/job vocabulary lookups to the external taxonomy API.
// A pure pass-through: no caching, no retries, no rate limiting.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Forward issues a GET to base+path with the given query parameters and
// returns the decoded JSON body as-is. Any transport failure or non-2xx
// status surfaces as an upstream error.
func (c *Client) Forward(ctx context.Context, path string, query url.Values) (any, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "build taxonomy request failed")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeUpstream, "Upstream request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeUpstream, "Upstream request failed")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := upstreamMessage(raw)
		return nil, appErr.New(appErr.CodeUpstream, msg).WithMeta("status", resp.StatusCode)
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, appErr.Wrap(err, appErr.CodeUpstream, "Upstream returned an unreadable response")
	}
	return body, nil
}

// upstreamMessage pulls a message field out of an upstream error body when
// one is present.
func upstreamMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return "Upstream request failed"
}
