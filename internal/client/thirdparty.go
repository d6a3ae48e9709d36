// Package client holds outbound HTTP clients for collaborating services.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxResponseBytes = 4 << 10

// ThirdPartyClient calls the external service consulted during owner reads.
// The call is observability-only; callers must never let it affect the
// primary request.
type ThirdPartyClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewThirdPartyClient creates a client for the given base URL.
func NewThirdPartyClient(baseURL string) *ThirdPartyClient {
	return &ThirdPartyClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// FetchExternal performs the observability call and returns the raw
// response body.
func (c *ThirdPartyClient) FetchExternal(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/external", nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("external service call failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read external response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("external service returned status %d", resp.StatusCode)
	}
	return string(body), nil
}
