package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClient downloads resources over HTTP(S).
type HTTPClient interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// HTTPStatusError is returned for non-2xx responses.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// LocalHTTPClient is the net/http backed HTTPClient.
type LocalHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewLocalHTTPClient constructs a client identifying itself with userAgent.
func NewLocalHTTPClient(userAgent string, timeout time.Duration) *LocalHTTPClient {
	return &LocalHTTPClient{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Get fetches url and returns the body of a 2xx response.
func (c *LocalHTTPClient) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPStatusError{URL: url, StatusCode: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}
