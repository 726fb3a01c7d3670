package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxBodySize caps every download; article pages and images above it are
// treated as failures.
const maxBodySize = 20 << 20

var ErrUnexpectedContentType = errors.New("unexpected content type")

// Client performs single-shot GET requests with a per-request timeout and a
// fixed user agent. There are no retries.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

func NewClient(httpClient *http.Client, userAgent string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		userAgent:  userAgent,
	}
}

// Get downloads url within timeout. Any 2xx status is accepted. When
// contentType is non-empty, a declared response Content-Type must contain it;
// a response without one is accepted.
func (c *Client) Get(ctx context.Context, url string, timeout time.Duration, contentType string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	if got := resp.Header.Get("Content-Type"); contentType != "" && got != "" {
		if !strings.Contains(strings.ToLower(got), contentType) {
			return nil, fmt.Errorf("%w: %s", ErrUnexpectedContentType, got)
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(data) > maxBodySize {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxBodySize)
	}

	return data, nil
}
