package httpclient

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// StatusError is returned when the upstream responds with a non-2xx
// status that is not worth retrying (or retries ran out).
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Status)
}

// Client is an HTTP client with retry and backoff support. Retry policy
// lives here, not in callers: the mood core issues a single logical call
// and treats whatever comes back as final.
type Client struct {
	httpClient *http.Client
	retries    int
	retryDelay time.Duration
}

// NewClient creates a client with the default retry policy.
func NewClient() *Client {
	return NewClientWithRetry(3, 1*time.Second)
}

// NewClientWithRetry creates a client with an explicit retry policy.
func NewClientWithRetry(retries int, retryDelay time.Duration) *Client {
	if retries < 1 {
		retries = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		retries:    retries,
		retryDelay: retryDelay,
	}
}

// Get fetches targetURL with the given headers, retrying transport
// failures, rate limits and 5xx responses with exponential backoff.
// Other non-2xx statuses return a *StatusError immediately.
func (c *Client) Get(ctx context.Context, targetURL string, header http.Header) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= c.retries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
		if err != nil {
			return nil, err
		}
		for k, vs := range header {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			log.Warn().
				Int("attempt", attempt).
				Err(err).
				Str("url", targetURL).
				Msg("Request failed")

			if attempt < c.retries {
				c.backoff(attempt)
			}
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = &StatusError{Code: resp.StatusCode, Status: resp.Status}
			log.Warn().
				Int("attempt", attempt).
				Int("status", resp.StatusCode).
				Str("url", targetURL).
				Msg("Retryable upstream status")

			if attempt < c.retries {
				c.backoff(attempt)
			}
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		return body, nil
	}

	return nil, fmt.Errorf("all retries failed: %w", lastErr)
}

func (c *Client) backoff(attempt int) {
	time.Sleep(c.retryDelay * time.Duration(math.Pow(2, float64(attempt-1))))
}
