package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader carries the client-generated ID of each attempt.
const RequestIDHeader = "X-Request-Id"

// APIError represents an error from the Upwork API.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upwork api error %d: %s", e.StatusCode, e.Message)
}

// IsRetryable returns true if the error should trigger a retry.
func (e *APIError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// Get performs a GET request. Params are sent as the query string.
func (c *Client) Get(ctx context.Context, entryPoint, path string, params url.Values) (*Response, error) {
	return c.doWithRetry(ctx, http.MethodGet, entryPoint, path, params)
}

// Post performs a form-encoded POST request. POST is never retried.
func (c *Client) Post(ctx context.Context, entryPoint, path string, params url.Values) (*Response, error) {
	return c.doRequest(ctx, http.MethodPost, entryPoint, path, params)
}

// Put performs a form-encoded PUT request.
func (c *Client) Put(ctx context.Context, entryPoint, path string, params url.Values) (*Response, error) {
	return c.doWithRetry(ctx, http.MethodPut, entryPoint, path, params)
}

// buildURL joins the base URL, entry point, path and format suffix.
func (c *Client) buildURL(entryPoint, path string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(c.baseURL, "/"))
	if ep := strings.Trim(entryPoint, "/"); ep != "" {
		b.WriteString("/")
		b.WriteString(ep)
	}
	if !strings.HasPrefix(path, "/") {
		b.WriteString("/")
	}
	b.WriteString(path)
	if c.format != "" {
		b.WriteString(".")
		b.WriteString(c.format)
	}
	return b.String()
}

// doRequest performs a single HTTP request with the given method and path.
func (c *Client) doRequest(ctx context.Context, method, entryPoint, path string, params url.Values) (*Response, error) {
	fullURL := c.buildURL(entryPoint, path)

	var body io.Reader
	target := fullURL
	if method == http.MethodGet || method == http.MethodDelete {
		if len(params) > 0 {
			target += "?" + params.Encode()
		}
	} else {
		body = strings.NewReader(params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if c.signer != nil {
		authz, err := c.signer.Sign(method, fullURL, params)
		if err != nil {
			return nil, fmt.Errorf("sign request: %w", err)
		}
		req.Header.Set("Authorization", authz)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       respBody,
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		RequestID:  requestID,
	}, nil
}

// doWithRetry performs a request with exponential backoff retry.
func (c *Client) doWithRetry(ctx context.Context, method, entryPoint, path string, params url.Values) (*Response, error) {
	var lastErr error
	backoff := c.retryBackoff

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// Add jitter: backoff * (0.5 to 1.5)
			jitter := backoff/2 + time.Duration(rand.Int63n(int64(backoff)+1))
			c.logger.Debug("retrying request",
				"attempt", attempt,
				"backoff", jitter,
				"method", method,
				"path", path,
			)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(jitter):
			}

			backoff *= 2
		}

		resp, err := c.doRequest(ctx, method, entryPoint, path, params)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		var apiErr *APIError
		if !errors.As(err, &apiErr) || !apiErr.IsRetryable() {
			return nil, err
		}
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}
