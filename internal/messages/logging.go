package messages

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/rickgao/upwork-mc/internal/api"
)

type loggingRequester struct {
	next   Requester
	logger *slog.Logger
}

// WithLogging wraps next so every call is logged at debug level.
// Responses and errors pass through untouched.
func WithLogging(next Requester, logger *slog.Logger) Requester {
	if logger == nil {
		logger = slog.Default()
	}
	return &loggingRequester{next: next, logger: logger}
}

func (l *loggingRequester) Get(ctx context.Context, entryPoint, path string, params url.Values) (*api.Response, error) {
	return l.log(ctx, http.MethodGet, entryPoint, path, func() (*api.Response, error) {
		return l.next.Get(ctx, entryPoint, path, params)
	})
}

func (l *loggingRequester) Post(ctx context.Context, entryPoint, path string, params url.Values) (*api.Response, error) {
	return l.log(ctx, http.MethodPost, entryPoint, path, func() (*api.Response, error) {
		return l.next.Post(ctx, entryPoint, path, params)
	})
}

func (l *loggingRequester) Put(ctx context.Context, entryPoint, path string, params url.Values) (*api.Response, error) {
	return l.log(ctx, http.MethodPut, entryPoint, path, func() (*api.Response, error) {
		return l.next.Put(ctx, entryPoint, path, params)
	})
}

func (l *loggingRequester) log(ctx context.Context, method, entryPoint, path string, call func() (*api.Response, error)) (*api.Response, error) {
	start := time.Now()
	resp, err := call()

	attrs := []any{
		"method", method,
		"entry_point", entryPoint,
		"path", path,
		"duration", time.Since(start),
	}
	if err != nil {
		l.logger.DebugContext(ctx, "message center request failed", append(attrs, "error", err)...)
		return resp, err
	}
	if resp != nil {
		attrs = append(attrs, "status", resp.StatusCode, "request_id", resp.RequestID, "bytes", len(resp.Body))
	}
	l.logger.DebugContext(ctx, "message center request", attrs...)
	return resp, nil
}
