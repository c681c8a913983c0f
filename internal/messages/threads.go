package messages

import (
	"context"
	"net/url"
	"strings"

	"github.com/rickgao/upwork-mc/internal/api"
)

const threadsPrefix = "/mc/v1"

// DefaultContext is the thread context used when none is given.
const DefaultContext = "Interviews"

// ContextKey builds the {context}:{jobKey}:{applicationID} thread lookup key.
// An empty name means DefaultContext.
func ContextKey(name, jobKey, applicationID string) string {
	if name == "" {
		name = DefaultContext
	}
	return strings.Join([]string{name, jobKey, applicationID}, ":")
}

// GetThreadByContext returns the last posts of the thread identified by a
// job key and application ID. An empty threadContext means DefaultContext.
func (r *Router) GetThreadByContext(ctx context.Context, username, jobKey, applicationID, threadContext string) (*api.Response, error) {
	if err := requireIDs("username", username, "jobKey", jobKey, "applicationID", applicationID); err != nil {
		return nil, err
	}

	key := ContextKey(url.PathEscape(threadContext), url.PathEscape(jobKey), url.PathEscape(applicationID))
	path := join(threadsPrefix+"/contexts", username) + "/" + key + "/last_posts"
	return r.client.Get(ctx, r.entryPoint, path, nil)
}

// MarkThread updates thread flags (read, starred, deleted) with params.
func (r *Router) MarkThread(ctx context.Context, username, threadID string, params url.Values) (*api.Response, error) {
	if err := requireIDs("username", username, "threadID", threadID); err != nil {
		return nil, err
	}
	return r.client.Put(ctx, r.entryPoint, join(threadsPrefix+"/threads", username, threadID), params)
}

// StartNewThread sends a new message, creating a thread.
func (r *Router) StartNewThread(ctx context.Context, username string, params url.Values) (*api.Response, error) {
	if err := requireIDs("username", username); err != nil {
		return nil, err
	}
	return r.client.Post(ctx, r.entryPoint, join(threadsPrefix+"/threads", username), params)
}

// ReplyToThread posts a reply to an existing thread.
func (r *Router) ReplyToThread(ctx context.Context, username, threadID string, params url.Values) (*api.Response, error) {
	if err := requireIDs("username", username, "threadID", threadID); err != nil {
		return nil, err
	}
	return r.client.Post(ctx, r.entryPoint, join(threadsPrefix+"/threads", username, threadID), params)
}
