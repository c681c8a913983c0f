package messages

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rickgao/upwork-mc/internal/api"
)

// DefaultEntryPoint is the API entry point the Message Center lives under.
const DefaultEntryPoint = "api"

// ErrInvalidArgument is returned when a required identifier is empty.
var ErrInvalidArgument = errors.New("invalid argument")

// Requester performs signed API calls. *api.Client implements it.
type Requester interface {
	Get(ctx context.Context, entryPoint, path string, params url.Values) (*api.Response, error)
	Post(ctx context.Context, entryPoint, path string, params url.Values) (*api.Response, error)
	Put(ctx context.Context, entryPoint, path string, params url.Values) (*api.Response, error)
}

// Router maps Message Center operations to REST calls. It holds no per-call
// state and is safe for concurrent use if its Requester is.
type Router struct {
	client     Requester
	entryPoint string
}

// NewRouter creates a Router. An empty entryPoint selects DefaultEntryPoint.
func NewRouter(client Requester, entryPoint string) *Router {
	if client == nil {
		panic("messages: nil Requester")
	}
	if entryPoint == "" {
		entryPoint = DefaultEntryPoint
	}
	return &Router{client: client, entryPoint: entryPoint}
}

// EntryPoint returns the entry point every request is sent to.
func (r *Router) EntryPoint() string {
	return r.entryPoint
}

// requireIDs fails with ErrInvalidArgument on the first empty value.
// args alternates name, value.
func requireIDs(args ...string) error {
	for i := 0; i+1 < len(args); i += 2 {
		if strings.TrimSpace(args[i+1]) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidArgument, args[i])
		}
	}
	return nil
}

// join builds a path from literal prefix segments and escaped identifiers.
func join(prefix string, ids ...string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, id := range ids {
		b.WriteString("/")
		b.WriteString(url.PathEscape(id))
	}
	return b.String()
}
