package messages

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickgao/upwork-mc/internal/api"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestWithLogging_Success(t *testing.T) {
	logger, buf := newBufferLogger()
	fake := &fakeRequester{resp: &api.Response{StatusCode: http.StatusOK, Body: []byte(`{"rooms":[]}`), RequestID: "req-1"}}
	r := NewRouter(WithLogging(fake, logger), "")

	resp, err := r.ListRooms(context.Background(), "acme123")
	require.NoError(t, err)
	assert.Same(t, fake.resp, resp)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "message center request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "api", entry["entry_point"])
	assert.Equal(t, "/messages/v3/acme123/rooms", entry["path"])
	assert.EqualValues(t, 200, entry["status"])
	assert.Equal(t, "req-1", entry["request_id"])
}

func TestWithLogging_Error(t *testing.T) {
	logger, buf := newBufferLogger()
	clientErr := errors.New("connection reset")
	fake := &fakeRequester{err: clientErr}
	r := NewRouter(WithLogging(fake, logger), "")

	_, err := r.MarkThread(context.Background(), "jdoe", "555", url.Values{"read": {"true"}})
	assert.Same(t, clientErr, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "message center request failed", entry["msg"])
	assert.Equal(t, "PUT", entry["method"])
	assert.Equal(t, "connection reset", entry["error"])
}

func TestWithLogging_ForwardsParams(t *testing.T) {
	logger, _ := newBufferLogger()
	fake := &fakeRequester{}
	params := url.Values{"body": {"hi"}}

	_, err := WithLogging(fake, logger).Post(context.Background(), "api", "/mc/v1/threads/jdoe", params)
	require.NoError(t, err)

	c := onlyCall(t, fake)
	assert.Equal(t, http.MethodPost, c.method)
	assert.Equal(t, params, c.params)
}

func TestWithLogging_InfoLevelIsSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	fake := &fakeRequester{resp: &api.Response{StatusCode: http.StatusOK}}

	_, err := NewRouter(WithLogging(fake, logger), "").ListRooms(context.Background(), "acme")
	require.NoError(t, err)
	assert.Zero(t, buf.Len())
}
