package api

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

// Response is a successful API response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	RequestID  string
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if err := jsoniter.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
