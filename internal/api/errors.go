package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Error is a backend rejection: the server answered with a non-2xx
// status. Message holds the body's detail/message field when present,
// otherwise the generic "HTTP <status>: <statusText>" fallback.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// errorBody is the error envelope the backend uses. FastAPI-style
// endpoints answer with "detail", older ones with "message".
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// newError extracts a human-readable message from an error response. The
// generic fallback triggers whenever the body is absent, not JSON, or
// JSON without either known field.
func newError(statusCode int, body []byte) *Error {
	if len(body) > 0 {
		var eb errorBody
		if err := json.Unmarshal(body, &eb); err == nil {
			if msg := strings.TrimSpace(eb.Detail); msg != "" {
				return &Error{StatusCode: statusCode, Message: msg}
			}
			if msg := strings.TrimSpace(eb.Message); msg != "" {
				return &Error{StatusCode: statusCode, Message: msg}
			}
		}
	}
	return &Error{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode)),
	}
}

// ShapeError reports a response that decoded but is missing a required
// field. It makes broken backend data visible instead of letting zero
// values flow into the views.
type ShapeError struct {
	Endpoint string
	Field    string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: response missing required field %q", e.Endpoint, e.Field)
}
