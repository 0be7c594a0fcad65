// Package api is the typed client for the BWC backend REST surface.
//
// A single request helper owns header handling, error normalization and
// the 204 no-content contract; endpoint wrappers layer typed results and
// fail-fast shape validation on top so malformed responses surface as
// errors instead of propagating as zero values.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/2k1998/bwc-portal/internal/log"
	"github.com/2k1998/bwc-portal/internal/session"
)

// Client talks to the backend on behalf of the current session.
type Client struct {
	baseURL string
	httpc   *http.Client
	session *session.Session
	logger  *log.Logger
}

// New creates a client for the given base URL. The session supplies the
// bearer token on every request; requests without a token simply omit
// the Authorization header.
func New(baseURL string, timeout time.Duration, sess *session.Session, logger *log.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		session: sess,
		logger:  logger.WithComponent(log.ComponentAPI),
	}
}

// do issues one request and decodes the response into out when out is
// non-nil. A 204 response leaves out untouched: no content is a valid
// success distinct from an empty object. Any non-2xx status becomes an
// *Error with the message extracted from the body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body for %s: %w", path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response for %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newError(resp.StatusCode, raw)
		c.logger.WarnContext(ctx, "Backend rejected request",
			log.FieldMethod, method, log.FieldEndpoint, path,
			log.FieldStatusCode, resp.StatusCode, log.FieldError, apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response for %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
