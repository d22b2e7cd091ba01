// Package api implements the HTTP client for the Ponto de Aula REST
// backend. It injects the session bearer token on every request, decodes the
// backend's JSON envelopes and reports unauthorized responses through a
// callback so the session layer can clear the signed-in user.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultTimeout bounds every backend call unless overridden.
	DefaultTimeout = 10 * time.Second
)

// Client is a thin typed client over the backend's REST API.
// It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	debug   bool

	mu             sync.RWMutex
	token          string
	onUnauthorized func()
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithDebug enables request/response debug logging.
func WithDebug() Option {
	return func(c *Client) {
		c.debug = true
	}
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetToken sets the bearer token injected on subsequent requests.
// An empty token removes the Authorization header.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token
}

// SetUnauthorizedHandler registers fn to run whenever the backend answers
// 401. Pass nil to unregister.
func (c *Client) SetUnauthorizedHandler(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

// Get issues a GET request and decodes the response body into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if c.debug {
		log.Debug().Str("method", method).Str("url", target).Msg("api request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s failed", method, path)
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.handleErrorResponse(method, path, resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s %s response", method, path)
	}

	return nil
}

func (c *Client) handleErrorResponse(method, path string, status int, data []byte) error {
	apiErr := &Error{StatusCode: status}

	// the backend wraps error details in its usual envelope; keep the raw
	// body when it does not parse
	var envelope struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Message != "" {
		apiErr.Message = envelope.Message
	}

	if c.debug {
		log.Debug().Int("status", status).Str("method", method).Str("url", path).
			Str("message", apiErr.Message).Msg("api error")
	}

	if status == http.StatusUnauthorized {
		c.mu.RLock()
		fn := c.onUnauthorized
		c.mu.RUnlock()

		if fn != nil {
			fn()
		}
	}

	return apiErr
}
