// Package api is the single request boundary between the client and the
// engagement backend. It owns the mutable bearer-token slot every
// authenticated request reads, and the one cross-cutting behavior of this
// boundary: notifying an observer when the backend rejects a token so the
// session can be torn down.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/engajamento/engaja/internal/logging"
)

// Client talks JSON to the backend. All entity operations and the auth
// exchange go through do, so the token slot and the auth-failure hook apply
// uniformly.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger

	mu    sync.RWMutex
	token string

	invalidating  map[int]struct{}
	onAuthFailure func(token string)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. Tests use it to plug
// in httptest servers with short timeouts.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithInvalidStatuses sets the statuses that count as "session invalid"
// when returned for a request that carried a bearer token. The default is
// 401 only; deployments that treat 422 the same way add it here.
func WithInvalidStatuses(codes ...int) Option {
	return func(c *Client) {
		c.invalidating = make(map[int]struct{}, len(codes))
		for _, code := range codes {
			c.invalidating[code] = struct{}{}
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New builds a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log:          logging.Discard(),
		invalidating: map[int]struct{}{http.StatusUnauthorized: {}},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken installs tok as the default bearer credential for subsequent
// requests.
func (c *Client) SetToken(tok string) {
	c.mu.Lock()
	c.token = tok
	c.mu.Unlock()
}

// ClearToken removes the default bearer credential.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the current bearer credential ("" when unset).
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// OnAuthFailure registers the observer called when a response lands in the
// session-invalidating status set. The observer receives the token the
// failed request carried; registration happens once, at startup, by the
// session store. The notification direction is one-way: this layer calls
// the store, never the reverse.
func (c *Client) OnAuthFailure(fn func(token string)) {
	c.mu.Lock()
	c.onAuthFailure = fn
	c.mu.Unlock()
}

// do issues one JSON request. The bearer token is read from the slot at
// call time; a response whose status is in the invalidating set fires the
// auth-failure observer and is still returned to the caller as an
// *HTTPError, so the caller's own error handling runs independently of the
// forced logout.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	c.mu.RLock()
	token := c.token
	onAuthFailure := c.onAuthFailure
	c.mu.RUnlock()

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		msg := readErrorMessage(resp.Body)

		if _, fatal := c.invalidating[resp.StatusCode]; fatal && token != "" {
			c.log.Warn(ctx, "session-invalidating response",
				"method", method, "path", path, "status", resp.StatusCode)
			if onAuthFailure != nil {
				onAuthFailure(token)
			}
		}

		return &HTTPError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// readErrorMessage extracts a human-readable message from an error body.
// The backend wraps errors as {"error": ...} or {"message": ...}.
func readErrorMessage(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 1<<20)) // 1 MB max error body
	if err != nil {
		return fmt.Sprintf("failed to read body: %v", err)
	}
	var apiErr struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &apiErr) == nil {
		if apiErr.Error != "" {
			return apiErr.Error
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	return string(body)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// envelope matches the backend convention of wrapping payloads in a "data"
// field.
type envelope[T any] struct {
	Data T `json:"data"`
}
