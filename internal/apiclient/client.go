// Package apiclient is the single point of outbound HTTP communication with
// the Manyas REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/me/manyas/internal/credential"
	"golang.org/x/oauth2"
)

// Client sends JSON requests to the API, attaching the persisted bearer
// token when one exists. It performs exactly one attempt per call.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	credentials credential.Store
	logger      *slog.Logger
}

// Option configures optional Client dependencies.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the API rooted at baseURL (e.g.
// "http://localhost:5000/api"). creds may be nil for anonymous use.
func New(baseURL string, creds credential.Store, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{},
		credentials: creds,
		logger:      logger.With("component", "apiclient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithCredentials returns a copy of c bound to another credential store.
// The web frontend uses it to give every browser its own token while
// sharing one connection pool.
func (c *Client) WithCredentials(creds credential.Store) *Client {
	cp := *c
	cp.credentials = creds
	return &cp
}

// BaseURL returns the API root this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs method on path. A non-nil body is sent as JSON; a 2xx
// response is decoded into out when out is non-nil. Non-2xx responses
// return *APIError and network failures return *TransportError.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if err := c.authorize(ctx, req); err != nil {
		return err
	}

	c.logger.Debug("upstream request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observe(method, 0)
		return &TransportError{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()
	observe(method, resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, URL: url, Err: fmt.Errorf("read response: %w", err)}
	}

	c.logger.Debug("upstream response", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, respBody)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	if c.credentials == nil {
		return nil
	}
	token, err := c.credentials.Load(ctx)
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}
	if token == "" {
		return nil
	}
	(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(req)
	return nil
}

func statusClass(code int) string {
	if code == 0 {
		return "transport"
	}
	return strconv.Itoa(code/100) + "xx"
}
