package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"pickfoo-owner/internal/domain"
)

// HTTPClient is the outbound request seam, injectable for tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the owner backend. Credentials are cookie-based: the jar
// carries them on every request and a 401 on a non-auth endpoint triggers
// exactly one silent refresh before the original request is re-issued.
type Client struct {
	baseURL string
	http    HTTPClient
}

func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
	}
}

// NewClientWith injects a custom HTTPClient. The caller is responsible for
// cookie handling.
func NewClientWith(baseURL string, hc HTTPClient) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Error is a failed API call: the HTTP status plus the server-provided
// message when one was present.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: request failed with status %d", e.StatusCode)
}

// IsUnauthorized reports whether err is an authorization failure from the
// backend.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// envelope is the backend's uniform response shape.
type envelope struct {
	Success           bool            `json:"success"`
	Message           string          `json:"message"`
	Data              json.RawMessage `json:"data"`
	User              *domain.User    `json:"user"`
	Email             string          `json:"email"`
	NeedsVerification bool            `json:"needsVerification"`
}

// authExempt endpoints never participate in the refresh-and-retry dance,
// otherwise a misconfigured refresh endpoint could loop forever.
func authExempt(path string) bool {
	return strings.Contains(path, "/auth/login") ||
		strings.Contains(path, "/auth/register") ||
		strings.Contains(path, "/auth/refresh-token")
}

func (c *Client) newRequest(ctx context.Context, method, path string, body []byte, contentType string) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// roundTrip issues the request, retrying once through the refresh endpoint
// on a 401. The body is held as bytes so the retry can replay it.
func (c *Client) roundTrip(ctx context.Context, method, path string, body []byte, contentType string) (*envelope, error) {
	env, err := c.once(ctx, method, path, body, contentType)
	if !IsUnauthorized(err) || authExempt(path) {
		return env, err
	}

	if _, refreshErr := c.once(ctx, http.MethodPost, "/auth/refresh-token", nil, ""); refreshErr != nil {
		// Refresh failed: surface the original authorization error.
		return nil, err
	}
	return c.once(ctx, method, path, body, contentType)
}

func (c *Client) once(ctx context.Context, method, path string, body []byte, contentType string) (*envelope, error) {
	req, err := c.newRequest(ctx, method, path, body, contentType)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, err
	}

	var env envelope
	if len(raw) > 0 {
		// A non-JSON body is tolerated; the status code decides the outcome.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &env, &Error{StatusCode: resp.StatusCode, Message: env.Message}
	}
	return &env, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	env, err := c.roundTrip(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return decodeData(env, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return err
		}
	}
	env, err := c.roundTrip(ctx, method, path, body, "application/json")
	if err != nil {
		return err
	}
	return decodeData(env, out)
}

func marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func decodeData(env *envelope, out interface{}) error {
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}
