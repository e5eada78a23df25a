// Package client is a thin typed wrapper around the sync server's HTTP
// API. The session cookie is kept in the HTTP client's jar, so one Client
// behaves like one logged-in browser tab.
package client

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
)

// Client talks to the auth/data server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the server at baseURL. A nil httpClient gets a
// default with a cookie jar and a 15s timeout.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	if httpClient == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		httpClient = &http.Client{Jar: jar, Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}, nil
}

// AuthConfig reports whether the server currently allows self-service signup.
func (c *Client) AuthConfig(ctx context.Context) (signupAllowed bool, err error) {
	var resp struct {
		SignupAllowed bool `json:"signupAllowed"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/config", nil, &resp); err != nil {
		return false, fmt.Errorf("auth config: %w", err)
	}
	return resp.SignupAllowed, nil
}

// Login authenticates and stores the session cookie in the jar.
// Returns false (with no error) when the server rejects the credentials.
func (c *Client) Login(ctx context.Context, username, password string) (bool, error) {
	return c.postCredentials(ctx, "/api/auth/login", username, password)
}

// Signup creates the deployment account and stores the session cookie.
// Returns false when signup is disabled or the input is invalid.
func (c *Client) Signup(ctx context.Context, username, password string) (bool, error) {
	return c.postCredentials(ctx, "/api/auth/signup", username, password)
}

// Logout clears the server-side cookie. The local jar drops it too.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	defer drain(resp)
	return nil
}

// GetData fetches the canonical document. Returns (nil, nil) when the
// server has no document yet (204) and an error on any non-2xx status.
func (c *Client) GetData(ctx context.Context) (json.RawMessage, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/data", nil)
	if err != nil {
		return nil, fmt.Errorf("get data: %w", err)
	}
	defer drain(resp)

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil, nil
	case http.StatusOK:
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("get data: read body: %w", err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("get data: unexpected status %d", resp.StatusCode)
	}
}

// PutData uploads the full document, overwriting the server copy.
func (c *Client) PutData(ctx context.Context, doc json.RawMessage) error {
	resp, err := c.do(ctx, http.MethodPut, "/api/data", bytes.NewReader(doc))
	if err != nil {
		return fmt.Errorf("put data: %w", err)
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("put data: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) postCredentials(ctx context.Context, path, username, password string) (bool, error) {
	payload, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return false, fmt.Errorf("marshal credentials: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	defer drain(resp)

	return resp.StatusCode == http.StatusOK, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.http.Do(req)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body io.Reader, out any) error {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// drain discards the rest of the body so the connection can be reused.
func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body) //nolint:errcheck
	resp.Body.Close()
}
