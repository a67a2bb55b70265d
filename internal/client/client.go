// Package client is the Go consumer of the portal API: a thin HTTP client,
// a chat session controller, and a credentials file store.
package client

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

	"github.com/rajfnu/itt-ai/internal/types"
)

// APIError carries the server's error text alongside the HTTP status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	httpc   *http.Client

	mu    sync.RWMutex
	token string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken installs a previously persisted session token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorText(raw)}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// errorText pulls the human-readable text out of either error body shape
// the server uses ({error} for auth, {message} for agent envelopes).
func errorText(raw []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return "request failed"
}

// Login authenticates and remembers the session token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*types.User, error) {
	var resp types.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", types.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return resp.User, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}

func (c *Client) Me(ctx context.Context) (*types.User, error) {
	var resp types.UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) Employees(ctx context.Context) ([]types.User, error) {
	var resp types.UsersResponse
	if err := c.do(ctx, http.MethodGet, "/api/employees", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// SendMessage posts free text to a conversational agent endpoint.
func (c *Client) SendMessage(ctx context.Context, endpoint, message string) (*types.AgentResponse, error) {
	var resp types.AgentResponse
	err := c.do(ctx, http.MethodPost, endpoint, types.AgentRequest{Message: message}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// RunTask posts a named task to a task-oriented agent endpoint.
func (c *Client) RunTask(ctx context.Context, endpoint, taskID string, input map[string]any) (*types.AgentResponse, error) {
	var resp types.AgentResponse
	err := c.do(ctx, http.MethodPost, endpoint, types.AgentRequest{TaskID: taskID, Input: input}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
