// Package client is a typed Go client for the todo-tracker RPC endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client calls the /rpc endpoint of a todo-tracker server
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a client for the server at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type rpcRequest struct {
	Method  string `json:"method"`
	Payload any    `json:"payload,omitempty"`
}

type rpcResponse struct {
	OK     bool            `json:"ok"`
	Result json.RawMessage `json:"result"`
	Error  *Error          `json:"error"`
}

// Call invokes method with payload and decodes the result into out.
// out may be nil when the caller does not need the result.
func (c *Client) Call(ctx context.Context, method string, payload, out any) error {
	jsonData, err := json.Marshal(rpcRequest{Method: method, Payload: payload})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rpc", bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env rpcResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}
	if !env.OK {
		if env.Error == nil {
			env.Error = &Error{Tag: "UnknownError", Message: string(body)}
		}
		env.Error.Status = resp.StatusCode
		return env.Error
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s result: %w", method, err)
	}
	return nil
}

// Health checks the plain-text liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) CreateProject(ctx context.Context, name string, description *string) (*Project, error) {
	var p Project
	payload := map[string]any{"name": name, "description": description}
	if err := c.Call(ctx, "ProjectCreate", payload, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProjectWithTodos(ctx context.Context, name string, description *string, todos []NewTodo) (*ProjectWithTodos, error) {
	if todos == nil {
		todos = []NewTodo{}
	}
	var out ProjectWithTodos
	payload := map[string]any{"name": name, "description": description, "todos": todos}
	if err := c.Call(ctx, "ProjectCreateWithTodos", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var out []Project
	if err := c.Call(ctx, "ProjectGetAll", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProject(ctx context.Context, id int64) (*Project, error) {
	var p Project
	if err := c.Call(ctx, "ProjectGetById", map[string]any{"id": id}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) GetProjectWithTodos(ctx context.Context, id int64) (*ProjectWithTodos, error) {
	var out ProjectWithTodos
	if err := c.Call(ctx, "ProjectGetWithTodos", map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProject(ctx context.Context, id int64, changes ProjectChanges) (*Project, error) {
	var p Project
	if err := c.Call(ctx, "ProjectUpdate", map[string]any{"id": id, "data": changes}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProject(ctx context.Context, id int64) (*DeleteResult, error) {
	var out DeleteResult
	if err := c.Call(ctx, "ProjectDelete", map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTodo(ctx context.Context, projectID int64, title string, description *string) (*Todo, error) {
	var t Todo
	payload := map[string]any{"projectId": projectID, "title": title, "description": description}
	if err := c.Call(ctx, "TodoCreate", payload, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) ListTodos(ctx context.Context) ([]Todo, error) {
	var out []Todo
	if err := c.Call(ctx, "TodoGetAll", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListProjectTodos(ctx context.Context, projectID int64) ([]Todo, error) {
	var out []Todo
	if err := c.Call(ctx, "TodoGetByProjectId", map[string]any{"projectId": projectID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTodo(ctx context.Context, id int64) (*Todo, error) {
	var t Todo
	if err := c.Call(ctx, "TodoGetById", map[string]any{"id": id}, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) UpdateTodo(ctx context.Context, id int64, changes TodoChanges) (*Todo, error) {
	var t Todo
	if err := c.Call(ctx, "TodoUpdate", map[string]any{"id": id, "data": changes}, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) DeleteTodo(ctx context.Context, id int64) (*DeleteResult, error) {
	var out DeleteResult
	if err := c.Call(ctx, "TodoDelete", map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ToggleTodo(ctx context.Context, id int64) (*Todo, error) {
	var t Todo
	if err := c.Call(ctx, "TodoToggle", map[string]any{"id": id}, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// TodoPage fetches one page of a project's todos. cursor 0 starts at the
// beginning; limit 0 uses the server default.
func (c *Client) TodoPage(ctx context.Context, projectID, cursor int64, limit int) (*TodoPage, error) {
	payload := map[string]any{"projectId": projectID}
	if cursor > 0 {
		payload["cursor"] = cursor
	}
	if limit > 0 {
		payload["limit"] = limit
	}

	var page TodoPage
	if err := c.Call(ctx, "TodoGetByProjectIdPaginated", payload, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
