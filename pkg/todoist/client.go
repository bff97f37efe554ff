package todoist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/harrisonrobin/orgsync/pkg/model"
)

// DefaultBaseURL is the production REST endpoint.
const DefaultBaseURL = "https://api.todoist.com/rest/v2"

// RequestError is a non-2xx response from the remote service. The core
// never retries; the error carries enough of the response to diagnose
// without inspecting the transport.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("todoist request failed: status %d: %s", e.Status, e.Body)
}

// Client talks to the Todoist REST API. Every request carries the
// bearer token via the oauth2 transport.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the given API token. An empty baseURL
// selects the production endpoint.
func NewClient(ctx context.Context, token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{
		baseURL: baseURL,
		http:    oauth2.NewClient(ctx, src),
	}
}

func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var recs []projectRecord
	if err := c.get(ctx, "/projects", &recs); err != nil {
		return nil, err
	}
	projects := make([]model.Project, 0, len(recs))
	for _, r := range recs {
		projects = append(projects, r.toModel())
	}
	return projects, nil
}

func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	var recs []taskRecord
	if err := c.get(ctx, "/tasks", &recs); err != nil {
		return nil, err
	}
	tasks := make([]model.Task, 0, len(recs))
	for _, r := range recs {
		t, err := r.toModel()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// CreateTask registers a new task under a project and returns the
// record the remote assigned, identifier included.
func (c *Client) CreateTask(ctx context.Context, content string, projectID model.ProjectID) (model.Task, error) {
	req := createTaskRequest{Content: content, ProjectID: string(projectID)}
	var rec taskRecord
	if err := c.post(ctx, "/tasks", req, &rec); err != nil {
		return model.Task{}, err
	}
	return rec.toModel()
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("todoist request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &RequestError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode todoist response: %w", err)
	}
	return nil
}
