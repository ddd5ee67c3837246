// Package restapi implements service.Repository against the task portal's HTTP API.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"tareas/internal/config"
	"tareas/internal/service"
	"tareas/internal/session"
)

// Client implements service.Repository. Every call carries an
// Authorization: Bearer header derived from the session store; an empty
// token is still sent, the server is responsible for rejecting it. The
// client performs no retries and never recovers locally; failures come
// back classified for the controllers to handle.
type Client struct {
	cfg      *config.Config
	sessions *session.Store
	http     *http.Client
	log      *slog.Logger
}

// tokenSource feeds the oauth2 transport from the session store. The
// transport may cache a non-expiring token, which is fine for a client
// built per command run, after the session pre-flight.
type tokenSource struct {
	sessions *session.Store
}

func (t tokenSource) Token() (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: t.sessions.Token()}, nil
}

// New creates a portal API client reading credentials from the store.
func New(cfg *config.Config, sessions *session.Store, log *slog.Logger) *Client {
	httpClient := oauth2.NewClient(context.Background(), tokenSource{sessions})
	return &Client{
		cfg:      cfg,
		sessions: sessions,
		http:     httpClient,
		log:      log,
	}
}

// GetTasks returns the session user's tasks in server order.
func (c *Client) GetTasks(ctx context.Context) ([]service.Task, error) {
	user, ok := c.sessions.CurrentUser()
	if !ok {
		return nil, fmt.Errorf("%w: not logged in", service.ErrAuth)
	}

	reqURL := c.cfg.API.TasksURL + "?username=" + url.QueryEscape(user.Username)
	var tasks []service.Task
	if err := c.do(ctx, http.MethodGet, reqURL, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTaskByID fetches one task.
func (c *Client) GetTaskByID(ctx context.Context, id string) (service.Task, error) {
	var task service.Task
	if err := c.do(ctx, http.MethodGet, c.taskURL(id), nil, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// CreateTask assigns a fresh id, stamps the session username and sends
// the task. The server acknowledgement is not read back; the returned
// Task is exactly what was sent.
func (c *Client) CreateTask(ctx context.Context, task service.Task) (service.Task, error) {
	user, ok := c.sessions.CurrentUser()
	if !ok {
		return service.Task{}, fmt.Errorf("%w: not logged in", service.ErrAuth)
	}

	task.ID = uuid.NewString()
	task.Username = user.Username

	if err := c.do(ctx, http.MethodPost, c.cfg.API.TasksURL, task, nil); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// updatePayload is the update request body: titulo and descripcion
// only. The id travels in the path and username is never resent.
type updatePayload struct {
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
}

// UpdateTask sends the task's current titulo and descripcion, keyed by
// id in the path.
func (c *Client) UpdateTask(ctx context.Context, task service.Task) error {
	payload := updatePayload{Titulo: task.Titulo, Descripcion: task.Descripcion}
	return c.do(ctx, http.MethodPut, c.taskURL(task.ID), payload, nil)
}

// DeleteTask issues the delete. The caller owns any list mutation.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.taskURL(id), nil, nil)
}

func (c *Client) taskURL(id string) string {
	return c.cfg.API.TasksURL + "/" + url.PathEscape(id)
}

// do performs one API call with the configured timeout. A transport
// failure maps to ErrNetwork, a non-2xx status is classified by code,
// and on success the body is decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, reqURL string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.API.Timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("api request", "method", method, "url", reqURL)

	resp, err := c.http.Do(req)
	if err != nil {
		return service.NewNetworkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return service.NewNetworkError(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return service.NewStatusError(resp.StatusCode, string(data))
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("invalid response body: %w", err)
		}
	}
	return nil
}
