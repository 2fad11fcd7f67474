package api

import (
	"context"
	"fmt"

	"github.com/RandomEggs/randomEggsTracker/internal/domain"
	"github.com/RandomEggs/randomEggsTracker/internal/ports"
)

type addTaskPayload struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

type updateTaskPayload struct {
	Title  *string            `json:"title,omitempty"`
	Status *domain.TaskStatus `json:"status,omitempty"`
}

// ListTasks fetches all open tasks. The server excludes done tasks and
// orders newest first; the list is passed through untouched.
func (c *Client) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := c.get(ctx, "/tasks", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// AddTask creates a task and returns the server's copy.
func (c *Client) AddTask(ctx context.Context, title string, status domain.TaskStatus) (*domain.Task, error) {
	var task domain.Task
	payload := addTaskPayload{Title: title, Status: string(status)}
	if err := c.post(ctx, "/add", payload, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask changes a task's title and/or status. Nil fields are left out
// of the request body.
func (c *Client) UpdateTask(ctx context.Context, id int, update ports.TaskUpdate) error {
	payload := updateTaskPayload{Title: update.Title, Status: update.Status}
	err := c.post(ctx, fmt.Sprintf("/update/%d", id), payload, nil)
	if isNotFound(err) {
		return domain.ErrTaskNotFound
	}
	return err
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id int) error {
	err := c.post(ctx, fmt.Sprintf("/delete/%d", id), struct{}{}, nil)
	if isNotFound(err) {
		return domain.ErrTaskNotFound
	}
	return err
}

// CompletedTasks fetches the month/day-grouped overview of done tasks.
func (c *Client) CompletedTasks(ctx context.Context) (*domain.CompletedOverview, error) {
	var overview domain.CompletedOverview
	if err := c.get(ctx, "/api/tasks/completed", &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}
