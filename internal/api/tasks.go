package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// ErrMissingID is returned when a created task comes back without an id.
var ErrMissingID = errors.New("failed to create task: response has no id")

// taskPath builds the path of a single task resource.
func taskPath(id string) string {
	return "/tasks/" + url.PathEscape(id)
}

// ListTasks returns every task in the order the service lists them.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	tasks := make([]Task, 0)
	if err := c.Get(ctx, "/tasks", &tasks); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	// A "null" body decodes to a nil slice.
	if tasks == nil {
		tasks = make([]Task, 0)
	}
	return tasks, nil
}

// CreateTask creates a new task and returns it as assigned by the service.
func (c *Client) CreateTask(ctx context.Context, name string) (Task, error) {
	var task Task
	if err := c.Post(ctx, "/tasks", CreateTaskRequest{Name: name}, &task); err != nil {
		return Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	if task.ID == "" {
		return Task{}, ErrMissingID
	}
	return task, nil
}

// UpdateTask sets the completion flag of a task. The response body is ignored.
func (c *Client) UpdateTask(ctx context.Context, id string, complete bool) error {
	if err := c.Put(ctx, taskPath(id), UpdateTaskRequest{Complete: complete}, nil); err != nil {
		return fmt.Errorf("failed to update task %s: %w", id, err)
	}
	return nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if err := c.Delete(ctx, taskPath(id)); err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	return nil
}
