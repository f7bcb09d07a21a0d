// Package api provides a client for the remote task service.
package api

// Task represents a task as stored by the service.
type Task struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Complete bool   `json:"complete"`
}

// CreateTaskRequest represents a request to create a task.
type CreateTaskRequest struct {
	Name string `json:"name"`
}

// UpdateTaskRequest represents a request to change a task's completion.
type UpdateTaskRequest struct {
	Complete bool `json:"complete"`
}
