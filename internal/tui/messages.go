package tui

import "github.com/hy4ri/tasks-tui/internal/api"

// tasksLoadedMsg is sent when the initial load has resolved.
type tasksLoadedMsg struct {
	err error
}

// taskCreatedMsg is sent when a create request has resolved.
type taskCreatedMsg struct {
	task api.Task
	err  error
}

// taskUpdatedMsg is sent when a completion change has resolved.
type taskUpdatedMsg struct {
	id       string
	complete bool
	err      error
}

// taskDeletedMsg is sent when a delete has resolved or was declined.
type taskDeletedMsg struct {
	id  string
	err error
}

// confirmRequestMsg asks the user to confirm a delete.
type confirmRequestMsg confirmRequest

// statusMsg replaces the status line.
type statusMsg struct {
	msg   string
	isErr bool
}
