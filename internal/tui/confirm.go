package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/tasks-tui/internal/api"
)

const deletePrompt = "Are you sure you want to delete this task?"

// confirmRequest is a pending yes/no question. reply is buffered so
// answering never blocks the update loop.
type confirmRequest struct {
	task  api.Task
	reply chan bool
}

// prompter turns the controller's blocking Confirmer into messages for the
// update loop.
type prompter struct {
	requests chan confirmRequest
}

func newPrompter() *prompter {
	return &prompter{requests: make(chan confirmRequest)}
}

// Confirm blocks until the user answers. It runs on a command goroutine.
func (p *prompter) Confirm(task api.Task) bool {
	req := confirmRequest{task: task, reply: make(chan bool, 1)}
	p.requests <- req
	return <-req.reply
}

// wait delivers the next confirmation request to the update loop.
func (p *prompter) wait() tea.Cmd {
	return func() tea.Msg {
		return confirmRequestMsg(<-p.requests)
	}
}
