package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/tasks-tui/internal/api"
	"github.com/hy4ri/tasks-tui/internal/tasklist"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if w := msg.Width - 12; w > 20 {
			a.input.Width = w
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tasksLoadedMsg:
		a.loading = false
		if msg.err != nil {
			a.setFailure("Failed to load tasks", msg.err)
		}
		a.clampCursor()
		return a, nil

	case taskCreatedMsg:
		a.creating = false
		if msg.err != nil {
			a.setFailure("Failed to add task", msg.err)
			return a, nil
		}
		a.input.SetValue(a.ctrl.PendingInput())
		a.cursor = len(a.ctrl.Tasks()) - 1
		a.setStatus("Task added")
		return a, nil

	case taskUpdatedMsg:
		delete(a.inFlight, msg.id)
		if msg.err != nil {
			a.setFailure("Failed to update task", msg.err)
			return a, nil
		}
		a.statusMsg = ""
		return a, nil

	case taskDeletedMsg:
		delete(a.inFlight, msg.id)
		a.confirming = false
		switch {
		case msg.err == nil:
			a.setStatus("Task deleted")
		case errors.Is(msg.err, tasklist.ErrDeleteDeclined):
			a.setStatus("Delete cancelled")
		default:
			a.setFailure("Failed to delete task", msg.err)
		}
		a.clampCursor()
		return a, nil

	case confirmRequestMsg:
		req := confirmRequest(msg)
		a.confirm = &req
		a.mode = ModeConfirm
		a.keyState.Reset()
		return a, a.prompter.wait()

	case statusMsg:
		a.statusMsg = msg.msg
		a.statusIsErr = msg.isErr
		return a, nil
	}

	return a, nil
}

// handleKeyMsg routes a key press to the handler for the current mode.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.mode {
	case ModeConfirm:
		return a.handleConfirmKeyMsg(msg)
	case ModeInput:
		return a.handleInputKeyMsg(msg)
	case ModeHelp:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case a.keymap.Help.Key, a.keymap.Back.Key, a.keymap.Quit.Key:
			a.mode = ModeList
		}
		return a, nil
	}

	action, ok := a.keyState.HandleKey(msg, a.keymap)
	if !ok {
		return a, nil
	}

	// Mutations wait for the initial load; its full replace would drop them.
	if a.loading {
		switch action {
		case "add", "complete", "delete":
			a.setStatus("Still loading tasks...")
			return a, nil
		}
	}

	n := len(a.ctrl.Tasks())
	switch action {
	case "up":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down":
		if a.cursor < n-1 {
			a.cursor++
		}
	case "top":
		a.cursor = 0
	case "bottom":
		a.cursor = n - 1
		a.clampCursor()
	case "quit":
		return a, tea.Quit
	case "help":
		a.mode = ModeHelp
	case "add":
		a.mode = ModeInput
		a.input.Focus()
		return a, textinput.Blink
	case "complete":
		return a, a.handleComplete()
	case "delete":
		return a, a.handleDelete()
	case "copy":
		if task, ok := a.selectedTask(); ok {
			return a, a.copyTask(task.Name)
		}
	case "back":
		a.statusMsg = ""
	}

	return a, nil
}

// handleInputKeyMsg handles typing into the new task input.
func (a *App) handleInputKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case a.keymap.Back.Key:
		a.mode = ModeList
		a.input.Blur()
		return a, nil

	case a.keymap.Submit.Key:
		if a.loading {
			a.setStatus("Still loading tasks...")
			return a, nil
		}
		// Only one create may be in flight; re-submission waits.
		if a.creating {
			a.setStatus("Still adding the previous task...")
			return a, nil
		}
		a.ctrl.SetPendingInput(a.input.Value())
		a.creating = true
		return a, a.createTask()
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.ctrl.SetPendingInput(a.input.Value())
	return a, cmd
}

// handleConfirmKeyMsg handles y/n/esc during delete confirmation.
func (a *App) handleConfirmKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		a.inFlight[a.confirm.task.ID] = true
		a.answer(true)
	case "n", "N", "esc":
		a.answer(false)
	case "ctrl+c":
		a.answer(false)
		return a, tea.Quit
	}
	return a, nil
}

// answer replies to the open confirmation request.
func (a *App) answer(ok bool) {
	if a.confirm != nil {
		a.confirm.reply <- ok
		a.confirm = nil
	}
	a.mode = ModeList
}

// handleComplete toggles completion of the task under the cursor.
func (a *App) handleComplete() tea.Cmd {
	task, ok := a.selectedTask()
	if !ok {
		return nil
	}
	if a.inFlight[task.ID] {
		a.setStatus("Waiting for the server...")
		return nil
	}
	a.inFlight[task.ID] = true
	return a.setCompletion(task.ID, !task.Complete)
}

// handleDelete starts a delete of the task under the cursor. The
// confirmation arrives as a confirmRequestMsg.
func (a *App) handleDelete() tea.Cmd {
	task, ok := a.selectedTask()
	if !ok {
		return nil
	}
	if a.confirming || a.inFlight[task.ID] {
		a.setStatus("Waiting for the server...")
		return nil
	}
	a.confirming = true
	return a.deleteTask(task.ID)
}

// selectedTask returns the task under the cursor.
func (a *App) selectedTask() (api.Task, bool) {
	tasks := a.ctrl.Tasks()
	if a.cursor < 0 || a.cursor >= len(tasks) {
		return api.Task{}, false
	}
	return tasks[a.cursor], true
}

func (a *App) clampCursor() {
	n := len(a.ctrl.Tasks())
	if n == 0 {
		a.cursor = 0
		return
	}
	a.cursor = clamp(a.cursor, 0, n-1)
}

func (a *App) setStatus(msg string) {
	a.statusMsg = msg
	a.statusIsErr = false
}

// setFailure shows a short failure line. Details go to the diagnostic log.
func (a *App) setFailure(prefix string, err error) {
	var opErr *tasklist.OpError
	switch {
	case errors.Is(err, tasklist.ErrDuplicateTask), errors.Is(err, api.ErrMissingID):
		a.statusMsg = prefix + " (invalid server response)"
	case errors.As(err, &opErr) && opErr.StatusCode() > 0:
		a.statusMsg = fmt.Sprintf("%s (status %d)", prefix, opErr.StatusCode())
	case errors.As(err, &opErr):
		a.statusMsg = prefix + " (server unreachable)"
	case errors.Is(err, tasklist.ErrTaskBusy):
		a.statusMsg = "Waiting for the server..."
	default:
		a.statusMsg = fmt.Sprintf("%s: %v", prefix, err)
	}
	a.statusIsErr = true
}
