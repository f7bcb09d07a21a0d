// Package tui provides the terminal user interface for the task list.
package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/tasks-tui/internal/config"
	"github.com/hy4ri/tasks-tui/internal/tasklist"
	"github.com/hy4ri/tasks-tui/internal/tui/styles"
)

// Mode is the current input mode.
type Mode int

const (
	ModeList    Mode = iota // Navigating the task list
	ModeInput               // Typing a new task name
	ModeConfirm             // Answering a delete confirmation
	ModeHelp                // Help overlay
)

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	ctx            context.Context
	ctrl           *tasklist.Controller
	config         *config.Config
	prompter       *prompter
	clipboardWrite func(string) error

	// View state
	mode   Mode
	cursor int

	// Requests issued from this view that have not resolved yet
	loading    bool
	creating   bool
	inFlight   map[string]bool
	confirming bool
	confirm    *confirmRequest

	// UI state
	statusMsg   string
	statusIsErr bool
	width       int
	height      int

	// Components
	spinner  spinner.Model
	input    textinput.Model
	keyState KeyState
	keymap   Keymap
}

// NewApp creates a new App instance.
func NewApp(ctrl *tasklist.Controller, cfg *config.Config) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	input := textinput.New()
	input.Placeholder = "New task..."
	input.Prompt = "> "
	input.CharLimit = 256
	input.Width = 50
	input.SetValue(ctrl.PendingInput())

	return &App{
		ctx:            context.Background(),
		ctrl:           ctrl,
		config:         cfg,
		prompter:       newPrompter(),
		clipboardWrite: clipboard.WriteAll,
		mode:           ModeList,
		loading:        true,
		inFlight:       make(map[string]bool),
		spinner:        s,
		input:          input,
		keymap:         DefaultKeymap(cfg.UI.VimMode),
	}
}

// Init implements tea.Model. It issues the one initial load.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.spinner.Tick,
		a.loadTasks(),
		a.prompter.wait(),
	)
}

// Mode returns the current input mode.
func (a *App) Mode() Mode {
	return a.mode
}

// loadTasks runs the initial load.
func (a *App) loadTasks() tea.Cmd {
	return func() tea.Msg {
		return tasksLoadedMsg{err: a.ctrl.InitialLoad(a.ctx)}
	}
}

// createTask submits the pending input.
func (a *App) createTask() tea.Cmd {
	return func() tea.Msg {
		task, err := a.ctrl.CreateTask(a.ctx)
		return taskCreatedMsg{task: task, err: err}
	}
}

// setCompletion sends a completion change for id.
func (a *App) setCompletion(id string, complete bool) tea.Cmd {
	return func() tea.Msg {
		err := a.ctrl.SetCompletion(a.ctx, id, complete)
		return taskUpdatedMsg{id: id, complete: complete, err: err}
	}
}

// deleteTask asks for confirmation through the prompter, then deletes.
func (a *App) deleteTask(id string) tea.Cmd {
	return func() tea.Msg {
		err := a.ctrl.DeleteTask(a.ctx, id, a.prompter.Confirm)
		return taskDeletedMsg{id: id, err: err}
	}
}

// copyTask copies a task name to the clipboard.
func (a *App) copyTask(name string) tea.Cmd {
	return func() tea.Msg {
		if err := a.clipboardWrite(name); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error(), isErr: true}
		}
		return statusMsg{msg: "Copied: " + name}
	}
}
