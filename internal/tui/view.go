package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/tasks-tui/internal/api"
	"github.com/hy4ri/tasks-tui/internal/tui/styles"
)

const listTitle = "Tasks List"

// View implements tea.Model.
func (a *App) View() string {
	switch a.mode {
	case ModeConfirm:
		return a.overlay(a.renderConfirmDialog())
	case ModeHelp:
		return a.overlay(a.renderHelp())
	}

	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(a.renderInput())
	b.WriteString("\n\n")
	b.WriteString(a.renderTasks())
	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())

	return styles.App.Render(b.String())
}

// renderHeader renders the title with done/total counts.
func (a *App) renderHeader() string {
	tasks := a.ctrl.Tasks()
	done := 0
	for _, t := range tasks {
		if t.Complete {
			done++
		}
	}
	counts := styles.Subtitle.Render(fmt.Sprintf(" %d/%d done", done, len(tasks)))
	return styles.Title.Render(listTitle) + counts
}

// renderInput renders the new task input.
func (a *App) renderInput() string {
	style := styles.Input
	if a.mode == ModeInput {
		style = styles.InputFocused
	}
	line := a.input.View()
	if a.creating {
		line += "  " + styles.TaskPending.Render("adding...")
	}
	return style.Render(line)
}

// renderTasks renders the task list.
func (a *App) renderTasks() string {
	if a.loading {
		return a.spinner.View() + " Loading tasks..."
	}

	tasks := a.ctrl.Tasks()
	if len(tasks) == 0 {
		return styles.EmptyList.Render("No tasks yet. Press " + a.keymap.AddTask.Key + " to add one.")
	}

	nameWidth := 0
	if a.width > 0 {
		nameWidth = a.width - 14 // padding + cursor + checkbox
	}

	lines := make([]string, 0, len(tasks))
	for i, task := range tasks {
		lines = append(lines, a.renderTask(task, i == a.cursor, nameWidth))
	}
	return strings.Join(lines, "\n")
}

// renderTask renders one line: checkbox then name. The checkbox reflects
// committed state only; a task with a request in flight shows as pending.
func (a *App) renderTask(task api.Task, selected bool, nameWidth int) string {
	_, busy := a.ctrl.Pending(task.ID)
	busy = busy || a.inFlight[task.ID]

	checkbox := styles.CheckboxUnchecked
	if task.Complete {
		checkbox = styles.CheckboxChecked
	}
	if busy {
		checkbox = styles.TaskPending.Render(styles.CheckboxPending)
	}

	name := task.Name
	if nameWidth > 0 {
		name = truncateString(name, nameWidth)
	}
	if task.Complete {
		name = styles.TaskCompleted.Render(name)
	}

	line := checkbox + " " + name
	if selected {
		return styles.TaskSelected.Render(line)
	}
	return styles.TaskItem.Render(line)
}

// renderStatusBar renders the status line with key hints.
func (a *App) renderStatusBar() string {
	if a.statusMsg != "" {
		if a.statusIsErr {
			return styles.StatusBarError.Render(a.statusMsg)
		}
		return styles.StatusBarSuccess.Render(a.statusMsg)
	}

	key := styles.StatusBarKey.Render
	desc := styles.StatusBarText.Render
	if a.mode == ModeInput {
		return styles.StatusBar.Render(key("enter") + desc(" add • ") + key("esc") + desc(" back"))
	}
	return styles.StatusBar.Render(
		key(a.keymap.AddTask.Key) + desc(" add • ") +
			key(a.keymap.CompleteTask.Key) + desc(" toggle • ") +
			key(a.keymap.deleteHint()) + desc(" delete • ") +
			key(a.keymap.Help.Key) + desc(" help • ") +
			key(a.keymap.Quit.Key) + desc(" quit"))
}

// renderConfirmDialog renders the delete confirmation dialog.
func (a *App) renderConfirmDialog() string {
	name := ""
	if a.confirm != nil {
		name = a.confirm.task.Name
	}
	content := styles.DialogTitle.Render(deletePrompt) + "\n" +
		truncateString(name, 50) + "\n\n" +
		styles.HelpDesc.Render("y: confirm • n/Esc: cancel")
	return styles.Dialog.Render(content)
}

// renderHelp renders the help overlay.
func (a *App) renderHelp() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, item := range a.keymap.HelpItems() {
		switch {
		case item[0] == "" && item[1] == "":
			b.WriteString("\n")
		case item[1] == "":
			b.WriteString(styles.Subtitle.Render(item[0]) + "\n")
		default:
			b.WriteString(fmt.Sprintf("  %s  %s\n", styles.HelpKey.Render(fmt.Sprintf("%-12s", item[0])), styles.HelpDesc.Render(item[1])))
		}
	}
	return styles.Dialog.Render(strings.TrimRight(b.String(), "\n"))
}

// overlay centres content in the window when its size is known.
func (a *App) overlay(content string) string {
	if a.width == 0 || a.height == 0 {
		return content
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}
