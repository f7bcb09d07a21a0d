package tui

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains all key bindings for the list view.
type Keymap struct {
	// Navigation
	Up     Key
	Down   Key
	Top    Key
	Bottom Key

	// Actions
	Back Key
	Quit Key
	Help Key

	// Task actions
	AddTask      Key
	CompleteTask Key
	DeleteTask   Key
	CopyTask     Key
	Submit       Key

	vim bool
}

// DefaultKeymap returns the default key bindings. Vim mode adds j/k, gg/G
// and dd on top of the arrow keys.
func DefaultKeymap(vim bool) Keymap {
	km := Keymap{
		Up:     Key{Key: "up", Help: "up"},
		Down:   Key{Key: "down", Help: "down"},
		Top:    Key{Key: "home", Help: "top"},
		Bottom: Key{Key: "end", Help: "bottom"},

		Back: Key{Key: "esc", Help: "back"},
		Quit: Key{Key: "q", Help: "quit"},
		Help: Key{Key: "?", Help: "help"},

		AddTask:      Key{Key: "a", Help: "add task"},
		CompleteTask: Key{Key: "x", Help: "complete/uncomplete"},
		DeleteTask:   Key{Key: "delete", Help: "delete"},
		CopyTask:     Key{Key: "y", Help: "copy name"},
		Submit:       Key{Key: "enter", Help: "submit"},
		vim:          vim,
	}
	if vim {
		km.Up = Key{Key: "k", Help: "up"}
		km.Down = Key{Key: "j", Help: "down"}
		km.Top = Key{Key: "g", Help: "top (gg)"}
		km.Bottom = Key{Key: "G", Help: "bottom"}
		km.DeleteTask = Key{Key: "d", Help: "delete (dd)"}
	}
	return km
}

// KeyState tracks multi-key sequences (like 'gg' or 'dd').
type KeyState struct {
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingD bool // Waiting for second 'd' in 'dd'
}

// HandleKey maps a key press in the list view to an action name.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap Keymap) (string, bool) {
	key := msg.String()

	if ks.WaitingG {
		ks.WaitingG = false
		if key == "g" {
			return "top", true
		}
	}

	if ks.WaitingD {
		ks.WaitingD = false
		if key == "d" {
			return "delete", true
		}
	}

	if keymap.vim {
		switch key {
		case "g":
			ks.WaitingG = true
			return "", true
		case "d":
			ks.WaitingD = true
			return "", true
		}
	}

	switch key {
	case keymap.Up.Key, "up":
		return "up", true
	case keymap.Down.Key, "down":
		return "down", true
	case keymap.Top.Key, "home":
		return "top", true
	case keymap.Bottom.Key, "end":
		return "bottom", true
	case keymap.Quit.Key, "ctrl+c":
		return "quit", true
	case keymap.Help.Key:
		return "help", true
	case keymap.AddTask.Key, "i":
		return "add", true
	case keymap.CompleteTask.Key, " ", "space":
		return "complete", true
	case keymap.DeleteTask.Key, "delete":
		return "delete", true
	case keymap.CopyTask.Key:
		return "copy", true
	case keymap.Back.Key:
		return "back", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k Keymap) HelpItems() [][]string {
	top := k.Top.Key
	if k.vim {
		top = "gg"
	}
	return [][]string{
		{"Navigation", ""},
		{k.Up.Key + "/" + k.Down.Key, "Move up/down"},
		{top + "/" + k.Bottom.Key, "Go to top/bottom"},
		{"", ""},
		{"Task Actions", ""},
		{k.AddTask.Key, "Add new task"},
		{k.Submit.Key, "Submit new task"},
		{k.CompleteTask.Key + "/space", "Complete/uncomplete task"},
		{k.deleteHint(), "Delete task"},
		{k.CopyTask.Key, "Copy task name"},
		{"", ""},
		{"General", ""},
		{k.Help.Key, "Toggle help"},
		{k.Back.Key, "Go back / Cancel"},
		{k.Quit.Key, "Quit"},
	}
}

// deleteHint is the delete key as typed by the user.
func (k Keymap) deleteHint() string {
	if k.vim {
		return "dd"
	}
	return k.DeleteTask.Key
}
