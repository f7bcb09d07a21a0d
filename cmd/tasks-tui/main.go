// Package main is the entry point for the tasks-tui application.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/tasks-tui/internal/api"
	"github.com/hy4ri/tasks-tui/internal/config"
	"github.com/hy4ri/tasks-tui/internal/tasklist"
	"github.com/hy4ri/tasks-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `tasks-tui - Terminal task list synced with a task service

USAGE:
    tasks-tui [OPTIONS]

OPTIONS:
    -h, --help      Show this help message
    -v, --version   Show version information
    --init          Create a template config file
    --url URL       Task service address for this run

CONFIGURATION:
    Config file: ~/.config/tasks-tui/config.yaml
    TASKS_TUI_URL overrides server.base_url.

KEYBINDINGS:
    j/k         Move down/up
    gg/G        Go to top/bottom
    a           Add new task (enter submits, esc goes back)
    x, space    Complete/uncomplete task
    dd          Delete task (asks for confirmation)
    y           Copy task name
    ?           Show help
    q           Quit
`

const configTemplate = `# tasks-tui configuration
# Location: ~/.config/tasks-tui/config.yaml

server:
  # Address of the task service (TASKS_TUI_URL overrides this)
  base_url: "http://localhost:8000"
  timeout: 30s

ui:
  # Enable Vim-style keybindings (default: true)
  vim_mode: true
  # Show a desktop notification when a change fails to sync
  notify_failures: false

log:
  # Diagnostic log (default: ~/.local/share/tasks-tui/tasks-tui.log)
  # file: ""
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		baseURL     string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&baseURL, "url", "", "Task service address for this run")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("tasks-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	return runApp(baseURL)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp(baseURL string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if baseURL != "" {
		cfg.Server.BaseURL = baseURL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, logFile, err := cfg.OpenLog()
	if err != nil {
		return err
	}
	defer logFile.Close()

	client := api.NewClient(cfg.Server.BaseURL)
	client.SetTimeout(cfg.Server.Timeout)

	reporters := tasklist.Reporters{tasklist.LogReporter{Logger: logger}}
	if cfg.UI.NotifyFailures {
		reporters = append(reporters, tasklist.NewNotifyReporter("tasks-tui", logger))
	}

	logger.Printf("starting against %s", client.BaseURL())
	ctrl := tasklist.New(client, reporters)

	app := tui.NewApp(ctrl, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
