package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const logFileName = appName + ".log"

// DataDir returns the path to the data directory.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/tasks-tui/
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	dataDir := filepath.Join(dataHome, appName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dataDir, nil
}

// LogPath returns the diagnostic log path, falling back to the data
// directory when none is configured.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFileName), nil
}

// OpenLog opens the diagnostic log for appending. The caller closes the
// returned file.
func (c *Config) OpenLog() (*log.Logger, *os.File, error) {
	path, err := c.LogPath()
	if err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return log.New(f, "SYNC: ", log.LstdFlags|log.Lmsgprefix), f, nil
}
