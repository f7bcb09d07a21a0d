package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.BaseURL != "http://localhost:8000" {
		t.Errorf("unexpected default base URL: %s", cfg.Server.BaseURL)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("unexpected default timeout: %v", cfg.Server.Timeout)
	}
	if !cfg.UI.VimMode {
		t.Error("expected vim mode on by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(URLEnv, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.BaseURL != DefaultConfig().Server.BaseURL {
		t.Errorf("expected default base URL, got %s", cfg.Server.BaseURL)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `server:
  base_url: "http://tasks.example:9000"
  timeout: 5s
ui:
  notify_failures: true
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.BaseURL != "http://tasks.example:9000" {
		t.Errorf("unexpected base URL: %s", cfg.Server.BaseURL)
	}
	if cfg.Server.Timeout != 5*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.Server.Timeout)
	}
	if !cfg.UI.NotifyFailures {
		t.Error("expected notify_failures to be set")
	}
	// Fields missing from the file keep their defaults.
	if !cfg.UI.VimMode {
		t.Error("expected vim_mode default to survive")
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(URLEnv, " http://override:1234 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.BaseURL != "http://override:1234" {
		t.Errorf("expected env override, got %q", cfg.Server.BaseURL)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(URLEnv, "")

	cfg := DefaultConfig()
	cfg.Server.Timeout = 10 * time.Second
	cfg.Log.File = "/tmp/tasks.log"
	if err := Save(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path, err := ConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		timeout time.Duration
		wantErr string
	}{
		{name: "http", baseURL: "http://localhost:8000", timeout: time.Second},
		{name: "https", baseURL: "https://tasks.example", timeout: time.Second},
		{name: "relative", baseURL: "/tasks", timeout: time.Second, wantErr: "absolute"},
		{name: "wrong scheme", baseURL: "ftp://tasks.example", timeout: time.Second, wantErr: "absolute"},
		{name: "empty", baseURL: "", timeout: time.Second, wantErr: "absolute"},
		{name: "zero timeout", baseURL: "http://x", timeout: 0, wantErr: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Server.BaseURL = tt.baseURL
			cfg.Server.Timeout = tt.timeout

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLogPath(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	cfg := DefaultConfig()
	path, err := cfg.LogPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(dataHome, "tasks-tui", "tasks-tui.log"); path != want {
		t.Errorf("expected %s, got %s", want, path)
	}

	cfg.Log.File = filepath.Join(t.TempDir(), "custom.log")
	logger, f, err := cfg.OpenLog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Printf("load failed: %s", "boom")
	f.Close()

	data, err := os.ReadFile(cfg.Log.File)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "SYNC: load failed: boom") {
		t.Errorf("unexpected log content: %q", data)
	}
}
