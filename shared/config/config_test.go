package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("YOUTUBE_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.AI.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q, want gemini-2.5-flash", cfg.AI.Model)
	}
	if cfg.AI.GeminiAPIKey != "test-key" {
		t.Errorf("GeminiAPIKey = %q, want the env value", cfg.AI.GeminiAPIKey)
	}
	if cfg.Clips.Count != 5 {
		t.Errorf("Clips.Count = %d, want 5", cfg.Clips.Count)
	}
	if cfg.Player.Command != "mpv" {
		t.Errorf("Player.Command = %q, want mpv", cfg.Player.Command)
	}
	if cfg.LogFile != "clipper.log" {
		t.Errorf("LogFile = %q, want clipper.log", cfg.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`ai:
  gemini_api_key: file-key
  model: gemini-2.5-pro
clips:
  count: 10
player:
  command: vlc
log_file: out.log
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.AI.GeminiAPIKey != "file-key" {
		t.Errorf("GeminiAPIKey = %q, want file-key", cfg.AI.GeminiAPIKey)
	}
	if cfg.AI.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %q, want gemini-2.5-pro", cfg.AI.Model)
	}
	if cfg.Clips.Count != 10 {
		t.Errorf("Clips.Count = %d, want 10", cfg.Clips.Count)
	}
	if cfg.Player.Command != "vlc" {
		t.Errorf("Player.Command = %q, want vlc", cfg.Player.Command)
	}
}

func TestLoadRejectsBadClipCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("clips:\n  count: 25\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)

	if _, err := Load(); err == nil {
		t.Error("Load() expected a validation error for clips.count = 25")
	}
}
