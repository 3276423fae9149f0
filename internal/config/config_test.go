package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be ignored: %v", err)
	}
	if cfg.Challenge.Source != nil || cfg.Serve.Addr != nil || cfg.UI.RevealMargin != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[challenge]
source = "https://example.com/questions.json"

[ui]
reveal-margin = 3

[serve]
addr = ":9090"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Challenge.Source == nil || *cfg.Challenge.Source != "https://example.com/questions.json" {
		t.Fatalf("unexpected source: %v", cfg.Challenge.Source)
	}
	if cfg.UI.RevealMargin == nil || *cfg.UI.RevealMargin != 3 {
		t.Fatalf("unexpected reveal margin: %v", cfg.UI.RevealMargin)
	}
	if cfg.Serve.Addr == nil || *cfg.Serve.Addr != ":9090" {
		t.Fatalf("unexpected addr: %v", cfg.Serve.Addr)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "hundred", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultSourcePath(); got != filepath.Join("/cfg", "hundred", "questions.json") {
		t.Fatalf("unexpected source path: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "hundred", "hundred.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
}
