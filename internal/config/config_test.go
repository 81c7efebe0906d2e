package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Logging.Level != DefaultLogLevel {
		t.Fatalf("expected level %q, got %q", DefaultLogLevel, cfg.Logging.Level)
	}
	if cfg.Path() != path {
		t.Fatalf("expected path %q, got %q", path, cfg.Path())
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("# empty\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Logging.Level != DefaultLogLevel {
		t.Fatalf("expected default level, got %q", cfg.Logging.Level)
	}
}

func TestLoadFromPath_ReadsFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := strings.Join([]string{
		"logging:",
		"  level: DEBUG",
		"theme_variant: Dark",
		"default_scene: /tmp/scene.yaml",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected level debug, got %q", cfg.Logging.Level)
	}
	if cfg.ThemeVariant != "dark" {
		t.Fatalf("expected theme_variant dark, got %q", cfg.ThemeVariant)
	}
	if cfg.DefaultScene != "/tmp/scene.yaml" {
		t.Fatalf("unexpected default_scene %q", cfg.DefaultScene)
	}
}

func TestLoadFromPath_RejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("hotkey: super+t\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected unknown field to be rejected")
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	cfg.ThemeVariant = "purple"
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "logging.level") || !strings.Contains(msg, "theme_variant") {
		t.Fatalf("expected both problems in %q", msg)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.ThemeVariant = "light"
	if err := cfg.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.ThemeVariant != "light" {
		t.Fatalf("expected light after reload, got %q", again.ThemeVariant)
	}
}
