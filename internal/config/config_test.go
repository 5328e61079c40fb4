package config

import (
	"os"
	"path/filepath"
	"testing"
)

// pointConfigAt isolates the test from the real user environment
func pointConfigAt(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TABLERO_ADDR", "")
	t.Setenv("TABLERO_DB_PATH", "")
	t.Setenv("TABLERO_LOG_LEVEL", "")
}

func TestLoadDefaults(t *testing.T) {
	pointConfigAt(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("Expected default addr ':8080', got %q", cfg.Addr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got %q", cfg.LogLevel)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Errorf("Expected two default origin patterns, got %v", cfg.AllowedOrigins)
	}
	if cfg.DBPath == "" {
		t.Error("Expected a default db path")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	pointConfigAt(t, dir)

	configDir := filepath.Join(dir, "tablero")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	content := []byte("addr: \":9090\"\ndb_path: /tmp/custom.db\nallowed_origins:\n  - \"https://board.example.com\"\n")
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), content, 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Errorf("Expected addr ':9090', got %q", cfg.Addr)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("Expected custom db path, got %q", cfg.DBPath)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://board.example.com" {
		t.Errorf("Expected file origins, got %v", cfg.AllowedOrigins)
	}
	// Unset fields still get defaults
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level, got %q", cfg.LogLevel)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	pointConfigAt(t, dir)

	configDir := filepath.Join(dir, "tablero")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("addr: [broken"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected an error for malformed config")
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	pointConfigAt(t, dir)

	configDir := filepath.Join(dir, "tablero")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("addr: \":9090\"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("TABLERO_ADDR", ":7070")
	t.Setenv("TABLERO_DB_PATH", "/tmp/env.db")
	t.Setenv("TABLERO_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Addr != ":7070" {
		t.Errorf("Expected env addr to win, got %q", cfg.Addr)
	}
	if cfg.DBPath != "/tmp/env.db" {
		t.Errorf("Expected env db path to win, got %q", cfg.DBPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected env log level to win, got %q", cfg.LogLevel)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	pointConfigAt(t, t.TempDir())

	original := &Config{
		Addr:           ":9999",
		DBPath:         "/tmp/saved.db",
		LogLevel:       "warn",
		AllowedOrigins: []string{"http://localhost:*"},
	}
	if err := original.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.Addr != original.Addr || loaded.DBPath != original.DBPath || loaded.LogLevel != original.LogLevel {
		t.Errorf("Round trip mismatch: saved %+v, loaded %+v", original, loaded)
	}
}
