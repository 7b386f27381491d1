package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "format = \"dot\"\nno_color = true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Format != "dot" {
		t.Errorf("Format = %q, want dot", cfg.Format)
	}
	if !cfg.NoColor {
		t.Error("NoColor = false, want true")
	}
}

func TestLoadConfigMissingDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.toml")

	cfg, err := loadConfig(path, false)
	if err != nil {
		t.Fatalf("missing default config must not error, got: %v", err)
	}
	if cfg.Format != "svg" {
		t.Errorf("Format = %q, want svg fallback", cfg.Format)
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.toml")

	if _, err := loadConfig(path, true); err == nil {
		t.Error("explicitly given missing config must error")
	}
}

func TestLoadConfigEmptyFormatFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("no_color = true\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path, true)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Format != "svg" {
		t.Errorf("Format = %q, want svg fallback", cfg.Format)
	}
}

func TestLoadConfigNoPath(t *testing.T) {
	cfg, err := loadConfig("", false)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Format != "svg" {
		t.Errorf("Format = %q, want svg", cfg.Format)
	}
}
