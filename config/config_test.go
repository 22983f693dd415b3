package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Name != "cellforge" {
		t.Errorf("Expected default name %q, got %q", "cellforge", cfg.Name)
	}
	if cfg.Width != 80 || cfg.Height != 24 {
		t.Errorf("Expected default dimensions 80x24, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.MinFrameIntervalMs != 0 {
		t.Errorf("Expected uncapped default, got %d", cfg.MinFrameIntervalMs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := writeConfig(t, `
name = "bounce"
width = 120
height = 40
min_frame_interval_ms = 16
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Name != "bounce" {
		t.Errorf("Expected name %q, got %q", "bounce", cfg.Name)
	}
	if cfg.Width != 120 || cfg.Height != 40 {
		t.Errorf("Expected 120x40, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.MinFrameIntervalMs != 16 {
		t.Errorf("Expected interval 16, got %d", cfg.MinFrameIntervalMs)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `name = "partial"`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Name != "partial" {
		t.Errorf("Expected name %q, got %q", "partial", cfg.Name)
	}
	if cfg.Width != 80 || cfg.Height != 24 {
		t.Errorf("Expected default dimensions to survive, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []string{
		`width = -1`,
		`height = 0`,
		`min_frame_interval_ms = -5`,
	}
	for _, content := range cases {
		if _, err := Load(writeConfig(t, content)); err == nil {
			t.Errorf("Expected validation error for %q", content)
		}
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	if _, err := Load(writeConfig(t, `width = "not a number"`)); err == nil {
		t.Error("Expected parse error for malformed file")
	}
}

func TestLoopConversion(t *testing.T) {
	cfg := &Config{Name: "demo", Width: 10, Height: 5, MinFrameIntervalMs: 33}
	lc := cfg.Loop()

	if lc.Name != "demo" {
		t.Errorf("Expected name %q, got %q", "demo", lc.Name)
	}
	if lc.Width != 10 || lc.Height != 5 {
		t.Errorf("Expected 10x5, got %dx%d", lc.Width, lc.Height)
	}
	if lc.MinFrameInterval != 33*time.Millisecond {
		t.Errorf("Expected 33ms interval, got %v", lc.MinFrameInterval)
	}
}
