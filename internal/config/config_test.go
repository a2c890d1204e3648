package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 || cfg.Window.Height != 800 {
		t.Errorf("unexpected default window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.VSync {
		t.Error("expected VSync enabled by default")
	}
	if cfg.Grid.Width != 3 || cfg.Grid.Height != 3 {
		t.Errorf("expected default 3x3 grid, got %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Animation.Kind != "wave" {
		t.Errorf("expected default kind wave, got %q", cfg.Animation.Kind)
	}
	if cfg.Animation.Speed != 1.0 || cfg.Animation.Intensity != 1.0 {
		t.Errorf("unexpected default animation params: speed=%v intensity=%v",
			cfg.Animation.Speed, cfg.Animation.Intensity)
	}
	if !cfg.Render.Smoothing {
		t.Error("expected smoothing enabled by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %q", cfg.Logging.Level)
	}
}

func TestNormalizeClampsRanges(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*Config)
		check         func(*Config) bool
		wantViolation string
	}{
		{
			name:   "grid too small",
			mutate: func(c *Config) { c.Grid.Width = 1; c.Grid.Height = 0 },
			check:  func(c *Config) bool { return c.Grid.Width == 2 && c.Grid.Height == 2 },
		},
		{
			name:   "grid too large",
			mutate: func(c *Config) { c.Grid.Width = 9; c.Grid.Height = 6 },
			check:  func(c *Config) bool { return c.Grid.Width == 5 && c.Grid.Height == 5 },
		},
		{
			name:   "speed below minimum",
			mutate: func(c *Config) { c.Animation.Speed = 0 },
			check:  func(c *Config) bool { return c.Animation.Speed == 0.1 },
		},
		{
			name:   "speed above maximum",
			mutate: func(c *Config) { c.Animation.Speed = 10 },
			check:  func(c *Config) bool { return c.Animation.Speed == 3.0 },
		},
		{
			name:   "intensity below minimum",
			mutate: func(c *Config) { c.Animation.Intensity = -1 },
			check:  func(c *Config) bool { return c.Animation.Intensity == 0.1 },
		},
		{
			name:   "intensity above maximum",
			mutate: func(c *Config) { c.Animation.Intensity = 5 },
			check:  func(c *Config) bool { return c.Animation.Intensity == 2.0 },
		},
		{
			name:   "resolution floor",
			mutate: func(c *Config) { c.Render.Resolution = 0 },
			check:  func(c *Config) bool { return c.Render.Resolution == 1 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			cfg.Normalize()
			if !tt.check(cfg) {
				t.Errorf("Normalize did not clamp correctly: %+v", cfg)
			}
		})
	}
}

func TestNormalizeKeepsValidValues(t *testing.T) {
	cfg := Default()
	cfg.Grid.Width = 5
	cfg.Grid.Height = 2
	cfg.Animation.Speed = 2.5
	cfg.Animation.Intensity = 1.5
	cfg.Normalize()

	if cfg.Grid.Width != 5 || cfg.Grid.Height != 2 {
		t.Errorf("valid grid changed to %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Animation.Speed != 2.5 {
		t.Errorf("valid speed changed to %v", cfg.Animation.Speed)
	}
	if cfg.Animation.Intensity != 1.5 {
		t.Errorf("valid intensity changed to %v", cfg.Animation.Intensity)
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.yaml")

	content := `window:
  width: 1024
  height: 768
  vsync: false
grid:
  width: 4
  height: 5
animation:
  kind: spiral
  speed: 2.0
  intensity: 0.5
  enabled: true
render:
  smoothing: false
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("unexpected window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.VSync {
		t.Error("expected VSync disabled")
	}
	if cfg.Grid.Width != 4 || cfg.Grid.Height != 5 {
		t.Errorf("unexpected grid %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Animation.Kind != "spiral" {
		t.Errorf("unexpected kind %q", cfg.Animation.Kind)
	}
	if !cfg.Animation.Enabled {
		t.Error("expected animation enabled")
	}
	if cfg.Render.Smoothing {
		t.Error("expected smoothing disabled")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("unexpected log level %q", cfg.Logging.Level)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.yaml")

	content := `grid:
  width: 5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Grid.Width != 5 {
		t.Errorf("expected grid width 5, got %d", cfg.Grid.Width)
	}
	if cfg.Grid.Height != 3 {
		t.Errorf("expected default grid height 3, got %d", cfg.Grid.Height)
	}
	if cfg.Window.Width != 1280 {
		t.Errorf("expected default window width, got %d", cfg.Window.Width)
	}
}

func TestSaveUsesConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("config dir override uses XDG_CONFIG_HOME")
	}
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg := Default()
	cfg.Grid.Width = 5
	cfg.Animation.Kind = "bounce"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	path := filepath.Join(tempDir, "meshgrad", "config.yaml")
	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if loaded.Grid.Width != 5 {
		t.Errorf("expected grid width 5, got %d", loaded.Grid.Width)
	}
	if loaded.Animation.Kind != "bounce" {
		t.Errorf("expected kind bounce, got %q", loaded.Animation.Kind)
	}
}

func TestSaveToNormalizes(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.yaml")

	cfg := Default()
	cfg.Grid.Width = 9
	cfg.Animation.Speed = 10

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if loaded.Grid.Width != 5 {
		t.Errorf("expected saved grid width clamped to 5, got %d", loaded.Grid.Width)
	}
	if loaded.Animation.Speed != 3.0 {
		t.Errorf("expected saved speed clamped to 3.0, got %v", loaded.Animation.Speed)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Grid.Width = 4
	cfg.Animation.Kind = "pulse"
	cfg.Animation.Speed = 1.5

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if loaded.Grid.Width != 4 {
		t.Errorf("expected grid width 4, got %d", loaded.Grid.Width)
	}
	if loaded.Animation.Kind != "pulse" {
		t.Errorf("expected kind pulse, got %q", loaded.Animation.Kind)
	}
	if loaded.Animation.Speed != 1.5 {
		t.Errorf("expected speed 1.5, got %v", loaded.Animation.Speed)
	}
}
