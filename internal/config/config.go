// Package config handles editor configuration loading and management.
package config

// Config holds all editor settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Grid      GridConfig      `yaml:"grid"`
	Animation AnimationConfig `yaml:"animation"`
	Render    RenderConfig    `yaml:"render"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// GridConfig holds the initial mesh dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AnimationConfig holds the initial animation settings.
type AnimationConfig struct {
	Kind      string  `yaml:"kind"`
	Speed     float32 `yaml:"speed"`
	Intensity float32 `yaml:"intensity"`
	Enabled   bool    `yaml:"enabled"`
}

// RenderConfig holds rendering settings.
type RenderConfig struct {
	Smoothing  bool `yaml:"smoothing"`
	Resolution int  `yaml:"resolution"` // subdivision steps per mesh cell
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			VSync:  true,
		},
		Grid: GridConfig{
			Width:  3,
			Height: 3,
		},
		Animation: AnimationConfig{
			Kind:      "wave",
			Speed:     1.0,
			Intensity: 1.0,
			Enabled:   false,
		},
		Render: RenderConfig{
			Smoothing:  true,
			Resolution: 16,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Normalize clamps values to their valid ranges.
// Grid dimensions stay within [2, 5], speed within [0.1, 3.0] and
// intensity within [0.1, 2.0].
func (c *Config) Normalize() {
	c.Grid.Width = clampInt(c.Grid.Width, 2, 5)
	c.Grid.Height = clampInt(c.Grid.Height, 2, 5)
	c.Animation.Speed = clampFloat(c.Animation.Speed, 0.1, 3.0)
	c.Animation.Intensity = clampFloat(c.Animation.Intensity, 0.1, 2.0)
	if c.Render.Resolution < 1 {
		c.Render.Resolution = 1
	}
	if c.Window.Width < 320 {
		c.Window.Width = 320
	}
	if c.Window.Height < 240 {
		c.Window.Height = 240
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
