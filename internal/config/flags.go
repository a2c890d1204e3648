package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagWidth  = flag.Int("width", 0, "Window width")
	flagHeight = flag.Int("height", 0, "Window height")
	flagGrid   = flag.Int("grid", 0, "Initial grid size (2-5, applies to both axes)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagGrid > 0 {
		cfg.Grid.Width = *flagGrid
		cfg.Grid.Height = *flagGrid
	}
}
