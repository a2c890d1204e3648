// Package main is the entry point for the Meshgrad editor.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/meshgrad/internal/config"
	"github.com/Faultbox/meshgrad/internal/editor"
	"github.com/Faultbox/meshgrad/internal/logger"
)

func main() {
	runtime.LockOSThread()

	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Meshgrad Editor ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	app, err := editor.New(cfg)
	if err != nil {
		logger.Error("failed to create editor", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	app.Run()

	logger.Info("editor closed normally")
}
