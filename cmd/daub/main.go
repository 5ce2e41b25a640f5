// cmd/daub/main.go
package main

import (
	"fmt"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"

	"github.com/bethropolis/daub/internal/app"
	"github.com/bethropolis/daub/internal/config"
	"github.com/bethropolis/daub/internal/logger"
)

var version = "dev"

func main() {
	// --- Argument & Flag Parsing ---
	flags := &config.Flags{}
	flags.ParseFlags()

	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		os.Exit(0)
	}

	// --- Configuration ---
	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if cfg == nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Logger.LogFilePath == "" {
		cfg.Logger.LogFilePath = config.DefaultLogPath()
	}

	// --- Logger Initialization ---
	logCloser, logErr := logger.InitFromConfig(cfg.Logger)
	if logErr != nil {
		stlog.Fatalf("Failed to initialize logger: %v", logErr)
	}
	defer logCloser.Close()

	if err != nil {
		logger.Warnf("Config: %v. Continuing with defaults.", err)
	}
	logger.Infof("Starting %s %s...", config.AppName, version)
	logger.Debugf("Log level set to: %s", cfg.Logger.LogLevel)
	logger.Debugf("Log file: %s", cfg.Logger.LogFilePath)

	// --- Create and Run App ---
	daubApp, err := app.NewApp(cfg)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}

	if err := daubApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
