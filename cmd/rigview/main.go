// Package main is the entry point for the viewrig viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/viewrig/internal/config"
	"github.com/Faultbox/viewrig/internal/logger"
	"github.com/Faultbox/viewrig/internal/viewer"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, configPath, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== viewrig ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	v, err := viewer.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	// First run: write the defaults so there is a file to edit live
	if configPath == "" {
		if err := config.Default().Save(); err != nil {
			logger.Warn("could not write default config", zap.Error(err))
		} else {
			configPath = config.UserConfigPath()
			logger.Info("wrote default config", zap.String("path", configPath))
		}
	}

	if configPath != "" {
		w, err := config.Watch(configPath)
		if err != nil {
			logger.Warn("config hot reload disabled", zap.String("path", configPath), zap.Error(err))
		} else {
			defer w.Close()
			v.WatchConfig(w)
			logger.Info("watching config", zap.String("path", configPath))
		}
	}

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
