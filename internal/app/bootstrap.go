package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/gopherkit/env"

	"github.com/ferdiebergado/kubodir/internal/config"
	"github.com/ferdiebergado/kubodir/internal/pkg/logging"
)

const (
	envFile    = ".env"
	configFile = "config.json"
)

func Run(baseCtx context.Context) error {
	slog.Info("Initializing...")

	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if os.Getenv("ENV") != "production" && fileExists(envFile) {
		if err := env.Load(envFile); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logging.SetupLogger(cfg.App.Name, cfg.App.Env, cfg.Log.Level, os.Stdout)

	logger, err := logging.NewZapLogger(cfg.App.Env, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	provider, err := newProvider(signalCtx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := provider.Close(); err != nil {
			slog.Error("Failed to release resources.", "reason", err)
		}
	}()

	return New(cfg, provider).Start(signalCtx)
}

// loadConfig reads config.json when present and the environment otherwise.
func loadConfig() (*config.Config, error) {
	if !fileExists(configFile) {
		slog.Info("No config file found, reading config from the environment.")
		return config.FromEnv()
	}
	return config.Load(configFile)
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return !errors.Is(err, os.ErrNotExist)
}
