// Package main implements the entry point for the citecheck API server,
// which checks bibliographic citations against citation style rules.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/citecheck/internal/config"
	"github.com/phrazzld/citecheck/internal/platform/logger"
	"github.com/phrazzld/citecheck/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Getenv("CITECHECK_CONFIG_FILE")); err != nil {
		log.Fatalf("citecheck server: %v", err)
	}
}

// run loads configuration, sets up logging and serves until ctx is done.
func run(ctx context.Context, configFile string) error {
	app, err := initializeApp(configFile)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}

// initializeApp loads configuration and sets up application components.
func initializeApp(configFile string) (*server.Application, error) {
	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"default_style", cfg.Validation.DefaultStyle)

	app, err := server.New(cfg, l, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return app, nil
}
