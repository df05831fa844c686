package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/michelleon/overwatch-stats/internal/app"
	"github.com/michelleon/overwatch-stats/internal/config"
	"github.com/michelleon/overwatch-stats/internal/observability"
	"github.com/michelleon/overwatch-stats/internal/platform/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stdout)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("uptrace shutdown failed", "error", err)
		}
	}()

	if err := app.NewCLI(cfg, logger, os.Stdout).ExecuteContext(ctx); err != nil {
		logger.Error("ovrstats failed", "error", err)
		return 1
	}
	return 0
}
