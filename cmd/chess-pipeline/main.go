package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"game-data-pipeline/internal/cloudenv"
	"game-data-pipeline/internal/config"
	"game-data-pipeline/internal/job"
	"game-data-pipeline/internal/logging"
)

const appVersion = "dev"

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "chess-pipeline",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cloudenv.NewDetector().LogEnvironment(ctx, logger)

	if err := job.Chess(cfg, logger).Run(ctx); err != nil {
		logger.Error("pipeline failed", "error", err)
		os.Exit(1)
	}
}
