package job

import (
	"log/slog"

	"game-data-pipeline/internal/config"
	"game-data-pipeline/internal/metrics"
	"game-data-pipeline/internal/pipeline"
	"game-data-pipeline/internal/providers/chesscom"
)

// Chess builds the chess.com pipeline job from configuration.
func Chess(cfg config.Config, logger *slog.Logger) *Job {
	return &Job{
		name:      "chess",
		dataset:   cfg.Chess.Dataset,
		cfg:       cfg,
		logger:    logger,
		resources: cfg.Chess.Resources,
		sources: func(rec *metrics.Recorder) map[string]pipeline.Source {
			client := chesscom.NewClient(chesscom.Config{
				BaseURL: cfg.Chess.BaseURL,
				Delay:   cfg.RequestDelay,
				Logger:  logger,
				Metrics: rec,
			})
			return client.Sources(chesscom.Scope{
				Players:    cfg.Chess.Players,
				StartMonth: cfg.Chess.StartMonth,
				EndMonth:   cfg.Chess.EndMonth,
			})
		},
	}
}
