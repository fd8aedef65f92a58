package config

import (
	"time"

	"game-data-pipeline/internal/timeutil"
)

const (
	envChessResources  = "CHESS_RESOURCES"
	envChessPlayers    = "CHESS_PLAYERS"
	envChessStartMonth = "CHESS_START_MONTH"
	envChessEndMonth   = "CHESS_END_MONTH"
	envChessBaseURL    = "CHESS_BASE_URL"

	defaultChessBaseURL = "https://api.chess.com/pub"
	defaultChessDataset = "chess_data"

	// Default game history window when no month range is configured.
	defaultChessWindowDays = 90
)

var (
	defaultChessResources = []string{"players_profiles", "players_online_status"}
	defaultChessPlayers   = []string{"magnuscarlsen", "rpragchess", "vincentkeymer", "dommarajugukesh"}
)

// ChessConfig controls the chess.com pipeline run.
type ChessConfig struct {
	BaseURL    string
	Dataset    string
	Resources  []string
	Players    []string
	StartMonth string
	EndMonth   string
}

func loadChess(now time.Time) ChessConfig {
	cfg := ChessConfig{
		BaseURL:    envOrDefault(envChessBaseURL, defaultChessBaseURL),
		Dataset:    defaultChessDataset,
		Resources:  listEnvOrDefault(envChessResources, defaultChessResources),
		Players:    listEnvOrDefault(envChessPlayers, defaultChessPlayers),
		StartMonth: envOrDefault(envChessStartMonth, ""),
		EndMonth:   envOrDefault(envChessEndMonth, ""),
	}

	// Either bound missing means fall back to the default window for both.
	if cfg.StartMonth == "" || cfg.EndMonth == "" {
		cfg.StartMonth = timeutil.FormatMonth(now.AddDate(0, 0, -defaultChessWindowDays))
		cfg.EndMonth = timeutil.FormatMonth(now)
	}
	return cfg
}
