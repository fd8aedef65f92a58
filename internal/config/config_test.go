package config

import (
	"testing"
	"time"

	"game-data-pipeline/internal/timeutil"
)

func TestLoadAtDefaultsChessWindow(t *testing.T) {
	t.Setenv("CHESS_START_MONTH", "")
	t.Setenv("CHESS_END_MONTH", "")

	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	cfg := LoadAt(now)

	if cfg.Chess.EndMonth != "2024/06" {
		t.Fatalf("expected end month 2024/06, got %s", cfg.Chess.EndMonth)
	}
	wantStart := timeutil.FormatMonth(now.AddDate(0, 0, -90))
	if cfg.Chess.StartMonth != wantStart {
		t.Fatalf("expected start month %s, got %s", wantStart, cfg.Chess.StartMonth)
	}

	// The default window must always form a valid range.
	if _, err := timeutil.MonthsBetween(cfg.Chess.StartMonth, cfg.Chess.EndMonth); err != nil {
		t.Fatalf("default window is not a valid range: %v", err)
	}
}

func TestLoadAtPartialWindowFallsBackToDefault(t *testing.T) {
	t.Setenv("CHESS_START_MONTH", "2023/01")
	t.Setenv("CHESS_END_MONTH", "")

	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	cfg := LoadAt(now)

	if cfg.Chess.StartMonth == "2023/01" {
		t.Fatal("expected partial window to be replaced by the default window")
	}
	if cfg.Chess.EndMonth != "2024/06" {
		t.Fatalf("expected end month 2024/06, got %s", cfg.Chess.EndMonth)
	}
}

func TestLoadAtExplicitWindowPassesThrough(t *testing.T) {
	t.Setenv("CHESS_START_MONTH", "2023/01")
	t.Setenv("CHESS_END_MONTH", "2023/03")

	cfg := LoadAt(time.Now())
	if cfg.Chess.StartMonth != "2023/01" || cfg.Chess.EndMonth != "2023/03" {
		t.Fatalf("expected explicit window, got %s..%s", cfg.Chess.StartMonth, cfg.Chess.EndMonth)
	}
}

func TestListEnvOrDefault(t *testing.T) {
	t.Setenv("CHESS_PLAYERS", " hikaru , , magnuscarlsen ")
	cfg := LoadAt(time.Now())
	if len(cfg.Chess.Players) != 2 {
		t.Fatalf("expected 2 players, got %v", cfg.Chess.Players)
	}
	if cfg.Chess.Players[0] != "hikaru" || cfg.Chess.Players[1] != "magnuscarlsen" {
		t.Fatalf("unexpected players: %v", cfg.Chess.Players)
	}
}

func TestListEnvOrDefaultUnsetUsesDefaults(t *testing.T) {
	t.Setenv("CHESS_PLAYERS", "")
	cfg := LoadAt(time.Now())
	if len(cfg.Chess.Players) == 0 {
		t.Fatal("expected default players")
	}
}

func TestPokemonLimitRejectsNonPositive(t *testing.T) {
	t.Setenv("POKEMON_LIMIT", "-5")
	cfg := LoadAt(time.Now())
	if cfg.Pokemon.Limit != 0 {
		t.Fatalf("expected limit 0 for invalid value, got %d", cfg.Pokemon.Limit)
	}

	t.Setenv("POKEMON_LIMIT", "25")
	cfg = LoadAt(time.Now())
	if cfg.Pokemon.Limit != 25 {
		t.Fatalf("expected limit 25, got %d", cfg.Pokemon.Limit)
	}
}

func TestWarehouseDefaults(t *testing.T) {
	t.Setenv("WAREHOUSE_DRIVER", "")
	t.Setenv("PIPELINE_BATCH_SIZE", "")
	cfg := LoadAt(time.Now())
	if cfg.Warehouse.Driver != "sqlite" {
		t.Fatalf("expected sqlite driver, got %s", cfg.Warehouse.Driver)
	}
	if cfg.Warehouse.BatchSize != 200 {
		t.Fatalf("expected batch size 200, got %d", cfg.Warehouse.BatchSize)
	}
}

func TestRequestDelayParsing(t *testing.T) {
	t.Setenv("REQUEST_DELAY", "250ms")
	cfg := LoadAt(time.Now())
	if cfg.RequestDelay != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", cfg.RequestDelay)
	}

	t.Setenv("REQUEST_DELAY", "garbage")
	cfg = LoadAt(time.Now())
	if cfg.RequestDelay != 100*time.Millisecond {
		t.Fatalf("expected default 100ms for invalid value, got %v", cfg.RequestDelay)
	}
}
