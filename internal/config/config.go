package config

import "time"

// Config holds runtime configuration for a pipeline run.
type Config struct {
	LogLevel     string
	LogFormat    string
	RequestDelay Duration
	Chess        ChessConfig
	Pokemon      PokemonConfig
	Warehouse    WarehouseConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return LoadAt(time.Now())
}

// LoadAt reads configuration relative to the given clock time. Date-range
// defaults (last 90 days of chess games) are derived from it.
func LoadAt(now time.Time) Config {
	return Config{
		LogLevel:     envOrDefault(envLogLevel, ""),
		LogFormat:    envOrDefault(envLogFormat, ""),
		RequestDelay: durationEnvOrDefault(envRequestDelay, defaultRequestDelay),
		Chess:        loadChess(now),
		Pokemon:      loadPokemon(),
		Warehouse:    loadWarehouse(),
		Metrics:      loadMetrics(),
	}
}
