package job

import (
	"log/slog"

	"game-data-pipeline/internal/config"
	"game-data-pipeline/internal/metrics"
	"game-data-pipeline/internal/pipeline"
	"game-data-pipeline/internal/providers"
	"game-data-pipeline/internal/providers/pokeapi"
)

// Pokemon builds the PokeAPI pipeline job from configuration. A configured
// limit caps the pokemon_details sequence without issuing extra requests.
func Pokemon(cfg config.Config, logger *slog.Logger) *Job {
	return &Job{
		name:      "pokemon",
		dataset:   cfg.Pokemon.Dataset,
		cfg:       cfg,
		logger:    logger,
		resources: cfg.Pokemon.Resources,
		sources: func(rec *metrics.Recorder) map[string]pipeline.Source {
			client := pokeapi.NewClient(pokeapi.Config{
				BaseURL: cfg.Pokemon.BaseURL,
				Delay:   cfg.RequestDelay,
				Logger:  logger,
				Metrics: rec,
			})
			srcs := client.Sources()
			if cfg.Pokemon.Limit > 0 {
				srcs[pokeapi.ResourcePokemonDetails] = providers.WithLimit(srcs[pokeapi.ResourcePokemonDetails], cfg.Pokemon.Limit)
			}
			return srcs
		},
	}
}
