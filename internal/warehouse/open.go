package warehouse

import (
	"fmt"

	"game-data-pipeline/internal/config"
	"game-data-pipeline/internal/pipeline"
)

// Open resolves the configured driver to a destination for the dataset.
func Open(cfg config.WarehouseConfig, dataset string) (pipeline.Destination, error) {
	switch cfg.Driver {
	case "postgres":
		return OpenPostgres(cfg.DSN, dataset)
	case "sqlite", "":
		return OpenSQLite(cfg.DSN, dataset)
	default:
		return nil, fmt.Errorf("unknown warehouse driver %q", cfg.Driver)
	}
}
