package config

const (
	envWarehouseDriver = "WAREHOUSE_DRIVER"
	envWarehouseDSN    = "WAREHOUSE_DSN"
	envBatchSize       = "PIPELINE_BATCH_SIZE"
	envStateDir        = "PIPELINE_STATE_DIR"

	defaultWarehouseDriver = "sqlite"
	defaultWarehouseDSN    = "file:warehouse.db"
	defaultBatchSize       = 200
	defaultStateDir        = ".pipeline"
)

// WarehouseConfig controls the destination the pipeline writes to.
type WarehouseConfig struct {
	Driver    string
	DSN       string
	BatchSize int
	StateDir  string
}

func loadWarehouse() WarehouseConfig {
	return WarehouseConfig{
		Driver:    envOrDefault(envWarehouseDriver, defaultWarehouseDriver),
		DSN:       envOrDefault(envWarehouseDSN, defaultWarehouseDSN),
		BatchSize: intEnvOrDefault(envBatchSize, defaultBatchSize),
		StateDir:  envOrDefault(envStateDir, defaultStateDir),
	}
}
