package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"game-data-pipeline/internal/logging"
	"game-data-pipeline/internal/metrics"
)

const defaultBatchSize = 200

// LoadInfo summarizes one completed pipeline run.
type LoadInfo struct {
	LoadID      string         `json:"loadId"`
	Pipeline    string         `json:"pipeline"`
	Dataset     string         `json:"dataset"`
	StartedAt   time.Time      `json:"startedAt"`
	CompletedAt time.Time      `json:"completedAt"`
	Tables      map[string]int `json:"tables"`
}

// TableNames returns the loaded table names in sorted order.
func (li LoadInfo) TableNames() []string {
	names := make([]string, 0, len(li.Tables))
	for name := range li.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Runner streams sources into a destination in batches and records per-table
// row counts. A destination failure aborts the whole run; source-internal
// item failures are the sources' concern and never reach the runner.
type Runner struct {
	pipeline  string
	dataset   string
	dest      Destination
	logger    *slog.Logger
	metrics   *metrics.Recorder
	batchSize int
	stateDir  string
	now       func() time.Time
}

// RunnerConfig carries runner construction options.
type RunnerConfig struct {
	Pipeline  string
	Dataset   string
	BatchSize int
	StateDir  string
}

// NewRunner constructs a Runner writing to dest.
func NewRunner(cfg RunnerConfig, dest Destination, logger *slog.Logger, recorder *metrics.Recorder) *Runner {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	return &Runner{
		pipeline:  cfg.Pipeline,
		dataset:   cfg.Dataset,
		dest:      dest,
		logger:    logger,
		metrics:   recorder,
		batchSize: cfg.BatchSize,
		stateDir:  cfg.StateDir,
		now:       time.Now,
	}
}

// Run drives every source to completion, in order. It returns the load info
// with per-table row counts; any destination error aborts and propagates.
func (r *Runner) Run(ctx context.Context, sources []Source) (LoadInfo, error) {
	started := r.now().UTC()
	info := LoadInfo{
		LoadID:    fmt.Sprintf("%d", started.UnixNano()),
		Pipeline:  r.pipeline,
		Dataset:   r.dataset,
		StartedAt: started,
		Tables:    make(map[string]int, len(sources)),
	}

	for _, src := range sources {
		count, err := r.loadSource(ctx, src)
		if err != nil {
			return info, fmt.Errorf("loading %s: %w", src.Table().Name, err)
		}
		info.Tables[src.Table().Name] = count
	}

	info.CompletedAt = r.now().UTC()
	if r.stateDir != "" {
		if err := writeRunManifest(r.stateDir, info); err != nil {
			logging.Warn(r.logger, "run manifest write failed", "error", err)
		}
	}
	return info, nil
}

func (r *Runner) loadSource(ctx context.Context, src Source) (int, error) {
	table := src.Table()
	start := time.Now()
	count := 0
	batch := make([]Record, 0, r.batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		batchStart := time.Now()
		err := r.dest.WriteBatch(ctx, table, batch)
		if r.metrics != nil {
			r.metrics.RecordLoadBatch(table.Name, len(batch), time.Since(batchStart), err)
		}
		if err != nil {
			return err
		}
		count += len(batch)
		batch = batch[:0]
		return nil
	}

	ensured := false
	err := src.Each(ctx, func(rec Record) error {
		if !ensured {
			if err := r.dest.EnsureTable(ctx, table, rec); err != nil {
				return err
			}
			ensured = true
		}
		batch = append(batch, rec)
		if len(batch) >= r.batchSize {
			return flush()
		}
		return nil
	})
	if err != nil {
		return count, err
	}
	if err := flush(); err != nil {
		return count, err
	}

	logging.Info(r.logger, "source loaded",
		logging.FieldTable, table.Name,
		logging.FieldCount, count,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return count, nil
}
