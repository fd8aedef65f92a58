// Package job wires one pipeline run end to end: telemetry, the warehouse
// destination, the provider sequences and the batch runner.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"game-data-pipeline/internal/config"
	"game-data-pipeline/internal/logging"
	"game-data-pipeline/internal/metrics"
	"game-data-pipeline/internal/pipeline"
	"game-data-pipeline/internal/warehouse"
)

const shutdownTimeout = 10 * time.Second

var (
	metricsSetup    = metrics.Setup
	openDestination = warehouse.Open
)

// Job runs one named pipeline against the configured warehouse.
type Job struct {
	name      string
	dataset   string
	cfg       config.Config
	logger    *slog.Logger
	resources []string
	sources   func(rec *metrics.Recorder) map[string]pipeline.Source
}

// Run executes the pipeline to completion and returns the first fatal error.
// Per-item fetch failures inside sequences are logged and skipped; only
// destination and configuration errors abort the run.
func (j *Job) Run(ctx context.Context) error {
	rec, metricsSrv, metricsStop := j.buildMetrics()
	startMetricsServer(metricsSrv, j.logger)
	defer stopMetrics(metricsSrv, metricsStop, j.logger)

	selected, err := resolveSources(j.sources(rec), j.resources)
	if err != nil {
		return err
	}

	dest, err := openDestination(j.cfg.Warehouse, j.dataset)
	if err != nil {
		return fmt.Errorf("opening warehouse: %w", err)
	}
	defer func() {
		if err := dest.Close(); err != nil {
			logging.Warn(j.logger, "destination close failed", "error", err)
		}
	}()

	runner := pipeline.NewRunner(pipeline.RunnerConfig{
		Pipeline:  j.name,
		Dataset:   j.dataset,
		BatchSize: j.cfg.Warehouse.BatchSize,
		StateDir:  j.cfg.Warehouse.StateDir,
	}, dest, j.logger, rec)

	info, err := runner.Run(ctx, selected)
	if err != nil {
		return err
	}

	for _, table := range info.TableNames() {
		logging.Info(j.logger, "table loaded",
			logging.FieldLoadID, info.LoadID,
			logging.FieldDataset, info.Dataset,
			logging.FieldTable, table,
			logging.FieldCount, info.Tables[table],
		)
	}
	logging.Info(j.logger, "pipeline complete",
		logging.FieldLoadID, info.LoadID,
		logging.FieldDataset, info.Dataset,
		logging.FieldDurationMS, info.CompletedAt.Sub(info.StartedAt).Milliseconds(),
	)
	return nil
}

// resolveSources maps requested resource names onto the available sequences,
// preserving request order. An unknown name fails before any fetch happens.
func resolveSources(available map[string]pipeline.Source, requested []string) ([]pipeline.Source, error) {
	selected := make([]pipeline.Source, 0, len(requested))
	for _, name := range requested {
		src, ok := available[name]
		if !ok {
			known := make([]string, 0, len(available))
			for k := range available {
				known = append(known, k)
			}
			sort.Strings(known)
			return nil, fmt.Errorf("unknown resource %q, known resources: %s", name, strings.Join(known, ", "))
		}
		selected = append(selected, src)
	}
	return selected, nil
}

func (j *Job) buildMetrics() (*metrics.Recorder, *http.Server, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      j.cfg.Metrics.Enabled,
		Port:         j.cfg.Metrics.Port,
		ServiceName:  j.cfg.Metrics.ServiceName,
		OtlpEndpoint: j.cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: j.cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(j.logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var srv *http.Server
	if handler != nil && recCfg.Enabled {
		srv = &http.Server{
			Addr:    ":" + recCfg.Port,
			Handler: handler,
		}
	}
	return rec, srv, shutdown
}

func startMetricsServer(srv *http.Server, logger *slog.Logger) {
	if srv == nil {
		return
	}
	go func() {
		logging.Info(logger, "metrics server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, "metrics server failed", "error", err)
		}
	}()
}

func stopMetrics(srv *http.Server, shutdown func(context.Context) error, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if shutdown != nil {
		if err := shutdown(ctx); err != nil {
			logging.Warn(logger, "metrics shutdown failed", "error", err)
		}
	}
	if srv != nil {
		if err := srv.Shutdown(ctx); err != nil {
			logging.Warn(logger, "metrics server shutdown failed", "error", err)
		}
	}
}
