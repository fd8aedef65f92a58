package config

import "time"

const (
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envRequestDelay = "REQUEST_DELAY"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	// Fixed pacing between successive item requests; both upstream APIs are
	// public and unauthenticated, so stay well under their courtesy limits.
	defaultRequestDelay = 100 * Duration(time.Millisecond)
	defaultMetricsPort  = "9090"
)
