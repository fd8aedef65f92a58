package metrics

import (
	"sync"
	"time"
)

type resourceStats struct {
	fetches          int
	errors           int
	rateLimitHits    int
	lastRetryAfter   time.Duration
	lastFetchLatency time.Duration
}

type tableStats struct {
	batches     int
	batchErrors int
	rows        int
}

// Recorder captures lightweight, in-memory metrics about resource fetches and
// warehouse batch writes. It is intentionally simple so tests can assert on
// counts without an exporter.
type Recorder struct {
	mu        sync.Mutex
	resources map[string]*resourceStats
	tables    map[string]*tableStats
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		resources: make(map[string]*resourceStats),
		tables:    make(map[string]*tableStats),
		otel:      otel,
	}
}

// RecordFetchAttempt increments fetch counters for a resource and stores the
// last observed latency. A non-nil err marks the item as skipped.
func (r *Recorder) RecordFetchAttempt(resource string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureResource(resource)
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordFetchAttempt(resource, duration, err)
	}
}

// RecordRateLimit tracks that an upstream response hit a rate limit and stores
// the last Retry-After.
func (r *Recorder) RecordRateLimit(resource string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureResource(resource)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	if r.otel != nil {
		r.otel.recordRateLimit(resource, retryAfter)
	}
}

// RecordLoadBatch tracks one batch write to a destination table.
func (r *Recorder) RecordLoadBatch(table string, rows int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureTable(table)
	stats.batches++
	if err != nil {
		stats.batchErrors++
	} else {
		stats.rows += rows
	}
	if r.otel != nil {
		r.otel.recordLoadBatch(table, rows, duration, err)
	}
}

// FetchAttempts returns the total fetches recorded for a resource.
func (r *Recorder) FetchAttempts(resource string) int {
	return r.ResourceSnapshot(resource).Fetches
}

// FetchErrors returns the total failed fetches recorded for a resource.
func (r *Recorder) FetchErrors(resource string) int {
	return r.ResourceSnapshot(resource).Errors
}

// RateLimitHits returns the number of rate limit events seen for a resource.
func (r *Recorder) RateLimitHits(resource string) int {
	return r.ResourceSnapshot(resource).RateLimitHits
}

// RowsLoaded returns the rows successfully written to a table.
func (r *Recorder) RowsLoaded(table string) int {
	return r.TableSnapshot(table).Rows
}

// ResourceSnapshot is a copy of the current fetch stats for one resource.
type ResourceSnapshot struct {
	Fetches          int
	Errors           int
	RateLimitHits    int
	LastRetryAfter   time.Duration
	LastFetchLatency time.Duration
}

func (r *Recorder) ResourceSnapshot(resource string) ResourceSnapshot {
	if r == nil {
		return ResourceSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.resources[resource]
	if !ok || stats == nil {
		return ResourceSnapshot{}
	}
	return ResourceSnapshot{
		Fetches:          stats.fetches,
		Errors:           stats.errors,
		RateLimitHits:    stats.rateLimitHits,
		LastRetryAfter:   stats.lastRetryAfter,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

// TableSnapshot is a copy of the current load stats for one table.
type TableSnapshot struct {
	Batches     int
	BatchErrors int
	Rows        int
}

func (r *Recorder) TableSnapshot(table string) TableSnapshot {
	if r == nil {
		return TableSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.tables[table]
	if !ok || stats == nil {
		return TableSnapshot{}
	}
	return TableSnapshot{
		Batches:     stats.batches,
		BatchErrors: stats.batchErrors,
		Rows:        stats.rows,
	}
}

func (r *Recorder) ensureResource(resource string) *resourceStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.resources[resource]
	if !ok {
		stats = &resourceStats{}
		r.resources[resource] = stats
	}
	return stats
}

func (r *Recorder) ensureTable(table string) *tableStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.tables[table]
	if !ok {
		stats = &tableStats{}
		r.tables[table] = stats
	}
	return stats
}
