package pipeline

import "context"

// Record is one flattened row headed for the warehouse. Optional fields are
// present with a nil value rather than omitted, so every record carries the
// full declared column set of its table.
type Record map[string]any

// Table names a destination table and declares its column order.
type Table struct {
	Name    string
	Columns []string
}

// Source is a named, lazy, restartable, finite sequence of records for one
// data category. Each may be called multiple times; every call re-runs the
// underlying fetch. The callback's error aborts iteration and is returned.
type Source interface {
	Table() Table
	Each(ctx context.Context, fn func(Record) error) error
}

// Destination receives batches of records for warehouse tables. Tables are
// created if absent and appended to; the pipeline never truncates.
type Destination interface {
	EnsureTable(ctx context.Context, table Table, sample Record) error
	WriteBatch(ctx context.Context, table Table, rows []Record) error
	Close() error
}
