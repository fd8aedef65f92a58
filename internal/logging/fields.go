package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldResource   = "resource"
	FieldTable      = "table"
	FieldDataset    = "dataset"
	FieldPlayer     = "player"
	FieldMonth      = "month"
	FieldItem       = "item"
	FieldLoadID     = "load_id"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
