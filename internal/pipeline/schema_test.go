package pipeline

import (
	"testing"
	"time"
)

func TestInferSchemaCoversGoTypes(t *testing.T) {
	table := Table{
		Name:    "samples",
		Columns: []string{"id", "score", "active", "name", "seen_at", "tags", "missing"},
	}
	sample := Record{
		"id":      int64(7),
		"score":   1.5,
		"active":  true,
		"name":    "alpha",
		"seen_at": time.Now(),
		"tags":    []string{"a", "b"},
		"missing": nil,
	}

	schema := InferSchema(table, sample)
	if schema.Table != "samples" {
		t.Fatalf("expected table samples, got %s", schema.Table)
	}

	want := map[string]ColumnType{
		"id":      TypeInteger,
		"score":   TypeReal,
		"active":  TypeBool,
		"name":    TypeText,
		"seen_at": TypeTimestamp,
		"tags":    TypeJSON,
		"missing": TypeText,
	}
	if len(schema.Columns) != len(table.Columns) {
		t.Fatalf("expected %d columns, got %d", len(table.Columns), len(schema.Columns))
	}
	for i, col := range schema.Columns {
		if col.Name != table.Columns[i] {
			t.Fatalf("column %d: expected %s, got %s", i, table.Columns[i], col.Name)
		}
		if col.Type != want[col.Name] {
			t.Fatalf("column %s: expected %s, got %s", col.Name, want[col.Name], col.Type)
		}
	}
}
