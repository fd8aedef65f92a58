package warehouse

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"game-data-pipeline/internal/pipeline"
)

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// encodeValue converts a record value into a driver-bindable value. Slices
// and maps are serialized to JSON text; scalars pass through.
func encodeValue(v any) (any, error) {
	switch val := v.(type) {
	case nil, bool, string, int, int32, int64, float32, float64, time.Time:
		return val, nil
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return nil, fmt.Errorf("encoding value %v: %w", v, err)
		}
		return string(data), nil
	}
}

// encodeRow flattens one record into driver values in declared column order.
func encodeRow(columns []string, rec pipeline.Record) ([]any, error) {
	out := make([]any, 0, len(columns))
	for _, col := range columns {
		val, err := encodeValue(rec[col])
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", col, err)
		}
		out = append(out, val)
	}
	return out, nil
}

// buildCreateTable renders CREATE TABLE IF NOT EXISTS for the inferred
// schema, with SQL types resolved through typeFor.
func buildCreateTable(qualified string, schema pipeline.Schema, typeFor func(pipeline.ColumnType) string) string {
	cols := make([]string, 0, len(schema.Columns))
	for _, col := range schema.Columns {
		cols = append(cols, quoteIdent(col.Name)+" "+typeFor(col.Type))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", qualified, strings.Join(cols, ", "))
}

// buildInsert renders a multi-row INSERT with placeholders produced by
// placeholder(n), where n is the 1-based parameter index.
func buildInsert(qualified string, columns []string, rows int, placeholder func(n int) string) string {
	quoted := make([]string, 0, len(columns))
	for _, col := range columns {
		quoted = append(quoted, quoteIdent(col))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES ", qualified, strings.Join(quoted, ", "))
	n := 1
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		for i := range columns {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(placeholder(n))
			n++
		}
		b.WriteString(")")
	}
	return b.String()
}
