package pipeline

import "time"

// ColumnType is the destination-agnostic type inferred for a column.
type ColumnType string

const (
	TypeInteger   ColumnType = "integer"
	TypeReal      ColumnType = "real"
	TypeBool      ColumnType = "bool"
	TypeText      ColumnType = "text"
	TypeTimestamp ColumnType = "timestamp"
	// TypeJSON covers slice and map values, serialized as JSON text.
	TypeJSON ColumnType = "json"
)

// Column pairs a name with its inferred type.
type Column struct {
	Name string
	Type ColumnType
}

// Schema is the inferred shape of one table, in declared column order.
type Schema struct {
	Table   string
	Columns []Column
}

// InferSchema derives a schema from the table's declared columns and the Go
// types in a sample record. Columns whose sample value is nil fall back to
// text, which every destination can hold.
func InferSchema(table Table, sample Record) Schema {
	cols := make([]Column, 0, len(table.Columns))
	for _, name := range table.Columns {
		cols = append(cols, Column{Name: name, Type: inferType(sample[name])})
	}
	return Schema{Table: table.Name, Columns: cols}
}

func inferType(value any) ColumnType {
	switch value.(type) {
	case nil:
		return TypeText
	case int, int32, int64:
		return TypeInteger
	case float32, float64:
		return TypeReal
	case bool:
		return TypeBool
	case time.Time:
		return TypeTimestamp
	case string:
		return TypeText
	default:
		// Slices, maps and anything nested land as serialized JSON.
		return TypeJSON
	}
}
