package warehouse

import (
	"fmt"
	"testing"
	"time"

	"game-data-pipeline/internal/pipeline"
)

func TestBuildCreateTableQuotesReservedWords(t *testing.T) {
	table := pipeline.Table{Name: "pokemon_details", Columns: []string{"id", "order", "name"}}
	sample := pipeline.Record{"id": int64(1), "order": int64(2), "name": "x"}
	schema := pipeline.InferSchema(table, sample)

	stmt := buildCreateTable(`"pokemon_data"."pokemon_details"`, schema, postgresType)
	want := `CREATE TABLE IF NOT EXISTS "pokemon_data"."pokemon_details" ("id" BIGINT, "order" BIGINT, "name" TEXT)`
	if stmt != want {
		t.Fatalf("unexpected statement:\n got %s\nwant %s", stmt, want)
	}
}

func TestBuildInsertPostgresPlaceholders(t *testing.T) {
	stmt := buildInsert(`"ds"."t"`, []string{"a", "b"}, 2, func(n int) string {
		return fmt.Sprintf("$%d", n)
	})
	want := `INSERT INTO "ds"."t" ("a", "b") VALUES ($1, $2), ($3, $4)`
	if stmt != want {
		t.Fatalf("unexpected statement:\n got %s\nwant %s", stmt, want)
	}
}

func TestBuildInsertSQLitePlaceholders(t *testing.T) {
	stmt := buildInsert(`"ds_t"`, []string{"a"}, 3, func(int) string { return "?" })
	want := `INSERT INTO "ds_t" ("a") VALUES (?), (?), (?)`
	if stmt != want {
		t.Fatalf("unexpected statement:\n got %s\nwant %s", stmt, want)
	}
}

func TestEncodeValueSerializesCollections(t *testing.T) {
	got, err := encodeValue([]string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `["a","b"]` {
		t.Fatalf("expected JSON array, got %v", got)
	}

	got, err = encodeValue(map[string]int64{"speed": 45})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"speed":45}` {
		t.Fatalf("expected JSON object, got %v", got)
	}
}

func TestEncodeValuePassesScalarsThrough(t *testing.T) {
	now := time.Now()
	for _, v := range []any{nil, true, "s", int64(3), 1.5, now} {
		got, err := encodeValue(v)
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", v, err)
		}
		if got != v {
			t.Fatalf("expected %v unchanged, got %v", v, got)
		}
	}
}

func TestEncodeRowFollowsColumnOrder(t *testing.T) {
	rec := pipeline.Record{"b": "second", "a": "first", "tags": []string{"x"}}
	vals, err := encodeRow([]string{"a", "b", "tags", "missing"}, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vals) != 4 {
		t.Fatalf("expected 4 values, got %d", len(vals))
	}
	if vals[0] != "first" || vals[1] != "second" {
		t.Fatalf("unexpected ordering: %v", vals)
	}
	if vals[2] != `["x"]` {
		t.Fatalf("expected serialized tags, got %v", vals[2])
	}
	if vals[3] != nil {
		t.Fatalf("expected nil for missing column, got %v", vals[3])
	}
}

func TestQuoteIdentEscapesQuotes(t *testing.T) {
	if got := quoteIdent(`odd"name`); got != `"odd""name"` {
		t.Fatalf("unexpected quoting: %s", got)
	}
}

func TestSQLiteTypeMapping(t *testing.T) {
	cases := map[pipeline.ColumnType]string{
		pipeline.TypeInteger:   "INTEGER",
		pipeline.TypeBool:      "INTEGER",
		pipeline.TypeReal:      "REAL",
		pipeline.TypeText:      "TEXT",
		pipeline.TypeTimestamp: "TEXT",
		pipeline.TypeJSON:      "TEXT",
	}
	for in, want := range cases {
		if got := sqliteType(in); got != want {
			t.Fatalf("%s: expected %s, got %s", in, want, got)
		}
	}
}

func TestPostgresTypeMapping(t *testing.T) {
	cases := map[pipeline.ColumnType]string{
		pipeline.TypeInteger:   "BIGINT",
		pipeline.TypeReal:      "DOUBLE PRECISION",
		pipeline.TypeBool:      "BOOLEAN",
		pipeline.TypeText:      "TEXT",
		pipeline.TypeTimestamp: "TIMESTAMPTZ",
		pipeline.TypeJSON:      "JSONB",
	}
	for in, want := range cases {
		if got := postgresType(in); got != want {
			t.Fatalf("%s: expected %s, got %s", in, want, got)
		}
	}
}
