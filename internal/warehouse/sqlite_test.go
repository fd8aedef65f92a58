package warehouse

import (
	"context"
	"path/filepath"
	"testing"

	"game-data-pipeline/internal/pipeline"
)

func openTestSQLite(t *testing.T) *SQLiteDestination {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	dest, err := OpenSQLite(dsn, "chess_data")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { dest.Close() })
	return dest
}

func TestSQLiteDestinationWritesAndAppends(t *testing.T) {
	dest := openTestSQLite(t)
	ctx := context.Background()

	table := pipeline.Table{Name: "players_profiles", Columns: []string{"username", "followers", "verified", "tags"}}
	sample := pipeline.Record{"username": "alpha", "followers": int64(10), "verified": true, "tags": []string{"gm"}}

	if err := dest.EnsureTable(ctx, table, sample); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows := []pipeline.Record{
		sample,
		{"username": "beta", "followers": int64(3), "verified": false, "tags": []string{}},
	}
	if err := dest.WriteBatch(ctx, table, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Appending must not truncate what is already there.
	if err := dest.WriteBatch(ctx, table, rows[:1]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int
	if err := dest.db.QueryRow(`SELECT COUNT(*) FROM "chess_data_players_profiles"`).Scan(&count); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 rows, got %d", count)
	}

	var tags string
	err := dest.db.QueryRow(`SELECT "tags" FROM "chess_data_players_profiles" WHERE "username" = 'alpha' LIMIT 1`).Scan(&tags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tags != `["gm"]` {
		t.Fatalf("expected serialized tags, got %s", tags)
	}
}

func TestSQLiteDestinationEnsureTableIdempotent(t *testing.T) {
	dest := openTestSQLite(t)
	ctx := context.Background()

	table := pipeline.Table{Name: "items", Columns: []string{"id"}}
	sample := pipeline.Record{"id": int64(1)}
	if err := dest.EnsureTable(ctx, table, sample); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := dest.EnsureTable(ctx, table, sample); err != nil {
		t.Fatalf("expected second ensure to be a no-op, got %v", err)
	}
}

func TestSQLiteDestinationEmptyBatchIsNoOp(t *testing.T) {
	dest := openTestSQLite(t)
	table := pipeline.Table{Name: "items", Columns: []string{"id"}}
	if err := dest.WriteBatch(context.Background(), table, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
