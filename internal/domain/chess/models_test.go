package chess

import (
	"testing"
	"time"

	"game-data-pipeline/internal/pipeline"
)

func assertRowMatchesColumns(t *testing.T, rec pipeline.Record, columns []string) {
	t.Helper()
	if len(rec) != len(columns) {
		t.Fatalf("expected %d fields, got %d", len(columns), len(rec))
	}
	for _, col := range columns {
		if _, ok := rec[col]; !ok {
			t.Fatalf("missing declared column %s", col)
		}
	}
}

func TestRowsCarryEveryDeclaredColumn(t *testing.T) {
	assertRowMatchesColumns(t, PlayerProfile{}.Row(), ProfileColumns)
	assertRowMatchesColumns(t, GameRecord{}.Row(), GameColumns)
	assertRowMatchesColumns(t, OnlineStatus{CheckedAt: time.Now()}.Row(), OnlineStatusColumns)
	assertRowMatchesColumns(t, Archive{}.Row(), ArchiveColumns)
}

func TestProfileRowOptionalFieldsNullWhenUnset(t *testing.T) {
	row := PlayerProfile{Username: "someone"}.Row()
	for _, col := range []string{"name", "title", "country", "location", "avatar"} {
		if row[col] != nil {
			t.Fatalf("expected %s null, got %v", col, row[col])
		}
	}
	if row["username"] != "someone" {
		t.Fatalf("unexpected username: %v", row["username"])
	}
}
