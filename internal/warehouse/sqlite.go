package warehouse

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"game-data-pipeline/internal/pipeline"
)

// SQLiteDestination writes pipeline records into a local sqlite file, the
// development stand-in for the managed warehouse. Table names are prefixed
// with the dataset since sqlite has no schemas.
type SQLiteDestination struct {
	db      *sql.DB
	dataset string
}

// OpenSQLite opens (or creates) the sqlite database at dsn.
func OpenSQLite(dsn, dataset string) (*SQLiteDestination, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	return &SQLiteDestination{db: db, dataset: dataset}, nil
}

func (d *SQLiteDestination) qualified(table string) string {
	return quoteIdent(d.dataset + "_" + table)
}

func (d *SQLiteDestination) EnsureTable(ctx context.Context, table pipeline.Table, sample pipeline.Record) error {
	schema := pipeline.InferSchema(table, sample)
	stmt := buildCreateTable(d.qualified(table.Name), schema, sqliteType)
	if _, err := d.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("ensuring table %s: %w", table.Name, err)
	}
	return nil
}

func (d *SQLiteDestination) WriteBatch(ctx context.Context, table pipeline.Table, rows []pipeline.Record) error {
	if len(rows) == 0 {
		return nil
	}
	stmt := buildInsert(d.qualified(table.Name), table.Columns, len(rows), func(int) string {
		return "?"
	})

	args := make([]any, 0, len(rows)*len(table.Columns))
	for _, rec := range rows {
		vals, err := encodeRow(table.Columns, rec)
		if err != nil {
			return err
		}
		args = append(args, vals...)
	}

	if _, err := d.db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("writing batch to %s: %w", table.Name, err)
	}
	return nil
}

func (d *SQLiteDestination) Close() error {
	return d.db.Close()
}

func sqliteType(t pipeline.ColumnType) string {
	switch t {
	case pipeline.TypeInteger, pipeline.TypeBool:
		return "INTEGER"
	case pipeline.TypeReal:
		return "REAL"
	default:
		// Timestamps and JSON land as TEXT in sqlite.
		return "TEXT"
	}
}
