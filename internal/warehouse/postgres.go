package warehouse

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"game-data-pipeline/internal/pipeline"
)

// PostgresDestination writes pipeline records into a postgres schema named
// after the dataset. Tables are created on first use and appended to.
type PostgresDestination struct {
	db      *sql.DB
	dataset string
}

// OpenPostgres connects to postgres and ensures the dataset schema exists.
func OpenPostgres(dsn, dataset string) (*PostgresDestination, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	dest := &PostgresDestination{db: db, dataset: dataset}
	if _, err := db.Exec("CREATE SCHEMA IF NOT EXISTS " + quoteIdent(dataset)); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensuring schema %s: %w", dataset, err)
	}
	return dest, nil
}

func (d *PostgresDestination) qualified(table string) string {
	return quoteIdent(d.dataset) + "." + quoteIdent(table)
}

func (d *PostgresDestination) EnsureTable(ctx context.Context, table pipeline.Table, sample pipeline.Record) error {
	schema := pipeline.InferSchema(table, sample)
	stmt := buildCreateTable(d.qualified(table.Name), schema, postgresType)
	if _, err := d.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("ensuring table %s: %w", table.Name, err)
	}
	return nil
}

func (d *PostgresDestination) WriteBatch(ctx context.Context, table pipeline.Table, rows []pipeline.Record) error {
	if len(rows) == 0 {
		return nil
	}
	stmt := buildInsert(d.qualified(table.Name), table.Columns, len(rows), func(n int) string {
		return fmt.Sprintf("$%d", n)
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

func (d *PostgresDestination) Close() error {
	return d.db.Close()
}

func postgresType(t pipeline.ColumnType) string {
	switch t {
	case pipeline.TypeInteger:
		return "BIGINT"
	case pipeline.TypeReal:
		return "DOUBLE PRECISION"
	case pipeline.TypeBool:
		return "BOOLEAN"
	case pipeline.TypeTimestamp:
		return "TIMESTAMPTZ"
	case pipeline.TypeJSON:
		return "JSONB"
	default:
		return "TEXT"
	}
}
