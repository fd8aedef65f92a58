package providers

import (
	"context"

	"game-data-pipeline/internal/pipeline"
)

// Sequence adapts a fetch function into a pipeline.Source. The run function
// is invoked once per Each call, so sequences stay lazy and restartable.
type Sequence struct {
	table pipeline.Table
	run   func(ctx context.Context, emit func(pipeline.Record) error) error
}

// NewSequence builds a named sequence over the given columns.
func NewSequence(name string, columns []string, run func(ctx context.Context, emit func(pipeline.Record) error) error) *Sequence {
	return &Sequence{
		table: pipeline.Table{Name: name, Columns: columns},
		run:   run,
	}
}

func (s *Sequence) Table() pipeline.Table {
	return s.table
}

func (s *Sequence) Each(ctx context.Context, fn func(pipeline.Record) error) error {
	return s.run(ctx, fn)
}
