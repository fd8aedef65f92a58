package providers

import (
	"context"
	"errors"

	"game-data-pipeline/internal/pipeline"
)

var errLimitReached = errors.New("limit reached")

// limitedSource wraps a Source and caps the number of emitted records.
type limitedSource struct {
	next pipeline.Source
	max  int
}

// WithLimit caps the records emitted by next at max. Iteration of the
// underlying source stops as soon as the cap is reached, so no further
// upstream requests are issued. A non-positive max returns next unchanged.
func WithLimit(next pipeline.Source, max int) pipeline.Source {
	if max <= 0 {
		return next
	}
	return &limitedSource{next: next, max: max}
}

func (s *limitedSource) Table() pipeline.Table {
	return s.next.Table()
}

func (s *limitedSource) Each(ctx context.Context, fn func(pipeline.Record) error) error {
	count := 0
	err := s.next.Each(ctx, func(rec pipeline.Record) error {
		if err := fn(rec); err != nil {
			return err
		}
		count++
		if count >= s.max {
			return errLimitReached
		}
		return nil
	})
	if errors.Is(err, errLimitReached) {
		return nil
	}
	return err
}
