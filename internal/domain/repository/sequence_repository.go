package repository

import (
	"context"

	"github.com/invinci009/rmw/internal/domain/entity"
)

// SequenceRepository hands out document numbers from per-(kind, year)
// counters. Next must be atomic so concurrent creations never observe the
// same value; the unique index on the document number column is the backstop.
type SequenceRepository interface {
	Next(ctx context.Context, kind entity.SequenceKind, year int) (int64, error)
}
