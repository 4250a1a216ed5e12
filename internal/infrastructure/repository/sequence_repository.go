package repository

import (
	"context"

	"github.com/invinci009/rmw/internal/domain/entity"
	domainRepo "github.com/invinci009/rmw/internal/domain/repository"
	"gorm.io/gorm"
)

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new sequence repository
func NewSequenceRepository(db *gorm.DB) domainRepo.SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next increments and returns the counter for (kind, year) in one statement.
// The upsert is atomic at the database, so concurrent creations each get a
// distinct value.
func (r *sequenceRepository) Next(ctx context.Context, kind entity.SequenceKind, year int) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO number_sequences (kind, year, value)
		VALUES (?, ?, 1)
		ON CONFLICT (kind, year)
		DO UPDATE SET value = number_sequences.value + 1
		RETURNING value`,
		kind, year,
	).Scan(&value).Error
	return value, err
}
