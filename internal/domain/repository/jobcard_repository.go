package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/domain/entity"
	"github.com/invinci009/rmw/internal/domain/enum"
	"github.com/invinci009/rmw/pkg/pagination"
)

// JobCardFilterParams contains filtering parameters for job card queries
type JobCardFilterParams struct {
	Pagination    *pagination.PaginationParams
	Phone         string
	VehicleNumber string
	Status        *enum.JobCardStatus
}

// JobCardRepository defines the interface for job card data operations
type JobCardRepository interface {
	Create(ctx context.Context, jobCard *entity.JobCard) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.JobCard, error)
	GetByNumber(ctx context.Context, number string) (*entity.JobCard, error)
	List(ctx context.Context, params *JobCardFilterParams) ([]entity.JobCard, int64, error)
	ListActiveByPhone(ctx context.Context, phone string, limit int) ([]entity.JobCard, error)
	ListByPhone(ctx context.Context, phone string) ([]entity.JobCard, error)
	Update(ctx context.Context, jobCard *entity.JobCard) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context, status enum.JobCardStatus) (int64, error)
}
