package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/domain/entity"
	"github.com/invinci009/rmw/internal/domain/enum"
	"github.com/invinci009/rmw/pkg/pagination"
)

// BookingFilterParams contains filtering parameters for booking queries
type BookingFilterParams struct {
	Pagination *pagination.PaginationParams
	Phone      string
	Status     *enum.BookingStatus
}

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	List(ctx context.Context, params *BookingFilterParams) ([]entity.Booking, int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.BookingStatus) error
}
