package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/domain/entity"
	"github.com/invinci009/rmw/internal/domain/enum"
	"github.com/invinci009/rmw/pkg/pagination"
)

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination    *pagination.PaginationParams
	Phone         string
	PaymentStatus *enum.PaymentStatus
}

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByJobCardID(ctx context.Context, jobCardID uuid.UUID) (*entity.Invoice, error)
	ListByJobCardIDs(ctx context.Context, jobCardIDs []uuid.UUID) ([]entity.Invoice, error)
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	SumPaidAmount(ctx context.Context) (float64, error)
	SumBalanceDue(ctx context.Context) (float64, error)
}
