package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/domain/entity"
	"github.com/invinci009/rmw/internal/domain/enum"
	domainRepo "github.com/invinci009/rmw/internal/domain/repository"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("JobCard").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetByJobCardID(ctx context.Context, jobCardID uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "job_card_id = ?", jobCardID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) ListByJobCardIDs(ctx context.Context, jobCardIDs []uuid.UUID) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).
		Where("job_card_id IN ?", jobCardIDs).
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) List(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{})

	if params.Phone != "" {
		query = query.Where("phone = ?", params.Phone)
	}

	if params.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *params.PaymentStatus)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("JobCard").
		Order("generated_at DESC").
		Find(&invoices).Error

	return invoices, total, err
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *invoiceRepository) SumPaidAmount(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Select("COALESCE(SUM(amount_paid), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *invoiceRepository) SumBalanceDue(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Select("COALESCE(SUM(balance_due), 0)").
		Where("payment_status <> ?", enum.PaymentStatusPaid).
		Scan(&sum).Error
	return sum, err
}
