package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/domain/entity"
	"github.com/invinci009/rmw/internal/domain/enum"
	"github.com/invinci009/rmw/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type fakeInvoiceRepo struct {
	invoice *entity.Invoice
	updated *entity.Invoice
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	f.invoice = invoice
	return nil
}

func (f *fakeInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	if f.invoice != nil && f.invoice.ID == id {
		return f.invoice, nil
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) GetByJobCardID(ctx context.Context, jobCardID uuid.UUID) (*entity.Invoice, error) {
	if f.invoice != nil && f.invoice.JobCardID == jobCardID {
		return f.invoice, nil
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) ListByJobCardIDs(ctx context.Context, jobCardIDs []uuid.UUID) ([]entity.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoiceRepo) List(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	return nil, 0, nil
}

func (f *fakeInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	f.updated = invoice
	return nil
}

func (f *fakeInvoiceRepo) SumPaidAmount(ctx context.Context) (float64, error) {
	return 0, nil
}

func (f *fakeInvoiceRepo) SumBalanceDue(ctx context.Context) (float64, error) {
	return 0, nil
}

func generatedInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-2026-0042",
		JobCardID:     uuid.New(),
		CustomerName:  "Ravi Kumar",
		Phone:         "9876543210",
		Services: datatypes.JSONSlice[entity.InvoiceServiceLine]{
			{Name: "General Service", Quantity: 1, Rate: 1499, Amount: 1499},
		},
		Subtotal:      1499,
		TaxableAmount: 1499,
		GrandTotal:    1769,
		FinalAmount:   1769,
		PaymentStatus: enum.PaymentStatusPending,
		BalanceDue:    1769,
		Notes:         "Customer will collect in the evening",
	}
}

func TestUpdatePayment_FullPayment(t *testing.T) {
	repo := &fakeInvoiceRepo{invoice: generatedInvoice()}
	svc := NewInvoiceService(repo, nil, nil)

	amount := 1769.0
	method := "upi"
	result, err := svc.UpdatePayment(context.Background(), repo.invoice.ID, &UpdatePaymentInput{
		AmountPaid:    &amount,
		PaymentMethod: &method,
	})

	require.NoError(t, err)
	assert.Equal(t, enum.PaymentStatusPaid, result.PaymentStatus)
	assert.Equal(t, 0.0, result.BalanceDue)
	assert.Equal(t, "upi", result.PaymentMethod)
	require.NotNil(t, result.PaidAt)
	require.NotNil(t, repo.updated)
}

func TestUpdatePayment_DerivedStatusWins(t *testing.T) {
	repo := &fakeInvoiceRepo{invoice: generatedInvoice()}
	svc := NewInvoiceService(repo, nil, nil)

	amount := 500.0
	claimed := enum.PaymentStatusPaid
	result, err := svc.UpdatePayment(context.Background(), repo.invoice.ID, &UpdatePaymentInput{
		AmountPaid:    &amount,
		PaymentStatus: &claimed,
	})

	require.NoError(t, err)
	assert.Equal(t, enum.PaymentStatusPartial, result.PaymentStatus)
	assert.Equal(t, 1269.0, result.BalanceDue)
	assert.Nil(t, result.PaidAt)
}

func TestUpdatePayment_SnapshotUntouched(t *testing.T) {
	repo := &fakeInvoiceRepo{invoice: generatedInvoice()}
	svc := NewInvoiceService(repo, nil, nil)

	amount := 1000.0
	result, err := svc.UpdatePayment(context.Background(), repo.invoice.ID, &UpdatePaymentInput{
		AmountPaid: &amount,
	})

	require.NoError(t, err)
	assert.Equal(t, "Customer will collect in the evening", result.Notes)
	assert.Equal(t, 1499.0, result.Subtotal)
	assert.Equal(t, 1769.0, result.FinalAmount)
	require.Len(t, result.Services, 1)
	assert.Equal(t, "General Service", result.Services[0].Name)
}

func TestUpdatePayment_NegativeAmount(t *testing.T) {
	repo := &fakeInvoiceRepo{invoice: generatedInvoice()}
	svc := NewInvoiceService(repo, nil, nil)

	amount := -50.0
	_, err := svc.UpdatePayment(context.Background(), repo.invoice.ID, &UpdatePaymentInput{
		AmountPaid: &amount,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be negative")
}

func TestUpdatePayment_NotFound(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := NewInvoiceService(repo, nil, nil)

	_, err := svc.UpdatePayment(context.Background(), uuid.New(), &UpdatePaymentInput{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
