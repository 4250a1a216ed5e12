package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/billing"
	"github.com/invinci009/rmw/internal/domain/entity"
	"github.com/invinci009/rmw/internal/domain/enum"
	"github.com/invinci009/rmw/internal/domain/repository"
	"github.com/invinci009/rmw/pkg/apperror"
	"github.com/invinci009/rmw/pkg/pagination"
	"github.com/invinci009/rmw/pkg/pdf"
)

const defaultTerms = "Thank you for choosing Republic Motor Works. Warranty terms apply as per service type."

// InvoiceService handles invoice generation and payment tracking
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	jobCardRepo  repository.JobCardRepository
	sequenceRepo repository.SequenceRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	jobCardRepo repository.JobCardRepository,
	sequenceRepo repository.SequenceRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		jobCardRepo:  jobCardRepo,
		sequenceRepo: sequenceRepo,
	}
}

// CreateInvoiceInput represents the generate invoice input
type CreateInvoiceInput struct {
	JobCardID       uuid.UUID `json:"job_card_id"`
	DiscountPercent float64   `json:"discount_percent"`
	CGSTPercent     *float64  `json:"cgst_percent"`
	SGSTPercent     *float64  `json:"sgst_percent"`
	Address         string    `json:"address"`
	Notes           string    `json:"notes"`
	Terms           string    `json:"terms_and_conditions"`
}

// UpdatePaymentInput represents the payment update input. Only payment fields
// are writable after generation; the derived status always wins.
type UpdatePaymentInput struct {
	AmountPaid    *float64            `json:"amount_paid"`
	PaymentMethod *string             `json:"payment_method"`
	PaymentStatus *enum.PaymentStatus `json:"payment_status"`
}

// CreateInvoice freezes the job card's current line items into an immutable
// invoice snapshot with the full tax breakdown. Exactly one invoice per job
// card.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if input.DiscountPercent < 0 || input.DiscountPercent > 100 {
		return nil, apperror.NewBadRequestError("Discount percent must be between 0 and 100")
	}

	jobCard, err := s.jobCardRepo.GetByID(ctx, input.JobCardID)
	if err != nil {
		return nil, err
	}
	if jobCard == nil {
		return nil, apperror.NewNotFoundError("Job card")
	}

	existing, err := s.invoiceRepo.GetByJobCardID(ctx, input.JobCardID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An invoice already exists for this job card")
	}

	services := make([]entity.InvoiceServiceLine, 0, len(jobCard.ServicesRequested))
	for _, item := range jobCard.ServicesRequested {
		services = append(services, billing.FreezeServiceLine(item))
	}
	parts := make([]entity.InvoicePartLine, 0, len(jobCard.PartsUsed))
	for _, item := range jobCard.PartsUsed {
		parts = append(parts, billing.FreezePartLine(item))
	}

	cgst := billing.DefaultCGSTPercent
	if input.CGSTPercent != nil {
		cgst = *input.CGSTPercent
	}
	sgst := billing.DefaultSGSTPercent
	if input.SGSTPercent != nil {
		sgst = *input.SGSTPercent
	}

	breakdown, err := billing.Calculate(billing.Input{
		Services:        services,
		Parts:           parts,
		LabourCharges:   jobCard.LabourCharges,
		DiscountPercent: input.DiscountPercent,
		CGSTPercent:     cgst,
		SGSTPercent:     sgst,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	seq, err := s.sequenceRepo.Next(ctx, entity.SequenceKindInvoice, now.Year())
	if err != nil {
		return nil, err
	}

	terms := input.Terms
	if terms == "" {
		terms = defaultTerms
	}

	invoice := &entity.Invoice{
		InvoiceNumber: entity.FormatDocumentNumber(entity.SequenceKindInvoice, now.Year(), seq),
		JobCardID:     jobCard.ID,
		CustomerName:  jobCard.CustomerName,
		Phone:         jobCard.Phone,
		Email:         jobCard.Email,
		Address:       input.Address,
		VehicleDetails: entity.VehicleDetails{
			Type:   jobCard.VehicleType,
			Brand:  jobCard.VehicleBrand,
			Model:  jobCard.VehicleModel,
			Number: jobCard.VehicleNumber,
			Color:  jobCard.VehicleColor,
		},
		Services:           services,
		Parts:              parts,
		LabourCharges:      breakdown.LabourCharges,
		Subtotal:           breakdown.Subtotal,
		DiscountPercent:    breakdown.DiscountPercent,
		DiscountAmount:     breakdown.DiscountAmount,
		TaxableAmount:      breakdown.TaxableAmount,
		CGSTPercent:        breakdown.CGSTPercent,
		CGSTAmount:         breakdown.CGSTAmount,
		SGSTPercent:        breakdown.SGSTPercent,
		SGSTAmount:         breakdown.SGSTAmount,
		TotalTax:           breakdown.TotalTax,
		GrandTotal:         breakdown.GrandTotal,
		RoundOff:           breakdown.RoundOff,
		FinalAmount:        breakdown.FinalAmount,
		PaymentStatus:      enum.PaymentStatusPending,
		AmountPaid:         0,
		BalanceDue:         breakdown.FinalAmount,
		Notes:              input.Notes,
		TermsAndConditions: terms,
		GeneratedAt:        now,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// ListInvoices returns invoices with filtering and pagination
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(invoices,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// GetInvoice returns one invoice by its UUID
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// UpdatePayment records a payment against an invoice. Line items, totals and
// notes are immutable; only payment fields change. Balance and status are
// re-derived from the amount paid, overriding any status the caller sent.
func (s *InvoiceService) UpdatePayment(ctx context.Context, id uuid.UUID, input *UpdatePaymentInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if input.AmountPaid != nil {
		if *input.AmountPaid < 0 {
			return nil, apperror.NewBadRequestError("Amount paid cannot be negative")
		}
		invoice.AmountPaid = *input.AmountPaid
	}
	if input.PaymentMethod != nil {
		invoice.PaymentMethod = *input.PaymentMethod
	}
	if input.PaymentStatus != nil {
		if !input.PaymentStatus.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid payment status")
		}
		invoice.PaymentStatus = *input.PaymentStatus
	}
	invoice.ApplyPayment(time.Now())

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// RenderPDF produces the printable PDF for an invoice
func (s *InvoiceService) RenderPDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, "", err
	}

	doc := &pdf.InvoiceDocument{
		InvoiceNumber:      invoice.InvoiceNumber,
		GeneratedAt:        invoice.GeneratedAt,
		CustomerName:       invoice.CustomerName,
		Phone:              invoice.Phone,
		Address:            invoice.Address,
		VehicleLabel:       fmt.Sprintf("%s %s (%s)", invoice.VehicleDetails.Brand, invoice.VehicleDetails.Model, invoice.VehicleDetails.Type),
		VehicleNumber:      invoice.VehicleDetails.Number,
		LabourCharges:      invoice.LabourCharges,
		Subtotal:           invoice.Subtotal,
		DiscountPercent:    invoice.DiscountPercent,
		DiscountAmount:     invoice.DiscountAmount,
		TaxableAmount:      invoice.TaxableAmount,
		CGSTPercent:        invoice.CGSTPercent,
		CGSTAmount:         invoice.CGSTAmount,
		SGSTPercent:        invoice.SGSTPercent,
		SGSTAmount:         invoice.SGSTAmount,
		RoundOff:           invoice.RoundOff,
		FinalAmount:        invoice.FinalAmount,
		AmountPaid:         invoice.AmountPaid,
		BalanceDue:         invoice.BalanceDue,
		PaymentStatus:      string(invoice.PaymentStatus),
		Notes:              invoice.Notes,
		TermsAndConditions: invoice.TermsAndConditions,
	}
	for _, line := range invoice.Services {
		doc.Services = append(doc.Services, pdf.LineItem{
			Name:        line.Name,
			Description: line.Description,
			Quantity:    line.Quantity,
			Rate:        line.Rate,
			Amount:      line.Amount,
		})
	}
	for _, line := range invoice.Parts {
		doc.Parts = append(doc.Parts, pdf.LineItem{
			Name:        line.Name,
			Description: line.PartNumber,
			Quantity:    line.Quantity,
			Rate:        line.UnitPrice,
			Amount:      line.Amount,
		})
	}

	data, err := pdf.Render(doc)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s.pdf", invoice.InvoiceNumber)
	return data, filename, nil
}
