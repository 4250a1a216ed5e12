package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/domain/entity"
	"github.com/invinci009/rmw/internal/domain/enum"
	"github.com/invinci009/rmw/internal/domain/repository"
	"github.com/invinci009/rmw/pkg/apperror"
	"github.com/invinci009/rmw/pkg/pagination"
)

// trackingLimit caps how many active job cards a phone lookup returns
const trackingLimit = 5

// JobCardService handles the repair workflow
type JobCardService struct {
	jobCardRepo  repository.JobCardRepository
	bookingRepo  repository.BookingRepository
	invoiceRepo  repository.InvoiceRepository
	sequenceRepo repository.SequenceRepository
}

// NewJobCardService creates a new job card service
func NewJobCardService(
	jobCardRepo repository.JobCardRepository,
	bookingRepo repository.BookingRepository,
	invoiceRepo repository.InvoiceRepository,
	sequenceRepo repository.SequenceRepository,
) *JobCardService {
	return &JobCardService{
		jobCardRepo:  jobCardRepo,
		bookingRepo:  bookingRepo,
		invoiceRepo:  invoiceRepo,
		sequenceRepo: sequenceRepo,
	}
}

// CreateJobCardInput represents the create job card input. BookingID is
// optional; when present, customer and vehicle fields are copied from the
// booking and may be overridden by explicit values here.
type CreateJobCardInput struct {
	BookingID         *uuid.UUID           `json:"booking_id"`
	CustomerName      string               `json:"customer_name"`
	Phone             string               `json:"phone"`
	Email             string               `json:"email"`
	VehicleType       string               `json:"vehicle_type"`
	VehicleBrand      string               `json:"vehicle_brand"`
	VehicleModel      string               `json:"vehicle_model"`
	VehicleNumber     string               `json:"vehicle_number"`
	VehicleColor      string               `json:"vehicle_color"`
	OdometerReading   *int                 `json:"odometer_reading"`
	FuelLevel         string               `json:"fuel_level"`
	ServicesRequested []entity.ServiceItem `json:"services_requested"`
	LabourCharges     float64              `json:"labour_charges"`
	MechanicAssigned  string               `json:"mechanic_assigned"`
	ServiceAdvisor    string               `json:"service_advisor"`
	EstimatedDelivery *time.Time           `json:"estimated_delivery"`
	EstimatedTotal    float64              `json:"estimated_total"`
	CustomerNotes     string               `json:"customer_notes"`
	InternalNotes     string               `json:"internal_notes"`
	CreatedBy         string               `json:"-"`
}

// UpdateJobCardInput represents the patch input for a job card. Nil fields are
// left untouched.
type UpdateJobCardInput struct {
	Status            *enum.JobCardStatus   `json:"status"`
	StatusNotes       string                `json:"status_notes"`
	ServicesRequested *[]entity.ServiceItem `json:"services_requested"`
	PartsUsed         *[]entity.PartItem    `json:"parts_used"`
	LabourCharges     *float64              `json:"labour_charges"`
	MechanicAssigned  *string               `json:"mechanic_assigned"`
	ServiceAdvisor    *string               `json:"service_advisor"`
	EstimatedDelivery *time.Time            `json:"estimated_delivery"`
	EstimatedTotal    *float64              `json:"estimated_total"`
	CustomerNotes     *string               `json:"customer_notes"`
	InternalNotes     *string               `json:"internal_notes"`
	UpdatedBy         string                `json:"-"`
}

// CreateJobCard opens a new job card, optionally promoted from a booking.
// Promotion copies the customer and vehicle snapshot, seeds the first service
// line from the booked service, and forces the booking to completed.
func (s *JobCardService) CreateJobCard(ctx context.Context, input *CreateJobCardInput) (*entity.JobCard, error) {
	now := time.Now()

	jobCard := &entity.JobCard{
		CustomerName:      strings.TrimSpace(input.CustomerName),
		Email:             strings.TrimSpace(input.Email),
		VehicleType:       enum.VehicleType(strings.ToUpper(strings.TrimSpace(input.VehicleType))),
		VehicleBrand:      strings.TrimSpace(input.VehicleBrand),
		VehicleModel:      strings.TrimSpace(input.VehicleModel),
		VehicleNumber:     strings.ToUpper(strings.TrimSpace(input.VehicleNumber)),
		VehicleColor:      input.VehicleColor,
		OdometerReading:   input.OdometerReading,
		FuelLevel:         input.FuelLevel,
		ServicesRequested: input.ServicesRequested,
		LabourCharges:     input.LabourCharges,
		MechanicAssigned:  input.MechanicAssigned,
		ServiceAdvisor:    input.ServiceAdvisor,
		EstimatedDelivery: input.EstimatedDelivery,
		EstimatedTotal:    input.EstimatedTotal,
		CustomerNotes:     input.CustomerNotes,
		InternalNotes:     input.InternalNotes,
		ReceivedAt:        now,
	}
	if input.Phone != "" {
		phone, err := NormalizePhone(input.Phone)
		if err != nil {
			return nil, err
		}
		jobCard.Phone = phone
	}

	var booking *entity.Booking
	if input.BookingID != nil {
		var err error
		booking, err = s.bookingRepo.GetByID(ctx, *input.BookingID)
		if err != nil {
			return nil, err
		}
		if booking == nil {
			return nil, apperror.NewNotFoundError("Booking")
		}
		s.promoteFromBooking(jobCard, booking)
	}

	if err := validateJobCard(jobCard); err != nil {
		return nil, err
	}

	seq, err := s.sequenceRepo.Next(ctx, entity.SequenceKindJobCard, now.Year())
	if err != nil {
		return nil, err
	}
	jobCard.JobCardNumber = entity.FormatDocumentNumber(entity.SequenceKindJobCard, now.Year(), seq)

	jobCard.Status = enum.JobCardStatusReceived
	jobCard.StatusHistory = []entity.StatusEntry{{
		Status:    enum.JobCardStatusReceived,
		Timestamp: now,
		Notes:     "Vehicle received at workshop",
		UpdatedBy: input.CreatedBy,
	}}
	jobCard.RecomputeFinalTotal()

	if err := s.jobCardRepo.Create(ctx, jobCard); err != nil {
		return nil, err
	}

	if booking != nil && booking.Status != enum.BookingStatusCompleted {
		if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, enum.BookingStatusCompleted); err != nil {
			return nil, err
		}
	}

	return jobCard, nil
}

// promoteFromBooking fills the job card's empty fields from the booking and
// seeds a service line from the booked catalog service.
func (s *JobCardService) promoteFromBooking(jobCard *entity.JobCard, booking *entity.Booking) {
	jobCard.BookingID = &booking.ID
	if jobCard.CustomerName == "" {
		jobCard.CustomerName = booking.CustomerName
	}
	if jobCard.Phone == "" {
		jobCard.Phone = booking.Phone
	}
	if jobCard.Email == "" {
		jobCard.Email = booking.Email
	}
	if !jobCard.VehicleType.IsValid() {
		jobCard.VehicleType = booking.VehicleType
	}
	if jobCard.VehicleBrand == "" {
		jobCard.VehicleBrand = booking.VehicleBrand
	}
	if jobCard.VehicleModel == "" {
		jobCard.VehicleModel = booking.VehicleModel
	}
	if jobCard.VehicleNumber == "" {
		jobCard.VehicleNumber = strings.ToUpper(booking.VehicleNumber)
	}

	if len(jobCard.ServicesRequested) == 0 && booking.ServiceType != nil {
		jobCard.ServicesRequested = []entity.ServiceItem{{
			ServiceID:     &booking.ServiceType.ID,
			Name:          booking.ServiceType.Name,
			Description:   booking.ServiceType.ShortDescription,
			EstimatedCost: booking.ServiceType.BasePrice,
		}}
		if jobCard.EstimatedTotal == 0 {
			jobCard.EstimatedTotal = booking.ServiceType.BasePrice
		}
	}
	if jobCard.CustomerNotes == "" {
		jobCard.CustomerNotes = booking.Notes
	}
}

func validateJobCard(jobCard *entity.JobCard) error {
	var fieldErrors []apperror.FieldError

	if jobCard.CustomerName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customer_name", Message: "Customer name is required"})
	}
	if jobCard.Phone == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "phone", Message: "Phone is required"})
	}
	if !jobCard.VehicleType.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "vehicle_type", Message: "Vehicle type must be 2W or 4W"})
	}
	if jobCard.VehicleBrand == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "vehicle_brand", Message: "Vehicle brand is required"})
	}
	if jobCard.VehicleModel == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "vehicle_model", Message: "Vehicle model is required"})
	}
	if jobCard.VehicleNumber == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "vehicle_number", Message: "Vehicle number is required"})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// ListJobCards returns job cards with filtering and pagination
func (s *JobCardService) ListJobCards(ctx context.Context, params *repository.JobCardFilterParams) (*pagination.PaginatedResult[entity.JobCard], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	jobCards, total, err := s.jobCardRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(jobCards,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// GetJobCard returns one job card by its UUID
func (s *JobCardService) GetJobCard(ctx context.Context, id uuid.UUID) (*entity.JobCard, error) {
	jobCard, err := s.jobCardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if jobCard == nil {
		return nil, apperror.NewNotFoundError("Job card")
	}
	return jobCard, nil
}

// UpdateJobCard applies a partial update. Any change to parts, services, or
// labour recomputes the final total; a status change appends history and
// stamps milestones.
func (s *JobCardService) UpdateJobCard(ctx context.Context, id uuid.UUID, input *UpdateJobCardInput) (*entity.JobCard, error) {
	jobCard, err := s.jobCardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if jobCard == nil {
		return nil, apperror.NewNotFoundError("Job card")
	}

	if input.ServicesRequested != nil {
		jobCard.ServicesRequested = *input.ServicesRequested
	}
	if input.PartsUsed != nil {
		parts := *input.PartsUsed
		for i := range parts {
			if parts[i].Quantity < 0 || parts[i].UnitPrice < 0 {
				return nil, apperror.NewBadRequestError("Part quantity and unit price cannot be negative")
			}
			parts[i].Total = float64(parts[i].Quantity) * parts[i].UnitPrice
		}
		jobCard.PartsUsed = parts
	}
	if input.LabourCharges != nil {
		if *input.LabourCharges < 0 {
			return nil, apperror.NewBadRequestError("Labour charges cannot be negative")
		}
		jobCard.LabourCharges = *input.LabourCharges
	}
	if input.MechanicAssigned != nil {
		jobCard.MechanicAssigned = *input.MechanicAssigned
	}
	if input.ServiceAdvisor != nil {
		jobCard.ServiceAdvisor = *input.ServiceAdvisor
	}
	if input.EstimatedDelivery != nil {
		jobCard.EstimatedDelivery = input.EstimatedDelivery
	}
	if input.EstimatedTotal != nil {
		jobCard.EstimatedTotal = *input.EstimatedTotal
	}
	if input.CustomerNotes != nil {
		jobCard.CustomerNotes = *input.CustomerNotes
	}
	if input.InternalNotes != nil {
		jobCard.InternalNotes = *input.InternalNotes
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid job card status")
		}
		if *input.Status != jobCard.Status {
			jobCard.ApplyStatus(*input.Status, time.Now(), input.StatusNotes, input.UpdatedBy)
		}
	}

	jobCard.RecomputeFinalTotal()

	if err := s.jobCardRepo.Update(ctx, jobCard); err != nil {
		return nil, err
	}
	return jobCard, nil
}

// DeleteJobCard soft-deletes a job card. Refused once an invoice exists.
func (s *JobCardService) DeleteJobCard(ctx context.Context, id uuid.UUID) error {
	jobCard, err := s.jobCardRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if jobCard == nil {
		return apperror.NewNotFoundError("Job card")
	}

	invoice, err := s.invoiceRepo.GetByJobCardID(ctx, id)
	if err != nil {
		return err
	}
	if invoice != nil {
		return apperror.NewConflictError("Job card has an invoice and cannot be deleted")
	}

	return s.jobCardRepo.Delete(ctx, id)
}

// TimelineStep is one step of the customer-facing tracking timeline
type TimelineStep struct {
	Status    enum.JobCardStatus `json:"status"`
	Label     string             `json:"label"`
	Completed bool               `json:"completed"`
	Current   bool               `json:"current"`
	Timestamp *time.Time         `json:"timestamp,omitempty"`
}

// TrackingResult is the public view of a job card's progress
type TrackingResult struct {
	JobCardNumber     string             `json:"job_card_number"`
	CustomerName      string             `json:"customer_name"`
	VehicleBrand      string             `json:"vehicle_brand"`
	VehicleModel      string             `json:"vehicle_model"`
	VehicleNumber     string             `json:"vehicle_number"`
	Status            enum.JobCardStatus `json:"status"`
	StatusLabel       string             `json:"status_label"`
	EstimatedDelivery *time.Time         `json:"estimated_delivery,omitempty"`
	EstimatedTotal    float64            `json:"estimated_total"`
	Timeline          []TimelineStep     `json:"timeline"`
}

// Track looks up job cards for the public tracking page. A job card number
// returns exactly that card; a phone number returns up to five cards not yet
// delivered, newest first.
func (s *JobCardService) Track(ctx context.Context, query string) ([]TrackingResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.NewBadRequestError("Job card number or phone is required")
	}

	var jobCards []entity.JobCard

	if phone, err := NormalizePhone(query); err == nil {
		jobCards, err = s.jobCardRepo.ListActiveByPhone(ctx, phone, trackingLimit)
		if err != nil {
			return nil, err
		}
	} else {
		jobCard, err := s.jobCardRepo.GetByNumber(ctx, query)
		if err != nil {
			return nil, err
		}
		if jobCard != nil {
			jobCards = []entity.JobCard{*jobCard}
		}
	}

	if len(jobCards) == 0 {
		return nil, apperror.NewNotFoundError("Job card")
	}

	results := make([]TrackingResult, 0, len(jobCards))
	for i := range jobCards {
		results = append(results, buildTrackingResult(&jobCards[i]))
	}
	return results, nil
}

func buildTrackingResult(jobCard *entity.JobCard) TrackingResult {
	currentIdx := jobCard.Status.Index()

	timeline := make([]TimelineStep, 0, len(enum.JobCardStatuses))
	for i, status := range enum.JobCardStatuses {
		step := TimelineStep{
			Status:    status,
			Label:     status.Label(),
			Completed: i <= currentIdx,
			Current:   i == currentIdx,
		}
		switch status {
		case enum.JobCardStatusReceived:
			t := jobCard.ReceivedAt
			step.Timestamp = &t
		case enum.JobCardStatusDiagnosis:
			step.Timestamp = jobCard.DiagnosisCompletedAt
		case enum.JobCardStatusInProgress:
			step.Timestamp = jobCard.RepairStartedAt
		case enum.JobCardStatusReady:
			step.Timestamp = jobCard.ReadyAt
		case enum.JobCardStatusDelivered:
			step.Timestamp = jobCard.DeliveredAt
		}
		timeline = append(timeline, step)
	}

	return TrackingResult{
		JobCardNumber:     jobCard.JobCardNumber,
		CustomerName:      jobCard.CustomerName,
		VehicleBrand:      jobCard.VehicleBrand,
		VehicleModel:      jobCard.VehicleModel,
		VehicleNumber:     jobCard.VehicleNumber,
		Status:            jobCard.Status,
		StatusLabel:       jobCard.Status.Label(),
		EstimatedDelivery: jobCard.EstimatedDelivery,
		EstimatedTotal:    jobCard.EstimatedTotal,
		Timeline:          timeline,
	}
}

// VehicleHistoryEntry is one past visit of a vehicle
type VehicleHistoryEntry struct {
	JobCardNumber string             `json:"job_card_number"`
	Date          time.Time          `json:"date"`
	Status        enum.JobCardStatus `json:"status"`
	Services      []string           `json:"services"`
	Amount        float64            `json:"amount"`
	InvoiceNumber string             `json:"invoice_number,omitempty"`
	PaymentStatus enum.PaymentStatus `json:"payment_status,omitempty"`
}

// VehicleHistory groups a phone's job cards by vehicle
type VehicleHistory struct {
	VehicleNumber string                `json:"vehicle_number"`
	VehicleBrand  string                `json:"vehicle_brand"`
	VehicleModel  string                `json:"vehicle_model"`
	VehicleType   enum.VehicleType      `json:"vehicle_type"`
	VisitCount    int                   `json:"visit_count"`
	TotalSpent    float64               `json:"total_spent"`
	Entries       []VehicleHistoryEntry `json:"entries"`
}

// GetVehicleHistory returns a customer's service history grouped by vehicle.
// Amounts come from the invoice where one exists, otherwise from the job
// card's running total.
func (s *JobCardService) GetVehicleHistory(ctx context.Context, phone string) ([]VehicleHistory, error) {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return nil, err
	}

	jobCards, err := s.jobCardRepo.ListByPhone(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if len(jobCards) == 0 {
		return []VehicleHistory{}, nil
	}

	jobCardIDs := make([]uuid.UUID, len(jobCards))
	for i := range jobCards {
		jobCardIDs[i] = jobCards[i].ID
	}
	invoices, err := s.invoiceRepo.ListByJobCardIDs(ctx, jobCardIDs)
	if err != nil {
		return nil, err
	}
	invoiceByJobCard := make(map[uuid.UUID]*entity.Invoice, len(invoices))
	for i := range invoices {
		invoiceByJobCard[invoices[i].JobCardID] = &invoices[i]
	}

	grouped := make(map[string]*VehicleHistory)
	order := make([]string, 0)

	for i := range jobCards {
		jc := &jobCards[i]

		history, ok := grouped[jc.VehicleNumber]
		if !ok {
			history = &VehicleHistory{
				VehicleNumber: jc.VehicleNumber,
				VehicleBrand:  jc.VehicleBrand,
				VehicleModel:  jc.VehicleModel,
				VehicleType:   jc.VehicleType,
			}
			grouped[jc.VehicleNumber] = history
			order = append(order, jc.VehicleNumber)
		}

		services := make([]string, 0, len(jc.ServicesRequested))
		for _, item := range jc.ServicesRequested {
			services = append(services, item.Name)
		}

		entry := VehicleHistoryEntry{
			JobCardNumber: jc.JobCardNumber,
			Date:          jc.ReceivedAt,
			Status:        jc.Status,
			Services:      services,
			Amount:        jc.FinalTotal,
		}
		if invoice, ok := invoiceByJobCard[jc.ID]; ok {
			entry.Amount = invoice.FinalAmount
			entry.InvoiceNumber = invoice.InvoiceNumber
			entry.PaymentStatus = invoice.PaymentStatus
		}

		history.Entries = append(history.Entries, entry)
		history.VisitCount++
		history.TotalSpent += entry.Amount
	}

	results := make([]VehicleHistory, 0, len(order))
	for _, number := range order {
		results = append(results, *grouped[number])
	}
	return results, nil
}
