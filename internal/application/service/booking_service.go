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

// BookingService handles customer appointment bookings
type BookingService struct {
	bookingRepo  repository.BookingRepository
	serviceRepo  repository.ServiceRepository
	sequenceRepo repository.SequenceRepository
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo repository.BookingRepository,
	serviceRepo repository.ServiceRepository,
	sequenceRepo repository.SequenceRepository,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		sequenceRepo: sequenceRepo,
	}
}

// CreateBookingInput represents the create booking input
type CreateBookingInput struct {
	CustomerName  string `json:"customer_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	VehicleType   string `json:"vehicle_type"`
	VehicleBrand  string `json:"vehicle_brand"`
	VehicleModel  string `json:"vehicle_model"`
	VehicleNumber string `json:"vehicle_number"`
	ServiceTypeID string `json:"service_type_id"`
	ServiceSlug   string `json:"service_slug"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	Notes         string `json:"notes"`
}

// CreateBooking validates the request, resolves the catalog service, and
// persists a pending booking with a generated booking number.
func (s *BookingService) CreateBooking(ctx context.Context, input *CreateBookingInput) (*entity.Booking, error) {
	var fieldErrors []apperror.FieldError

	if strings.TrimSpace(input.CustomerName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customer_name", Message: "Customer name is required"})
	}
	phone, phoneErr := NormalizePhone(input.Phone)
	if phoneErr != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "phone", Message: "A valid 10-digit mobile number is required"})
	}
	vehicleType := enum.VehicleType(strings.ToUpper(strings.TrimSpace(input.VehicleType)))
	if !vehicleType.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "vehicle_type", Message: "Vehicle type must be 2W or 4W"})
	}
	if strings.TrimSpace(input.VehicleBrand) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "vehicle_brand", Message: "Vehicle brand is required"})
	}
	if strings.TrimSpace(input.VehicleModel) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "vehicle_model", Message: "Vehicle model is required"})
	}

	preferredDate, dateErr := time.Parse("2006-01-02", input.PreferredDate)
	if dateErr != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "preferred_date", Message: "Preferred date must be YYYY-MM-DD"})
	}
	if strings.TrimSpace(input.PreferredTime) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "preferred_time", Message: "Preferred time is required"})
	}

	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	serviceType, err := s.resolveServiceType(ctx, input)
	if err != nil {
		return nil, err
	}
	if !serviceType.SupportsVehicleType(vehicleType) {
		return nil, apperror.NewBadRequestError("Selected service is not available for this vehicle type")
	}

	now := time.Now()
	seq, err := s.sequenceRepo.Next(ctx, entity.SequenceKindBooking, now.Year())
	if err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		BookingID:     entity.FormatDocumentNumber(entity.SequenceKindBooking, now.Year(), seq),
		CustomerName:  strings.TrimSpace(input.CustomerName),
		Phone:         phone,
		Email:         strings.TrimSpace(input.Email),
		VehicleType:   vehicleType,
		VehicleBrand:  strings.TrimSpace(input.VehicleBrand),
		VehicleModel:  strings.TrimSpace(input.VehicleModel),
		VehicleNumber: strings.ToUpper(strings.TrimSpace(input.VehicleNumber)),
		ServiceTypeID: serviceType.ID,
		PreferredDate: preferredDate,
		PreferredTime: strings.TrimSpace(input.PreferredTime),
		Notes:         input.Notes,
		Status:        enum.BookingStatusPending,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	booking.ServiceType = serviceType
	return booking, nil
}

// resolveServiceType looks up the catalog entry by ID or slug. An unknown or
// inactive service is a client error, not a 404.
func (s *BookingService) resolveServiceType(ctx context.Context, input *CreateBookingInput) (*entity.Service, error) {
	var serviceType *entity.Service
	var err error

	switch {
	case input.ServiceTypeID != "":
		id, parseErr := uuid.Parse(input.ServiceTypeID)
		if parseErr != nil {
			return nil, apperror.NewBadRequestError("Invalid service type")
		}
		serviceType, err = s.serviceRepo.GetByID(ctx, id)
	case input.ServiceSlug != "":
		serviceType, err = s.serviceRepo.GetBySlug(ctx, input.ServiceSlug)
	default:
		return nil, apperror.NewBadRequestError("Service type is required")
	}

	if err != nil {
		return nil, err
	}
	if serviceType == nil || !serviceType.IsActive {
		return nil, apperror.NewBadRequestError("Invalid service type")
	}
	return serviceType, nil
}

// ListBookings returns bookings. Customers only see their own phone's
// bookings; admins see everything and may filter by phone.
func (s *BookingService) ListBookings(ctx context.Context, params *repository.BookingFilterParams) (*pagination.PaginatedResult[entity.Booking], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	bookings, total, err := s.bookingRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(bookings,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// GetBooking returns one booking by its UUID
func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}
	return booking, nil
}

// UpdateBookingStatus sets the booking status. Admin only.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status enum.BookingStatus) (*entity.Booking, error) {
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid booking status")
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperror.NewNotFoundError("Booking")
	}

	booking.Status = status
	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return booking, nil
}

// CancelBooking marks the booking cancelled. The row is never deleted, so the
// booking number stays reserved.
func (s *BookingService) CancelBooking(ctx context.Context, id uuid.UUID) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if booking == nil {
		return apperror.NewNotFoundError("Booking")
	}
	return s.bookingRepo.UpdateStatus(ctx, id, enum.BookingStatusCancelled)
}
