package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/domain/entity"
	"github.com/invinci009/rmw/internal/domain/enum"
	"github.com/invinci009/rmw/internal/domain/repository"
	"github.com/invinci009/rmw/pkg/apperror"
	"github.com/invinci009/rmw/pkg/utils"
	"gorm.io/datatypes"
)

// CatalogService handles the public service catalog
type CatalogService struct {
	serviceRepo repository.ServiceRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(serviceRepo repository.ServiceRepository) *CatalogService {
	return &CatalogService{serviceRepo: serviceRepo}
}

// CatalogInput represents the create/update service input
type CatalogInput struct {
	Name             string             `json:"name"`
	ShortDescription string             `json:"short_description"`
	FullDescription  string             `json:"full_description"`
	Image            string             `json:"image"`
	Icon             string             `json:"icon"`
	VehicleTypes     []enum.VehicleType `json:"vehicle_types"`
	BasePrice        float64            `json:"base_price"`
	EstimatedTime    string             `json:"estimated_time"`
	Features         []string           `json:"features"`
	IsActive         *bool              `json:"is_active"`
	DisplayOrder     *int               `json:"display_order"`
}

// ListServices returns catalog entries, optionally filtered by vehicle type.
// Inactive entries are included only for admin callers.
func (s *CatalogService) ListServices(ctx context.Context, vehicleType *enum.VehicleType, includeInactive bool) ([]entity.Service, error) {
	if vehicleType != nil && !vehicleType.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid vehicle type")
	}
	return s.serviceRepo.List(ctx, &repository.ServiceFilterParams{
		VehicleType:     vehicleType,
		IncludeInactive: includeInactive,
	})
}

// GetServiceBySlug returns one active catalog entry by its slug
func (s *CatalogService) GetServiceBySlug(ctx context.Context, slug string) (*entity.Service, error) {
	service, err := s.serviceRepo.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return nil, err
	}
	if service == nil || !service.IsActive {
		return nil, apperror.NewNotFoundError("Service")
	}
	return service, nil
}

// CreateService creates a new catalog entry
func (s *CatalogService) CreateService(ctx context.Context, input *CatalogInput) (*entity.Service, error) {
	if err := validateCatalogInput(input); err != nil {
		return nil, err
	}

	slug := utils.Slugify(input.Name)
	existing, err := s.serviceRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A service with this name already exists")
	}

	service := &entity.Service{
		Name:             strings.TrimSpace(input.Name),
		Slug:             slug,
		ShortDescription: input.ShortDescription,
		FullDescription:  input.FullDescription,
		Image:            input.Image,
		Icon:             input.Icon,
		VehicleTypes:     datatypes.NewJSONSlice(input.VehicleTypes),
		BasePrice:        input.BasePrice,
		EstimatedTime:    input.EstimatedTime,
		Features:         datatypes.NewJSONSlice(input.Features),
		IsActive:         true,
	}
	if service.Icon == "" {
		service.Icon = "Wrench"
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}
	if input.DisplayOrder != nil {
		service.DisplayOrder = *input.DisplayOrder
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// UpdateService updates a catalog entry. The slug follows the name.
func (s *CatalogService) UpdateService(ctx context.Context, id uuid.UUID, input *CatalogInput) (*entity.Service, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, apperror.NewNotFoundError("Service")
	}

	if name := strings.TrimSpace(input.Name); name != "" && name != service.Name {
		slug := utils.Slugify(name)
		existing, err := s.serviceRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != service.ID {
			return nil, apperror.NewConflictError("A service with this name already exists")
		}
		service.Name = name
		service.Slug = slug
	}

	if input.ShortDescription != "" {
		service.ShortDescription = input.ShortDescription
	}
	if input.FullDescription != "" {
		service.FullDescription = input.FullDescription
	}
	if input.Image != "" {
		service.Image = input.Image
	}
	if input.Icon != "" {
		service.Icon = input.Icon
	}
	if len(input.VehicleTypes) > 0 {
		for _, vt := range input.VehicleTypes {
			if !vt.IsValid() {
				return nil, apperror.NewBadRequestError("Invalid vehicle type")
			}
		}
		service.VehicleTypes = datatypes.NewJSONSlice(input.VehicleTypes)
	}
	if input.BasePrice > 0 {
		service.BasePrice = input.BasePrice
	}
	if input.EstimatedTime != "" {
		service.EstimatedTime = input.EstimatedTime
	}
	if input.Features != nil {
		service.Features = datatypes.NewJSONSlice(input.Features)
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}
	if input.DisplayOrder != nil {
		service.DisplayOrder = *input.DisplayOrder
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

// DeleteService soft-deletes a catalog entry
func (s *CatalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if service == nil {
		return apperror.NewNotFoundError("Service")
	}
	return s.serviceRepo.Delete(ctx, id)
}

func validateCatalogInput(input *CatalogInput) error {
	var fieldErrors []apperror.FieldError

	if strings.TrimSpace(input.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if len(input.VehicleTypes) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "vehicle_types", Message: "At least one vehicle type is required"})
	}
	for _, vt := range input.VehicleTypes {
		if !vt.IsValid() {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "vehicle_types", Message: "Invalid vehicle type: " + string(vt)})
		}
	}
	if input.BasePrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "base_price", Message: "Base price cannot be negative"})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
