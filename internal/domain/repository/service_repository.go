package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/domain/entity"
	"github.com/invinci009/rmw/internal/domain/enum"
)

// ServiceFilterParams contains filtering parameters for catalog queries
type ServiceFilterParams struct {
	VehicleType     *enum.VehicleType
	IncludeInactive bool
}

// ServiceRepository defines the interface for service catalog data operations
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Service, error)
	List(ctx context.Context, params *ServiceFilterParams) ([]entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}
