package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/domain/entity"
	domainRepo "github.com/invinci009/rmw/internal/domain/repository"
	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service catalog repository
func NewServiceRepository(db *gorm.DB) domainRepo.ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *serviceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var service entity.Service
	err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &service, err
}

func (r *serviceRepository) GetBySlug(ctx context.Context, slug string) (*entity.Service, error) {
	var service entity.Service
	err := r.db.WithContext(ctx).First(&service, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &service, err
}

func (r *serviceRepository) List(ctx context.Context, params *domainRepo.ServiceFilterParams) ([]entity.Service, error) {
	var services []entity.Service

	query := r.db.WithContext(ctx).Model(&entity.Service{})

	if !params.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}

	if params.VehicleType != nil {
		query = query.Where("vehicle_types::jsonb @> ?", fmt.Sprintf("[%q]", string(*params.VehicleType)))
	}

	err := query.Order("display_order ASC, name ASC").Find(&services).Error
	return services, err
}

func (r *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Service{}, "id = ?", id).Error
}
