package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/invinci009/rmw/internal/domain/entity"
	"github.com/invinci009/rmw/internal/domain/enum"
	domainRepo "github.com/invinci009/rmw/internal/domain/repository"
	"gorm.io/gorm"
)

type jobCardRepository struct {
	db *gorm.DB
}

// NewJobCardRepository creates a new job card repository
func NewJobCardRepository(db *gorm.DB) domainRepo.JobCardRepository {
	return &jobCardRepository{db: db}
}

func (r *jobCardRepository) Create(ctx context.Context, jobCard *entity.JobCard) error {
	return r.db.WithContext(ctx).Create(jobCard).Error
}

func (r *jobCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.JobCard, error) {
	var jobCard entity.JobCard
	err := r.db.WithContext(ctx).
		Preload("Booking").
		First(&jobCard, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &jobCard, err
}

func (r *jobCardRepository) GetByNumber(ctx context.Context, number string) (*entity.JobCard, error) {
	var jobCard entity.JobCard
	err := r.db.WithContext(ctx).
		First(&jobCard, "job_card_number = ?", strings.ToUpper(number)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &jobCard, err
}

func (r *jobCardRepository) List(ctx context.Context, params *domainRepo.JobCardFilterParams) ([]entity.JobCard, int64, error) {
	var jobCards []entity.JobCard
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.JobCard{})

	if params.Phone != "" {
		query = query.Where("phone = ?", params.Phone)
	}

	if params.VehicleNumber != "" {
		query = query.Where("vehicle_number = ?", strings.ToUpper(params.VehicleNumber))
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Booking").
		Order("created_at DESC").
		Find(&jobCards).Error

	return jobCards, total, err
}

func (r *jobCardRepository) ListActiveByPhone(ctx context.Context, phone string, limit int) ([]entity.JobCard, error) {
	var jobCards []entity.JobCard
	err := r.db.WithContext(ctx).
		Where("phone = ? AND status <> ?", phone, enum.JobCardStatusDelivered).
		Order("created_at DESC").
		Limit(limit).
		Find(&jobCards).Error
	return jobCards, err
}

func (r *jobCardRepository) ListByPhone(ctx context.Context, phone string) ([]entity.JobCard, error) {
	var jobCards []entity.JobCard
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		Order("created_at DESC").
		Find(&jobCards).Error
	return jobCards, err
}

func (r *jobCardRepository) Update(ctx context.Context, jobCard *entity.JobCard) error {
	return r.db.WithContext(ctx).Save(jobCard).Error
}

func (r *jobCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.JobCard{}, "id = ?", id).Error
}

func (r *jobCardRepository) CountByStatus(ctx context.Context, status enum.JobCardStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.JobCard{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
