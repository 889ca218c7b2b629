package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	domainRepo "github.com/kipsang/medicore-api/internal/domain/repository"
	"gorm.io/gorm"
)

type surgeryRepository struct {
	db *gorm.DB
}

// NewSurgeryRepository creates a new surgery repository
func NewSurgeryRepository(db *gorm.DB) domainRepo.SurgeryRepository {
	return &surgeryRepository{db: db}
}

func (r *surgeryRepository) Create(ctx context.Context, surgery *entity.Surgery) error {
	return r.db.WithContext(ctx).Create(surgery).Error
}

func (r *surgeryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Surgery, error) {
	var surgery entity.Surgery
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Surgeon").
		First(&surgery, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &surgery, err
}

func (r *surgeryRepository) Update(ctx context.Context, surgery *entity.Surgery) error {
	return r.db.WithContext(ctx).Save(surgery).Error
}

func (r *surgeryRepository) List(ctx context.Context, params *domainRepo.SurgeryFilterParams) ([]entity.Surgery, int64, error) {
	var surgeries []entity.Surgery
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Surgery{})

	if params.PatientID != nil {
		query = query.Where("patient_id = ?", *params.PatientID)
	}

	if params.SurgeonID != nil {
		query = query.Where("surgeon_id = ?", *params.SurgeonID)
	}

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.StartDate != nil {
		query = query.Where("scheduled_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("scheduled_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Patient").
		Preload("Surgeon").
		Order("scheduled_at ASC").
		Find(&surgeries).Error

	return surgeries, total, err
}
