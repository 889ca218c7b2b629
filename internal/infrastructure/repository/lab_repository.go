package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	domainRepo "github.com/kipsang/medicore-api/internal/domain/repository"
	"gorm.io/gorm"
)

type labTestRepository struct {
	db *gorm.DB
}

// NewLabTestRepository creates a new lab test repository
func NewLabTestRepository(db *gorm.DB) domainRepo.LabTestRepository {
	return &labTestRepository{db: db}
}

func (r *labTestRepository) Create(ctx context.Context, test *entity.LabTest) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *labTestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.LabTest, error) {
	var test entity.LabTest
	err := r.db.WithContext(ctx).
		Preload("Patient").
		First(&test, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &test, err
}

func (r *labTestRepository) Update(ctx context.Context, test *entity.LabTest) error {
	return r.db.WithContext(ctx).Save(test).Error
}

func (r *labTestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.LabTest{}, "id = ?", id).Error
}

func (r *labTestRepository) List(ctx context.Context, params *domainRepo.LabTestFilterParams) ([]entity.LabTest, int64, error) {
	var tests []entity.LabTest
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.LabTest{})

	if params.PatientID != nil {
		query = query.Where("patient_id = ?", *params.PatientID)
	}

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.Search != "" {
		query = query.Where("test_name ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Patient").
		Order("ordered_at DESC").
		Find(&tests).Error

	return tests, total, err
}
