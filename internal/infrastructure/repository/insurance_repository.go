package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	domainRepo "github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/pkg/pagination"
	"gorm.io/gorm"
)

type insuranceProviderRepository struct {
	db *gorm.DB
}

// NewInsuranceProviderRepository creates a new insurance provider repository
func NewInsuranceProviderRepository(db *gorm.DB) domainRepo.InsuranceProviderRepository {
	return &insuranceProviderRepository{db: db}
}

func (r *insuranceProviderRepository) Create(ctx context.Context, provider *entity.InsuranceProvider) error {
	return r.db.WithContext(ctx).Create(provider).Error
}

func (r *insuranceProviderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InsuranceProvider, error) {
	var provider entity.InsuranceProvider
	err := r.db.WithContext(ctx).First(&provider, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &provider, err
}

func (r *insuranceProviderRepository) Update(ctx context.Context, provider *entity.InsuranceProvider) error {
	return r.db.WithContext(ctx).Save(provider).Error
}

func (r *insuranceProviderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.InsuranceProvider{}, "id = ?", id).Error
}

func (r *insuranceProviderRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.InsuranceProvider, int64, error) {
	var providers []entity.InsuranceProvider
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.InsuranceProvider{})

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&providers).Error

	return providers, total, err
}

type insuranceClaimRepository struct {
	db *gorm.DB
}

// NewInsuranceClaimRepository creates a new insurance claim repository
func NewInsuranceClaimRepository(db *gorm.DB) domainRepo.InsuranceClaimRepository {
	return &insuranceClaimRepository{db: db}
}

func (r *insuranceClaimRepository) Create(ctx context.Context, claim *entity.InsuranceClaim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

func (r *insuranceClaimRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InsuranceClaim, error) {
	var claim entity.InsuranceClaim
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Provider").
		First(&claim, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &claim, err
}

func (r *insuranceClaimRepository) Update(ctx context.Context, claim *entity.InsuranceClaim) error {
	return r.db.WithContext(ctx).Save(claim).Error
}

func (r *insuranceClaimRepository) List(ctx context.Context, params *domainRepo.ClaimFilterParams) ([]entity.InsuranceClaim, int64, error) {
	var claims []entity.InsuranceClaim
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.InsuranceClaim{})

	if params.PatientID != nil {
		query = query.Where("patient_id = ?", *params.PatientID)
	}

	if params.ProviderID != nil {
		query = query.Where("provider_id = ?", *params.ProviderID)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Patient").
		Preload("Provider").
		Order("filed_at DESC").
		Find(&claims).Error

	return claims, total, err
}

func (r *insuranceClaimRepository) CountByStatus(ctx context.Context, status enum.ClaimStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.InsuranceClaim{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
