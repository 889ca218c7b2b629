package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	"github.com/kipsang/medicore-api/pkg/pagination"
)

// InsuranceProviderRepository defines the interface for provider data operations
type InsuranceProviderRepository interface {
	Create(ctx context.Context, provider *entity.InsuranceProvider) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InsuranceProvider, error)
	Update(ctx context.Context, provider *entity.InsuranceProvider) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.InsuranceProvider, int64, error)
}

// InsuranceClaimRepository defines the interface for claim data operations
type InsuranceClaimRepository interface {
	Create(ctx context.Context, claim *entity.InsuranceClaim) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InsuranceClaim, error)
	Update(ctx context.Context, claim *entity.InsuranceClaim) error
	List(ctx context.Context, params *ClaimFilterParams) ([]entity.InsuranceClaim, int64, error)
	CountByStatus(ctx context.Context, status enum.ClaimStatus) (int64, error)
}

// ClaimFilterParams contains filtering parameters for claim queries
type ClaimFilterParams struct {
	Pagination *pagination.PaginationParams
	PatientID  *uuid.UUID
	ProviderID *uuid.UUID
	Status     *enum.ClaimStatus
}
