package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	"github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/pkg/apperror"
	"github.com/kipsang/medicore-api/pkg/pagination"
	"github.com/kipsang/medicore-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// InsuranceService manages providers and the claim lifecycle
type InsuranceService struct {
	providerRepo repository.InsuranceProviderRepository
	claimRepo    repository.InsuranceClaimRepository
	patientRepo  repository.PatientRepository
}

// NewInsuranceService creates a new insurance service
func NewInsuranceService(
	providerRepo repository.InsuranceProviderRepository,
	claimRepo repository.InsuranceClaimRepository,
	patientRepo repository.PatientRepository,
) *InsuranceService {
	return &InsuranceService{
		providerRepo: providerRepo,
		claimRepo:    claimRepo,
		patientRepo:  patientRepo,
	}
}

// CreateProvider adds a new insurance provider
func (s *InsuranceService) CreateProvider(ctx context.Context, provider *entity.InsuranceProvider) error {
	if provider.Name == "" {
		return apperror.NewBadRequestError("Provider name is required")
	}
	return s.providerRepo.Create(ctx, provider)
}

// GetProvider retrieves a provider by ID
func (s *InsuranceService) GetProvider(ctx context.Context, id uuid.UUID) (*entity.InsuranceProvider, error) {
	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, apperror.NewNotFoundError("Insurance provider")
	}
	return provider, nil
}

// UpdateProvider updates an existing provider
func (s *InsuranceService) UpdateProvider(ctx context.Context, provider *entity.InsuranceProvider) error {
	existing, err := s.providerRepo.GetByID(ctx, provider.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NewNotFoundError("Insurance provider")
	}
	return s.providerRepo.Update(ctx, provider)
}

// DeleteProvider soft deletes a provider
func (s *InsuranceService) DeleteProvider(ctx context.Context, id uuid.UUID) error {
	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if provider == nil {
		return apperror.NewNotFoundError("Insurance provider")
	}
	return s.providerRepo.Delete(ctx, id)
}

// ListProviders lists providers with pagination and search
func (s *InsuranceService) ListProviders(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.InsuranceProvider], error) {
	providers, total, err := s.providerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(providers, pag), nil
}

// FileClaimInput represents the claim filing input
type FileClaimInput struct {
	PatientID  uuid.UUID
	ProviderID uuid.UUID
	Amount     decimal.Decimal
	Notes      *string
}

// FileClaim files a new claim in Submitted status
func (s *InsuranceService) FileClaim(ctx context.Context, input *FileClaimInput) (*entity.InsuranceClaim, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperror.NewBadRequestError("Claim amount must be positive")
	}

	patient, err := s.patientRepo.GetByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	provider, err := s.providerRepo.GetByID(ctx, input.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, apperror.NewNotFoundError("Insurance provider")
	}

	claim := &entity.InsuranceClaim{
		ClaimNo:    utils.GenerateClaimNo(),
		PatientID:  input.PatientID,
		ProviderID: input.ProviderID,
		Amount:     input.Amount,
		Status:     enum.ClaimStatusSubmitted,
		FiledAt:    time.Now(),
		Notes:      input.Notes,
	}

	if err := s.claimRepo.Create(ctx, claim); err != nil {
		return nil, err
	}
	return claim, nil
}

// GetClaim retrieves a claim by ID
func (s *InsuranceService) GetClaim(ctx context.Context, id uuid.UUID) (*entity.InsuranceClaim, error) {
	claim, err := s.claimRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, apperror.NewNotFoundError("Claim")
	}
	return claim, nil
}

// ApproveClaim moves a submitted claim to Approved
func (s *InsuranceService) ApproveClaim(ctx context.Context, id uuid.UUID) (*entity.InsuranceClaim, error) {
	return s.transitionClaim(ctx, id, enum.ClaimStatusApproved, false)
}

// RejectClaim moves a submitted claim to Rejected
func (s *InsuranceService) RejectClaim(ctx context.Context, id uuid.UUID) (*entity.InsuranceClaim, error) {
	return s.transitionClaim(ctx, id, enum.ClaimStatusRejected, true)
}

// MarkClaimPaid moves an approved claim to Paid
func (s *InsuranceService) MarkClaimPaid(ctx context.Context, id uuid.UUID) (*entity.InsuranceClaim, error) {
	return s.transitionClaim(ctx, id, enum.ClaimStatusPaid, true)
}

// ListClaims lists claims with filtering
func (s *InsuranceService) ListClaims(ctx context.Context, params *repository.ClaimFilterParams) (*pagination.PaginatedResult[entity.InsuranceClaim], error) {
	claims, total, err := s.claimRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(claims, pag), nil
}

func (s *InsuranceService) transitionClaim(ctx context.Context, id uuid.UUID, target enum.ClaimStatus, resolves bool) (*entity.InsuranceClaim, error) {
	claim, err := s.claimRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, apperror.NewNotFoundError("Claim")
	}
	if !claim.Status.CanTransitionTo(target) {
		return nil, apperror.NewConflictError(
			fmt.Sprintf("Cannot move claim from %s to %s", claim.Status.String(), target.String()))
	}

	claim.Status = target
	if resolves {
		now := time.Now()
		claim.ResolvedAt = &now
	}
	if err := s.claimRepo.Update(ctx, claim); err != nil {
		return nil, err
	}
	return claim, nil
}
