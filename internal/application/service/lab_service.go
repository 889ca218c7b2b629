package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/pkg/apperror"
	"github.com/kipsang/medicore-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// LabService manages lab test orders and results
type LabService struct {
	labRepo     repository.LabTestRepository
	patientRepo repository.PatientRepository
}

// NewLabService creates a new lab service
func NewLabService(labRepo repository.LabTestRepository, patientRepo repository.PatientRepository) *LabService {
	return &LabService{
		labRepo:     labRepo,
		patientRepo: patientRepo,
	}
}

// OrderLabTestInput represents the lab test order input
type OrderLabTestInput struct {
	PatientID   uuid.UUID
	OrderedByID *uuid.UUID
	TestName    string
	Price       decimal.Decimal
}

// OrderLabTest creates a pending lab test for a patient
func (s *LabService) OrderLabTest(ctx context.Context, input *OrderLabTestInput) (*entity.LabTest, error) {
	if input.TestName == "" {
		return nil, apperror.NewBadRequestError("Test name is required")
	}
	if input.Price.IsNegative() {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	patient, err := s.patientRepo.GetByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	test := &entity.LabTest{
		PatientID:   input.PatientID,
		OrderedByID: input.OrderedByID,
		TestName:    input.TestName,
		Status:      entity.LabStatusPending,
		Price:       input.Price,
		OrderedAt:   time.Now(),
	}

	if err := s.labRepo.Create(ctx, test); err != nil {
		return nil, err
	}
	return test, nil
}

// GetLabTest retrieves a lab test by ID
func (s *LabService) GetLabTest(ctx context.Context, id uuid.UUID) (*entity.LabTest, error) {
	test, err := s.labRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, apperror.NewNotFoundError("Lab test")
	}
	return test, nil
}

// CompleteLabTest records a result and marks the test completed
func (s *LabService) CompleteLabTest(ctx context.Context, id uuid.UUID, result string) (*entity.LabTest, error) {
	if result == "" {
		return nil, apperror.NewBadRequestError("Result is required")
	}

	test, err := s.labRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, apperror.NewNotFoundError("Lab test")
	}
	if test.Status == entity.LabStatusCompleted {
		return nil, apperror.NewConflictError("Lab test is already completed")
	}

	now := time.Now()
	test.Status = entity.LabStatusCompleted
	test.Result = &result
	test.CompletedAt = &now

	if err := s.labRepo.Update(ctx, test); err != nil {
		return nil, err
	}
	return test, nil
}

// DeleteLabTest removes a pending lab test
func (s *LabService) DeleteLabTest(ctx context.Context, id uuid.UUID) error {
	test, err := s.labRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if test == nil {
		return apperror.NewNotFoundError("Lab test")
	}
	if test.Status == entity.LabStatusCompleted {
		return apperror.NewBadRequestError("Completed lab tests cannot be deleted")
	}
	return s.labRepo.Delete(ctx, id)
}

// ListLabTests lists lab tests with filtering
func (s *LabService) ListLabTests(ctx context.Context, params *repository.LabTestFilterParams) (*pagination.PaginatedResult[entity.LabTest], error) {
	tests, total, err := s.labRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(tests, pag), nil
}
