package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	"github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/pkg/apperror"
	"github.com/kipsang/medicore-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// StaffService manages clinical staff records
type StaffService struct {
	staffRepo repository.StaffRepository
}

// NewStaffService creates a new staff service
func NewStaffService(staffRepo repository.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

// CreateStaffInput represents the staff creation input
type CreateStaffInput struct {
	UserID          *uuid.UUID
	Type            enum.StaffType
	FirstName       string
	LastName        string
	Email           *string
	Phone           *string
	Department      string
	Specialization  *string
	LicenseNo       *string
	ConsultationFee decimal.Decimal
}

// CreateStaff creates a new staff member
func (s *StaffService) CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.Staff, error) {
	if input.FirstName == "" {
		return nil, apperror.NewBadRequestError("First name is required")
	}
	if input.ConsultationFee.IsNegative() {
		return nil, apperror.NewBadRequestError("Consultation fee cannot be negative")
	}

	staff := &entity.Staff{
		UserID:          input.UserID,
		Type:            input.Type,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		Phone:           input.Phone,
		Department:      input.Department,
		Specialization:  input.Specialization,
		LicenseNo:       input.LicenseNo,
		ConsultationFee: input.ConsultationFee,
		IsActive:        true,
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// GetStaff retrieves a staff member by ID
func (s *StaffService) GetStaff(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff")
	}
	return staff, nil
}

// UpdateStaff updates an existing staff member
func (s *StaffService) UpdateStaff(ctx context.Context, id uuid.UUID, input *CreateStaffInput) (*entity.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff")
	}
	if input.ConsultationFee.IsNegative() {
		return nil, apperror.NewBadRequestError("Consultation fee cannot be negative")
	}

	if input.FirstName != "" {
		staff.FirstName = input.FirstName
	}
	staff.Type = input.Type
	staff.LastName = input.LastName
	staff.Email = input.Email
	staff.Phone = input.Phone
	staff.Department = input.Department
	staff.Specialization = input.Specialization
	staff.LicenseNo = input.LicenseNo
	staff.ConsultationFee = input.ConsultationFee

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// DeactivateStaff marks a staff member as inactive
func (s *StaffService) DeactivateStaff(ctx context.Context, id uuid.UUID) error {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if staff == nil {
		return apperror.NewNotFoundError("Staff")
	}
	staff.IsActive = false
	return s.staffRepo.Update(ctx, staff)
}

// DeleteStaff soft deletes a staff member
func (s *StaffService) DeleteStaff(ctx context.Context, id uuid.UUID) error {
	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if staff == nil {
		return apperror.NewNotFoundError("Staff")
	}
	return s.staffRepo.Delete(ctx, id)
}

// ListStaff lists staff members with filtering
func (s *StaffService) ListStaff(ctx context.Context, params *repository.StaffFilterParams) (*pagination.PaginatedResult[entity.Staff], error) {
	staff, total, err := s.staffRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(staff, pag), nil
}
