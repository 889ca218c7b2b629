package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	"github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/pkg/apperror"
	"github.com/kipsang/medicore-api/pkg/pagination"
)

// SurgeryService manages surgical procedure scheduling
type SurgeryService struct {
	surgeryRepo repository.SurgeryRepository
	patientRepo repository.PatientRepository
	staffRepo   repository.StaffRepository
}

// NewSurgeryService creates a new surgery service
func NewSurgeryService(
	surgeryRepo repository.SurgeryRepository,
	patientRepo repository.PatientRepository,
	staffRepo repository.StaffRepository,
) *SurgeryService {
	return &SurgeryService{
		surgeryRepo: surgeryRepo,
		patientRepo: patientRepo,
		staffRepo:   staffRepo,
	}
}

// ScheduleSurgeryInput represents the surgery scheduling input
type ScheduleSurgeryInput struct {
	PatientID   uuid.UUID
	SurgeonID   uuid.UUID
	Procedure   string
	TheaterRoom string
	ScheduledAt time.Time
	Notes       *string
}

// ScheduleSurgery books a surgical procedure
func (s *SurgeryService) ScheduleSurgery(ctx context.Context, input *ScheduleSurgeryInput) (*entity.Surgery, error) {
	if input.Procedure == "" {
		return nil, apperror.NewBadRequestError("Procedure is required")
	}
	if input.ScheduledAt.Before(time.Now()) {
		return nil, apperror.NewBadRequestError("Surgery cannot be scheduled in the past")
	}

	patient, err := s.patientRepo.GetByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	surgeon, err := s.staffRepo.GetByID(ctx, input.SurgeonID)
	if err != nil {
		return nil, err
	}
	if surgeon == nil || surgeon.Type != enum.StaffTypeDoctor {
		return nil, apperror.NewNotFoundError("Surgeon")
	}

	surgery := &entity.Surgery{
		PatientID:   input.PatientID,
		SurgeonID:   input.SurgeonID,
		Procedure:   input.Procedure,
		TheaterRoom: input.TheaterRoom,
		ScheduledAt: input.ScheduledAt,
		Status:      entity.SurgeryStatusScheduled,
		Notes:       input.Notes,
	}

	if err := s.surgeryRepo.Create(ctx, surgery); err != nil {
		return nil, err
	}
	return surgery, nil
}

// GetSurgery retrieves a surgery by ID
func (s *SurgeryService) GetSurgery(ctx context.Context, id uuid.UUID) (*entity.Surgery, error) {
	surgery, err := s.surgeryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if surgery == nil {
		return nil, apperror.NewNotFoundError("Surgery")
	}
	return surgery, nil
}

// CompleteSurgery marks a scheduled surgery as completed
func (s *SurgeryService) CompleteSurgery(ctx context.Context, id uuid.UUID, notes *string) (*entity.Surgery, error) {
	surgery, err := s.surgeryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if surgery == nil {
		return nil, apperror.NewNotFoundError("Surgery")
	}
	if surgery.Status != entity.SurgeryStatusScheduled {
		return nil, apperror.NewBadRequestError("Only scheduled surgeries can be completed")
	}

	surgery.Status = entity.SurgeryStatusCompleted
	if notes != nil {
		surgery.Notes = notes
	}
	if err := s.surgeryRepo.Update(ctx, surgery); err != nil {
		return nil, err
	}
	return surgery, nil
}

// CancelSurgery cancels a scheduled surgery
func (s *SurgeryService) CancelSurgery(ctx context.Context, id uuid.UUID) error {
	surgery, err := s.surgeryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if surgery == nil {
		return apperror.NewNotFoundError("Surgery")
	}
	if surgery.Status != entity.SurgeryStatusScheduled {
		return apperror.NewBadRequestError("Only scheduled surgeries can be cancelled")
	}

	surgery.Status = entity.SurgeryStatusCancelled
	return s.surgeryRepo.Update(ctx, surgery)
}

// ListSurgeries lists surgeries with filtering
func (s *SurgeryService) ListSurgeries(ctx context.Context, params *repository.SurgeryFilterParams) (*pagination.PaginatedResult[entity.Surgery], error) {
	surgeries, total, err := s.surgeryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(surgeries, pag), nil
}
