package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/pkg/apperror"
	"github.com/kipsang/medicore-api/pkg/pagination"
	"github.com/kipsang/medicore-api/pkg/utils"
)

// PatientService manages patient records
type PatientService struct {
	patientRepo  repository.PatientRepository
	providerRepo repository.InsuranceProviderRepository
}

// NewPatientService creates a new patient service
func NewPatientService(patientRepo repository.PatientRepository, providerRepo repository.InsuranceProviderRepository) *PatientService {
	return &PatientService{
		patientRepo:  patientRepo,
		providerRepo: providerRepo,
	}
}

// CreatePatientInput represents the patient registration input
type CreatePatientInput struct {
	FirstName           string
	LastName            string
	DateOfBirth         *time.Time
	Gender              string
	BloodGroup          *string
	Phone               *string
	Email               *string
	Address             *string
	EmergencyContact    *string
	InsuranceProviderID *uuid.UUID
	PolicyNumber        *string
	Notes               *string
}

// CreatePatient registers a new patient and assigns a medical record number
func (s *PatientService) CreatePatient(ctx context.Context, input *CreatePatientInput) (*entity.Patient, error) {
	if input.FirstName == "" {
		return nil, apperror.NewBadRequestError("First name is required")
	}

	if input.InsuranceProviderID != nil {
		provider, err := s.providerRepo.GetByID(ctx, *input.InsuranceProviderID)
		if err != nil {
			return nil, err
		}
		if provider == nil {
			return nil, apperror.NewNotFoundError("Insurance provider")
		}
	}

	patient := &entity.Patient{
		MRN:                 utils.GenerateMRN(),
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		DateOfBirth:         input.DateOfBirth,
		Gender:              input.Gender,
		BloodGroup:          input.BloodGroup,
		Phone:               input.Phone,
		Email:               input.Email,
		Address:             input.Address,
		EmergencyContact:    input.EmergencyContact,
		InsuranceProviderID: input.InsuranceProviderID,
		PolicyNumber:        input.PolicyNumber,
		Notes:               input.Notes,
	}

	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// GetPatient retrieves a patient by ID
func (s *PatientService) GetPatient(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}
	return patient, nil
}

// GetPatientByMRN retrieves a patient by medical record number
func (s *PatientService) GetPatientByMRN(ctx context.Context, mrn string) (*entity.Patient, error) {
	patient, err := s.patientRepo.GetByMRN(ctx, mrn)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}
	return patient, nil
}

// UpdatePatient updates an existing patient record
func (s *PatientService) UpdatePatient(ctx context.Context, id uuid.UUID, input *CreatePatientInput) (*entity.Patient, error) {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	if input.InsuranceProviderID != nil {
		provider, err := s.providerRepo.GetByID(ctx, *input.InsuranceProviderID)
		if err != nil {
			return nil, err
		}
		if provider == nil {
			return nil, apperror.NewNotFoundError("Insurance provider")
		}
	}

	if input.FirstName != "" {
		patient.FirstName = input.FirstName
	}
	patient.LastName = input.LastName
	patient.DateOfBirth = input.DateOfBirth
	patient.Gender = input.Gender
	patient.BloodGroup = input.BloodGroup
	patient.Phone = input.Phone
	patient.Email = input.Email
	patient.Address = input.Address
	patient.EmergencyContact = input.EmergencyContact
	patient.InsuranceProviderID = input.InsuranceProviderID
	patient.PolicyNumber = input.PolicyNumber
	patient.Notes = input.Notes

	if err := s.patientRepo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// DeletePatient soft deletes a patient record
func (s *PatientService) DeletePatient(ctx context.Context, id uuid.UUID) error {
	patient, err := s.patientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if patient == nil {
		return apperror.NewNotFoundError("Patient")
	}
	return s.patientRepo.Delete(ctx, id)
}

// ListPatients lists patients with offset pagination
func (s *PatientService) ListPatients(ctx context.Context, params *repository.PatientFilterParams) (*pagination.PaginatedResult[entity.Patient], error) {
	patients, total, err := s.patientRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(patients, pag), nil
}

// ListPatientsWithCursor lists patients with keyset pagination for large scans
func (s *PatientService) ListPatientsWithCursor(ctx context.Context, params *repository.PatientCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Patient], error) {
	patients, err := s.patientRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	cursorPag, items := pagination.NewCursorPagination(patients, params.Cursor.Limit,
		func(p entity.Patient) string { return p.ID.String() },
		func(p entity.Patient) time.Time { return p.CreatedAt },
	)
	cursorPag.HasPrev = params.Cursor.Cursor != ""

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}
