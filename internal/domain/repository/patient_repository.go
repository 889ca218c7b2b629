package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/pkg/pagination"
)

// PatientRepository defines the interface for patient data operations
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	GetByMRN(ctx context.Context, mrn string) (*entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PatientFilterParams) ([]entity.Patient, int64, error)
	ListWithCursor(ctx context.Context, params *PatientCursorFilterParams) ([]entity.Patient, error)
}

// PatientFilterParams contains filtering parameters for patient queries
type PatientFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Gender     string
	ProviderID *uuid.UUID
	SortBy     string
	SortOrder  string
}

// PatientCursorFilterParams contains cursor-based filtering for patient queries
type PatientCursorFilterParams struct {
	Cursor     *pagination.CursorParams
	Search     string
	Gender     string
	ProviderID *uuid.UUID
}
