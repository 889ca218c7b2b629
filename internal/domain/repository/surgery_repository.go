package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/pkg/pagination"
)

// SurgeryRepository defines the interface for surgery data operations
type SurgeryRepository interface {
	Create(ctx context.Context, surgery *entity.Surgery) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Surgery, error)
	Update(ctx context.Context, surgery *entity.Surgery) error
	List(ctx context.Context, params *SurgeryFilterParams) ([]entity.Surgery, int64, error)
}

// SurgeryFilterParams contains filtering parameters for surgery queries
type SurgeryFilterParams struct {
	Pagination *pagination.PaginationParams
	PatientID  *uuid.UUID
	SurgeonID  *uuid.UUID
	Status     string
	StartDate  *time.Time
	EndDate    *time.Time
}
