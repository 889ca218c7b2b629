package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/pkg/pagination"
)

// LabTestRepository defines the interface for lab test data operations
type LabTestRepository interface {
	Create(ctx context.Context, test *entity.LabTest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.LabTest, error)
	Update(ctx context.Context, test *entity.LabTest) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *LabTestFilterParams) ([]entity.LabTest, int64, error)
}

// LabTestFilterParams contains filtering parameters for lab test queries
type LabTestFilterParams struct {
	Pagination *pagination.PaginationParams
	PatientID  *uuid.UUID
	Status     string
	Search     string
}
