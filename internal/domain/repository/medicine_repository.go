package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/pkg/pagination"
)

// MedicineRepository defines the interface for pharmacy inventory operations
type MedicineRepository interface {
	Create(ctx context.Context, medicine *entity.Medicine) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Medicine, error)
	Update(ctx context.Context, medicine *entity.Medicine) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *MedicineFilterParams) ([]entity.Medicine, int64, error)
	GetLowStock(ctx context.Context) ([]entity.Medicine, error)

	// AtomicDecrementBatch decrements stock for multiple medicines in one
	// transaction, rolling back entirely if any line has insufficient stock.
	// Returns the IDs that failed the stock check.
	AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error)
	// AtomicIncrementBatch increments stock for multiple medicines
	// (purchase receipts, sale cancellations).
	AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error
}

// MedicineFilterParams contains filtering parameters for medicine queries
type MedicineFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	SupplierID *uuid.UUID
	LowStock   bool
	SortBy     string
	SortOrder  string
}

// SupplierRepository defines the interface for supplier data operations
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error)
}
