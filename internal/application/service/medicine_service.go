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

// MedicineService manages the pharmacy inventory catalog
type MedicineService struct {
	medicineRepo repository.MedicineRepository
	supplierRepo repository.SupplierRepository
}

// NewMedicineService creates a new medicine service
func NewMedicineService(medicineRepo repository.MedicineRepository, supplierRepo repository.SupplierRepository) *MedicineService {
	return &MedicineService{
		medicineRepo: medicineRepo,
		supplierRepo: supplierRepo,
	}
}

// CreateMedicineInput represents the medicine creation input
type CreateMedicineInput struct {
	Name          string
	GenericName   *string
	Category      string
	BatchNo       *string
	ExpiryDate    *time.Time
	Quantity      int
	QuantityAlert int
	UnitPrice     decimal.Decimal
	CostPrice     decimal.Decimal
	SupplierID    *uuid.UUID
	Notes         *string
}

// CreateMedicine adds a new medicine to the inventory
func (s *MedicineService) CreateMedicine(ctx context.Context, input *CreateMedicineInput) (*entity.Medicine, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Medicine name is required")
	}
	if input.Quantity < 0 || input.QuantityAlert < 0 {
		return nil, apperror.NewBadRequestError("Quantities cannot be negative")
	}
	if input.UnitPrice.IsNegative() || input.CostPrice.IsNegative() {
		return nil, apperror.NewBadRequestError("Prices cannot be negative")
	}

	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}

	medicine := &entity.Medicine{
		Name:          input.Name,
		GenericName:   input.GenericName,
		Category:      input.Category,
		BatchNo:       input.BatchNo,
		ExpiryDate:    input.ExpiryDate,
		Quantity:      input.Quantity,
		QuantityAlert: input.QuantityAlert,
		UnitPrice:     input.UnitPrice,
		CostPrice:     input.CostPrice,
		SupplierID:    input.SupplierID,
		Notes:         input.Notes,
	}

	if err := s.medicineRepo.Create(ctx, medicine); err != nil {
		return nil, err
	}
	return medicine, nil
}

// GetMedicine retrieves a medicine by ID
func (s *MedicineService) GetMedicine(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, apperror.NewNotFoundError("Medicine")
	}
	return medicine, nil
}

// UpdateMedicine updates an existing medicine record
func (s *MedicineService) UpdateMedicine(ctx context.Context, id uuid.UUID, input *CreateMedicineInput) (*entity.Medicine, error) {
	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, apperror.NewNotFoundError("Medicine")
	}
	if input.UnitPrice.IsNegative() || input.CostPrice.IsNegative() {
		return nil, apperror.NewBadRequestError("Prices cannot be negative")
	}

	if input.Name != "" {
		medicine.Name = input.Name
	}
	medicine.GenericName = input.GenericName
	medicine.Category = input.Category
	medicine.BatchNo = input.BatchNo
	medicine.ExpiryDate = input.ExpiryDate
	medicine.QuantityAlert = input.QuantityAlert
	medicine.UnitPrice = input.UnitPrice
	medicine.CostPrice = input.CostPrice
	medicine.SupplierID = input.SupplierID
	medicine.Notes = input.Notes

	if err := s.medicineRepo.Update(ctx, medicine); err != nil {
		return nil, err
	}
	return medicine, nil
}

// DeleteMedicine soft deletes a medicine
func (s *MedicineService) DeleteMedicine(ctx context.Context, id uuid.UUID) error {
	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if medicine == nil {
		return apperror.NewNotFoundError("Medicine")
	}
	return s.medicineRepo.Delete(ctx, id)
}

// ListMedicines lists medicines with filtering
func (s *MedicineService) ListMedicines(ctx context.Context, params *repository.MedicineFilterParams) (*pagination.PaginatedResult[entity.Medicine], error) {
	medicines, total, err := s.medicineRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(medicines, pag), nil
}

// GetLowStockMedicines returns medicines at or below their alert level
func (s *MedicineService) GetLowStockMedicines(ctx context.Context) ([]entity.Medicine, error) {
	return s.medicineRepo.GetLowStock(ctx)
}

// CreateSupplier adds a new supplier
func (s *MedicineService) CreateSupplier(ctx context.Context, supplier *entity.Supplier) error {
	if supplier.Name == "" {
		return apperror.NewBadRequestError("Supplier name is required")
	}
	return s.supplierRepo.Create(ctx, supplier)
}

// GetSupplier retrieves a supplier by ID
func (s *MedicineService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// UpdateSupplier updates an existing supplier
func (s *MedicineService) UpdateSupplier(ctx context.Context, supplier *entity.Supplier) error {
	existing, err := s.supplierRepo.GetByID(ctx, supplier.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NewNotFoundError("Supplier")
	}
	return s.supplierRepo.Update(ctx, supplier)
}

// DeleteSupplier soft deletes a supplier
func (s *MedicineService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}
	return s.supplierRepo.Delete(ctx, id)
}

// ListSuppliers lists suppliers with pagination and search
func (s *MedicineService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Supplier], error) {
	suppliers, total, err := s.supplierRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(suppliers, pag), nil
}
