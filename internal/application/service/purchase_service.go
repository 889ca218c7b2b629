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

// PurchaseService manages purchase orders and their status lifecycle
type PurchaseService struct {
	purchaseRepo repository.PurchaseRepository
	detailRepo   repository.PurchaseDetailRepository
	medicineRepo repository.MedicineRepository
	supplierRepo repository.SupplierRepository
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	detailRepo repository.PurchaseDetailRepository,
	medicineRepo repository.MedicineRepository,
	supplierRepo repository.SupplierRepository,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		detailRepo:   detailRepo,
		medicineRepo: medicineRepo,
		supplierRepo: supplierRepo,
	}
}

// PurchaseLineInput represents an item in a purchase order request
type PurchaseLineInput struct {
	MedicineID uuid.UUID
	Quantity   int
	UnitPrice  decimal.Decimal
}

// CreatePurchaseInput represents the create purchase order input
type CreatePurchaseInput struct {
	SupplierID *uuid.UUID
	Date       time.Time
	Notes      *string
	Items      []PurchaseLineInput
}

// CreatePurchase creates a purchase order in Draft status
func (s *PurchaseService) CreatePurchase(ctx context.Context, userID uuid.UUID, input *CreatePurchaseInput) (*entity.Purchase, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Purchase order must contain at least one item")
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

	medicineIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		medicineIDs[i] = item.MedicineID
	}
	medicines, err := s.medicineRepo.GetByIDs(ctx, medicineIDs)
	if err != nil {
		return nil, err
	}
	medicineMap := make(map[uuid.UUID]*entity.Medicine, len(medicines))
	for i := range medicines {
		medicineMap[medicines[i].ID] = &medicines[i]
	}

	total := decimal.Zero
	details := make([]entity.PurchaseDetail, 0, len(input.Items))
	for _, item := range input.Items {
		medicine, exists := medicineMap[item.MedicineID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Medicine %s", item.MedicineID))
		}
		if item.Quantity < 1 {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Quantity for %s must be at least 1", medicine.Name))
		}
		if item.UnitPrice.IsNegative() {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Unit price for %s cannot be negative", medicine.Name))
		}

		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)
		details = append(details, entity.PurchaseDetail{
			MedicineID: item.MedicineID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Total:      lineTotal,
		})
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	purchase := &entity.Purchase{
		PurchaseNo:  utils.GeneratePurchaseNo(),
		SupplierID:  input.SupplierID,
		CreatedByID: userID,
		Date:        date,
		Status:      enum.PurchaseStatusDraft,
		TotalAmount: total,
		Notes:       input.Notes,
	}

	if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
		return nil, err
	}

	for i := range details {
		details[i].PurchaseID = purchase.ID
	}
	if err := s.detailRepo.CreateBatch(ctx, details); err != nil {
		return nil, err
	}

	return s.purchaseRepo.GetWithDetails(ctx, purchase.ID)
}

// GetPurchase retrieves a purchase order with its line items
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	return purchase, nil
}

// ListPurchases lists purchase orders with filtering
func (s *PurchaseService) ListPurchases(ctx context.Context, params *repository.PurchaseFilterParams) (*pagination.PaginatedResult[entity.Purchase], error) {
	purchases, total, err := s.purchaseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(purchases, pag), nil
}

// SubmitPurchase moves a draft purchase order to Submitted
func (s *PurchaseService) SubmitPurchase(ctx context.Context, id, userID uuid.UUID) (*entity.Purchase, error) {
	return s.transition(ctx, id, userID, enum.PurchaseStatusSubmitted)
}

// ApprovePurchase moves a submitted purchase order to Approved
func (s *PurchaseService) ApprovePurchase(ctx context.Context, id, userID uuid.UUID) (*entity.Purchase, error) {
	return s.transition(ctx, id, userID, enum.PurchaseStatusApproved)
}

// ReceivePurchase marks an approved purchase order as Received and adds the
// ordered quantities into medicine stock
func (s *PurchaseService) ReceivePurchase(ctx context.Context, id, userID uuid.UUID) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	if !purchase.Status.CanTransitionTo(enum.PurchaseStatusReceived) {
		return nil, transitionError(purchase.Status, enum.PurchaseStatusReceived)
	}

	stockIncrements := make(map[uuid.UUID]int)
	for _, detail := range purchase.Details {
		stockIncrements[detail.MedicineID] += detail.Quantity
	}

	if err := s.medicineRepo.AtomicIncrementBatch(ctx, stockIncrements); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.UpdateStatus(ctx, id, enum.PurchaseStatusReceived, userID); err != nil {
		// Stock was already added - take it back out
		_, _ = s.medicineRepo.AtomicDecrementBatch(ctx, stockIncrements)
		return nil, err
	}

	return s.purchaseRepo.GetWithDetails(ctx, id)
}

// CancelPurchase cancels a purchase order that has not reached a terminal state
func (s *PurchaseService) CancelPurchase(ctx context.Context, id, userID uuid.UUID) (*entity.Purchase, error) {
	return s.transition(ctx, id, userID, enum.PurchaseStatusCancelled)
}

// DeletePurchase removes a purchase order; only drafts can be deleted
func (s *PurchaseService) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if purchase == nil {
		return apperror.NewNotFoundError("Purchase order")
	}
	if purchase.Status != enum.PurchaseStatusDraft {
		return apperror.NewBadRequestError("Only draft purchase orders can be deleted")
	}

	if err := s.detailRepo.DeleteByPurchaseID(ctx, id); err != nil {
		return err
	}
	return s.purchaseRepo.Delete(ctx, id)
}

func (s *PurchaseService) transition(ctx context.Context, id, userID uuid.UUID, target enum.PurchaseStatus) (*entity.Purchase, error) {
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	if !purchase.Status.CanTransitionTo(target) {
		return nil, transitionError(purchase.Status, target)
	}

	if err := s.purchaseRepo.UpdateStatus(ctx, id, target, userID); err != nil {
		return nil, err
	}
	return s.purchaseRepo.GetWithDetails(ctx, id)
}

func transitionError(from, to enum.PurchaseStatus) error {
	return apperror.NewConflictError(
		fmt.Sprintf("Cannot move purchase order from %s to %s", from.String(), to.String()))
}
