package service

import (
	"context"
	"fmt"
	"strings"
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

var oneHundred = decimal.NewFromInt(100)

// BillLine is a priced line item of an in-progress bill
type BillLine struct {
	MedicineID uuid.UUID
	Quantity   int
	UnitPrice  decimal.Decimal
}

// BillTotals holds the derived amounts of a bill
type BillTotals struct {
	SubTotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

// CalculateBillTotals computes the derived amounts for a set of bill lines.
//
//	subtotal       = sum(quantity * unitPrice)
//	discountAmount = subtotal * discountPercent / 100
//	taxAmount      = (subtotal - discountAmount) * taxPercent / 100
//	total          = subtotal - discountAmount + taxAmount
//
// Pure computation; percent ranges are enforced by callers, not here.
func CalculateBillTotals(lines []BillLine, discountPercent, taxPercent decimal.Decimal) BillTotals {
	subTotal := decimal.Zero
	for _, line := range lines {
		subTotal = subTotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	discountAmount := subTotal.Mul(discountPercent).Div(oneHundred)
	taxedBase := subTotal.Sub(discountAmount)
	taxAmount := taxedBase.Mul(taxPercent).Div(oneHundred)

	return BillTotals{
		SubTotal:       subTotal,
		DiscountAmount: discountAmount,
		TaxAmount:      taxAmount,
		Total:          taxedBase.Add(taxAmount),
	}
}

// BillingService handles pharmacy sale operations
type BillingService struct {
	saleRepo     repository.SaleRepository
	saleItemRepo repository.SaleItemRepository
	medicineRepo repository.MedicineRepository
	patientRepo  repository.PatientRepository
}

// NewBillingService creates a new billing service
func NewBillingService(
	saleRepo repository.SaleRepository,
	saleItemRepo repository.SaleItemRepository,
	medicineRepo repository.MedicineRepository,
	patientRepo repository.PatientRepository,
) *BillingService {
	return &BillingService{
		saleRepo:     saleRepo,
		saleItemRepo: saleItemRepo,
		medicineRepo: medicineRepo,
		patientRepo:  patientRepo,
	}
}

// SaleLineInput represents an item in a sale request
type SaleLineInput struct {
	MedicineID uuid.UUID
	Quantity   int
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	CashierID       uuid.UUID
	PatientID       *uuid.UUID
	DiscountPercent decimal.Decimal
	TaxPercent      decimal.Decimal
	PaymentType     string
	Items           []SaleLineInput
}

// CreateSale commits a bill: validates every line against available stock,
// atomically decrements inventory, then writes the sale header and line items.
// Stock is restored if either write fails.
func (s *BillingService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Sale must contain at least one item")
	}
	if err := validatePercent("discount", input.DiscountPercent); err != nil {
		return nil, err
	}
	if err := validatePercent("tax", input.TaxPercent); err != nil {
		return nil, err
	}

	// Validate patient if provided
	if input.PatientID != nil {
		patient, err := s.patientRepo.GetByID(ctx, *input.PatientID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, apperror.NewNotFoundError("Patient")
		}
	}

	// Batch fetch all medicines in one query (prevents N+1)
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

	// Validate all lines and price them from the inventory snapshot
	lines := make([]BillLine, 0, len(input.Items))
	saleItems := make([]entity.SaleItem, 0, len(input.Items))
	stockDecrements := make(map[uuid.UUID]int)

	for _, item := range input.Items {
		medicine, exists := medicineMap[item.MedicineID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Medicine %s", item.MedicineID))
		}
		if item.Quantity < 1 {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Quantity for %s must be at least 1", medicine.Name))
		}
		if item.Quantity > medicine.Quantity {
			return nil, apperror.NewBadRequestError(fmt.Sprintf(
				"Requested quantity for %s exceeds available stock (%d)", medicine.Name, medicine.Quantity))
		}

		lineTotal := medicine.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		lines = append(lines, BillLine{
			MedicineID: item.MedicineID,
			Quantity:   item.Quantity,
			UnitPrice:  medicine.UnitPrice,
		})
		saleItems = append(saleItems, entity.SaleItem{
			MedicineID: item.MedicineID,
			Quantity:   item.Quantity,
			UnitPrice:  medicine.UnitPrice,
			Total:      lineTotal,
		})
		stockDecrements[medicine.ID] += item.Quantity
	}

	totals := CalculateBillTotals(lines, input.DiscountPercent, input.TaxPercent)

	// Atomically decrement stock; a concurrent sale may have drained it since
	// the snapshot above, so the conditional update is the source of truth
	failedIDs, err := s.medicineRepo.AtomicDecrementBatch(ctx, stockDecrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		var failedNames []string
		for _, id := range failedIDs {
			if medicine, exists := medicineMap[id]; exists {
				failedNames = append(failedNames, medicine.Name)
			}
		}
		return nil, apperror.NewBadRequestError(
			"Insufficient stock for: " + strings.Join(failedNames, ", "))
	}

	sale := &entity.Sale{
		InvoiceNo:       utils.GenerateInvoiceNo(),
		PatientID:       input.PatientID,
		CashierID:       input.CashierID,
		SaleDate:        time.Now(),
		Status:          enum.SaleStatusCompleted,
		SubTotal:        totals.SubTotal,
		DiscountPercent: input.DiscountPercent,
		DiscountAmount:  totals.DiscountAmount,
		TaxPercent:      input.TaxPercent,
		TaxAmount:       totals.TaxAmount,
		Total:           totals.Total,
		PaymentType:     input.PaymentType,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		// Stock was already decremented - restore it
		_ = s.medicineRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	for i := range saleItems {
		saleItems[i].SaleID = sale.ID
	}

	if err := s.saleItemRepo.CreateBatch(ctx, saleItems); err != nil {
		_ = s.medicineRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	return s.saleRepo.GetWithItems(ctx, sale.ID)
}

// GetSale retrieves a sale by ID
func (s *BillingService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales lists sales with filtering
func (s *BillingService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// CancelSale cancels a completed sale and restores stock
func (s *BillingService) CancelSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}
	if sale.Status == enum.SaleStatusCancelled {
		return apperror.NewBadRequestError("Sale is already cancelled")
	}

	stockIncrements := make(map[uuid.UUID]int)
	for _, item := range sale.Items {
		stockIncrements[item.MedicineID] += item.Quantity
	}

	if err := s.medicineRepo.AtomicIncrementBatch(ctx, stockIncrements); err != nil {
		return err
	}

	return s.saleRepo.UpdateStatus(ctx, id, enum.SaleStatusCancelled)
}

// validatePercent rejects percent values outside [0, 100]
func validatePercent(field string, value decimal.Decimal) error {
	if value.IsNegative() || value.GreaterThan(oneHundred) {
		return apperror.NewBadRequestError(
			fmt.Sprintf("Invalid %s percent: must be between 0 and 100", field))
	}
	return nil
}
