package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	"github.com/kipsang/medicore-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalculateBillTotals(t *testing.T) {
	tests := []struct {
		name            string
		lines           []BillLine
		discountPercent string
		taxPercent      string
		wantSubTotal    string
		wantDiscount    string
		wantTax         string
		wantTotal       string
	}{
		{
			name: "discount and tax",
			lines: []BillLine{
				{Quantity: 2, UnitPrice: dec("10")},
				{Quantity: 1, UnitPrice: dec("5")},
			},
			discountPercent: "10",
			taxPercent:      "5",
			wantSubTotal:    "25",
			wantDiscount:    "2.5",
			wantTax:         "1.125",
			wantTotal:       "23.625",
		},
		{
			name: "no discount no tax",
			lines: []BillLine{
				{Quantity: 3, UnitPrice: dec("7.50")},
			},
			discountPercent: "0",
			taxPercent:      "0",
			wantSubTotal:    "22.5",
			wantDiscount:    "0",
			wantTax:         "0",
			wantTotal:       "22.5",
		},
		{
			name:            "empty lines",
			lines:           nil,
			discountPercent: "10",
			taxPercent:      "5",
			wantSubTotal:    "0",
			wantDiscount:    "0",
			wantTax:         "0",
			wantTotal:       "0",
		},
		{
			name: "full discount",
			lines: []BillLine{
				{Quantity: 4, UnitPrice: dec("25")},
			},
			discountPercent: "100",
			taxPercent:      "16",
			wantSubTotal:    "100",
			wantDiscount:    "100",
			wantTax:         "0",
			wantTotal:       "0",
		},
		{
			name: "tax applies to discounted base",
			lines: []BillLine{
				{Quantity: 1, UnitPrice: dec("200")},
			},
			discountPercent: "50",
			taxPercent:      "10",
			wantSubTotal:    "200",
			wantDiscount:    "100",
			wantTax:         "10",
			wantTotal:       "110",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateBillTotals(tt.lines, dec(tt.discountPercent), dec(tt.taxPercent))

			if !got.SubTotal.Equal(dec(tt.wantSubTotal)) {
				t.Errorf("SubTotal = %s, want %s", got.SubTotal, tt.wantSubTotal)
			}
			if !got.DiscountAmount.Equal(dec(tt.wantDiscount)) {
				t.Errorf("DiscountAmount = %s, want %s", got.DiscountAmount, tt.wantDiscount)
			}
			if !got.TaxAmount.Equal(dec(tt.wantTax)) {
				t.Errorf("TaxAmount = %s, want %s", got.TaxAmount, tt.wantTax)
			}
			if !got.Total.Equal(dec(tt.wantTotal)) {
				t.Errorf("Total = %s, want %s", got.Total, tt.wantTotal)
			}
		})
	}
}

func TestCalculateBillTotalsIdentity(t *testing.T) {
	// total must always equal subtotal - discount + tax
	lines := []BillLine{
		{Quantity: 3, UnitPrice: dec("12.99")},
		{Quantity: 7, UnitPrice: dec("0.35")},
	}
	got := CalculateBillTotals(lines, dec("12.5"), dec("16"))

	expected := got.SubTotal.Sub(got.DiscountAmount).Add(got.TaxAmount)
	if !got.Total.Equal(expected) {
		t.Errorf("Total = %s, want subtotal - discount + tax = %s", got.Total, expected)
	}
}

func newBillingFixture(medicines ...*entity.Medicine) (*BillingService, *fakeMedicineRepo, *fakeSaleRepo) {
	medicineRepo := newFakeMedicineRepo(medicines...)
	saleRepo := newFakeSaleRepo()
	svc := NewBillingService(saleRepo, newFakeSaleItemRepo(), medicineRepo, newFakePatientRepo())
	return svc, medicineRepo, saleRepo
}

func TestCreateSaleDecrementsStock(t *testing.T) {
	medicine := &entity.Medicine{ID: uuid.New(), Name: "Paracetamol", Quantity: 50, UnitPrice: dec("10")}
	svc, medicineRepo, _ := newBillingFixture(medicine)

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		CashierID:       uuid.New(),
		DiscountPercent: dec("10"),
		TaxPercent:      dec("5"),
		PaymentType:     "cash",
		Items:           []SaleLineInput{{MedicineID: medicine.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("CreateSale() error = %v", err)
	}

	if !sale.Total.Equal(dec("18.9")) {
		t.Errorf("Total = %s, want 18.9", sale.Total)
	}
	if got := medicineRepo.medicines[medicine.ID].Quantity; got != 48 {
		t.Errorf("stock after sale = %d, want 48", got)
	}
	if sale.InvoiceNo == "" {
		t.Error("expected invoice number to be assigned")
	}
	if sale.Status != enum.SaleStatusCompleted {
		t.Errorf("Status = %v, want Completed", sale.Status)
	}
}

func TestCreateSaleValidation(t *testing.T) {
	medicine := &entity.Medicine{ID: uuid.New(), Name: "Ibuprofen", Quantity: 5, UnitPrice: dec("8")}

	tests := []struct {
		name     string
		input    *CreateSaleInput
		wantCode int
	}{
		{
			name: "empty items",
			input: &CreateSaleInput{
				CashierID: uuid.New(),
			},
			wantCode: 400,
		},
		{
			name: "quantity exceeds stock",
			input: &CreateSaleInput{
				CashierID: uuid.New(),
				Items:     []SaleLineInput{{MedicineID: medicine.ID, Quantity: 6}},
			},
			wantCode: 400,
		},
		{
			name: "zero quantity",
			input: &CreateSaleInput{
				CashierID: uuid.New(),
				Items:     []SaleLineInput{{MedicineID: medicine.ID, Quantity: 0}},
			},
			wantCode: 400,
		},
		{
			name: "unknown medicine",
			input: &CreateSaleInput{
				CashierID: uuid.New(),
				Items:     []SaleLineInput{{MedicineID: uuid.New(), Quantity: 1}},
			},
			wantCode: 404,
		},
		{
			name: "discount above 100",
			input: &CreateSaleInput{
				CashierID:       uuid.New(),
				DiscountPercent: dec("101"),
				Items:           []SaleLineInput{{MedicineID: medicine.ID, Quantity: 1}},
			},
			wantCode: 400,
		},
		{
			name: "negative tax",
			input: &CreateSaleInput{
				CashierID:  uuid.New(),
				TaxPercent: dec("-1"),
				Items:      []SaleLineInput{{MedicineID: medicine.ID, Quantity: 1}},
			},
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, medicineRepo, _ := newBillingFixture(medicine)
			startQty := medicine.Quantity

			_, err := svc.CreateSale(context.Background(), tt.input)
			if err == nil {
				t.Fatal("CreateSale() expected error")
			}
			if got := apperror.GetAppError(err).Code; got != tt.wantCode {
				t.Errorf("error code = %d, want %d", got, tt.wantCode)
			}
			if got := medicineRepo.medicines[medicine.ID].Quantity; got != startQty {
				t.Errorf("stock changed to %d on failed sale, want %d", got, startQty)
			}
		})
	}
}

func TestCancelSaleRestoresStock(t *testing.T) {
	medicine := &entity.Medicine{ID: uuid.New(), Name: "Amoxicillin", Quantity: 20, UnitPrice: dec("15")}
	svc, medicineRepo, saleRepo := newBillingFixture(medicine)

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		CashierID: uuid.New(),
		Items:     []SaleLineInput{{MedicineID: medicine.ID, Quantity: 4}},
	})
	if err != nil {
		t.Fatalf("CreateSale() error = %v", err)
	}
	// fake GetWithItems does not preload, attach manually
	saleRepo.sales[sale.ID].Items = []entity.SaleItem{
		{SaleID: sale.ID, MedicineID: medicine.ID, Quantity: 4, UnitPrice: dec("15"), Total: dec("60")},
	}

	if err := svc.CancelSale(context.Background(), sale.ID); err != nil {
		t.Fatalf("CancelSale() error = %v", err)
	}

	if got := medicineRepo.medicines[medicine.ID].Quantity; got != 20 {
		t.Errorf("stock after cancel = %d, want 20", got)
	}
	if got := saleRepo.sales[sale.ID].Status; got != enum.SaleStatusCancelled {
		t.Errorf("Status = %v, want Cancelled", got)
	}

	// cancelling twice must fail and not restore again
	if err := svc.CancelSale(context.Background(), sale.ID); err == nil {
		t.Fatal("CancelSale() on cancelled sale expected error")
	}
	if got := medicineRepo.medicines[medicine.ID].Quantity; got != 20 {
		t.Errorf("stock after double cancel = %d, want 20", got)
	}
}
