package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/internal/domain/enum"
)

func TestPurchaseStatusTransitions(t *testing.T) {
	tests := []struct {
		from enum.PurchaseStatus
		to   enum.PurchaseStatus
		want bool
	}{
		{enum.PurchaseStatusDraft, enum.PurchaseStatusSubmitted, true},
		{enum.PurchaseStatusSubmitted, enum.PurchaseStatusApproved, true},
		{enum.PurchaseStatusApproved, enum.PurchaseStatusReceived, true},
		{enum.PurchaseStatusDraft, enum.PurchaseStatusCancelled, true},
		{enum.PurchaseStatusSubmitted, enum.PurchaseStatusCancelled, true},
		{enum.PurchaseStatusApproved, enum.PurchaseStatusCancelled, true},

		// skipping stages
		{enum.PurchaseStatusDraft, enum.PurchaseStatusApproved, false},
		{enum.PurchaseStatusDraft, enum.PurchaseStatusReceived, false},
		{enum.PurchaseStatusSubmitted, enum.PurchaseStatusReceived, false},

		// reverse
		{enum.PurchaseStatusSubmitted, enum.PurchaseStatusDraft, false},
		{enum.PurchaseStatusApproved, enum.PurchaseStatusSubmitted, false},
		{enum.PurchaseStatusReceived, enum.PurchaseStatusApproved, false},

		// terminal states
		{enum.PurchaseStatusReceived, enum.PurchaseStatusCancelled, false},
		{enum.PurchaseStatusCancelled, enum.PurchaseStatusDraft, false},
		{enum.PurchaseStatusCancelled, enum.PurchaseStatusSubmitted, false},
		{enum.PurchaseStatusCancelled, enum.PurchaseStatusCancelled, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestPurchaseStatusIsTerminal(t *testing.T) {
	terminal := map[enum.PurchaseStatus]bool{
		enum.PurchaseStatusDraft:     false,
		enum.PurchaseStatusSubmitted: false,
		enum.PurchaseStatusApproved:  false,
		enum.PurchaseStatusReceived:  true,
		enum.PurchaseStatusCancelled: true,
	}
	for status, want := range terminal {
		if got := status.IsTerminal(); got != want {
			t.Errorf("IsTerminal(%s) = %v, want %v", status, got, want)
		}
	}
}

func newPurchaseFixture(medicines ...*entity.Medicine) (*PurchaseService, *fakePurchaseRepo, *fakeMedicineRepo) {
	purchaseRepo := newFakePurchaseRepo()
	medicineRepo := newFakeMedicineRepo(medicines...)
	svc := NewPurchaseService(purchaseRepo, newFakePurchaseDetailRepo(), medicineRepo, newFakeSupplierRepo())
	return svc, purchaseRepo, medicineRepo
}

func TestCreatePurchaseComputesTotal(t *testing.T) {
	medA := &entity.Medicine{ID: uuid.New(), Name: "Cetirizine", Quantity: 10, UnitPrice: dec("4")}
	medB := &entity.Medicine{ID: uuid.New(), Name: "Omeprazole", Quantity: 10, UnitPrice: dec("9")}
	svc, _, _ := newPurchaseFixture(medA, medB)

	purchase, err := svc.CreatePurchase(context.Background(), uuid.New(), &CreatePurchaseInput{
		Items: []PurchaseLineInput{
			{MedicineID: medA.ID, Quantity: 100, UnitPrice: dec("2.50")},
			{MedicineID: medB.ID, Quantity: 20, UnitPrice: dec("6")},
		},
	})
	if err != nil {
		t.Fatalf("CreatePurchase() error = %v", err)
	}

	if purchase.Status != enum.PurchaseStatusDraft {
		t.Errorf("Status = %s, want Draft", purchase.Status)
	}
	if !purchase.TotalAmount.Equal(dec("370")) {
		t.Errorf("TotalAmount = %s, want 370", purchase.TotalAmount)
	}
	if purchase.PurchaseNo == "" {
		t.Error("expected purchase number to be assigned")
	}
}

func TestPurchaseLifecycle(t *testing.T) {
	medicine := &entity.Medicine{ID: uuid.New(), Name: "Insulin", Quantity: 5, UnitPrice: dec("30")}
	svc, purchaseRepo, medicineRepo := newPurchaseFixture(medicine)
	userID := uuid.New()

	purchase, err := svc.CreatePurchase(context.Background(), userID, &CreatePurchaseInput{
		Items: []PurchaseLineInput{{MedicineID: medicine.ID, Quantity: 40, UnitPrice: dec("22")}},
	})
	if err != nil {
		t.Fatalf("CreatePurchase() error = %v", err)
	}
	// fake GetWithDetails does not preload, attach manually
	purchaseRepo.purchases[purchase.ID].Details = []entity.PurchaseDetail{
		{PurchaseID: purchase.ID, MedicineID: medicine.ID, Quantity: 40, UnitPrice: dec("22"), Total: dec("880")},
	}

	if _, err := svc.SubmitPurchase(context.Background(), purchase.ID, userID); err != nil {
		t.Fatalf("SubmitPurchase() error = %v", err)
	}
	if _, err := svc.ApprovePurchase(context.Background(), purchase.ID, userID); err != nil {
		t.Fatalf("ApprovePurchase() error = %v", err)
	}
	received, err := svc.ReceivePurchase(context.Background(), purchase.ID, userID)
	if err != nil {
		t.Fatalf("ReceivePurchase() error = %v", err)
	}

	if received.Status != enum.PurchaseStatusReceived {
		t.Errorf("Status = %s, want Received", received.Status)
	}
	if got := medicineRepo.medicines[medicine.ID].Quantity; got != 45 {
		t.Errorf("stock after receipt = %d, want 45", got)
	}

	// received orders are terminal
	if _, err := svc.CancelPurchase(context.Background(), purchase.ID, userID); err == nil {
		t.Error("CancelPurchase() on received order expected error")
	}
}

type failingStatusPurchaseRepo struct {
	*fakePurchaseRepo
	statusErr error
}

func (r *failingStatusPurchaseRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.PurchaseStatus, updatedBy uuid.UUID) error {
	if r.statusErr != nil {
		return r.statusErr
	}
	return r.fakePurchaseRepo.UpdateStatus(ctx, id, status, updatedBy)
}

func TestReceivePurchaseRestoresStockOnFailedStatusWrite(t *testing.T) {
	medicine := &entity.Medicine{ID: uuid.New(), Name: "Insulin", Quantity: 5, UnitPrice: dec("30")}
	medicineRepo := newFakeMedicineRepo(medicine)
	purchaseRepo := &failingStatusPurchaseRepo{
		fakePurchaseRepo: newFakePurchaseRepo(),
		statusErr:        errors.New("connection reset"),
	}
	svc := NewPurchaseService(purchaseRepo, newFakePurchaseDetailRepo(), medicineRepo, newFakeSupplierRepo())
	userID := uuid.New()

	purchase := &entity.Purchase{
		ID:          uuid.New(),
		PurchaseNo:  "PO-TEST",
		CreatedByID: userID,
		Status:      enum.PurchaseStatusApproved,
		Details:     []entity.PurchaseDetail{{MedicineID: medicine.ID, Quantity: 40, UnitPrice: dec("22")}},
	}
	purchaseRepo.purchases[purchase.ID] = purchase

	if _, err := svc.ReceivePurchase(context.Background(), purchase.ID, userID); err == nil {
		t.Fatal("ReceivePurchase() expected error from failed status write")
	}
	if got := medicineRepo.medicines[medicine.ID].Quantity; got != 5 {
		t.Errorf("stock after failed receipt = %d, want 5", got)
	}
	if purchaseRepo.purchases[purchase.ID].Status != enum.PurchaseStatusApproved {
		t.Error("order must stay Approved when the receipt fails")
	}
}

func TestPurchaseTransitionGuards(t *testing.T) {
	medicine := &entity.Medicine{ID: uuid.New(), Name: "Insulin", Quantity: 5, UnitPrice: dec("30")}
	userID := uuid.New()

	tests := []struct {
		name string
		call func(svc *PurchaseService, id uuid.UUID) error
		from enum.PurchaseStatus
	}{
		{
			name: "approve draft",
			from: enum.PurchaseStatusDraft,
			call: func(svc *PurchaseService, id uuid.UUID) error {
				_, err := svc.ApprovePurchase(context.Background(), id, userID)
				return err
			},
		},
		{
			name: "receive draft",
			from: enum.PurchaseStatusDraft,
			call: func(svc *PurchaseService, id uuid.UUID) error {
				_, err := svc.ReceivePurchase(context.Background(), id, userID)
				return err
			},
		},
		{
			name: "receive submitted",
			from: enum.PurchaseStatusSubmitted,
			call: func(svc *PurchaseService, id uuid.UUID) error {
				_, err := svc.ReceivePurchase(context.Background(), id, userID)
				return err
			},
		},
		{
			name: "submit cancelled",
			from: enum.PurchaseStatusCancelled,
			call: func(svc *PurchaseService, id uuid.UUID) error {
				_, err := svc.SubmitPurchase(context.Background(), id, userID)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, purchaseRepo, _ := newPurchaseFixture(medicine)
			purchase := &entity.Purchase{ID: uuid.New(), PurchaseNo: "PO-TEST", CreatedByID: userID, Status: tt.from}
			purchaseRepo.purchases[purchase.ID] = purchase

			if err := tt.call(svc, purchase.ID); err == nil {
				t.Errorf("transition from %s expected error", tt.from)
			}
			if purchaseRepo.purchases[purchase.ID].Status != tt.from {
				t.Errorf("status changed on rejected transition")
			}
		})
	}
}

func TestDeletePurchaseOnlyDraft(t *testing.T) {
	svc, purchaseRepo, _ := newPurchaseFixture()

	draft := &entity.Purchase{ID: uuid.New(), PurchaseNo: "PO-A", Status: enum.PurchaseStatusDraft}
	submitted := &entity.Purchase{ID: uuid.New(), PurchaseNo: "PO-B", Status: enum.PurchaseStatusSubmitted}
	purchaseRepo.purchases[draft.ID] = draft
	purchaseRepo.purchases[submitted.ID] = submitted

	if err := svc.DeletePurchase(context.Background(), draft.ID); err != nil {
		t.Fatalf("DeletePurchase(draft) error = %v", err)
	}
	if _, ok := purchaseRepo.purchases[draft.ID]; ok {
		t.Error("draft should be deleted")
	}

	if err := svc.DeletePurchase(context.Background(), submitted.ID); err == nil {
		t.Error("DeletePurchase(submitted) expected error")
	}
}
