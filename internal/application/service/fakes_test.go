package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	"github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/pkg/pagination"
)

// In-memory fakes used across the service tests. Only the methods a test
// actually exercises have real behavior; the rest return empty results.

type fakeMedicineRepo struct {
	medicines map[uuid.UUID]*entity.Medicine
}

func newFakeMedicineRepo(medicines ...*entity.Medicine) *fakeMedicineRepo {
	repo := &fakeMedicineRepo{medicines: make(map[uuid.UUID]*entity.Medicine)}
	for _, m := range medicines {
		repo.medicines[m.ID] = m
	}
	return repo
}

func (r *fakeMedicineRepo) Create(ctx context.Context, medicine *entity.Medicine) error {
	r.medicines[medicine.ID] = medicine
	return nil
}

func (r *fakeMedicineRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	return r.medicines[id], nil
}

func (r *fakeMedicineRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Medicine, error) {
	var out []entity.Medicine
	for _, id := range ids {
		if m, ok := r.medicines[id]; ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMedicineRepo) Update(ctx context.Context, medicine *entity.Medicine) error {
	r.medicines[medicine.ID] = medicine
	return nil
}

func (r *fakeMedicineRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.medicines, id)
	return nil
}

func (r *fakeMedicineRepo) List(ctx context.Context, params *repository.MedicineFilterParams) ([]entity.Medicine, int64, error) {
	var out []entity.Medicine
	for _, m := range r.medicines {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (r *fakeMedicineRepo) GetLowStock(ctx context.Context) ([]entity.Medicine, error) {
	var out []entity.Medicine
	for _, m := range r.medicines {
		if m.IsLowStock() {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMedicineRepo) AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failed []uuid.UUID
	for id, qty := range decrements {
		m, ok := r.medicines[id]
		if !ok || m.Quantity < qty {
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		return failed, nil
	}
	for id, qty := range decrements {
		r.medicines[id].Quantity -= qty
	}
	return nil, nil
}

func (r *fakeMedicineRepo) AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error {
	for id, qty := range increments {
		if m, ok := r.medicines[id]; ok {
			m.Quantity += qty
		}
	}
	return nil
}

type fakeSaleRepo struct {
	sales map[uuid.UUID]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uuid.UUID]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return r.sales[id], nil
}

func (r *fakeSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return r.sales[id], nil
}

func (r *fakeSaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.SaleStatus) error {
	if sale, ok := r.sales[id]; ok {
		sale.Status = status
	}
	return nil
}

func (r *fakeSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSaleRepo) ListBetween(ctx context.Context, start, end time.Time) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range r.sales {
		if s.Status == enum.SaleStatusCompleted && !s.SaleDate.Before(start) && !s.SaleDate.After(end) {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakeSaleItemRepo struct {
	items map[uuid.UUID][]entity.SaleItem
}

func newFakeSaleItemRepo() *fakeSaleItemRepo {
	return &fakeSaleItemRepo{items: make(map[uuid.UUID][]entity.SaleItem)}
}

func (r *fakeSaleItemRepo) CreateBatch(ctx context.Context, items []entity.SaleItem) error {
	for _, item := range items {
		r.items[item.SaleID] = append(r.items[item.SaleID], item)
	}
	return nil
}

func (r *fakeSaleItemRepo) GetBySaleID(ctx context.Context, saleID uuid.UUID) ([]entity.SaleItem, error) {
	return r.items[saleID], nil
}

func (r *fakeSaleItemRepo) DeleteBySaleID(ctx context.Context, saleID uuid.UUID) error {
	delete(r.items, saleID)
	return nil
}

type fakePatientRepo struct {
	patients map[uuid.UUID]*entity.Patient
}

func newFakePatientRepo(patients ...*entity.Patient) *fakePatientRepo {
	repo := &fakePatientRepo{patients: make(map[uuid.UUID]*entity.Patient)}
	for _, p := range patients {
		repo.patients[p.ID] = p
	}
	return repo
}

func (r *fakePatientRepo) Create(ctx context.Context, patient *entity.Patient) error {
	if patient.ID == uuid.Nil {
		patient.ID = uuid.New()
	}
	r.patients[patient.ID] = patient
	return nil
}

func (r *fakePatientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	return r.patients[id], nil
}

func (r *fakePatientRepo) GetByMRN(ctx context.Context, mrn string) (*entity.Patient, error) {
	for _, p := range r.patients {
		if p.MRN == mrn {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePatientRepo) Update(ctx context.Context, patient *entity.Patient) error {
	r.patients[patient.ID] = patient
	return nil
}

func (r *fakePatientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.patients, id)
	return nil
}

func (r *fakePatientRepo) List(ctx context.Context, params *repository.PatientFilterParams) ([]entity.Patient, int64, error) {
	var out []entity.Patient
	for _, p := range r.patients {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePatientRepo) ListWithCursor(ctx context.Context, params *repository.PatientCursorFilterParams) ([]entity.Patient, error) {
	var out []entity.Patient
	for _, p := range r.patients {
		out = append(out, *p)
	}
	return out, nil
}

type fakeStaffRepo struct {
	staff map[uuid.UUID]*entity.Staff
}

func newFakeStaffRepo(members ...*entity.Staff) *fakeStaffRepo {
	repo := &fakeStaffRepo{staff: make(map[uuid.UUID]*entity.Staff)}
	for _, m := range members {
		repo.staff[m.ID] = m
	}
	return repo
}

func (r *fakeStaffRepo) Create(ctx context.Context, staff *entity.Staff) error {
	if staff.ID == uuid.Nil {
		staff.ID = uuid.New()
	}
	r.staff[staff.ID] = staff
	return nil
}

func (r *fakeStaffRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	return r.staff[id], nil
}

func (r *fakeStaffRepo) Update(ctx context.Context, staff *entity.Staff) error {
	r.staff[staff.ID] = staff
	return nil
}

func (r *fakeStaffRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.staff, id)
	return nil
}

func (r *fakeStaffRepo) List(ctx context.Context, params *repository.StaffFilterParams) ([]entity.Staff, int64, error) {
	var out []entity.Staff
	for _, m := range r.staff {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

type fakeScheduleRepo struct {
	weeks map[uuid.UUID][]entity.DaySchedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{weeks: make(map[uuid.UUID][]entity.DaySchedule)}
}

func (r *fakeScheduleRepo) GetWeek(ctx context.Context, staffID uuid.UUID) ([]entity.DaySchedule, error) {
	return r.weeks[staffID], nil
}

func (r *fakeScheduleRepo) ReplaceWeek(ctx context.Context, staffID uuid.UUID, days []entity.DaySchedule) error {
	stored := make([]entity.DaySchedule, len(days))
	copy(stored, days)
	r.weeks[staffID] = stored
	return nil
}

func (r *fakeScheduleRepo) GetDay(ctx context.Context, staffID uuid.UUID, weekday int) (*entity.DaySchedule, error) {
	for _, day := range r.weeks[staffID] {
		if day.Weekday == weekday {
			d := day
			return &d, nil
		}
	}
	return nil, nil
}

type fakePurchaseRepo struct {
	purchases map[uuid.UUID]*entity.Purchase
}

func newFakePurchaseRepo(purchases ...*entity.Purchase) *fakePurchaseRepo {
	repo := &fakePurchaseRepo{purchases: make(map[uuid.UUID]*entity.Purchase)}
	for _, p := range purchases {
		repo.purchases[p.ID] = p
	}
	return repo
}

func (r *fakePurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	if purchase.ID == uuid.Nil {
		purchase.ID = uuid.New()
	}
	r.purchases[purchase.ID] = purchase
	return nil
}

func (r *fakePurchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	return r.purchases[id], nil
}

func (r *fakePurchaseRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	return r.purchases[id], nil
}

func (r *fakePurchaseRepo) Update(ctx context.Context, purchase *entity.Purchase) error {
	r.purchases[purchase.ID] = purchase
	return nil
}

func (r *fakePurchaseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.purchases, id)
	return nil
}

func (r *fakePurchaseRepo) List(ctx context.Context, params *repository.PurchaseFilterParams) ([]entity.Purchase, int64, error) {
	var out []entity.Purchase
	for _, p := range r.purchases {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePurchaseRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.PurchaseStatus, updatedBy uuid.UUID) error {
	if purchase, ok := r.purchases[id]; ok {
		purchase.Status = status
		purchase.UpdatedByID = &updatedBy
	}
	return nil
}

type fakePurchaseDetailRepo struct {
	details map[uuid.UUID][]entity.PurchaseDetail
}

func newFakePurchaseDetailRepo() *fakePurchaseDetailRepo {
	return &fakePurchaseDetailRepo{details: make(map[uuid.UUID][]entity.PurchaseDetail)}
}

func (r *fakePurchaseDetailRepo) CreateBatch(ctx context.Context, details []entity.PurchaseDetail) error {
	for _, d := range details {
		r.details[d.PurchaseID] = append(r.details[d.PurchaseID], d)
	}
	return nil
}

func (r *fakePurchaseDetailRepo) GetByPurchaseID(ctx context.Context, purchaseID uuid.UUID) ([]entity.PurchaseDetail, error) {
	return r.details[purchaseID], nil
}

func (r *fakePurchaseDetailRepo) DeleteByPurchaseID(ctx context.Context, purchaseID uuid.UUID) error {
	delete(r.details, purchaseID)
	return nil
}

type fakeSupplierRepo struct {
	suppliers map[uuid.UUID]*entity.Supplier
}

func newFakeSupplierRepo(suppliers ...*entity.Supplier) *fakeSupplierRepo {
	repo := &fakeSupplierRepo{suppliers: make(map[uuid.UUID]*entity.Supplier)}
	for _, s := range suppliers {
		repo.suppliers[s.ID] = s
	}
	return repo
}

func (r *fakeSupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	r.suppliers[supplier.ID] = supplier
	return nil
}

func (r *fakeSupplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}

func (r *fakeSupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	r.suppliers[supplier.ID] = supplier
	return nil
}

func (r *fakeSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.suppliers, id)
	return nil
}

func (r *fakeSupplierRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error) {
	var out []entity.Supplier
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*entity.Appointment
}

func newFakeAppointmentRepo(appointments ...*entity.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{appointments: make(map[uuid.UUID]*entity.Appointment)}
	for _, a := range appointments {
		repo.appointments[a.ID] = a
	}
	return repo
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	r.appointments[appointment.ID] = appointment
	return nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	return r.appointments[id], nil
}

func (r *fakeAppointmentRepo) Update(ctx context.Context, appointment *entity.Appointment) error {
	r.appointments[appointment.ID] = appointment
	return nil
}

func (r *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.AppointmentStatus) error {
	if appt, ok := r.appointments[id]; ok {
		appt.Status = status
	}
	return nil
}

func (r *fakeAppointmentRepo) List(ctx context.Context, params *repository.AppointmentFilterParams) ([]entity.Appointment, int64, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (r *fakeAppointmentRepo) ListForDoctorOnDate(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.DoctorID == doctorID && sameDate(a.Date, date) && a.Status != enum.AppointmentStatusCancelled {
			out = append(out, *a)
		}
	}
	return out, nil
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
