package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/internal/domain/enum"
)

// a Monday
var testDate = time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)

func newAppointmentFixture(t *testing.T) (*AppointmentService, *fakeAppointmentRepo, uuid.UUID, uuid.UUID) {
	t.Helper()

	doctor := &entity.Staff{ID: uuid.New(), Type: enum.StaffTypeDoctor, FirstName: "Wanjiru", IsActive: true}
	patient := &entity.Patient{ID: uuid.New(), MRN: "MRN-2026-000001", FirstName: "John"}

	scheduleRepo := newFakeScheduleRepo()
	scheduleRepo.weeks[doctor.ID] = []entity.DaySchedule{{
		StaffID:      doctor.ID,
		Weekday:      0,
		IsAvailable:  true,
		StartTime:    "09:00",
		EndTime:      "12:00",
		SlotDuration: 30,
		BreakStart:   "10:00",
		BreakEnd:     "10:30",
	}}

	appointmentRepo := newFakeAppointmentRepo()
	svc := NewAppointmentService(
		appointmentRepo,
		newFakePatientRepo(patient),
		newFakeStaffRepo(doctor),
		scheduleRepo,
		nil,
	)
	return svc, appointmentRepo, doctor.ID, patient.ID
}

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), 0}, // Monday
		{time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC), 2},
		{time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC), 6}, // Sunday
	}
	for _, tt := range tests {
		if got := weekdayIndex(tt.date); got != tt.want {
			t.Errorf("weekdayIndex(%s) = %d, want %d", tt.date.Weekday(), got, tt.want)
		}
	}
}

func TestBookAppointment(t *testing.T) {
	svc, _, doctorID, patientID := newAppointmentFixture(t)

	appt, err := svc.BookAppointment(context.Background(), &BookAppointmentInput{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      testDate,
		StartTime: "09:00",
		EndTime:   "09:30",
	})
	if err != nil {
		t.Fatalf("BookAppointment() error = %v", err)
	}
	if appt.Status != enum.AppointmentStatusScheduled {
		t.Errorf("Status = %v, want Scheduled", appt.Status)
	}

	// same slot again collides
	_, err = svc.BookAppointment(context.Background(), &BookAppointmentInput{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      testDate,
		StartTime: "09:00",
		EndTime:   "09:30",
	})
	if err == nil {
		t.Fatal("double booking expected error")
	}
}

func TestBookAppointmentRejections(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time
		startTime string
		endTime   string
	}{
		{"outside working hours", testDate, "08:00", "08:30"},
		{"past closing", testDate, "11:45", "12:15"},
		{"overlaps break", testDate, "10:00", "10:30"},
		{"straddles break start", testDate, "09:45", "10:15"},
		{"inverted times", testDate, "10:45", "10:40"},
		{"day off", testDate.AddDate(0, 0, 1), "09:00", "09:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, doctorID, patientID := newAppointmentFixture(t)
			_, err := svc.BookAppointment(context.Background(), &BookAppointmentInput{
				PatientID: patientID,
				DoctorID:  doctorID,
				Date:      tt.date,
				StartTime: tt.startTime,
				EndTime:   tt.endTime,
			})
			if err == nil {
				t.Error("BookAppointment() expected error")
			}
		})
	}
}

func TestAvailableSlots(t *testing.T) {
	svc, appointmentRepo, doctorID, patientID := newAppointmentFixture(t)

	// 09:00-12:00 with a 10:00-10:30 break and 30 minute slots leaves five slots
	slots, err := svc.AvailableSlots(context.Background(), doctorID, testDate)
	if err != nil {
		t.Fatalf("AvailableSlots() error = %v", err)
	}
	if len(slots) != 5 {
		t.Fatalf("slot count = %d, want 5", len(slots))
	}
	for _, slot := range slots {
		if !slot.Available {
			t.Errorf("slot %s-%s should be available", slot.StartTime, slot.EndTime)
		}
		if slot.StartTime == "10:00" {
			t.Error("break slot must not be offered")
		}
	}

	appointmentRepo.Create(context.Background(), &entity.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      testDate,
		StartTime: "09:30",
		EndTime:   "10:00",
		Status:    enum.AppointmentStatusScheduled,
	})

	slots, err = svc.AvailableSlots(context.Background(), doctorID, testDate)
	if err != nil {
		t.Fatalf("AvailableSlots() error = %v", err)
	}
	var taken int
	for _, slot := range slots {
		if !slot.Available {
			taken++
			if slot.StartTime != "09:30" {
				t.Errorf("unexpected unavailable slot %s", slot.StartTime)
			}
		}
	}
	if taken != 1 {
		t.Errorf("unavailable slots = %d, want 1", taken)
	}
}

func TestAvailableSlotsDayOff(t *testing.T) {
	svc, _, doctorID, _ := newAppointmentFixture(t)

	slots, err := svc.AvailableSlots(context.Background(), doctorID, testDate.AddDate(0, 0, 5))
	if err != nil {
		t.Fatalf("AvailableSlots() error = %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("slot count on day off = %d, want 0", len(slots))
	}
}

func TestCompleteAndCancelAppointment(t *testing.T) {
	svc, appointmentRepo, doctorID, patientID := newAppointmentFixture(t)

	appt, err := svc.BookAppointment(context.Background(), &BookAppointmentInput{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      testDate,
		StartTime: "11:00",
		EndTime:   "11:30",
	})
	if err != nil {
		t.Fatalf("BookAppointment() error = %v", err)
	}

	notes := "prescribed rest"
	completed, err := svc.CompleteAppointment(context.Background(), appt.ID, &notes)
	if err != nil {
		t.Fatalf("CompleteAppointment() error = %v", err)
	}
	if completed.Status != enum.AppointmentStatusCompleted {
		t.Errorf("Status = %v, want Completed", completed.Status)
	}

	if err := svc.CancelAppointment(context.Background(), appt.ID); err == nil {
		t.Error("CancelAppointment() on completed appointment expected error")
	}
	if got := appointmentRepo.appointments[appt.ID].Status; got != enum.AppointmentStatusCompleted {
		t.Errorf("Status = %v, want Completed", got)
	}
}
