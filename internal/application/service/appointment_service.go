package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	"github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/pkg/apperror"
	"github.com/kipsang/medicore-api/pkg/email"
	"github.com/kipsang/medicore-api/pkg/pagination"
)

// AppointmentService manages consultation bookings against doctor schedules
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	staffRepo       repository.StaffRepository
	scheduleRepo    repository.ScheduleRepository
	emailService    *email.EmailService
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	staffRepo repository.StaffRepository,
	scheduleRepo repository.ScheduleRepository,
	emailService *email.EmailService,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		staffRepo:       staffRepo,
		scheduleRepo:    scheduleRepo,
		emailService:    emailService,
	}
}

// TimeSlot is a bookable interval on a doctor's day
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

// BookAppointmentInput represents the booking input
type BookAppointmentInput struct {
	PatientID uuid.UUID
	DoctorID  uuid.UUID
	Date      time.Time
	StartTime string
	EndTime   string
	Reason    *string
}

// weekdayIndex maps time.Weekday to the schedule convention of 0=Monday
func weekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// BookAppointment books a slot after checking the doctor's schedule and
// existing bookings, then sends a confirmation email in the background
func (s *AppointmentService) BookAppointment(ctx context.Context, input *BookAppointmentInput) (*entity.Appointment, error) {
	patient, err := s.patientRepo.GetByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	doctor, err := s.staffRepo.GetByID(ctx, input.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || doctor.Type != enum.StaffTypeDoctor {
		return nil, apperror.NewNotFoundError("Doctor")
	}
	if !doctor.IsActive {
		return nil, apperror.NewBadRequestError("Doctor is not accepting appointments")
	}

	start := timeToMinutes(input.StartTime)
	end := timeToMinutes(input.EndTime)
	if start < 0 || end < 0 || start >= end {
		return nil, apperror.NewBadRequestError("Appointment start must be before end")
	}

	day, err := s.scheduleRepo.GetDay(ctx, input.DoctorID, weekdayIndex(input.Date))
	if err != nil {
		return nil, err
	}
	if day == nil || !day.IsAvailable {
		return nil, apperror.NewBadRequestError("Doctor is not available on this day")
	}
	if start < timeToMinutes(day.StartTime) || end > timeToMinutes(day.EndTime) {
		return nil, apperror.NewBadRequestError("Appointment is outside the doctor's working hours")
	}
	if day.HasBreak() && start < timeToMinutes(day.BreakEnd) && end > timeToMinutes(day.BreakStart) {
		return nil, apperror.NewBadRequestError("Appointment overlaps the doctor's break")
	}

	existing, err := s.appointmentRepo.ListForDoctorOnDate(ctx, input.DoctorID, input.Date)
	if err != nil {
		return nil, err
	}
	for _, appt := range existing {
		if start < timeToMinutes(appt.EndTime) && end > timeToMinutes(appt.StartTime) {
			return nil, apperror.NewConflictError("The selected time slot is already booked")
		}
	}

	appointment := &entity.Appointment{
		PatientID: input.PatientID,
		DoctorID:  input.DoctorID,
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    enum.AppointmentStatusScheduled,
		Reason:    input.Reason,
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	// Confirmation email is best effort; a delivery failure never fails the booking
	if s.emailService != nil && patient.Email != nil && *patient.Email != "" {
		go func(toEmail string, details email.AppointmentDetails) {
			if err := s.emailService.SendAppointmentConfirmation(toEmail, details); err != nil {
				log.Printf("appointment confirmation email failed: %v", err)
			}
		}(*patient.Email, email.AppointmentDetails{
			PatientName: patient.FullName(),
			DoctorName:  doctor.FullName(),
			Date:        input.Date.Format("Monday, 2 January 2006"),
			StartTime:   input.StartTime,
			EndTime:     input.EndTime,
		})
	}

	return s.appointmentRepo.GetByID(ctx, appointment.ID)
}

// AvailableSlots enumerates a doctor's bookable slots for a calendar date,
// marking slots that overlap existing appointments as unavailable
func (s *AppointmentService) AvailableSlots(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]TimeSlot, error) {
	doctor, err := s.staffRepo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || doctor.Type != enum.StaffTypeDoctor {
		return nil, apperror.NewNotFoundError("Doctor")
	}

	day, err := s.scheduleRepo.GetDay(ctx, doctorID, weekdayIndex(date))
	if err != nil {
		return nil, err
	}
	if day == nil || !day.IsAvailable {
		return []TimeSlot{}, nil
	}

	existing, err := s.appointmentRepo.ListForDoctorOnDate(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	dayStart := timeToMinutes(day.StartTime)
	dayEnd := timeToMinutes(day.EndTime)
	slotLen := day.SlotDuration
	if slotLen <= 0 {
		slotLen = 30
	}

	breakStart, breakEnd := -1, -1
	if day.HasBreak() {
		breakStart = timeToMinutes(day.BreakStart)
		breakEnd = timeToMinutes(day.BreakEnd)
	}

	var slots []TimeSlot
	for cursor := dayStart; cursor+slotLen <= dayEnd; cursor += slotLen {
		slotEnd := cursor + slotLen

		if breakStart >= 0 && cursor < breakEnd && slotEnd > breakStart {
			continue
		}

		available := true
		for _, appt := range existing {
			if cursor < timeToMinutes(appt.EndTime) && slotEnd > timeToMinutes(appt.StartTime) {
				available = false
				break
			}
		}

		slots = append(slots, TimeSlot{
			StartTime: minutesToTime(cursor),
			EndTime:   minutesToTime(slotEnd),
			Available: available,
		})
	}

	return slots, nil
}

// GetAppointment retrieves an appointment by ID
func (s *AppointmentService) GetAppointment(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}
	return appointment, nil
}

// ListAppointments lists appointments with filtering
func (s *AppointmentService) ListAppointments(ctx context.Context, params *repository.AppointmentFilterParams) (*pagination.PaginatedResult[entity.Appointment], error) {
	appointments, total, err := s.appointmentRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(appointments, pag), nil
}

// CompleteAppointment marks a scheduled appointment as completed
func (s *AppointmentService) CompleteAppointment(ctx context.Context, id uuid.UUID, notes *string) (*entity.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.NewNotFoundError("Appointment")
	}
	if appointment.Status != enum.AppointmentStatusScheduled {
		return nil, apperror.NewBadRequestError("Only scheduled appointments can be completed")
	}

	appointment.Status = enum.AppointmentStatusCompleted
	if notes != nil {
		appointment.Notes = notes
	}
	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// CancelAppointment cancels a scheduled appointment
func (s *AppointmentService) CancelAppointment(ctx context.Context, id uuid.UUID) error {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return apperror.NewNotFoundError("Appointment")
	}
	if appointment.Status != enum.AppointmentStatusScheduled {
		return apperror.NewBadRequestError("Only scheduled appointments can be cancelled")
	}
	return s.appointmentRepo.UpdateStatus(ctx, id, enum.AppointmentStatusCancelled)
}

// minutesToTime formats minutes since midnight back to "HH:MM"
func minutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
