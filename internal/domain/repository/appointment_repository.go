package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	"github.com/kipsang/medicore-api/pkg/pagination"
)

// AppointmentRepository defines the interface for appointment data operations
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.AppointmentStatus) error
	List(ctx context.Context, params *AppointmentFilterParams) ([]entity.Appointment, int64, error)
	// ListForDoctorOnDate returns non-cancelled appointments for a doctor on a
	// calendar date, ordered by start time
	ListForDoctorOnDate(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error)
}

// AppointmentFilterParams contains filtering parameters for appointment queries
type AppointmentFilterParams struct {
	Pagination *pagination.PaginationParams
	PatientID  *uuid.UUID
	DoctorID   *uuid.UUID
	Status     *enum.AppointmentStatus
	StartDate  *time.Time
	EndDate    *time.Time
}
