package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	"github.com/kipsang/medicore-api/pkg/pagination"
)

// StaffRepository defines the interface for staff data operations
type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error)
	Update(ctx context.Context, staff *entity.Staff) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *StaffFilterParams) ([]entity.Staff, int64, error)
}

// StaffFilterParams contains filtering parameters for staff queries
type StaffFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Type       *enum.StaffType
	Department string
	ActiveOnly bool
}

// ScheduleRepository defines the interface for weekly schedule operations
type ScheduleRepository interface {
	// GetWeek returns the stored day schedules for a staff member, ordered by weekday
	GetWeek(ctx context.Context, staffID uuid.UUID) ([]entity.DaySchedule, error)
	// ReplaceWeek overwrites all seven days for a staff member in one transaction
	ReplaceWeek(ctx context.Context, staffID uuid.UUID, days []entity.DaySchedule) error
	// GetDay returns a staff member's schedule for a single weekday (nil if none)
	GetDay(ctx context.Context, staffID uuid.UUID, weekday int) (*entity.DaySchedule, error)
}
