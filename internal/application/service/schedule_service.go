package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/pkg/apperror"
)

// ScheduleViolation identifies the first invalid day in a weekly schedule
type ScheduleViolation struct {
	DayIndex int    `json:"day_index"`
	Reason   string `json:"reason"`
}

// timeToMinutes converts an "HH:MM" string to minutes since midnight.
// Returns -1 for malformed input.
func timeToMinutes(value string) int {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return -1
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return -1
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return -1
	}
	return hours*60 + minutes
}

// ValidateWeek checks seven day schedules and returns the first violation,
// or nil if the whole week is valid. Unavailable days are skipped.
func ValidateWeek(days []entity.DaySchedule) *ScheduleViolation {
	for i, day := range days {
		if !day.IsAvailable {
			continue
		}

		start := timeToMinutes(day.StartTime)
		end := timeToMinutes(day.EndTime)
		if start < 0 || end < 0 || start >= end {
			return &ScheduleViolation{DayIndex: i, Reason: "start must be before end"}
		}

		hasBreakStart := day.BreakStart != ""
		hasBreakEnd := day.BreakEnd != ""
		if hasBreakStart != hasBreakEnd {
			return &ScheduleViolation{DayIndex: i, Reason: "incomplete break time"}
		}
		if !hasBreakStart {
			continue
		}

		breakStart := timeToMinutes(day.BreakStart)
		breakEnd := timeToMinutes(day.BreakEnd)
		if breakStart < 0 || breakEnd < 0 || breakStart >= breakEnd {
			return &ScheduleViolation{DayIndex: i, Reason: "invalid break time"}
		}
		if breakStart < start || breakEnd > end {
			return &ScheduleViolation{DayIndex: i, Reason: "break outside working hours"}
		}
	}
	return nil
}

// ScheduleService manages staff weekly availability
type ScheduleService struct {
	staffRepo    repository.StaffRepository
	scheduleRepo repository.ScheduleRepository
}

// NewScheduleService creates a new schedule service
func NewScheduleService(staffRepo repository.StaffRepository, scheduleRepo repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{
		staffRepo:    staffRepo,
		scheduleRepo: scheduleRepo,
	}
}

// DayScheduleInput is one weekday of a schedule save request
type DayScheduleInput struct {
	IsAvailable  bool   `json:"is_available"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	SlotDuration int    `json:"slot_duration"`
	BreakStart   string `json:"break_start"`
	BreakEnd     string `json:"break_end"`
}

// GetWeek returns a staff member's weekly schedule, padding missing days with
// unavailable defaults so callers always see all seven weekdays.
func (s *ScheduleService) GetWeek(ctx context.Context, staffID uuid.UUID) ([]entity.DaySchedule, error) {
	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff")
	}

	stored, err := s.scheduleRepo.GetWeek(ctx, staffID)
	if err != nil {
		return nil, err
	}

	week := make([]entity.DaySchedule, 7)
	for i := range week {
		week[i] = entity.DaySchedule{
			StaffID:      staffID,
			Weekday:      i,
			SlotDuration: 30,
		}
	}
	for _, day := range stored {
		if day.Weekday >= 0 && day.Weekday < 7 {
			week[day.Weekday] = day
		}
	}
	return week, nil
}

// SaveWeek validates and stores all seven days of a staff member's schedule.
// The week is replaced wholesale; a validation failure saves nothing.
func (s *ScheduleService) SaveWeek(ctx context.Context, staffID uuid.UUID, inputs []DayScheduleInput) ([]entity.DaySchedule, error) {
	if len(inputs) != 7 {
		return nil, apperror.NewBadRequestError("Schedule must contain exactly 7 days")
	}

	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperror.NewNotFoundError("Staff")
	}

	days := make([]entity.DaySchedule, 7)
	for i, input := range inputs {
		slotDuration := input.SlotDuration
		if slotDuration <= 0 {
			slotDuration = 30
		}
		days[i] = entity.DaySchedule{
			StaffID:      staffID,
			Weekday:      i,
			IsAvailable:  input.IsAvailable,
			StartTime:    input.StartTime,
			EndTime:      input.EndTime,
			SlotDuration: slotDuration,
			BreakStart:   input.BreakStart,
			BreakEnd:     input.BreakEnd,
		}
	}

	if violation := ValidateWeek(days); violation != nil {
		return nil, violationError(violation)
	}

	if err := s.scheduleRepo.ReplaceWeek(ctx, staffID, days); err != nil {
		return nil, err
	}
	return s.GetWeek(ctx, staffID)
}

// ApplyMondayToWeekdays copies Monday's times onto Tuesday through Friday and
// marks those days available.
//
// TODO: copy Monday's IsAvailable flag instead of forcing true; an unavailable
// Monday currently produces available weekdays with Monday's empty times.
func (s *ScheduleService) ApplyMondayToWeekdays(ctx context.Context, staffID uuid.UUID) ([]entity.DaySchedule, error) {
	week, err := s.GetWeek(ctx, staffID)
	if err != nil {
		return nil, err
	}

	monday := week[0]
	for i := 1; i <= 4; i++ {
		week[i].IsAvailable = true
		week[i].StartTime = monday.StartTime
		week[i].EndTime = monday.EndTime
		week[i].SlotDuration = monday.SlotDuration
		week[i].BreakStart = monday.BreakStart
		week[i].BreakEnd = monday.BreakEnd
	}

	if violation := ValidateWeek(week); violation != nil {
		return nil, violationError(violation)
	}

	if err := s.scheduleRepo.ReplaceWeek(ctx, staffID, week); err != nil {
		return nil, err
	}
	return s.GetWeek(ctx, staffID)
}

func violationError(violation *ScheduleViolation) error {
	appErr := apperror.NewValidationError([]apperror.FieldError{{
		Field:   fmt.Sprintf("days[%d]", violation.DayIndex),
		Message: violation.Reason,
	}})
	appErr.Message = fmt.Sprintf("Invalid schedule for %s: %s", weekdayName(violation.DayIndex), violation.Reason)
	return appErr
}

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func weekdayName(index int) string {
	if index < 0 || index > 6 {
		return "day"
	}
	return weekdayNames[index]
}
