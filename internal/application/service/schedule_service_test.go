package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/internal/domain/enum"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"13:05", 785},
		{"23:59", 1439},
		{"bad", -1},
		{"", -1},
	}

	for _, tt := range tests {
		if got := timeToMinutes(tt.in); got != tt.want {
			t.Errorf("timeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func workingDay(start, end string) entity.DaySchedule {
	return entity.DaySchedule{IsAvailable: true, StartTime: start, EndTime: end}
}

func TestValidateWeek(t *testing.T) {
	tests := []struct {
		name       string
		days       []entity.DaySchedule
		wantDay    int
		wantReason string
	}{
		{
			name: "valid week",
			days: []entity.DaySchedule{
				workingDay("09:00", "17:00"),
				{IsAvailable: true, StartTime: "09:00", EndTime: "17:00", BreakStart: "12:00", BreakEnd: "13:00"},
				{},
				{},
				{},
				{},
				{},
			},
			wantDay: -1,
		},
		{
			name: "start after end",
			days: []entity.DaySchedule{
				workingDay("17:00", "09:00"),
			},
			wantDay:    0,
			wantReason: "start must be before end",
		},
		{
			name: "start equals end",
			days: []entity.DaySchedule{
				workingDay("09:00", "09:00"),
			},
			wantDay:    0,
			wantReason: "start must be before end",
		},
		{
			name: "break start without end",
			days: []entity.DaySchedule{
				workingDay("09:00", "17:00"),
				{IsAvailable: true, StartTime: "09:00", EndTime: "17:00", BreakStart: "12:00"},
			},
			wantDay:    1,
			wantReason: "incomplete break time",
		},
		{
			name: "break end without start",
			days: []entity.DaySchedule{
				{IsAvailable: true, StartTime: "09:00", EndTime: "17:00", BreakEnd: "13:00"},
			},
			wantDay:    0,
			wantReason: "incomplete break time",
		},
		{
			name: "inverted break",
			days: []entity.DaySchedule{
				{IsAvailable: true, StartTime: "09:00", EndTime: "17:00", BreakStart: "14:00", BreakEnd: "13:00"},
			},
			wantDay:    0,
			wantReason: "invalid break time",
		},
		{
			name: "break before working hours",
			days: []entity.DaySchedule{
				{IsAvailable: true, StartTime: "09:00", EndTime: "17:00", BreakStart: "08:00", BreakEnd: "09:30"},
			},
			wantDay:    0,
			wantReason: "break outside working hours",
		},
		{
			name: "break after working hours",
			days: []entity.DaySchedule{
				{IsAvailable: true, StartTime: "09:00", EndTime: "17:00", BreakStart: "16:30", BreakEnd: "17:30"},
			},
			wantDay:    0,
			wantReason: "break outside working hours",
		},
		{
			name: "unavailable day skipped",
			days: []entity.DaySchedule{
				{IsAvailable: false, StartTime: "17:00", EndTime: "09:00"},
				workingDay("17:00", "09:00"),
			},
			wantDay:    1,
			wantReason: "start must be before end",
		},
		{
			name: "first violation wins",
			days: []entity.DaySchedule{
				workingDay("09:00", "17:00"),
				workingDay("17:00", "09:00"),
				{IsAvailable: true, StartTime: "09:00", EndTime: "17:00", BreakStart: "12:00"},
			},
			wantDay:    1,
			wantReason: "start must be before end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateWeek(tt.days)
			if tt.wantDay < 0 {
				if got != nil {
					t.Fatalf("ValidateWeek() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ValidateWeek() = nil, want violation on day %d", tt.wantDay)
			}
			if got.DayIndex != tt.wantDay {
				t.Errorf("DayIndex = %d, want %d", got.DayIndex, tt.wantDay)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}

func newScheduleFixture() (*ScheduleService, *fakeScheduleRepo, uuid.UUID) {
	doctor := &entity.Staff{ID: uuid.New(), Type: enum.StaffTypeDoctor, FirstName: "Amina", IsActive: true}
	scheduleRepo := newFakeScheduleRepo()
	svc := NewScheduleService(newFakeStaffRepo(doctor), scheduleRepo)
	return svc, scheduleRepo, doctor.ID
}

func fullWeekInput(monday DayScheduleInput) []DayScheduleInput {
	week := make([]DayScheduleInput, 7)
	week[0] = monday
	return week
}

func TestSaveWeekRejectsInvalid(t *testing.T) {
	svc, scheduleRepo, staffID := newScheduleFixture()

	_, err := svc.SaveWeek(context.Background(), staffID, fullWeekInput(DayScheduleInput{
		IsAvailable: true,
		StartTime:   "17:00",
		EndTime:     "09:00",
	}))
	if err == nil {
		t.Fatal("SaveWeek() expected error for inverted hours")
	}
	if len(scheduleRepo.weeks[staffID]) != 0 {
		t.Error("invalid week must not be persisted")
	}
}

func TestSaveWeekPersistsValid(t *testing.T) {
	svc, scheduleRepo, staffID := newScheduleFixture()

	week, err := svc.SaveWeek(context.Background(), staffID, fullWeekInput(DayScheduleInput{
		IsAvailable: true,
		StartTime:   "08:00",
		EndTime:     "16:00",
		BreakStart:  "12:00",
		BreakEnd:    "12:30",
	}))
	if err != nil {
		t.Fatalf("SaveWeek() error = %v", err)
	}

	if len(week) != 7 {
		t.Fatalf("week length = %d, want 7", len(week))
	}
	if !week[0].IsAvailable || week[0].StartTime != "08:00" {
		t.Errorf("Monday = %+v, want available 08:00-16:00", week[0])
	}
	if week[1].IsAvailable {
		t.Error("Tuesday should be unavailable")
	}
	if len(scheduleRepo.weeks[staffID]) != 7 {
		t.Errorf("persisted %d days, want 7", len(scheduleRepo.weeks[staffID]))
	}
}

func TestApplyMondayToWeekdays(t *testing.T) {
	svc, _, staffID := newScheduleFixture()

	_, err := svc.SaveWeek(context.Background(), staffID, fullWeekInput(DayScheduleInput{
		IsAvailable: true,
		StartTime:   "09:00",
		EndTime:     "17:00",
		BreakStart:  "13:00",
		BreakEnd:    "14:00",
	}))
	if err != nil {
		t.Fatalf("SaveWeek() error = %v", err)
	}

	week, err := svc.ApplyMondayToWeekdays(context.Background(), staffID)
	if err != nil {
		t.Fatalf("ApplyMondayToWeekdays() error = %v", err)
	}

	for i := 1; i <= 4; i++ {
		if !week[i].IsAvailable {
			t.Errorf("day %d should be available", i)
		}
		if week[i].StartTime != "09:00" || week[i].EndTime != "17:00" {
			t.Errorf("day %d hours = %s-%s, want 09:00-17:00", i, week[i].StartTime, week[i].EndTime)
		}
		if week[i].BreakStart != "13:00" || week[i].BreakEnd != "14:00" {
			t.Errorf("day %d break = %s-%s, want 13:00-14:00", i, week[i].BreakStart, week[i].BreakEnd)
		}
	}
	if week[5].IsAvailable || week[6].IsAvailable {
		t.Error("weekend days must not be touched")
	}
}

func TestApplyMondayForcesAvailability(t *testing.T) {
	svc, _, staffID := newScheduleFixture()

	// Monday is off but still carries working hours on its row
	_, err := svc.SaveWeek(context.Background(), staffID, fullWeekInput(DayScheduleInput{
		IsAvailable: false,
		StartTime:   "09:00",
		EndTime:     "17:00",
	}))
	if err != nil {
		t.Fatalf("SaveWeek() error = %v", err)
	}

	week, err := svc.ApplyMondayToWeekdays(context.Background(), staffID)
	if err != nil {
		t.Fatalf("ApplyMondayToWeekdays() error = %v", err)
	}

	if week[0].IsAvailable {
		t.Error("Monday itself must stay unavailable")
	}
	for i := 1; i <= 4; i++ {
		if !week[i].IsAvailable {
			t.Errorf("day %d should be forced available", i)
		}
		if week[i].StartTime != "09:00" || week[i].EndTime != "17:00" {
			t.Errorf("day %d hours = %s-%s, want Monday's 09:00-17:00", i, week[i].StartTime, week[i].EndTime)
		}
	}
}

func TestApplyMondayRejectsEmptyTimes(t *testing.T) {
	svc, scheduleRepo, staffID := newScheduleFixture()

	// No saved schedule: Monday defaults to unavailable with empty times,
	// so the forced weekdays fail validation and nothing is written.
	_, err := svc.ApplyMondayToWeekdays(context.Background(), staffID)
	if err == nil {
		t.Fatal("ApplyMondayToWeekdays() expected error for empty Monday times")
	}
	if got, want := err.Error(), "Invalid schedule for Tuesday: start must be before end"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
	if len(scheduleRepo.weeks[staffID]) != 0 {
		t.Error("invalid week must not be persisted")
	}
}
