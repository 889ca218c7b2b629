package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Staff represents a clinical staff member (doctor or nurse)
type Staff struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID          *uuid.UUID      `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Type            enum.StaffType  `gorm:"default:0;index" json:"type"`
	FirstName       string          `gorm:"size:100;not null" json:"first_name"`
	LastName        string          `gorm:"size:100" json:"last_name"`
	Email           *string         `gorm:"size:255" json:"email,omitempty"`
	Phone           *string         `gorm:"size:50" json:"phone,omitempty"`
	Department      string          `gorm:"size:100" json:"department"`
	Specialization  *string         `gorm:"size:100" json:"specialization,omitempty"`
	LicenseNo       *string         `gorm:"size:100" json:"license_no,omitempty"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"consultation_fee"`
	IsActive        bool            `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	User      *User         `gorm:"foreignKey:UserID" json:"-"`
	Schedules []DaySchedule `gorm:"foreignKey:StaffID" json:"schedules,omitempty"`
}

// BeforeCreate generates a UUID before creating a new staff member
func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Staff model
func (Staff) TableName() string {
	return "staff"
}

// FullName returns the staff member's display name
func (s *Staff) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// DaySchedule represents one weekday of a staff member's weekly availability.
// Weekday runs 0 (Monday) through 6 (Sunday). Times are "HH:MM" strings and
// compared ordinally; break fields are either both empty or both set.
type DaySchedule struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	StaffID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_staff_weekday,unique" json:"staff_id"`
	Weekday      int            `gorm:"not null;index:idx_staff_weekday,unique" json:"weekday"`
	IsAvailable  bool           `gorm:"default:false" json:"is_available"`
	StartTime    string         `gorm:"size:5" json:"start_time"`
	EndTime      string         `gorm:"size:5" json:"end_time"`
	SlotDuration int            `gorm:"default:30" json:"slot_duration"`
	BreakStart   string         `gorm:"size:5" json:"break_start"`
	BreakEnd     string         `gorm:"size:5" json:"break_end"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Staff Staff `gorm:"foreignKey:StaffID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new day schedule
func (d *DaySchedule) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DaySchedule model
func (DaySchedule) TableName() string {
	return "day_schedules"
}

// HasBreak reports whether both break fields are set
func (d *DaySchedule) HasBreak() bool {
	return d.BreakStart != "" && d.BreakEnd != ""
}
