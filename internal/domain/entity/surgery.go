package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Surgery statuses
const (
	SurgeryStatusScheduled = "scheduled"
	SurgeryStatusCompleted = "completed"
	SurgeryStatusCancelled = "cancelled"
)

// Surgery represents a scheduled surgical procedure
type Surgery struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PatientID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"patient_id"`
	SurgeonID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"surgeon_id"`
	Procedure   string         `gorm:"size:255;not null" json:"procedure"`
	TheaterRoom string         `gorm:"size:100" json:"theater_room"`
	ScheduledAt time.Time      `gorm:"not null;index" json:"scheduled_at"`
	Status      string         `gorm:"size:20;default:'scheduled';index" json:"status"`
	Notes       *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Surgeon Staff   `gorm:"foreignKey:SurgeonID" json:"surgeon,omitempty"`
}

// BeforeCreate generates a UUID before creating a new surgery
func (s *Surgery) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Surgery model
func (Surgery) TableName() string {
	return "surgeries"
}
