package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Appointment represents a booked consultation slot with a doctor.
// StartTime/EndTime are "HH:MM" strings matching the doctor's day schedule.
type Appointment struct {
	ID        uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	PatientID uuid.UUID              `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID  uuid.UUID              `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Date      time.Time              `gorm:"type:date;not null;index" json:"date"`
	StartTime string                 `gorm:"size:5;not null" json:"start_time"`
	EndTime   string                 `gorm:"size:5;not null" json:"end_time"`
	Status    enum.AppointmentStatus `gorm:"default:0" json:"status"`
	Reason    *string                `gorm:"type:text" json:"reason,omitempty"`
	Notes     *string                `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
	DeletedAt gorm.DeletedAt         `gorm:"index" json:"-"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Staff   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// BeforeCreate generates a UUID before creating a new appointment
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}
