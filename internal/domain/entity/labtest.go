package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Lab test statuses
const (
	LabStatusPending   = "pending"
	LabStatusCompleted = "completed"
)

// LabTest represents a lab test ordered for a patient
type LabTest struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PatientID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	OrderedByID *uuid.UUID      `gorm:"type:uuid;column:ordered_by" json:"ordered_by,omitempty"`
	TestName    string          `gorm:"size:255;not null" json:"test_name"`
	Status      string          `gorm:"size:20;default:'pending';index" json:"status"`
	Result      *string         `gorm:"type:text" json:"result,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"price"`
	OrderedAt   time.Time       `gorm:"not null" json:"ordered_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Patient   Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	OrderedBy *Staff  `gorm:"foreignKey:OrderedByID" json:"ordered_by_staff,omitempty"`
}

// BeforeCreate generates a UUID before creating a new lab test
func (l *LabTest) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LabTest model
func (LabTest) TableName() string {
	return "lab_tests"
}
