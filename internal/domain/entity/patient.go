package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Patient represents a registered patient record
type Patient struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	MRN                 string         `gorm:"size:100;unique;not null" json:"mrn"`
	FirstName           string         `gorm:"size:100;not null" json:"first_name"`
	LastName            string         `gorm:"size:100" json:"last_name"`
	DateOfBirth         *time.Time     `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender              string         `gorm:"size:20" json:"gender"`
	BloodGroup          *string        `gorm:"size:10" json:"blood_group,omitempty"`
	Phone               *string        `gorm:"size:50" json:"phone,omitempty"`
	Email               *string        `gorm:"size:255" json:"email,omitempty"`
	Address             *string        `gorm:"type:text" json:"address,omitempty"`
	EmergencyContact    *string        `gorm:"size:255" json:"emergency_contact,omitempty"`
	InsuranceProviderID *uuid.UUID     `gorm:"type:uuid;index" json:"insurance_provider_id,omitempty"`
	PolicyNumber        *string        `gorm:"size:100" json:"policy_number,omitempty"`
	Notes               *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	InsuranceProvider *InsuranceProvider `gorm:"foreignKey:InsuranceProviderID" json:"insurance_provider,omitempty"`
}

// BeforeCreate generates a UUID before creating a new patient
func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Patient model
func (Patient) TableName() string {
	return "patients"
}

// FullName returns the patient's display name
func (p *Patient) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
