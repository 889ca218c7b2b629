package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InsuranceProvider represents an insurance company the hospital works with
type InsuranceProvider struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	ContactName *string        `gorm:"size:255" json:"contact_name,omitempty"`
	Email       *string        `gorm:"size:255" json:"email,omitempty"`
	Phone       *string        `gorm:"size:50" json:"phone,omitempty"`
	Address     *string        `gorm:"type:text" json:"address,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new insurance provider
func (p *InsuranceProvider) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InsuranceProvider model
func (InsuranceProvider) TableName() string {
	return "insurance_providers"
}

// InsuranceClaim represents a claim filed against a patient's policy
type InsuranceClaim struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ClaimNo    string           `gorm:"size:100;unique;not null" json:"claim_no"`
	PatientID  uuid.UUID        `gorm:"type:uuid;not null;index" json:"patient_id"`
	ProviderID uuid.UUID        `gorm:"type:uuid;not null;index" json:"provider_id"`
	Amount     decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status     enum.ClaimStatus `gorm:"default:0;index" json:"status"`
	FiledAt    time.Time        `gorm:"not null" json:"filed_at"`
	ResolvedAt *time.Time       `json:"resolved_at,omitempty"`
	Notes      *string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	DeletedAt  gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Patient  Patient           `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Provider InsuranceProvider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

// BeforeCreate generates a UUID before creating a new insurance claim
func (c *InsuranceClaim) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InsuranceClaim model
func (InsuranceClaim) TableName() string {
	return "insurance_claims"
}
