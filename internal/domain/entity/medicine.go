package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Medicine represents an item in the pharmacy inventory
type Medicine struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	GenericName   *string         `gorm:"size:255" json:"generic_name,omitempty"`
	Category      string          `gorm:"size:100;index" json:"category"`
	BatchNo       *string         `gorm:"size:100" json:"batch_no,omitempty"`
	ExpiryDate    *time.Time      `gorm:"type:date" json:"expiry_date,omitempty"`
	Quantity      int             `gorm:"default:0" json:"quantity"`
	QuantityAlert int             `gorm:"default:0" json:"quantity_alert"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"unit_price"`
	CostPrice     decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"cost_price"`
	SupplierID    *uuid.UUID      `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Notes         *string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// BeforeCreate generates a UUID before creating a new medicine
func (m *Medicine) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Medicine model
func (Medicine) TableName() string {
	return "medicines"
}

// IsLowStock reports whether quantity has fallen to the alert level
func (m *Medicine) IsLowStock() bool {
	return m.Quantity <= m.QuantityAlert
}
