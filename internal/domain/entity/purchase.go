package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Purchase represents a purchase order placed with a supplier
type Purchase struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseNo  string              `gorm:"size:100;unique;not null" json:"purchase_no"`
	SupplierID  *uuid.UUID          `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	CreatedByID uuid.UUID           `gorm:"type:uuid;column:created_by;not null" json:"created_by"`
	UpdatedByID *uuid.UUID          `gorm:"type:uuid;column:updated_by" json:"updated_by,omitempty"`
	Date        time.Time           `gorm:"type:date;not null" json:"date"`
	Status      enum.PurchaseStatus `gorm:"default:0" json:"status"`
	TotalAmount decimal.Decimal     `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	Notes       *string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	DeletedAt   gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Supplier  *Supplier        `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	CreatedBy User             `gorm:"foreignKey:CreatedByID" json:"-"`
	Details   []PurchaseDetail `gorm:"foreignKey:PurchaseID" json:"details,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseDetail represents a line item in a purchase order
type PurchaseDetail struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseID uuid.UUID       `gorm:"type:uuid;not null;index" json:"purchase_id"`
	MedicineID uuid.UUID       `gorm:"type:uuid;not null;index" json:"medicine_id"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Total      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Purchase Purchase `gorm:"foreignKey:PurchaseID" json:"-"`
	Medicine Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase detail
func (pd *PurchaseDetail) BeforeCreate(tx *gorm.DB) error {
	if pd.ID == uuid.Nil {
		pd.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseDetail model
func (PurchaseDetail) TableName() string {
	return "purchase_details"
}
