package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale represents a committed pharmacy bill
type Sale struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo       string          `gorm:"size:100;unique;not null" json:"invoice_no"`
	PatientID       *uuid.UUID      `gorm:"type:uuid;index" json:"patient_id,omitempty"`
	CashierID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"cashier_id"`
	SaleDate        time.Time       `gorm:"type:date;not null" json:"sale_date"`
	Status          enum.SaleStatus `gorm:"default:0" json:"status"`
	SubTotal        decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"sub_total"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"discount_percent"`
	DiscountAmount  decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	TaxPercent      decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"tax_percent"`
	TaxAmount       decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	Total           decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total"`
	PaymentType     string          `gorm:"size:50" json:"payment_type"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Patient *Patient   `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Cashier User       `gorm:"foreignKey:CashierID" json:"-"`
	Items   []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem represents a line item in a pharmacy sale
type SaleItem struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SaleID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	MedicineID uuid.UUID       `gorm:"type:uuid;not null;index" json:"medicine_id"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Total      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Sale     Sale     `gorm:"foreignKey:SaleID" json:"-"`
	Medicine Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
