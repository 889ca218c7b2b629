package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopMedicineResult represents a medicine's sales performance
type TopMedicineResult struct {
	MedicineID   uuid.UUID
	MedicineName string
	QuantitySold int
	Revenue      decimal.Decimal
}

// DailyRevenueResult represents pharmacy revenue for a single day
type DailyRevenueResult struct {
	Date    time.Time
	Revenue decimal.Decimal
	Sales   int
}

// AnalyticsRepository defines interface for dashboard aggregation queries
type AnalyticsRepository interface {
	// GetRevenueBetween returns total revenue from completed sales in [start, end]
	GetRevenueBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// GetSalesCountBetween returns the number of completed sales in [start, end]
	GetSalesCountBetween(ctx context.Context, start, end time.Time) (int64, error)

	// GetDailyRevenue returns per-day revenue for the last N days
	GetDailyRevenue(ctx context.Context, days int) ([]DailyRevenueResult, error)

	// GetTopMedicines returns top selling medicines by revenue
	GetTopMedicines(ctx context.Context, limit int) ([]TopMedicineResult, error)

	// CountPatients returns the number of registered patients
	CountPatients(ctx context.Context) (int64, error)

	// CountAppointmentsOnDate returns non-cancelled appointments on a calendar date
	CountAppointmentsOnDate(ctx context.Context, date time.Time) (int64, error)

	// CountLowStockMedicines returns medicines at or below their alert level
	CountLowStockMedicines(ctx context.Context) (int64, error)
}
