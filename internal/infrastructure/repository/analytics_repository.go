package repository

import (
	"context"
	"time"

	domainRepo "github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetRevenueBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM sales
		WHERE status = 0 AND deleted_at IS NULL
		AND sale_date >= ? AND sale_date <= ?
	`, start, end).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) GetSalesCountBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM sales
		WHERE status = 0 AND deleted_at IS NULL
		AND sale_date >= ? AND sale_date <= ?
	`, start, end).Scan(&count).Error

	return count, err
}

func (r *analyticsRepository) GetDailyRevenue(ctx context.Context, days int) ([]domainRepo.DailyRevenueResult, error) {
	results := make([]domainRepo.DailyRevenueResult, 0, days)
	now := time.Now()

	// One query per day keeps the SQL portable; N is small (dashboard shows 30 days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		var row struct {
			Revenue decimal.Decimal
			Sales   int
		}
		err := r.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(total), 0) as revenue, COUNT(*) as sales
			FROM sales
			WHERE status = 0 AND deleted_at IS NULL
			AND sale_date >= ? AND sale_date < ?
		`, startOfDay, endOfDay).Scan(&row).Error

		if err != nil {
			return nil, err
		}

		results = append(results, domainRepo.DailyRevenueResult{
			Date:    startOfDay,
			Revenue: row.Revenue,
			Sales:   row.Sales,
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetTopMedicines(ctx context.Context, limit int) ([]domainRepo.TopMedicineResult, error) {
	var results []domainRepo.TopMedicineResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			m.id as medicine_id,
			m.name as medicine_name,
			COALESCE(SUM(si.quantity), 0) as quantity_sold,
			COALESCE(SUM(si.total), 0) as revenue
		FROM sale_items si
		JOIN medicines m ON m.id = si.medicine_id
		JOIN sales s ON s.id = si.sale_id
		WHERE s.status = 0 AND s.deleted_at IS NULL
		GROUP BY m.id, m.name
		ORDER BY revenue DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) CountPatients(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM patients WHERE deleted_at IS NULL
	`).Scan(&count).Error
	return count, err
}

func (r *analyticsRepository) CountAppointmentsOnDate(ctx context.Context, date time.Time) (int64, error) {
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM appointments
		WHERE status <> 2 AND deleted_at IS NULL
		AND date >= ? AND date < ?
	`, startOfDay, endOfDay).Scan(&count).Error
	return count, err
}

func (r *analyticsRepository) CountLowStockMedicines(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM medicines
		WHERE quantity <= quantity_alert AND deleted_at IS NULL
	`).Scan(&count).Error
	return count, err
}
