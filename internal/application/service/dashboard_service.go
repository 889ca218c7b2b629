package service

import (
	"context"
	"time"

	"github.com/kipsang/medicore-api/internal/domain/enum"
	"github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardService aggregates operational metrics for the admin dashboard
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	claimRepo     repository.InsuranceClaimRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository, claimRepo repository.InsuranceClaimRepository) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		claimRepo:     claimRepo,
	}
}

// DashboardSummary holds the headline metrics
type DashboardSummary struct {
	RevenueToday      decimal.Decimal `json:"revenue_today"`
	RevenueThisMonth  decimal.Decimal `json:"revenue_this_month"`
	SalesToday        int64           `json:"sales_today"`
	TotalPatients     int64           `json:"total_patients"`
	AppointmentsToday int64           `json:"appointments_today"`
	LowStockMedicines int64           `json:"low_stock_medicines"`
	PendingClaims     int64           `json:"pending_claims"`
}

// DashboardCharts holds time series and rankings for dashboard charts
type DashboardCharts struct {
	DailyRevenue []repository.DailyRevenueResult `json:"daily_revenue"`
	TopMedicines []repository.TopMedicineResult  `json:"top_medicines"`
}

// GetSummary returns the headline dashboard metrics
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	revenueToday, err := s.analyticsRepo.GetRevenueBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	revenueMonth, err := s.analyticsRepo.GetRevenueBetween(ctx, monthStart, dayEnd)
	if err != nil {
		return nil, err
	}
	salesToday, err := s.analyticsRepo.GetSalesCountBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	totalPatients, err := s.analyticsRepo.CountPatients(ctx)
	if err != nil {
		return nil, err
	}
	appointmentsToday, err := s.analyticsRepo.CountAppointmentsOnDate(ctx, dayStart)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.analyticsRepo.CountLowStockMedicines(ctx)
	if err != nil {
		return nil, err
	}
	pendingClaims, err := s.claimRepo.CountByStatus(ctx, enum.ClaimStatusSubmitted)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		RevenueToday:      revenueToday,
		RevenueThisMonth:  revenueMonth,
		SalesToday:        salesToday,
		TotalPatients:     totalPatients,
		AppointmentsToday: appointmentsToday,
		LowStockMedicines: lowStock,
		PendingClaims:     pendingClaims,
	}, nil
}

// GetCharts returns daily revenue history and top selling medicines
func (s *DashboardService) GetCharts(ctx context.Context, days, topLimit int) (*DashboardCharts, error) {
	if days <= 0 {
		days = 30
	}
	if topLimit <= 0 {
		topLimit = 10
	}

	dailyRevenue, err := s.analyticsRepo.GetDailyRevenue(ctx, days)
	if err != nil {
		return nil, err
	}
	topMedicines, err := s.analyticsRepo.GetTopMedicines(ctx, topLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardCharts{
		DailyRevenue: dailyRevenue,
		TopMedicines: topMedicines,
	}, nil
}
