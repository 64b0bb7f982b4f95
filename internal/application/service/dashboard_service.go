package service

import (
	"context"

	"github.com/TemiKayode/wumikay-ventures/internal/domain/repository"
)

// DashboardService aggregates headline store statistics
type DashboardService struct {
	productRepo   repository.ProductRepository
	orderRepo     repository.OrderRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	analyticsRepo repository.AnalyticsRepository,
) *DashboardService {
	return &DashboardService{
		productRepo:   productRepo,
		orderRepo:     orderRepo,
		analyticsRepo: analyticsRepo,
	}
}

// DashboardStats holds the dashboard headline numbers. Revenue counts
// completed orders only.
type DashboardStats struct {
	TotalRevenue   float64                       `json:"total_revenue"`
	TotalOrders    int64                         `json:"total_orders"`
	TotalProducts  int64                         `json:"total_products"`
	TotalCustomers int64                         `json:"total_customers"`
	LowStockCount  int64                         `json:"low_stock_count"`
	TopProducts    []repository.TopProductResult `json:"top_products"`
	DailySales     []repository.DailySalesResult `json:"daily_sales"`
}

// GetStats assembles the dashboard statistics
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	revenue, err := s.analyticsRepo.GetTotalRevenue(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = revenue

	orders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalOrders = orders

	products, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalProducts = products

	customers, err := s.analyticsRepo.GetDistinctCustomerCount(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalCustomers = customers

	lowStock, err := s.analyticsRepo.GetLowStockCount(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockCount = lowStock

	topProducts, err := s.analyticsRepo.GetTopProducts(ctx, 5, nil, nil)
	if err != nil {
		return nil, err
	}
	stats.TopProducts = topProducts

	dailySales, err := s.analyticsRepo.GetDailySales(ctx, 7)
	if err != nil {
		return nil, err
	}
	stats.DailySales = dailySales

	return stats, nil
}
