package repository

import (
	"context"
	"time"
)

// TopProductResult represents a product's sales performance
type TopProductResult struct {
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// CustomerRollup represents a distinct order customer with aggregate stats.
// Customers are not stored as their own table; they are derived from the
// orders they placed.
type CustomerRollup struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	OrderCount int       `json:"order_count"`
	TotalSpent float64   `json:"total_spent"`
	LastOrder  time.Time `json:"last_order"`
}

// PaymentModeSplit represents revenue grouped by payment mode
type PaymentModeSplit struct {
	PaymentMode string  `json:"payment_mode"`
	OrderCount  int     `json:"order_count"`
	Revenue     float64 `json:"revenue"`
}

// DailySalesResult represents sales data for a single day
type DailySalesResult struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// AnalyticsRepository defines the aggregation queries backing the
// dashboard, reports, and the customer roll-up view.
type AnalyticsRepository interface {
	GetTotalRevenue(ctx context.Context, start, end *time.Time) (float64, error)
	GetOrderCount(ctx context.Context, start, end *time.Time) (int64, error)
	GetTopProducts(ctx context.Context, limit int, start, end *time.Time) ([]TopProductResult, error)
	GetPaymentModeSplit(ctx context.Context, start, end *time.Time) ([]PaymentModeSplit, error)
	GetDailySales(ctx context.Context, days int) ([]DailySalesResult, error)
	GetDistinctCustomerCount(ctx context.Context) (int64, error)
	ListCustomers(ctx context.Context) ([]CustomerRollup, error)
	GetLowStockCount(ctx context.Context) (int64, error)
}
