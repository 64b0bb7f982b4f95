package repository

import (
	"context"
	"database/sql"
	"time"

	domainRepo "github.com/TemiKayode/wumikay-ventures/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// completed-order filter shared by the revenue queries
func dateRangeClause(start, end *time.Time) (string, []interface{}) {
	clause := "WHERE status = 1"
	args := []interface{}{}
	if start != nil {
		clause += " AND order_date >= ?"
		args = append(args, *start)
	}
	if end != nil {
		clause += " AND order_date <= ?"
		args = append(args, *end)
	}
	return clause, args
}

func (r *analyticsRepository) GetTotalRevenue(ctx context.Context, start, end *time.Time) (float64, error) {
	clause, args := dateRangeClause(start, end)

	var revenue float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0) / 100.0
		FROM orders `+clause, args...).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) GetOrderCount(ctx context.Context, start, end *time.Time) (int64, error) {
	clause, args := dateRangeClause(start, end)

	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders `+clause, args...).Scan(&count).Error

	return count, err
}

func (r *analyticsRepository) GetTopProducts(ctx context.Context, limit int, start, end *time.Time) ([]domainRepo.TopProductResult, error) {
	var results []domainRepo.TopProductResult

	query := `
		SELECT
			oi.product_id as product_id,
			oi.product_name as product_name,
			COALESCE(SUM(oi.quantity), 0) as quantity_sold,
			COALESCE(SUM(oi.subtotal), 0) / 100.0 as revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status = 1`
	args := []interface{}{}
	if start != nil {
		query += " AND o.order_date >= ?"
		args = append(args, *start)
	}
	if end != nil {
		query += " AND o.order_date <= ?"
		args = append(args, *end)
	}
	query += `
		GROUP BY oi.product_id, oi.product_name
		ORDER BY revenue DESC
		LIMIT ?`
	args = append(args, limit)

	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) GetPaymentModeSplit(ctx context.Context, start, end *time.Time) ([]domainRepo.PaymentModeSplit, error) {
	var results []domainRepo.PaymentModeSplit

	clause, args := dateRangeClause(start, end)
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			payment_mode,
			COUNT(*) as order_count,
			COALESCE(SUM(total_amount), 0) / 100.0 as revenue
		FROM orders `+clause+`
		GROUP BY payment_mode
		ORDER BY revenue DESC`, args...).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) GetDailySales(ctx context.Context, days int) ([]domainRepo.DailySalesResult, error) {
	results := make([]domainRepo.DailySalesResult, 0, days)
	now := time.Now()

	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		var row struct {
			Revenue sql.NullFloat64
			Orders  int
		}
		err := r.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(total_amount), 0) / 100.0 as revenue, COUNT(*) as orders
			FROM orders
			WHERE status = 1
			AND order_date >= ? AND order_date < ?
		`, startOfDay, endOfDay).Scan(&row).Error
		if err != nil {
			return nil, err
		}

		rev := 0.0
		if row.Revenue.Valid {
			rev = row.Revenue.Float64
		}

		results = append(results, domainRepo.DailySalesResult{
			Date:    startOfDay.Format("2006-01-02"),
			Revenue: rev,
			Orders:  row.Orders,
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetDistinctCustomerCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT LOWER(customer_email))
		FROM orders
		WHERE customer_email <> ''
	`).Scan(&count).Error

	return count, err
}

func (r *analyticsRepository) ListCustomers(ctx context.Context) ([]domainRepo.CustomerRollup, error) {
	var results []domainRepo.CustomerRollup

	// One row per distinct email; name and phone come from the most
	// recent order for that email.
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(ARRAY_AGG(customer_name ORDER BY order_date DESC))[1] as name,
			LOWER(customer_email) as email,
			(ARRAY_AGG(customer_phone ORDER BY order_date DESC))[1] as phone,
			COUNT(*) as order_count,
			COALESCE(SUM(total_amount), 0) / 100.0 as total_spent,
			MAX(order_date) as last_order
		FROM orders
		WHERE customer_email <> ''
		GROUP BY LOWER(customer_email)
		ORDER BY last_order DESC
	`).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) GetLowStockCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM products
		WHERE quantity <= low_stock_threshold AND deleted_at IS NULL
	`).Scan(&count).Error

	return count, err
}
