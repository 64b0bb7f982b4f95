package repository

import (
	"context"
	"time"

	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/enum"
	"github.com/TemiKayode/wumikay-ventures/pkg/pagination"
)

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.OrderStatus
	StartDate  *time.Time
	EndDate    *time.Time
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uint) (*entity.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
	GetWithItems(ctx context.Context, id uint) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	UpdateStatus(ctx context.Context, id uint, status enum.OrderStatus) error
	// ListStalePending returns Pending orders created before the cutoff,
	// with their items preloaded, for the reconciliation sweep.
	ListStalePending(ctx context.Context, cutoff time.Time) ([]entity.Order, error)
	Count(ctx context.Context) (int64, error)
}

// OrderItemRepository defines the interface for order item data operations
type OrderItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.OrderItem) error
	GetByOrderID(ctx context.Context, orderID uint) ([]entity.OrderItem, error)
}
