package service

import (
	"context"

	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/enum"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/repository"
	"github.com/TemiKayode/wumikay-ventures/pkg/apperror"
	"github.com/TemiKayode/wumikay-ventures/pkg/pagination"
)

// OrderService handles order queries and status transitions. New orders
// are created by CheckoutService only.
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// ListOrders lists orders with filtering and pagination
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// GetOrder retrieves an order with its items
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// CancelOrder marks an order as cancelled. Completed orders cannot be
// cancelled.
func (s *OrderService) CancelOrder(ctx context.Context, id uint) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusCompleted {
		return nil, apperror.NewConflictError("Completed orders cannot be cancelled")
	}
	if order.Status == enum.OrderStatusCancelled {
		return order, nil
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, enum.OrderStatusCancelled); err != nil {
		return nil, err
	}
	order.Status = enum.OrderStatusCancelled
	return order, nil
}
