package service_test

import (
	"context"
	"testing"

	"github.com/TemiKayode/wumikay-ventures/internal/application/service"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/enum"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/repository"
	"github.com/TemiKayode/wumikay-ventures/pkg/apperror"
	"github.com/TemiKayode/wumikay-ventures/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderService_ListOrders(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	orders := []entity.Order{
		{ID: 1, OrderNumber: "ORD-1-aaaa"},
		{ID: 2, OrderNumber: "ORD-2-bbbb"},
	}
	orderRepo.On("List", mock.Anything, mock.AnythingOfType("*repository.OrderFilterParams")).
		Return(orders, int64(2), nil)

	svc := service.NewOrderService(orderRepo)
	result, err := svc.ListOrders(context.Background(), &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 10},
	})

	assert.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(2), result.Pagination.Total)
}

func TestOrderService_GetOrderNotFound(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetWithItems", mock.Anything, uint(99)).Return(nil, nil)

	svc := service.NewOrderService(orderRepo)
	_, err := svc.GetOrder(context.Background(), 99)

	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestOrderService_CancelPendingOrder(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByID", mock.Anything, uint(1)).
		Return(&entity.Order{ID: 1, Status: enum.OrderStatusPending}, nil)
	orderRepo.On("UpdateStatus", mock.Anything, uint(1), enum.OrderStatusCancelled).
		Return(nil).Once()

	svc := service.NewOrderService(orderRepo)
	order, err := svc.CancelOrder(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCancelled, order.Status)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_CancelCompletedOrderFails(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByID", mock.Anything, uint(1)).
		Return(&entity.Order{ID: 1, Status: enum.OrderStatusCompleted}, nil)

	svc := service.NewOrderService(orderRepo)
	_, err := svc.CancelOrder(context.Background(), 1)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 409, appErr.Code)
	assert.Equal(t, "Completed orders cannot be cancelled", appErr.Message)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_CancelCancelledOrderIsIdempotent(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetByID", mock.Anything, uint(1)).
		Return(&entity.Order{ID: 1, Status: enum.OrderStatusCancelled}, nil)

	svc := service.NewOrderService(orderRepo)
	order, err := svc.CancelOrder(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCancelled, order.Status)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
