package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TemiKayode/wumikay-ventures/internal/application/service"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/enum"
	"github.com/TemiKayode/wumikay-ventures/internal/infrastructure/events"
	"github.com/TemiKayode/wumikay-ventures/pkg/apperror"
	"github.com/TemiKayode/wumikay-ventures/pkg/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testUserID = uint(7)

type checkoutFixture struct {
	orderRepo    *MockOrderRepository
	itemRepo     *MockOrderItemRepository
	settingsRepo *MockSettingsRepository
	productRepo  *MockProductRepository
	cartService  *service.CartService
	checkout     *service.CheckoutService
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	f := &checkoutFixture{
		orderRepo:    new(MockOrderRepository),
		itemRepo:     new(MockOrderItemRepository),
		settingsRepo: new(MockSettingsRepository),
		productRepo:  new(MockProductRepository),
	}

	f.settingsRepo.On("Get", mock.Anything).Return(entity.DefaultCompanySettings(), nil)

	nullPrinter, err := printer.NewFromConfig("none", "", "")
	assert.NoError(t, err)
	receipts := service.NewReceiptService(f.orderRepo, f.settingsRepo, nullPrinter, "none", 32)

	f.cartService = service.NewCartService(f.productRepo)
	f.checkout = service.NewCheckoutService(
		f.orderRepo, f.itemRepo, f.settingsRepo, f.cartService,
		receipts, events.NewNoopPublisher(), 15000,
	)
	return f
}

// seedCart puts two units of a single 4450.00 product in the user's cart.
func (f *checkoutFixture) seedCart(t *testing.T) {
	t.Helper()
	f.productRepo.On("GetByID", mock.Anything, uint(1)).
		Return(&entity.Product{ID: 1, Name: "Coca-Cola PET Bottle", Price: 445000, Quantity: 100}, nil)

	_, err := f.cartService.AddItem(context.Background(), testUserID, 1)
	assert.NoError(t, err)
	f.cartService.SetQuantity(testUserID, 1, 2)
}

func TestComputePricing_CashHasNoSurcharge(t *testing.T) {
	cart := entity.NewCart()
	cart.AddItem(&entity.Product{ID: 1, Name: "Coca-Cola PET Bottle", Price: 445000})
	cart.SetQuantity(1, 2)

	pricing, err := service.ComputePricing(cart, enum.PaymentModeCash, 15000)

	assert.NoError(t, err)
	assert.Equal(t, int64(890000), pricing.Subtotal)
	assert.Equal(t, int64(0), pricing.POSCharge)
	assert.Equal(t, int64(890000), pricing.Total)
}

func TestComputePricing_POSAddsSurchargeOnce(t *testing.T) {
	cart := entity.NewCart()
	cart.AddItem(&entity.Product{ID: 1, Name: "Coca-Cola PET Bottle", Price: 445000})
	cart.SetQuantity(1, 2)

	pricing, err := service.ComputePricing(cart, enum.PaymentModePOS, 15000)

	assert.NoError(t, err)
	assert.Equal(t, int64(890000), pricing.Subtotal)
	assert.Equal(t, int64(15000), pricing.POSCharge)
	assert.Equal(t, int64(905000), pricing.Total)
}

func TestComputePricing_EmptyCartFails(t *testing.T) {
	_, err := service.ComputePricing(entity.NewCart(), enum.PaymentModeCash, 15000)

	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
}

func TestBuildOrderRequest_MissingEmailFailsValidation(t *testing.T) {
	cart := entity.NewCart()
	cart.AddItem(&entity.Product{ID: 1, Name: "Coca-Cola PET Bottle", Price: 445000})
	pricing, err := service.ComputePricing(cart, enum.PaymentModeCash, 15000)
	assert.NoError(t, err)

	_, _, err = service.BuildOrderRequest(cart, pricing, &service.CheckoutInput{
		CustomerName: "Ade Bello",
	})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Len(t, appErr.Errors, 1)
	assert.Equal(t, "customer_email", appErr.Errors[0].Field)
}

func TestBuildOrderRequest_DefaultsPaymentModeToCash(t *testing.T) {
	cart := entity.NewCart()
	cart.AddItem(&entity.Product{ID: 1, Name: "Coca-Cola PET Bottle", Price: 445000})
	pricing, err := service.ComputePricing(cart, "", 15000)
	assert.NoError(t, err)

	order, items, err := service.BuildOrderRequest(cart, pricing, &service.CheckoutInput{
		CustomerName:  "Ade Bello",
		CustomerEmail: "ade@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, enum.PaymentModeCash, order.PaymentMode)
	assert.Equal(t, enum.OrderStatusPending, order.Status)
	assert.Regexp(t, `^ORD-\d+-[0-9a-f]{4}$`, order.OrderNumber)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(445000), items[0].Subtotal)
}

func TestCheckout_POSOrderCompletes(t *testing.T) {
	f := newCheckoutFixture(t)
	f.seedCart(t)

	f.orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Order).ID = 42
		}).Return(nil).Once()
	f.itemRepo.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]entity.OrderItem")).
		Return(nil).Once()
	f.orderRepo.On("UpdateStatus", mock.Anything, uint(42), enum.OrderStatusCompleted).
		Return(nil).Once()

	result, err := f.checkout.Checkout(context.Background(), testUserID, &service.CheckoutInput{
		CustomerName:  "Ade Bello",
		CustomerEmail: "ade@example.com",
		PaymentMode:   enum.PaymentModePOS,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(890000), result.Order.SubtotalAmount)
	assert.Equal(t, int64(15000), result.Order.POSCharge)
	assert.Equal(t, int64(905000), result.Order.TotalAmount)
	assert.Equal(t, enum.OrderStatusCompleted, result.Order.Status)
	assert.Empty(t, result.Warnings)
	assert.NotNil(t, result.Receipt)
	assert.True(t, f.cartService.GetCart(testUserID).IsEmpty(), "checkout should clear the cart")
	f.orderRepo.AssertExpectations(t)
	f.itemRepo.AssertExpectations(t)
}

func TestCheckout_EmptyCartFails(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.checkout.Checkout(context.Background(), testUserID, &service.CheckoutInput{
		CustomerName:  "Ade Bello",
		CustomerEmail: "ade@example.com",
	})

	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
	f.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckout_ItemInsertFailureLeavesOrderPending(t *testing.T) {
	f := newCheckoutFixture(t)
	f.seedCart(t)

	f.orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Order).ID = 42
		}).Return(nil).Once()
	f.itemRepo.On("CreateBatch", mock.Anything, mock.Anything).
		Return(errors.New("connection reset")).Once()

	_, err := f.checkout.Checkout(context.Background(), testUserID, &service.CheckoutInput{
		CustomerName:  "Ade Bello",
		CustomerEmail: "ade@example.com",
	})

	assert.Error(t, err)
	f.orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	assert.False(t, f.cartService.GetCart(testUserID).IsEmpty(), "failed checkout keeps the cart")
}

func TestCheckout_StatusUpdateFailureIsWarning(t *testing.T) {
	f := newCheckoutFixture(t)
	f.seedCart(t)

	f.orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Order).ID = 42
		}).Return(nil).Once()
	f.itemRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil).Once()
	f.orderRepo.On("UpdateStatus", mock.Anything, uint(42), enum.OrderStatusCompleted).
		Return(errors.New("connection reset")).Once()

	result, err := f.checkout.Checkout(context.Background(), testUserID, &service.CheckoutInput{
		CustomerName:  "Ade Bello",
		CustomerEmail: "ade@example.com",
	})

	assert.NoError(t, err, "step three failure must not fail the sale")
	assert.Equal(t, enum.OrderStatusPending, result.Order.Status)
	assert.Contains(t, result.Warnings, "Order saved but could not be marked completed")
	assert.True(t, f.cartService.GetCart(testUserID).IsEmpty())
}

func TestCheckout_RowSecurityRejectionGetsRemediation(t *testing.T) {
	f := newCheckoutFixture(t)
	f.seedCart(t)

	f.orderRepo.On("Create", mock.Anything, mock.Anything).
		Return(errors.New(`new row violates row-level security policy for table "orders"`)).Once()

	_, err := f.checkout.Checkout(context.Background(), testUserID, &service.CheckoutInput{
		CustomerName:  "Ade Bello",
		CustomerEmail: "ade@example.com",
	})

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 403, appErr.Code)
	assert.NotEmpty(t, appErr.Remediation)
}

func TestReconcileStaleOrders(t *testing.T) {
	f := newCheckoutFixture(t)

	withItems := entity.Order{
		ID: 1, OrderNumber: "ORD-1-aaaa", Status: enum.OrderStatusPending,
		Items: []entity.OrderItem{{OrderID: 1, ProductID: 1, Quantity: 1}},
	}
	withoutItems := entity.Order{
		ID: 2, OrderNumber: "ORD-2-bbbb", Status: enum.OrderStatusPending,
	}

	f.orderRepo.On("ListStalePending", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]entity.Order{withItems, withoutItems}, nil).Once()
	f.orderRepo.On("UpdateStatus", mock.Anything, uint(1), enum.OrderStatusCompleted).Return(nil).Once()
	f.orderRepo.On("UpdateStatus", mock.Anything, uint(2), enum.OrderStatusCancelled).Return(nil).Once()

	completed, cancelled, err := f.checkout.ReconcileStaleOrders(context.Background(), 30*time.Minute)

	assert.NoError(t, err)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 1, cancelled)
	f.orderRepo.AssertExpectations(t)
}
