package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/TemiKayode/wumikay-ventures/internal/application/service"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/enum"
	"github.com/TemiKayode/wumikay-ventures/pkg/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleOrder() *entity.Order {
	return &entity.Order{
		ID:             42,
		OrderNumber:    "ORD-1700000000000-ab12",
		CustomerName:   "Ade Bello",
		CustomerEmail:  "ade@example.com",
		SubtotalAmount: 890000,
		POSCharge:      15000,
		TotalAmount:    905000,
		PaymentMode:    enum.PaymentModePOS,
		OrderDate:      time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC),
	}
}

func sampleItems() []entity.OrderItem {
	return []entity.OrderItem{
		{ProductName: "Coca-Cola PET Bottle", Quantity: 2, UnitPrice: 445000, Subtotal: 890000},
	}
}

func TestBuildReceipt(t *testing.T) {
	r := service.BuildReceipt(sampleOrder(), sampleItems(), entity.DefaultCompanySettings())

	assert.Equal(t, "WumiKay Ventures", r.Header.StoreName)
	assert.Equal(t, "ORD-1700000000000-ab12", r.OrderNumber)
	assert.Equal(t, 8900.0, r.Subtotal)
	assert.Equal(t, 150.0, r.POSCharge)
	assert.Equal(t, 9050.0, r.Total)
	assert.Equal(t, enum.PaymentModePOS, r.PaymentMode)
	assert.Equal(t, "2026-08-30 14:30", r.OrderDate)
	assert.Len(t, r.Items, 1)
	assert.Equal(t, "Coca-Cola PET Bottle", r.Items[0].Name)
	assert.Equal(t, 4450.0, r.Items[0].UnitPrice)
}

func TestBuildReceipt_LegacyOrderDefaults(t *testing.T) {
	order := sampleOrder()
	order.SubtotalAmount = 0
	order.POSCharge = 0
	order.PaymentMode = ""

	r := service.BuildReceipt(order, sampleItems(), entity.DefaultCompanySettings())

	assert.Equal(t, 9050.0, r.Subtotal, "missing subtotal falls back to the total")
	assert.Equal(t, 0.0, r.POSCharge)
	assert.Equal(t, enum.PaymentModeCash, r.PaymentMode)
}

func TestReceiptService_BuildForOrderUsesSeedDefaultsWithoutSettings(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	settingsRepo := new(MockSettingsRepository)
	settingsRepo.On("Get", mock.Anything).Return(nil, nil)

	p, err := printer.NewFromConfig("none", "", "")
	assert.NoError(t, err)
	svc := service.NewReceiptService(orderRepo, settingsRepo, p, "none", 32)

	r, err := svc.BuildForOrder(context.Background(), sampleOrder(), sampleItems())
	assert.NoError(t, err)
	assert.Equal(t, "WumiKay Ventures", r.Header.StoreName)
}

func TestReceiptService_BuildForOrderIDNotFound(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetWithItems", mock.Anything, uint(99)).Return(nil, nil)
	settingsRepo := new(MockSettingsRepository)

	p, err := printer.NewFromConfig("none", "", "")
	assert.NoError(t, err)
	svc := service.NewReceiptService(orderRepo, settingsRepo, p, "none", 32)

	_, err = svc.BuildForOrderID(context.Background(), 99)
	assert.EqualError(t, err, "Order not found")
}

func TestReceiptService_StatusWithoutPrinter(t *testing.T) {
	p, err := printer.NewFromConfig("none", "", "")
	assert.NoError(t, err)
	svc := service.NewReceiptService(new(MockOrderRepository), new(MockSettingsRepository), p, "none", 32)

	status := svc.Status()
	assert.False(t, status.Configured)
	assert.False(t, status.Connected)
	assert.Equal(t, "none", status.Type)
}

func TestReceiptService_TestPrintReturnsSample(t *testing.T) {
	p, err := printer.NewFromConfig("none", "", "")
	assert.NoError(t, err)
	svc := service.NewReceiptService(new(MockOrderRepository), new(MockSettingsRepository), p, "none", 32)

	sample, err := svc.TestPrint()
	assert.NoError(t, err)
	assert.Equal(t, "TEST-0001", sample.OrderNumber)
	assert.Equal(t, 9050.0, sample.Total)
	assert.Equal(t, 150.0, sample.POSCharge)
}
