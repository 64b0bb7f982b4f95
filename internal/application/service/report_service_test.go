package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/TemiKayode/wumikay-ventures/internal/application/service"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"
)

func reportAnalyticsMock() *MockAnalyticsRepository {
	analyticsRepo := new(MockAnalyticsRepository)
	analyticsRepo.On("GetTotalRevenue", mock.Anything, mock.Anything, mock.Anything).Return(27150.0, nil)
	analyticsRepo.On("GetOrderCount", mock.Anything, mock.Anything, mock.Anything).Return(int64(3), nil)
	analyticsRepo.On("GetPaymentModeSplit", mock.Anything, mock.Anything, mock.Anything).Return([]repository.PaymentModeSplit{
		{PaymentMode: "cash", OrderCount: 2, Revenue: 18100},
		{PaymentMode: "pos", OrderCount: 1, Revenue: 9050},
	}, nil)
	analyticsRepo.On("GetTopProducts", mock.Anything, 10, mock.Anything, mock.Anything).Return([]repository.TopProductResult{
		{ProductID: 1, ProductName: "Coca-Cola PET Bottle", QuantitySold: 6, Revenue: 26700},
	}, nil)
	return analyticsRepo
}

func TestReportService_GetSalesReport(t *testing.T) {
	svc := service.NewReportService(reportAnalyticsMock())

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	report, err := svc.GetSalesReport(context.Background(), &start, nil)

	assert.NoError(t, err)
	assert.Equal(t, 27150.0, report.TotalRevenue)
	assert.Equal(t, int64(3), report.OrderCount)
	assert.Len(t, report.PaymentModes, 2)
	assert.Len(t, report.TopProducts, 1)
	assert.Equal(t, &start, report.StartDate)
}

func TestReportService_ExportSalesReport(t *testing.T) {
	svc := service.NewReportService(reportAnalyticsMock())

	buf, err := svc.ExportSalesReport(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(buf)
	assert.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Sales Report", "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Sales Report", title)

	period, err := f.GetCellValue("Sales Report", "A2")
	assert.NoError(t, err)
	assert.Equal(t, "Period: all time", period)

	revenue, err := f.GetCellValue("Sales Report", "B4")
	assert.NoError(t, err)
	assert.Equal(t, "27150", revenue)

	product, err := f.GetCellValue("Sales Report", "A11")
	assert.NoError(t, err)
	assert.Equal(t, "Product", product)
}
