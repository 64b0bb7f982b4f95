package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/TemiKayode/wumikay-ventures/internal/domain/repository"
	"github.com/xuri/excelize/v2"
)

// ReportService builds sales reports and their spreadsheet exports
type ReportService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewReportService creates a new report service
func NewReportService(analyticsRepo repository.AnalyticsRepository) *ReportService {
	return &ReportService{analyticsRepo: analyticsRepo}
}

// SalesReport summarizes completed-order sales over an optional window
type SalesReport struct {
	StartDate    *time.Time                    `json:"start_date,omitempty"`
	EndDate      *time.Time                    `json:"end_date,omitempty"`
	TotalRevenue float64                       `json:"total_revenue"`
	OrderCount   int64                         `json:"order_count"`
	PaymentModes []repository.PaymentModeSplit `json:"payment_modes"`
	TopProducts  []repository.TopProductResult `json:"top_products"`
}

// GetSalesReport builds the sales summary for the given window. Nil
// bounds leave that side of the window open.
func (s *ReportService) GetSalesReport(ctx context.Context, start, end *time.Time) (*SalesReport, error) {
	report := &SalesReport{StartDate: start, EndDate: end}

	revenue, err := s.analyticsRepo.GetTotalRevenue(ctx, start, end)
	if err != nil {
		return nil, err
	}
	report.TotalRevenue = revenue

	count, err := s.analyticsRepo.GetOrderCount(ctx, start, end)
	if err != nil {
		return nil, err
	}
	report.OrderCount = count

	modes, err := s.analyticsRepo.GetPaymentModeSplit(ctx, start, end)
	if err != nil {
		return nil, err
	}
	report.PaymentModes = modes

	top, err := s.analyticsRepo.GetTopProducts(ctx, 10, start, end)
	if err != nil {
		return nil, err
	}
	report.TopProducts = top

	return report, nil
}

// ExportSalesReport renders the sales report as an xlsx workbook
func (s *ReportService) ExportSalesReport(ctx context.Context, start, end *time.Time) (*bytes.Buffer, error) {
	report, err := s.GetSalesReport(ctx, start, end)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sales Report"
	f.SetSheetName("Sheet1", sheet)

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", "Sales Report")
	f.SetCellStyle(sheet, "A1", "A1", bold)
	window := "all time"
	if start != nil || end != nil {
		from, to := "beginning", "today"
		if start != nil {
			from = start.Format("2006-01-02")
		}
		if end != nil {
			to = end.Format("2006-01-02")
		}
		window = fmt.Sprintf("%s to %s", from, to)
	}
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Period: %s", window))

	f.SetCellValue(sheet, "A4", "Total Revenue (NGN)")
	f.SetCellValue(sheet, "B4", report.TotalRevenue)
	f.SetCellValue(sheet, "A5", "Completed Orders")
	f.SetCellValue(sheet, "B5", report.OrderCount)

	row := 7
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Payment Mode")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Orders")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Revenue (NGN)")
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), bold)
	for _, mode := range report.PaymentModes {
		row++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), mode.PaymentMode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), mode.OrderCount)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), mode.Revenue)
	}

	row += 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Product")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Quantity Sold")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Revenue (NGN)")
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), bold)
	for _, p := range report.TopProducts {
		row++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.ProductName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.QuantitySold)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.Revenue)
	}

	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "C", 18)

	return f.WriteToBuffer()
}
