package service

import (
	"context"
	"fmt"

	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/repository"
	"github.com/TemiKayode/wumikay-ventures/pkg/apperror"
	"github.com/TemiKayode/wumikay-ventures/pkg/printer"
	"github.com/TemiKayode/wumikay-ventures/pkg/receipt"
)

// ReceiptService composes receipts from orders and sends them to the
// configured thermal printer.
type ReceiptService struct {
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	printer      printer.Printer
	printerType  string
	paperWidth   int
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	orderRepo repository.OrderRepository,
	settingsRepo repository.SettingsRepository,
	p printer.Printer,
	printerType string,
	paperWidth int,
) *ReceiptService {
	return &ReceiptService{
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		printer:      p,
		printerType:  printerType,
		paperWidth:   paperWidth,
	}
}

// BuildReceipt composes a receipt from an order, its items, and the
// company settings. Orders written before the surcharge columns existed
// may lack a subtotal or payment mode; the subtotal falls back to the
// total, the surcharge to zero, and the mode to cash.
func BuildReceipt(order *entity.Order, items []entity.OrderItem, company *entity.CompanySettings) *entity.Receipt {
	subtotal := order.SubtotalAmount
	if subtotal == 0 {
		subtotal = order.TotalAmount
	}

	r := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: company.Name,
			Address:   company.Address,
			Phone:     company.Phone,
			Email:     company.Email,
		},
		OrderNumber:   order.OrderNumber,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Subtotal:      float64(subtotal) / 100,
		POSCharge:     float64(order.POSCharge) / 100,
		Total:         float64(order.TotalAmount) / 100,
		PaymentMode:   order.PaymentMode.OrDefault(),
		OrderDate:     order.OrderDate.Format("2006-01-02 15:04"),
		Notes:         order.Notes,
		Footer:        company.ReceiptFooter,
	}

	for _, item := range items {
		r.Items = append(r.Items, entity.ReceiptItem{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.UnitPrice) / 100,
			Subtotal:  float64(item.Subtotal) / 100,
		})
	}

	return r
}

// BuildForOrder builds a receipt for an order using the current company
// settings. A missing settings row falls back to the seed defaults.
func (s *ReceiptService) BuildForOrder(ctx context.Context, order *entity.Order, items []entity.OrderItem) (*entity.Receipt, error) {
	company, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if company == nil {
		company = entity.DefaultCompanySettings()
	}
	return BuildReceipt(order, items, company), nil
}

// BuildForOrderID loads an order with its items and builds its receipt.
func (s *ReceiptService) BuildForOrderID(ctx context.Context, orderID uint) (*entity.Receipt, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return s.BuildForOrder(ctx, order, order.Items)
}

// RenderHTML renders a receipt as a standalone printable HTML page.
func (s *ReceiptService) RenderHTML(r *entity.Receipt) (string, error) {
	return receipt.RenderHTML(r)
}

// Print sends a receipt to the thermal printer.
func (s *ReceiptService) Print(r *entity.Receipt) error {
	data := receipt.FormatThermal(r, s.paperWidth)
	if err := s.printer.Print(data); err != nil {
		return fmt.Errorf("receipt print failed: %w", err)
	}
	return nil
}

// PrinterStatus holds printer availability information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// Status returns the printer's configuration and connection state.
func (s *ReceiptService) Status() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a fixed sample receipt to the printer. The sample is
// returned so callers can show it even when no printer is attached.
func (s *ReceiptService) TestPrint() (*entity.Receipt, error) {
	sample := BuildReceipt(
		&entity.Order{
			OrderNumber:    "TEST-0001",
			CustomerName:   "Walk-in Customer",
			SubtotalAmount: 890000,
			POSCharge:      15000,
			TotalAmount:    905000,
			PaymentMode:    "pos",
		},
		[]entity.OrderItem{
			{ProductName: "Test Item", Quantity: 2, UnitPrice: 445000, Subtotal: 890000},
		},
		entity.DefaultCompanySettings(),
	)

	if err := s.Print(sample); err != nil {
		return sample, apperror.ErrPrinterUnavailable
	}
	return sample, nil
}
