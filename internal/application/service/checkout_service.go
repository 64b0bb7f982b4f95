package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/TemiKayode/wumikay-ventures/internal/domain/entity"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/enum"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/repository"
	"github.com/TemiKayode/wumikay-ventures/internal/infrastructure/events"
	"github.com/TemiKayode/wumikay-ventures/internal/logger"
	"github.com/TemiKayode/wumikay-ventures/pkg/apperror"
	"go.uber.org/zap"
)

// OrderPricing is the priced breakdown of a cart for one payment mode.
type OrderPricing struct {
	Subtotal  int64 `json:"-"`
	POSCharge int64 `json:"-"`
	Total     int64 `json:"-"`
}

// CheckoutService turns a cart into a persisted order. Persistence runs
// as three separate writes: create the order Pending, batch-insert the
// items, then mark the order Completed. The steps are not wrapped in a
// transaction; a failure after the first write leaves a Pending order
// behind for the reconciliation sweep.
type CheckoutService struct {
	orderRepo    repository.OrderRepository
	itemRepo     repository.OrderItemRepository
	settingsRepo repository.SettingsRepository
	cartService  *CartService
	receipts     *ReceiptService
	publisher    events.Publisher
	posCharge    int64 // fallback surcharge when no settings row exists
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	orderRepo repository.OrderRepository,
	itemRepo repository.OrderItemRepository,
	settingsRepo repository.SettingsRepository,
	cartService *CartService,
	receipts *ReceiptService,
	publisher events.Publisher,
	posCharge int64,
) *CheckoutService {
	return &CheckoutService{
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		settingsRepo: settingsRepo,
		cartService:  cartService,
		receipts:     receipts,
		publisher:    publisher,
		posCharge:    posCharge,
	}
}

// CheckoutInput carries the customer details captured at checkout.
type CheckoutInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PaymentMode   enum.PaymentMode
	Notes         string
}

// CheckoutResult is the checkout outcome. Warnings carry non-fatal
// failures (status update, event publish, receipt print) that do not
// invalidate the sale.
type CheckoutResult struct {
	Order    *entity.Order   `json:"order"`
	Receipt  *entity.Receipt `json:"receipt,omitempty"`
	Warnings []string        `json:"warnings,omitempty"`
}

// ComputePricing prices a cart for the given payment mode. POS payments
// carry the surcharge exactly once; cash payments never do.
func ComputePricing(cart *entity.Cart, mode enum.PaymentMode, surcharge int64) (*OrderPricing, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, apperror.ErrEmptyCart
	}

	subtotal := cart.Total()
	var charge int64
	if mode == enum.PaymentModePOS {
		charge = surcharge
	}

	return &OrderPricing{
		Subtotal:  subtotal,
		POSCharge: charge,
		Total:     subtotal + charge,
	}, nil
}

// BuildOrderRequest assembles an unpersisted order and its items from a
// priced cart. Customer name and email are required.
func BuildOrderRequest(cart *entity.Cart, pricing *OrderPricing, input *CheckoutInput) (*entity.Order, []entity.OrderItem, error) {
	name := strings.TrimSpace(input.CustomerName)
	email := strings.TrimSpace(input.CustomerEmail)

	var fieldErrors []apperror.FieldError
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customer_name", Message: "Customer name is required"})
	}
	if email == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customer_email", Message: "Customer email is required"})
	}
	if input.PaymentMode != "" && !input.PaymentMode.Valid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "payment_mode", Message: "Payment mode must be cash or pos"})
	}
	if len(fieldErrors) > 0 {
		return nil, nil, apperror.NewValidationError(fieldErrors)
	}

	order := &entity.Order{
		OrderNumber:    generateOrderNumber(),
		CustomerName:   name,
		CustomerEmail:  email,
		CustomerPhone:  strings.TrimSpace(input.CustomerPhone),
		Status:         enum.OrderStatusPending,
		SubtotalAmount: pricing.Subtotal,
		POSCharge:      pricing.POSCharge,
		TotalAmount:    pricing.Total,
		TaxAmount:      0,
		PaymentMode:    input.PaymentMode.OrDefault(),
		Notes:          strings.TrimSpace(input.Notes),
		OrderDate:      time.Now(),
	}

	items := make([]entity.OrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, entity.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.UnitPrice * int64(line.Quantity),
		})
	}

	return order, items, nil
}

// Checkout prices the caller's cart and persists it as an order. The
// cart is cleared only after the order row and its items are written.
func (s *CheckoutService) Checkout(ctx context.Context, userID uint, input *CheckoutInput) (*CheckoutResult, error) {
	cart := s.cartService.Snapshot(userID)

	pricing, err := ComputePricing(cart, input.PaymentMode.OrDefault(), s.surcharge(ctx))
	if err != nil {
		return nil, err
	}

	order, items, err := BuildOrderRequest(cart, pricing, input)
	if err != nil {
		return nil, err
	}

	// Step 1: order row, status Pending.
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, translateWriteError("order", err)
	}

	// Step 2: item rows. Failure leaves the Pending order in place.
	for i := range items {
		items[i].OrderID = order.ID
	}
	if err := s.itemRepo.CreateBatch(ctx, items); err != nil {
		logger.L().Error("order items insert failed, order left pending",
			zap.String("order_number", order.OrderNumber), zap.Error(err))
		return nil, translateWriteError("order items", err)
	}
	order.Items = items

	result := &CheckoutResult{Order: order}

	// Step 3: mark completed. Failure is non-fatal; the sale stands and
	// the sweep will finish the status flip.
	if err := s.orderRepo.UpdateStatus(ctx, order.ID, enum.OrderStatusCompleted); err != nil {
		logger.L().Warn("order status update failed",
			zap.String("order_number", order.OrderNumber), zap.Error(err))
		result.Warnings = append(result.Warnings, "Order saved but could not be marked completed")
	} else {
		order.Status = enum.OrderStatusCompleted
	}

	if err := s.publisher.PublishOrderCompleted(ctx, order); err != nil {
		logger.L().Warn("order event publish failed",
			zap.String("order_number", order.OrderNumber), zap.Error(err))
		result.Warnings = append(result.Warnings, "Order completed but the event could not be published")
	}

	receipt, err := s.receipts.BuildForOrder(ctx, order, items)
	if err != nil {
		result.Warnings = append(result.Warnings, "Receipt could not be generated")
	} else {
		result.Receipt = receipt
		if err := s.receipts.Print(receipt); err != nil {
			logger.L().Warn("receipt print failed",
				zap.String("order_number", order.OrderNumber), zap.Error(err))
			result.Warnings = append(result.Warnings, "Receipt could not be printed")
		}
	}

	s.cartService.Clear(userID)

	logger.L().Info("checkout completed",
		zap.String("order_number", order.OrderNumber),
		zap.Int64("total", order.TotalAmount),
		zap.String("payment_mode", string(order.PaymentMode)),
		zap.Int("items", len(items)))

	return result, nil
}

// ReconcileStaleOrders finishes orders that a failed checkout left in
// Pending: orders with items are completed, orders without items are
// cancelled. Returns the number of orders completed and cancelled.
func (s *CheckoutService) ReconcileStaleOrders(ctx context.Context, staleAfter time.Duration) (completed, cancelled int, err error) {
	cutoff := time.Now().Add(-staleAfter)
	stale, err := s.orderRepo.ListStalePending(ctx, cutoff)
	if err != nil {
		return 0, 0, err
	}

	for i := range stale {
		order := &stale[i]
		if len(order.Items) == 0 {
			if err := s.orderRepo.UpdateStatus(ctx, order.ID, enum.OrderStatusCancelled); err != nil {
				logger.L().Error("failed to cancel stale order",
					zap.String("order_number", order.OrderNumber), zap.Error(err))
				continue
			}
			cancelled++
		} else {
			if err := s.orderRepo.UpdateStatus(ctx, order.ID, enum.OrderStatusCompleted); err != nil {
				logger.L().Error("failed to complete stale order",
					zap.String("order_number", order.OrderNumber), zap.Error(err))
				continue
			}
			completed++
		}
	}

	if completed > 0 || cancelled > 0 {
		logger.L().Info("stale order reconciliation",
			zap.Int("completed", completed), zap.Int("cancelled", cancelled))
	}
	return completed, cancelled, nil
}

// surcharge reads the POS surcharge from the settings row, falling back
// to the configured default when no row exists.
func (s *CheckoutService) surcharge(ctx context.Context) int64 {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil || settings == nil {
		return s.posCharge
	}
	return settings.POSCharge
}

// generateOrderNumber returns "ORD-<unix millis>-<4 hex>". The random
// suffix keeps two checkouts in the same millisecond from colliding on
// the unique order_number column.
func generateOrderNumber() string {
	var b [2]byte
	_, _ = rand.Read(b[:])
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(b[:]))
}

// translateWriteError maps row security policy rejections to a 403 with
// remediation text; anything else passes through untouched.
func translateWriteError(target string, err error) error {
	if strings.Contains(err.Error(), "row-level security policy") {
		return apperror.NewAccessPolicyError(target,
			"The database rejected the write under its row security policy. Review the policies on the orders and order_items tables and grant the API role insert and update access.")
	}
	return err
}
