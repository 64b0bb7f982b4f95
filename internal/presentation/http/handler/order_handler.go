package handler

import (
	"net/http"
	"time"

	"github.com/TemiKayode/wumikay-ventures/internal/application/service"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/enum"
	"github.com/TemiKayode/wumikay-ventures/internal/domain/repository"
	"github.com/TemiKayode/wumikay-ventures/internal/presentation/http/dto/request"
	"github.com/TemiKayode/wumikay-ventures/internal/presentation/http/dto/response"
	"github.com/TemiKayode/wumikay-ventures/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService    *service.OrderService
	checkoutService *service.CheckoutService
	receiptService  *service.ReceiptService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	orderService *service.OrderService,
	checkoutService *service.CheckoutService,
	receiptService *service.ReceiptService,
) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		checkoutService: checkoutService,
		receiptService:  receiptService,
	}
}

// Checkout handles POST /orders
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.ErrorWithCode(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.checkoutService.Checkout(c.Request.Context(), userID, &service.CheckoutInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		PaymentMode:   enum.PaymentMode(req.PaymentMode),
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithWarnings(c, http.StatusCreated, "Order placed successfully", result, result.Warnings)
}

// List handles GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	var filter request.OrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ErrorWithCode(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
	}

	if filter.Status != "" {
		var status enum.OrderStatus
		switch filter.Status {
		case "Pending", "pending":
			status = enum.OrderStatusPending
		case "Completed", "completed":
			status = enum.OrderStatusCompleted
		case "Cancelled", "cancelled":
			status = enum.OrderStatusCancelled
		default:
			response.ErrorWithCode(c, http.StatusBadRequest, "Invalid order status")
			return
		}
		params.Status = &status
	}

	if filter.StartDate != "" {
		if t, err := time.Parse("2006-01-02", filter.StartDate); err == nil {
			params.StartDate = &t
		}
	}
	if filter.EndDate != "" {
		if t, err := time.Parse("2006-01-02", filter.EndDate); err == nil {
			// inclusive through end of day
			end := t.Add(24*time.Hour - time.Second)
			params.EndDate = &end
		}
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, "Orders retrieved", result)
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.ErrorWithCode(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved", order)
}

// Cancel handles POST /orders/:id/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.ErrorWithCode(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := h.orderService.CancelOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order cancelled", order)
}

// Receipt handles GET /orders/:id/receipt. With ?format=html the
// rendered printable page is returned instead of JSON.
func (h *OrderHandler) Receipt(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.ErrorWithCode(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	receipt, err := h.receiptService.BuildForOrderID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if c.Query("format") == "html" {
		html, err := h.receiptService.RenderHTML(receipt)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
		return
	}

	response.OK(c, "Receipt generated", receipt)
}

// PrintReceipt handles POST /orders/:id/receipt, re-printing the order's
// receipt on the thermal printer.
func (h *OrderHandler) PrintReceipt(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.ErrorWithCode(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	receipt, err := h.receiptService.BuildForOrderID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.receiptService.Print(receipt); err != nil {
		response.SuccessWithWarnings(c, http.StatusOK, "Receipt generated", receipt,
			[]string{"Receipt could not be printed"})
		return
	}

	response.OK(c, "Receipt printed", receipt)
}
