package handler

import (
	"net/http"

	"github.com/TemiKayode/wumikay-ventures/internal/application/service"
	"github.com/TemiKayode/wumikay-ventures/internal/presentation/http/dto/request"
	"github.com/TemiKayode/wumikay-ventures/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CartHandler handles cart HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get handles GET /cart
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.ErrorWithCode(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	response.OK(c, "Cart retrieved", h.cartService.GetCart(userID))
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.ErrorWithCode(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req request.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", cart)
}

// SetQuantity handles PUT /cart/items
func (h *CartHandler) SetQuantity(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.ErrorWithCode(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req request.CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart := h.cartService.SetQuantity(userID, req.ProductID, req.Quantity)
	response.OK(c, "Cart updated", cart)
}

// RemoveItem handles DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.ErrorWithCode(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	productID, ok := ParseIDParam(c, "productId")
	if !ok {
		response.ErrorWithCode(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	cart := h.cartService.RemoveItem(userID, productID)
	response.OK(c, "Item removed from cart", cart)
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.ErrorWithCode(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	h.cartService.Clear(userID)
	response.OK(c, "Cart cleared", nil)
}
