package handler

import (
	"github.com/TemiKayode/wumikay-ventures/internal/application/service"
	"github.com/TemiKayode/wumikay-ventures/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer roll-up HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles GET /customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customers retrieved", customers)
}
