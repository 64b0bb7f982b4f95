package handler

import (
	"github.com/TemiKayode/wumikay-ventures/internal/application/service"
	"github.com/TemiKayode/wumikay-ventures/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// PrinterHandler handles printer HTTP requests
type PrinterHandler struct {
	receiptService *service.ReceiptService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(receiptService *service.ReceiptService) *PrinterHandler {
	return &PrinterHandler{receiptService: receiptService}
}

// Status handles GET /printer/status
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status", h.receiptService.Status())
}

// Test handles POST /printer/test
func (h *PrinterHandler) Test(c *gin.Context) {
	sample, err := h.receiptService.TestPrint()
	if err != nil {
		response.SuccessWithWarnings(c, 200, "Test receipt generated", sample,
			[]string{"Printer is not available; test page was not printed"})
		return
	}

	response.OK(c, "Test page printed", sample)
}
