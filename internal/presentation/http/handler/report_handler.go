package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/TemiKayode/wumikay-ventures/internal/application/service"
	"github.com/TemiKayode/wumikay-ventures/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles sales report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Sales handles GET /reports/sales?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *ReportHandler) Sales(c *gin.Context) {
	start := ParseDateQuery(c, "start")
	end := endOfDay(ParseDateQuery(c, "end"))

	report, err := h.reportService.GetSalesReport(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales report generated", report)
}

// Export handles GET /reports/sales/export, streaming an xlsx workbook.
func (h *ReportHandler) Export(c *gin.Context) {
	start := ParseDateQuery(c, "start")
	end := endOfDay(ParseDateQuery(c, "end"))

	buf, err := h.reportService.ExportSalesReport(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("sales-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

func endOfDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	end := t.Add(24*time.Hour - time.Second)
	return &end
}
