package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kipsang/medicore-api/internal/application/service"
	"github.com/kipsang/medicore-api/internal/presentation/http/dto/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles report export HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Sales handles downloading the sales report as an xlsx workbook.
// Defaults to the last 30 days when no range is given.
func (h *ReportHandler) Sales(c *gin.Context) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if fromDate := parseDateQuery(c, "start_date"); fromDate != nil {
		start = *fromDate
	}
	if toDate := parseDateQuery(c, "end_date"); toDate != nil {
		// Include the whole end day
		end = toDate.Add(24*time.Hour - time.Second)
	}
	if end.Before(start) {
		response.BadRequest(c, "end_date must not be before start_date")
		return
	}

	buf, filename, err := h.reportService.SalesReport(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, xlsxContentType, buf.Bytes())
}

// Inventory handles downloading the inventory report as an xlsx workbook
func (h *ReportHandler) Inventory(c *gin.Context) {
	buf, filename, err := h.reportService.InventoryReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, xlsxContentType, buf.Bytes())
}
