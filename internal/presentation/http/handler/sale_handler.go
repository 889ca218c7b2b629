package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/application/service"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	domainRepo "github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// SaleHandler handles pharmacy sale HTTP requests
type SaleHandler struct {
	billingService *service.BillingService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(billingService *service.BillingService) *SaleHandler {
	return &SaleHandler{billingService: billingService}
}

// Create handles committing a pharmacy sale
func (h *SaleHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		PatientID       *string         `json:"patient_id"`
		DiscountPercent decimal.Decimal `json:"discount_percent"`
		TaxPercent      decimal.Decimal `json:"tax_percent"`
		PaymentType     string          `json:"payment_type"`
		Items           []struct {
			MedicineID string `json:"medicine_id" binding:"required"`
			Quantity   int    `json:"quantity" binding:"required"`
		} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateSaleInput{
		CashierID:       *userID,
		DiscountPercent: req.DiscountPercent,
		TaxPercent:      req.TaxPercent,
		PaymentType:     req.PaymentType,
	}
	if req.PatientID != nil && *req.PatientID != "" {
		patientID, err := uuid.Parse(*req.PatientID)
		if err != nil {
			response.BadRequest(c, "Invalid patient ID")
			return
		}
		input.PatientID = &patientID
	}
	for _, item := range req.Items {
		medicineID, err := uuid.Parse(item.MedicineID)
		if err != nil {
			response.BadRequest(c, "Invalid medicine ID")
			return
		}
		input.Items = append(input.Items, service.SaleLineInput{
			MedicineID: medicineID,
			Quantity:   item.Quantity,
		})
	}

	sale, err := h.billingService.CreateSale(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale created successfully", sale)
}

// Get handles fetching a single sale with its line items
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.billingService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// List handles listing sales
func (h *SaleHandler) List(c *gin.Context) {
	params := &domainRepo.SaleFilterParams{
		Pagination: pageParams(c),
		Search:     c.Query("search"),
		PatientID:  parseUUIDQuery(c, "patient_id"),
		CashierID:  parseUUIDQuery(c, "cashier_id"),
		StartDate:  parseDateQuery(c, "start_date"),
		EndDate:    parseDateQuery(c, "end_date"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	switch c.Query("status") {
	case "completed":
		status := enum.SaleStatusCompleted
		params.Status = &status
	case "cancelled":
		status := enum.SaleStatusCancelled
		params.Status = &status
	}

	result, err := h.billingService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Cancel handles cancelling a sale and restoring its stock
func (h *SaleHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.billingService.CancelSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale cancelled successfully", nil)
}
