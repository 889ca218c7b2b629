package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/application/service"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	domainRepo "github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// PurchaseHandler handles purchase order HTTP requests
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Create handles creating a draft purchase order
func (h *PurchaseHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		SupplierID *string `json:"supplier_id"`
		Date       *string `json:"date"`
		Notes      *string `json:"notes"`
		Items      []struct {
			MedicineID string          `json:"medicine_id" binding:"required"`
			Quantity   int             `json:"quantity" binding:"required"`
			UnitPrice  decimal.Decimal `json:"unit_price"`
		} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreatePurchaseInput{
		Date:  time.Now(),
		Notes: req.Notes,
	}
	if req.SupplierID != nil && *req.SupplierID != "" {
		supplierID, err := uuid.Parse(*req.SupplierID)
		if err != nil {
			response.BadRequest(c, "Invalid supplier ID")
			return
		}
		input.SupplierID = &supplierID
	}
	if req.Date != nil && *req.Date != "" {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date")
			return
		}
		input.Date = date
	}
	for _, item := range req.Items {
		medicineID, err := uuid.Parse(item.MedicineID)
		if err != nil {
			response.BadRequest(c, "Invalid medicine ID")
			return
		}
		input.Items = append(input.Items, service.PurchaseLineInput{
			MedicineID: medicineID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), *userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase order created successfully", purchase)
}

// Get handles fetching a single purchase order
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	purchase, err := h.purchaseService.GetPurchase(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order retrieved successfully", purchase)
}

// List handles listing purchase orders
func (h *PurchaseHandler) List(c *gin.Context) {
	params := &domainRepo.PurchaseFilterParams{
		Pagination: pageParams(c),
		Search:     c.Query("search"),
		SupplierID: parseUUIDQuery(c, "supplier_id"),
		StartDate:  parseDateQuery(c, "start_date"),
		EndDate:    parseDateQuery(c, "end_date"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	switch c.Query("status") {
	case "draft":
		status := enum.PurchaseStatusDraft
		params.Status = &status
	case "submitted":
		status := enum.PurchaseStatusSubmitted
		params.Status = &status
	case "approved":
		status := enum.PurchaseStatusApproved
		params.Status = &status
	case "received":
		status := enum.PurchaseStatusReceived
		params.Status = &status
	case "cancelled":
		status := enum.PurchaseStatusCancelled
		params.Status = &status
	}

	result, err := h.purchaseService.ListPurchases(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchase orders retrieved successfully", result)
}

// transition runs one of the lifecycle actions and writes the response
func (h *PurchaseHandler) transition(
	c *gin.Context,
	message string,
	action func(ctx *gin.Context, id, userID uuid.UUID) (interface{}, error),
) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	purchase, err := action(c, id, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, message, purchase)
}

// Submit handles moving a draft purchase order to Submitted
func (h *PurchaseHandler) Submit(c *gin.Context) {
	h.transition(c, "Purchase order submitted successfully", func(ctx *gin.Context, id, userID uuid.UUID) (interface{}, error) {
		return h.purchaseService.SubmitPurchase(ctx.Request.Context(), id, userID)
	})
}

// Approve handles moving a submitted purchase order to Approved
func (h *PurchaseHandler) Approve(c *gin.Context) {
	h.transition(c, "Purchase order approved successfully", func(ctx *gin.Context, id, userID uuid.UUID) (interface{}, error) {
		return h.purchaseService.ApprovePurchase(ctx.Request.Context(), id, userID)
	})
}

// Receive handles marking an approved purchase order as Received,
// which adds the ordered quantities to inventory
func (h *PurchaseHandler) Receive(c *gin.Context) {
	h.transition(c, "Purchase order received successfully", func(ctx *gin.Context, id, userID uuid.UUID) (interface{}, error) {
		return h.purchaseService.ReceivePurchase(ctx.Request.Context(), id, userID)
	})
}

// Cancel handles cancelling a non-terminal purchase order
func (h *PurchaseHandler) Cancel(c *gin.Context) {
	h.transition(c, "Purchase order cancelled successfully", func(ctx *gin.Context, id, userID uuid.UUID) (interface{}, error) {
		return h.purchaseService.CancelPurchase(ctx.Request.Context(), id, userID)
	})
}

// Delete handles removing a draft purchase order
func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
