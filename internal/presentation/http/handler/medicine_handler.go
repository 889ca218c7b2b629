package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/application/service"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	domainRepo "github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// MedicineHandler handles medicine inventory HTTP requests
type MedicineHandler struct {
	medicineService *service.MedicineService
}

// NewMedicineHandler creates a new medicine handler
func NewMedicineHandler(medicineService *service.MedicineService) *MedicineHandler {
	return &MedicineHandler{medicineService: medicineService}
}

// medicineRequest is shared by Create and Update
type medicineRequest struct {
	Name          string          `json:"name" binding:"required"`
	GenericName   *string         `json:"generic_name"`
	Category      string          `json:"category"`
	BatchNo       *string         `json:"batch_no"`
	ExpiryDate    *string         `json:"expiry_date"`
	Quantity      int             `json:"quantity"`
	QuantityAlert int             `json:"quantity_alert"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SupplierID    *string         `json:"supplier_id"`
	Notes         *string         `json:"notes"`
}

func (r *medicineRequest) toInput() (*service.CreateMedicineInput, error) {
	input := &service.CreateMedicineInput{
		Name:          r.Name,
		GenericName:   r.GenericName,
		Category:      r.Category,
		BatchNo:       r.BatchNo,
		Quantity:      r.Quantity,
		QuantityAlert: r.QuantityAlert,
		UnitPrice:     r.UnitPrice,
		CostPrice:     r.CostPrice,
		Notes:         r.Notes,
	}
	if r.ExpiryDate != nil && *r.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", *r.ExpiryDate)
		if err != nil {
			return nil, err
		}
		input.ExpiryDate = &expiry
	}
	if r.SupplierID != nil && *r.SupplierID != "" {
		supplierID, err := uuid.Parse(*r.SupplierID)
		if err != nil {
			return nil, err
		}
		input.SupplierID = &supplierID
	}
	return input, nil
}

// Create handles adding a medicine to the inventory
func (h *MedicineHandler) Create(c *gin.Context) {
	var req medicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	medicine, err := h.medicineService.CreateMedicine(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Medicine created successfully", medicine)
}

// Get handles fetching a single medicine
func (h *MedicineHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid medicine ID")
		return
	}

	medicine, err := h.medicineService.GetMedicine(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Medicine retrieved successfully", medicine)
}

// Update handles updating a medicine
func (h *MedicineHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid medicine ID")
		return
	}

	var req medicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	medicine, err := h.medicineService.UpdateMedicine(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Medicine updated successfully", medicine)
}

// Delete handles removing a medicine
func (h *MedicineHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid medicine ID")
		return
	}

	if err := h.medicineService.DeleteMedicine(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles listing medicines
func (h *MedicineHandler) List(c *gin.Context) {
	result, err := h.medicineService.ListMedicines(c.Request.Context(), &domainRepo.MedicineFilterParams{
		Pagination: pageParams(c),
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		SupplierID: parseUUIDQuery(c, "supplier_id"),
		LowStock:   c.Query("low_stock") == "true",
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Medicines retrieved successfully", result)
}

// GetLowStock handles listing medicines at or below their alert threshold
func (h *MedicineHandler) GetLowStock(c *gin.Context) {
	medicines, err := h.medicineService.GetLowStockMedicines(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock medicines retrieved successfully", medicines)
}

// SupplierHandler handles supplier-related HTTP requests
type SupplierHandler struct {
	medicineService *service.MedicineService
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(medicineService *service.MedicineService) *SupplierHandler {
	return &SupplierHandler{medicineService: medicineService}
}

// supplierRequest is shared by Create and Update
type supplierRequest struct {
	Name        string  `json:"name" binding:"required"`
	ContactName *string `json:"contact_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}

// Create handles adding a supplier
func (h *SupplierHandler) Create(c *gin.Context) {
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	supplier := &entity.Supplier{
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
	}
	if err := h.medicineService.CreateSupplier(c.Request.Context(), supplier); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Supplier created successfully", supplier)
}

// Get handles fetching a single supplier
func (h *SupplierHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	supplier, err := h.medicineService.GetSupplier(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier retrieved successfully", supplier)
}

// Update handles updating a supplier
func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	supplier := &entity.Supplier{
		ID:          id,
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
	}
	if err := h.medicineService.UpdateSupplier(c.Request.Context(), supplier); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier updated successfully", supplier)
}

// Delete handles removing a supplier
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	if err := h.medicineService.DeleteSupplier(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles listing suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	result, err := h.medicineService.ListSuppliers(c.Request.Context(), pageParams(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Suppliers retrieved successfully", result)
}
