package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/application/service"
	domainRepo "github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// LabHandler handles lab test HTTP requests
type LabHandler struct {
	labService *service.LabService
}

// NewLabHandler creates a new lab handler
func NewLabHandler(labService *service.LabService) *LabHandler {
	return &LabHandler{labService: labService}
}

// Order handles ordering a lab test for a patient
func (h *LabHandler) Order(c *gin.Context) {
	var req struct {
		PatientID string          `json:"patient_id" binding:"required"`
		TestName  string          `json:"test_name" binding:"required"`
		Price     decimal.Decimal `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		response.BadRequest(c, "Invalid patient ID")
		return
	}

	test, err := h.labService.OrderLabTest(c.Request.Context(), &service.OrderLabTestInput{
		PatientID:   patientID,
		OrderedByID: GetUserID(c),
		TestName:    req.TestName,
		Price:       req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Lab test ordered successfully", test)
}

// Get handles fetching a single lab test
func (h *LabHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lab test ID")
		return
	}

	test, err := h.labService.GetLabTest(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lab test retrieved successfully", test)
}

// Complete handles recording a lab test result
func (h *LabHandler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lab test ID")
		return
	}

	var req struct {
		Result string `json:"result" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	test, err := h.labService.CompleteLabTest(c.Request.Context(), id, req.Result)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lab test completed successfully", test)
}

// Delete handles removing a pending lab test
func (h *LabHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lab test ID")
		return
	}

	if err := h.labService.DeleteLabTest(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles listing lab tests
func (h *LabHandler) List(c *gin.Context) {
	result, err := h.labService.ListLabTests(c.Request.Context(), &domainRepo.LabTestFilterParams{
		Pagination: pageParams(c),
		PatientID:  parseUUIDQuery(c, "patient_id"),
		Status:     c.Query("status"),
		Search:     c.Query("search"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Lab tests retrieved successfully", result)
}
