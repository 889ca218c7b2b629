package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/application/service"
	"github.com/kipsang/medicore-api/internal/domain/entity"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	domainRepo "github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

// InsuranceHandler handles insurance provider and claim HTTP requests
type InsuranceHandler struct {
	insuranceService *service.InsuranceService
}

// NewInsuranceHandler creates a new insurance handler
func NewInsuranceHandler(insuranceService *service.InsuranceService) *InsuranceHandler {
	return &InsuranceHandler{insuranceService: insuranceService}
}

// providerRequest is shared by CreateProvider and UpdateProvider
type providerRequest struct {
	Name        string  `json:"name" binding:"required"`
	ContactName *string `json:"contact_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}

// CreateProvider handles adding an insurance provider
func (h *InsuranceHandler) CreateProvider(c *gin.Context) {
	var req providerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	provider := &entity.InsuranceProvider{
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
	}
	if err := h.insuranceService.CreateProvider(c.Request.Context(), provider); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Insurance provider created successfully", provider)
}

// GetProvider handles fetching a single insurance provider
func (h *InsuranceHandler) GetProvider(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid provider ID")
		return
	}

	provider, err := h.insuranceService.GetProvider(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Insurance provider retrieved successfully", provider)
}

// UpdateProvider handles updating an insurance provider
func (h *InsuranceHandler) UpdateProvider(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid provider ID")
		return
	}

	var req providerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	provider := &entity.InsuranceProvider{
		ID:          id,
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
	}
	if err := h.insuranceService.UpdateProvider(c.Request.Context(), provider); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Insurance provider updated successfully", provider)
}

// DeleteProvider handles removing an insurance provider
func (h *InsuranceHandler) DeleteProvider(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid provider ID")
		return
	}

	if err := h.insuranceService.DeleteProvider(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListProviders handles listing insurance providers
func (h *InsuranceHandler) ListProviders(c *gin.Context) {
	result, err := h.insuranceService.ListProviders(c.Request.Context(), pageParams(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Insurance providers retrieved successfully", result)
}

// FileClaim handles filing an insurance claim
func (h *InsuranceHandler) FileClaim(c *gin.Context) {
	var req struct {
		PatientID  string          `json:"patient_id" binding:"required"`
		ProviderID string          `json:"provider_id" binding:"required"`
		Amount     decimal.Decimal `json:"amount"`
		Notes      *string         `json:"notes"`
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
	providerID, err := uuid.Parse(req.ProviderID)
	if err != nil {
		response.BadRequest(c, "Invalid provider ID")
		return
	}

	claim, err := h.insuranceService.FileClaim(c.Request.Context(), &service.FileClaimInput{
		PatientID:  patientID,
		ProviderID: providerID,
		Amount:     req.Amount,
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Claim filed successfully", claim)
}

// GetClaim handles fetching a single claim
func (h *InsuranceHandler) GetClaim(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid claim ID")
		return
	}

	claim, err := h.insuranceService.GetClaim(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Claim retrieved successfully", claim)
}

// ApproveClaim handles approving a submitted claim
func (h *InsuranceHandler) ApproveClaim(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid claim ID")
		return
	}

	claim, err := h.insuranceService.ApproveClaim(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Claim approved successfully", claim)
}

// RejectClaim handles rejecting a submitted claim
func (h *InsuranceHandler) RejectClaim(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid claim ID")
		return
	}

	claim, err := h.insuranceService.RejectClaim(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Claim rejected successfully", claim)
}

// PayClaim handles marking an approved claim as paid
func (h *InsuranceHandler) PayClaim(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid claim ID")
		return
	}

	claim, err := h.insuranceService.MarkClaimPaid(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Claim marked as paid", claim)
}

// ListClaims handles listing insurance claims
func (h *InsuranceHandler) ListClaims(c *gin.Context) {
	params := &domainRepo.ClaimFilterParams{
		Pagination: pageParams(c),
		PatientID:  parseUUIDQuery(c, "patient_id"),
		ProviderID: parseUUIDQuery(c, "provider_id"),
	}

	switch c.Query("status") {
	case "submitted":
		status := enum.ClaimStatusSubmitted
		params.Status = &status
	case "approved":
		status := enum.ClaimStatusApproved
		params.Status = &status
	case "rejected":
		status := enum.ClaimStatusRejected
		params.Status = &status
	case "paid":
		status := enum.ClaimStatusPaid
		params.Status = &status
	}

	result, err := h.insuranceService.ListClaims(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Claims retrieved successfully", result)
}
