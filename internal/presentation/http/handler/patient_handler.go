package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/application/service"
	domainRepo "github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/internal/presentation/http/dto/response"
	"github.com/kipsang/medicore-api/pkg/pagination"
)

// PatientHandler handles patient-related HTTP requests
type PatientHandler struct {
	patientService *service.PatientService
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// patientRequest is shared by Create and Update
type patientRequest struct {
	FirstName           string  `json:"first_name" binding:"required"`
	LastName            string  `json:"last_name"`
	DateOfBirth         *string `json:"date_of_birth"`
	Gender              string  `json:"gender"`
	BloodGroup          *string `json:"blood_group"`
	Phone               *string `json:"phone"`
	Email               *string `json:"email"`
	Address             *string `json:"address"`
	EmergencyContact    *string `json:"emergency_contact"`
	InsuranceProviderID *string `json:"insurance_provider_id"`
	PolicyNumber        *string `json:"policy_number"`
	Notes               *string `json:"notes"`
}

func (r *patientRequest) toInput() (*service.CreatePatientInput, error) {
	input := &service.CreatePatientInput{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Gender:           r.Gender,
		BloodGroup:       r.BloodGroup,
		Phone:            r.Phone,
		Email:            r.Email,
		Address:          r.Address,
		EmergencyContact: r.EmergencyContact,
		PolicyNumber:     r.PolicyNumber,
		Notes:            r.Notes,
	}
	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", *r.DateOfBirth)
		if err != nil {
			return nil, err
		}
		input.DateOfBirth = &dob
	}
	if r.InsuranceProviderID != nil && *r.InsuranceProviderID != "" {
		providerID, err := uuid.Parse(*r.InsuranceProviderID)
		if err != nil {
			return nil, err
		}
		input.InsuranceProviderID = &providerID
	}
	return input, nil
}

// Create handles registering a patient
func (h *PatientHandler) Create(c *gin.Context) {
	var req patientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	patient, err := h.patientService.CreatePatient(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Patient registered successfully", patient)
}

// Get handles fetching a single patient
func (h *PatientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid patient ID")
		return
	}

	patient, err := h.patientService.GetPatient(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Patient retrieved successfully", patient)
}

// GetByMRN handles looking up a patient by medical record number
func (h *PatientHandler) GetByMRN(c *gin.Context) {
	patient, err := h.patientService.GetPatientByMRN(c.Request.Context(), c.Param("mrn"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Patient retrieved successfully", patient)
}

// Update handles updating a patient's record
func (h *PatientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid patient ID")
		return
	}

	var req patientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	patient, err := h.patientService.UpdatePatient(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Patient updated successfully", patient)
}

// Delete handles removing a patient record
func (h *PatientHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid patient ID")
		return
	}

	if err := h.patientService.DeletePatient(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles listing patients (supports both page-based and cursor-based pagination)
func (h *PatientHandler) List(c *gin.Context) {
	search := c.Query("search")
	gender := c.Query("gender")
	providerID := parseUUIDQuery(c, "provider_id")

	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c, search, gender, providerID)
		return
	}

	result, err := h.patientService.ListPatients(c.Request.Context(), &domainRepo.PatientFilterParams{
		Pagination: pageParams(c),
		Search:     search,
		Gender:     gender,
		ProviderID: providerID,
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Patients retrieved successfully", result)
}

// listWithCursor handles listing patients with cursor-based pagination
func (h *PatientHandler) listWithCursor(c *gin.Context, search, gender string, providerID *uuid.UUID) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))

	result, err := h.patientService.ListPatientsWithCursor(c.Request.Context(), &domainRepo.PatientCursorFilterParams{
		Cursor: &pagination.CursorParams{
			Cursor:    c.Query("cursor"),
			Direction: pagination.CursorDirection(c.DefaultQuery("direction", "next")),
			Limit:     limit,
		},
		Search:     search,
		Gender:     gender,
		ProviderID: providerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Patients retrieved successfully", result)
}
