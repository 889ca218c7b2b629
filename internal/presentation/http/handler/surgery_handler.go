package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/application/service"
	domainRepo "github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/internal/presentation/http/dto/response"
)

// SurgeryHandler handles surgery scheduling HTTP requests
type SurgeryHandler struct {
	surgeryService *service.SurgeryService
}

// NewSurgeryHandler creates a new surgery handler
func NewSurgeryHandler(surgeryService *service.SurgeryService) *SurgeryHandler {
	return &SurgeryHandler{surgeryService: surgeryService}
}

// Schedule handles booking a surgical procedure
func (h *SurgeryHandler) Schedule(c *gin.Context) {
	var req struct {
		PatientID   string  `json:"patient_id" binding:"required"`
		SurgeonID   string  `json:"surgeon_id" binding:"required"`
		Procedure   string  `json:"procedure" binding:"required"`
		TheaterRoom string  `json:"theater_room"`
		ScheduledAt string  `json:"scheduled_at" binding:"required"`
		Notes       *string `json:"notes"`
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
	surgeonID, err := uuid.Parse(req.SurgeonID)
	if err != nil {
		response.BadRequest(c, "Invalid surgeon ID")
		return
	}
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		response.BadRequest(c, "Invalid scheduled_at, expected RFC 3339")
		return
	}

	surgery, err := h.surgeryService.ScheduleSurgery(c.Request.Context(), &service.ScheduleSurgeryInput{
		PatientID:   patientID,
		SurgeonID:   surgeonID,
		Procedure:   req.Procedure,
		TheaterRoom: req.TheaterRoom,
		ScheduledAt: scheduledAt,
		Notes:       req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Surgery scheduled successfully", surgery)
}

// Get handles fetching a single surgery
func (h *SurgeryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid surgery ID")
		return
	}

	surgery, err := h.surgeryService.GetSurgery(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Surgery retrieved successfully", surgery)
}

// Complete handles marking a surgery as completed
func (h *SurgeryHandler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid surgery ID")
		return
	}

	var req struct {
		Notes *string `json:"notes"`
	}
	_ = c.ShouldBindJSON(&req)

	surgery, err := h.surgeryService.CompleteSurgery(c.Request.Context(), id, req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Surgery completed successfully", surgery)
}

// Cancel handles cancelling a scheduled surgery
func (h *SurgeryHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid surgery ID")
		return
	}

	if err := h.surgeryService.CancelSurgery(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Surgery cancelled successfully", nil)
}

// List handles listing surgeries
func (h *SurgeryHandler) List(c *gin.Context) {
	result, err := h.surgeryService.ListSurgeries(c.Request.Context(), &domainRepo.SurgeryFilterParams{
		Pagination: pageParams(c),
		PatientID:  parseUUIDQuery(c, "patient_id"),
		SurgeonID:  parseUUIDQuery(c, "surgeon_id"),
		Status:     c.Query("status"),
		StartDate:  parseDateQuery(c, "start_date"),
		EndDate:    parseDateQuery(c, "end_date"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Surgeries retrieved successfully", result)
}
