package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kipsang/medicore-api/internal/application/service"
	"github.com/kipsang/medicore-api/internal/domain/enum"
	domainRepo "github.com/kipsang/medicore-api/internal/domain/repository"
	"github.com/kipsang/medicore-api/internal/presentation/http/dto/response"
)

// AppointmentHandler handles appointment HTTP requests
type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// Book handles booking an appointment slot
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req struct {
		PatientID string  `json:"patient_id" binding:"required"`
		DoctorID  string  `json:"doctor_id" binding:"required"`
		Date      string  `json:"date" binding:"required"`
		StartTime string  `json:"start_time" binding:"required"`
		EndTime   string  `json:"end_time" binding:"required"`
		Reason    *string `json:"reason"`
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
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		response.BadRequest(c, "Invalid doctor ID")
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	appointment, err := h.appointmentService.BookAppointment(c.Request.Context(), &service.BookAppointmentInput{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Appointment booked successfully", appointment)
}

// Slots handles listing a doctor's available slots on a given date
func (h *AppointmentHandler) Slots(c *gin.Context) {
	doctorID, err := uuid.Parse(c.Query("doctor_id"))
	if err != nil {
		response.BadRequest(c, "Invalid doctor ID")
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	slots, err := h.appointmentService.AvailableSlots(c.Request.Context(), doctorID, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Available slots retrieved successfully", slots)
}

// Get handles fetching a single appointment
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentService.GetAppointment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment retrieved successfully", appointment)
}

// List handles listing appointments
func (h *AppointmentHandler) List(c *gin.Context) {
	params := &domainRepo.AppointmentFilterParams{
		Pagination: pageParams(c),
		PatientID:  parseUUIDQuery(c, "patient_id"),
		DoctorID:   parseUUIDQuery(c, "doctor_id"),
		StartDate:  parseDateQuery(c, "start_date"),
		EndDate:    parseDateQuery(c, "end_date"),
	}

	switch c.Query("status") {
	case "scheduled":
		status := enum.AppointmentStatusScheduled
		params.Status = &status
	case "completed":
		status := enum.AppointmentStatusCompleted
		params.Status = &status
	case "cancelled":
		status := enum.AppointmentStatusCancelled
		params.Status = &status
	}

	result, err := h.appointmentService.ListAppointments(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Appointments retrieved successfully", result)
}

// Complete handles marking a scheduled appointment as completed
func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req struct {
		Notes *string `json:"notes"`
	}
	_ = c.ShouldBindJSON(&req)

	appointment, err := h.appointmentService.CompleteAppointment(c.Request.Context(), id, req.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment completed successfully", appointment)
}

// Cancel handles cancelling an appointment
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	if err := h.appointmentService.CancelAppointment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment cancelled successfully", nil)
}
