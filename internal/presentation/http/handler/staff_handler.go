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

// StaffHandler handles staff and weekly schedule HTTP requests
type StaffHandler struct {
	staffService    *service.StaffService
	scheduleService *service.ScheduleService
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService *service.StaffService, scheduleService *service.ScheduleService) *StaffHandler {
	return &StaffHandler{staffService: staffService, scheduleService: scheduleService}
}

// staffRequest is shared by Create and Update
type staffRequest struct {
	UserID          *string         `json:"user_id"`
	Type            enum.StaffType  `json:"type"`
	FirstName       string          `json:"first_name" binding:"required"`
	LastName        string          `json:"last_name"`
	Email           *string         `json:"email"`
	Phone           *string         `json:"phone"`
	Department      string          `json:"department"`
	Specialization  *string         `json:"specialization"`
	LicenseNo       *string         `json:"license_no"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
}

func (r *staffRequest) toInput() (*service.CreateStaffInput, error) {
	input := &service.CreateStaffInput{
		Type:            r.Type,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		Department:      r.Department,
		Specialization:  r.Specialization,
		LicenseNo:       r.LicenseNo,
		ConsultationFee: r.ConsultationFee,
	}
	if r.UserID != nil && *r.UserID != "" {
		userID, err := uuid.Parse(*r.UserID)
		if err != nil {
			return nil, err
		}
		input.UserID = &userID
	}
	return input, nil
}

// Create handles adding a staff member
func (h *StaffHandler) Create(c *gin.Context) {
	var req staffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	staff, err := h.staffService.CreateStaff(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Staff member created successfully", staff)
}

// Get handles fetching a single staff member
func (h *StaffHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	staff, err := h.staffService.GetStaff(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff member retrieved successfully", staff)
}

// Update handles updating a staff member
func (h *StaffHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	var req staffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	staff, err := h.staffService.UpdateStaff(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff member updated successfully", staff)
}

// Deactivate handles marking a staff member as inactive
func (h *StaffHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	if err := h.staffService.DeactivateStaff(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff member deactivated successfully", nil)
}

// Delete handles removing a staff member
func (h *StaffHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	if err := h.staffService.DeleteStaff(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles listing staff members
func (h *StaffHandler) List(c *gin.Context) {
	params := &domainRepo.StaffFilterParams{
		Pagination: pageParams(c),
		Search:     c.Query("search"),
		Department: c.Query("department"),
		ActiveOnly: c.Query("active") == "true",
	}

	switch c.Query("type") {
	case "doctor":
		staffType := enum.StaffTypeDoctor
		params.Type = &staffType
	case "nurse":
		staffType := enum.StaffTypeNurse
		params.Type = &staffType
	}

	result, err := h.staffService.ListStaff(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Staff retrieved successfully", result)
}

// GetSchedule handles fetching a staff member's weekly schedule
func (h *StaffHandler) GetSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	week, err := h.scheduleService.GetWeek(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Schedule retrieved successfully", week)
}

// UpdateSchedule handles replacing a staff member's weekly schedule.
// The request must carry all seven days; an invalid week saves nothing.
func (h *StaffHandler) UpdateSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	var req struct {
		Days []service.DayScheduleInput `json:"days" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	week, err := h.scheduleService.SaveWeek(c.Request.Context(), id, req.Days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Schedule updated successfully", week)
}

// ApplyMondaySchedule handles copying Monday's hours to Tuesday through Friday
func (h *StaffHandler) ApplyMondaySchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	week, err := h.scheduleService.ApplyMondayToWeekdays(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monday schedule applied to weekdays", week)
}
