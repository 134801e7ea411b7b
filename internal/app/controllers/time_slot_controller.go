package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aksoyb/schedly/internal/app/models/dto"
	"github.com/aksoyb/schedly/internal/app/services"
	"github.com/aksoyb/schedly/internal/middleware"
)

// TimeSlotController handles weekly time window operations.
type TimeSlotController struct {
	timeSlotService *services.TimeSlotService
}

// NewTimeSlotController creates a new TimeSlotController.
func NewTimeSlotController(timeSlotService *services.TimeSlotService) *TimeSlotController {
	return &TimeSlotController{timeSlotService: timeSlotService}
}

// CreateTimeSlot creates a weekly window
// @Summary Create a time slot
// @Tags time-slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTimeSlotRequest true "Time slot information"
// @Success 201 {object} dto.APIResponse{data=models.TimeSlot} "Time slot created"
// @Failure 400 {object} dto.ErrorResponse "Invalid day or clock values"
// @Router /time-slots [post]
func (c *TimeSlotController) CreateTimeSlot(ctx *gin.Context) {
	var req dto.CreateTimeSlotRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, "Invalid time slot data", err)
		return
	}

	slot, err := c.timeSlotService.CreateTimeSlot(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: slot, Timestamp: time.Now()})
}

// GetTimeSlotsBySemester lists a semester's windows
// @Summary List time slots of a semester
// @Tags time-slots
// @Produce json
// @Param semesterId query int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=[]models.TimeSlot} "Time slots retrieved"
// @Router /time-slots [get]
func (c *TimeSlotController) GetTimeSlotsBySemester(ctx *gin.Context) {
	semesterID, err := strconv.ParseInt(ctx.Query("semesterId"), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid semester ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail.WithField("semesterId")))
		return
	}

	slots, err := c.timeSlotService.GetTimeSlotsBySemester(ctx, semesterID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: slots, Timestamp: time.Now()})
}

// DeleteTimeSlot removes a weekly window
// @Summary Delete a time slot
// @Tags time-slots
// @Produce json
// @Security BearerAuth
// @Param id path int true "Time slot ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Time slot deleted"
// @Failure 404 {object} dto.ErrorResponse "Time slot not found"
// @Router /time-slots/{id} [delete]
func (c *TimeSlotController) DeleteTimeSlot(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.timeSlotService.DeleteTimeSlot(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Time slot deleted"},
		Timestamp: time.Now(),
	})
}
